// renate-frame is a terminal game in which two sides claim straight runs on a
// rectangle frame until one of them colors the last cell.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"renate-frame/board"
	"renate-frame/config"
	"renate-frame/console"
	"renate-frame/engine"
	"renate-frame/logging"
	"renate-frame/types"
	"renate-frame/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagMode       string
	flagWidth      int
	flagHeight     int
	flagSeed       uint64
	flagPlain      bool
	flagQuickStart bool
	flagFocus      bool
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.FrameBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *slog.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "renate-frame",
		Short:        "Claim the rectangle frame before Renate does",
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	f := cmd.Flags()
	f.StringVar(&flagMode, "mode", "", "Game mode (renate-vs-you, you-vs-random, random-vs-you, you-vs-friend or 1-4)")
	f.IntVar(&flagWidth, "width", 0, "Frame width (3-25)")
	f.IntVar(&flagHeight, "height", 0, "Frame height (3-25)")
	f.Uint64Var(&flagSeed, "seed", 0, "Seed for the Random player (0 picks one)")
	f.BoolVar(&flagPlain, "plain", false, "Use the line-based console instead of the full-screen UI")
	f.BoolVar(&flagQuickStart, "play", false, "Start game immediately with defaults")
	f.BoolVar(&flagFocus, "focus", false, "Start in focus mode (board only)")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		return err
	}

	var closer io.Closer
	logger, closer, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	gameCfg, err := buildGameConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if flagPlain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return runConsole(cmd, gameCfg)
	}
	quickStart := flagQuickStart || flagFocus ||
		cmd.Flags().Changed("mode") || cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
	return runTUI(gameCfg, quickStart)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runConsole plays one game on stdin and stdout. Questions already answered
// by flags are not asked.
func runConsole(cmd *cobra.Command, gameCfg engine.GameConfig) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, cfg.Theme)
	var err error
	if !flagQuickStart && !cmd.Flags().Changed("mode") {
		if gameCfg.Mode, err = c.SelectMode(); err != nil {
			return quietEOF(err)
		}
	}
	if !flagQuickStart && !cmd.Flags().Changed("width") && !cmd.Flags().Changed("height") {
		if gameCfg.Width, gameCfg.Height, err = c.SelectDimensions(); err != nil {
			return quietEOF(err)
		}
	}

	g, err := engine.NewGame(gameCfg, logger)
	if err != nil {
		return err
	}
	_, err = c.Play(ctx, g)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return quietEOF(err)
}

// quietEOF treats closed input as the player leaving.
func quietEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func runTUI(defaults engine.GameConfig, quickStart bool) error {
	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ■ renate-frame ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewFrameBoard(app, cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			switch {
			case gameBoard.HasAnchor():
				gameBoard.ClearAnchor()
			case gameBoard.SelectedTile() != nil:
				gameBoard.ResetSelection()
			default:
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.Select()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				gameBoard.SelectSingle()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		defaults,
		func(gameCfg engine.GameConfig) {
			gameCfg.Seed = flagSeed
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		if !gameBoard.IsFocusMode() {
			ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
		}
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", setupUI.Form(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(defaults)
		if flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	defer gameBoard.Close()
	return app.SetRoot(rootPage, true).Run()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	g, err := engine.NewGame(gameCfg, logger)
	if err != nil {
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
				rootPage.SwitchToPage("setup")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.ConnectGame(g)
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags creates a GameConfig from the configured defaults
// and command-line flags.
func buildGameConfigFromFlags(cmd *cobra.Command) (engine.GameConfig, error) {
	gameCfg := gameDefaults(cfg.Game)
	gameCfg.Seed = flagSeed

	// Override with flags
	if cmd.Flags().Changed("mode") {
		m, err := types.ParseMode(flagMode)
		if err != nil {
			return gameCfg, err
		}
		gameCfg.Mode = m
	}
	if cmd.Flags().Changed("width") {
		gameCfg.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		gameCfg.Height = flagHeight
	}
	if _, err := board.New(gameCfg.Width, gameCfg.Height); err != nil {
		return gameCfg, err
	}
	return gameCfg, nil
}

// gameDefaults lays the settings from the config file over the built-in
// defaults. Unset or invalid entries keep the built-in value.
func gameDefaults(c config.GameConfig) engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	if c.Mode.Valid() {
		gameCfg.Mode = c.Mode
	}
	if c.Width >= board.MinSize && c.Width <= board.MaxSize {
		gameCfg.Width = c.Width
	}
	if c.Height >= board.MinSize && c.Height <= board.MaxSize {
		gameCfg.Height = c.Height
	}
	return gameCfg
}
