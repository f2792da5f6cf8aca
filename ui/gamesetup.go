package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renate-frame/board"
	"renate-frame/engine"
	"renate-frame/present"
	"renate-frame/types"
)

const (
	setupHelp   = "Tab/Shift+Tab: next field  |  ↑↓ or 1-4: mode  |  ←→ PgUp/PgDn: size  |  Enter: confirm"
	setupWidth  = 66
	setupHeight = 18
)

// GameSetupUI is the new game card: mode, frame size and the menu buttons.
type GameSetupUI struct {
	card     *setupCard
	flex     *tview.Flex
	help     *tview.TextView
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	modes   *ModeSelect
	width   *SizeSlider
	height  *SizeSlider
	buttons []*MenuButton
	widgets []menuWidget
	focus   int
}

// NewGameSetup creates the setup card preset to defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel, onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
	}

	setup.modes = NewModeSelect("Mode", defaults.Mode, modeHint, nil)
	setup.width = NewSizeSlider("Width", board.MinSize, board.MaxSize, 5, defaults.Width, nil)
	setup.height = NewSizeSlider("Height", board.MinSize, board.MaxSize, 5, defaults.Height, nil)
	setup.buttons = []*MenuButton{
		NewMenuButton("Start Game", true, setup.start),
		NewMenuButton("Colors", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, func() {
			onCancel()
		}),
	}
	setup.widgets = []menuWidget{setup.modes, setup.width, setup.height}
	for _, b := range setup.buttons {
		setup.widgets = append(setup.widgets, b)
	}
	setup.setFocus(0)

	setup.card = &setupCard{MenuCard: NewMenuCard(present.Title), setup: setup}

	setup.help = tview.NewTextView().
		SetText(setupHelp).
		SetTextAlign(tview.AlignCenter)
	setup.help.SetTextColor(MenuColors.Hint)

	// Card centered on screen, help line at the bottom
	row := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(setup.card, setupWidth, 0, true).
		AddItem(nil, 0, 1, false)
	setup.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, setupHeight, 0, true).
		AddItem(nil, 0, 1, false).
		AddItem(setup.help, 1, 0, false)
	return setup
}

// modeHint says who moves first in m.
func modeHint(m types.Mode) string {
	if m == types.YouVsFriend {
		return "(two players)"
	}
	return "(" + present.SideName(m, types.First) + " starts)"
}

// Config returns the game configuration selected so far.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{
		Mode:   s.modes.Mode(),
		Width:  s.width.Value(),
		Height: s.height.Value(),
	}
}

func (s *GameSetupUI) start() {
	s.onStart(s.Config())
}

func (s *GameSetupUI) setFocus(i int) {
	n := len(s.widgets)
	s.focus = ((i % n) + n) % n
	for j, w := range s.widgets {
		w.SetFocused(j == s.focus)
	}
}

// handleKey moves between fields on Tab and hands every other key to the
// focused field. Left and Right also step along the button row.
func (s *GameSetupUI) handleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab:
		s.setFocus(s.focus + 1)
		return true
	case tcell.KeyBacktab:
		s.setFocus(s.focus - 1)
		return true
	}
	if s.widgets[s.focus].HandleKey(event) {
		return true
	}
	first := len(s.widgets) - len(s.buttons)
	if s.focus >= first {
		switch event.Key() {
		case tcell.KeyLeft:
			s.setFocus(max(first, s.focus-1))
			return true
		case tcell.KeyRight:
			s.setFocus(min(len(s.widgets)-1, s.focus+1))
			return true
		}
	}
	return false
}

// Form returns the flex container with the card and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the card.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.card.SetInputCapture(capture)
}

// setupCard draws the setup widgets on a MenuCard and routes keys to them.
type setupCard struct {
	*MenuCard
	setup *GameSetupUI
}

func (c *setupCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)
	if !c.drawCard(screen) {
		return
	}
	x, y, _, _ := c.GetInnerRect()
	s := c.setup

	row := y + 6
	row += s.modes.Draw(screen, x+3, row) + 1
	row += s.width.Draw(screen, x+3, row)
	row += s.height.Draw(screen, x+3, row) + 1

	col := x + 5
	for _, b := range s.buttons {
		col += b.Draw(screen, col, row) + 2
	}
}

func (c *setupCard) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return c.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		c.setup.handleKey(event)
	})
}

func (c *setupCard) Focus(delegate func(p tview.Primitive)) {
	c.SetFocused(true)
	c.Box.Focus(delegate)
}

func (c *setupCard) Blur() {
	c.SetFocused(false)
	c.Box.Blur()
}
