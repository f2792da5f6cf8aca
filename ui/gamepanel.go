package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renate-frame/board"
	"renate-frame/engine"
	"renate-frame/present"
	"renate-frame/types"
)

// maxVisibleMoves is the length of the move list before it scrolls.
const maxVisibleMoves = 12

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box *tview.TextView

	mu       sync.Mutex
	mode     types.Mode
	snapshot *board.Board
	moves    []engine.MoveRecord
	colors   [3]tcell.Color // Indexed by types.Player
}

// NewGameInfoPanel creates a new game info panel. first and second color the
// moves of each side.
func NewGameInfoPanel(first, second tcell.Color) *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}
	panel.colors[types.First] = first
	panel.colors[types.Second] = second

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetGame shows a new game, replacing the move history.
func (p *GameInfoPanel) SetGame(g *engine.Game) {
	p.mu.Lock()
	p.mode = g.Mode()
	p.snapshot = g.Snapshot()
	p.moves = g.History()
	p.mu.Unlock()
	p.refresh()
}

// AddMove appends a move and shows the board after it.
func (p *GameInfoPanel) AddMove(move engine.MoveRecord, snapshot *board.Board) {
	p.mu.Lock()
	p.moves = append(p.moves, move)
	p.snapshot = snapshot
	p.mu.Unlock()
	p.refresh()
}

// Text returns the panel contents with tview color tags.
func (p *GameInfoPanel) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snapshot == nil {
		return ""
	}

	var text strings.Builder

	// Game Info section
	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]────────────────────────────[-:-:-]\n")
	fmt.Fprintf(&text, "[white]Mode:[-:-:-] %s\n", tview.Escape(p.mode.String()))
	fmt.Fprintf(&text, "[white]Frame:[-:-:-] %d x %d\n", p.snapshot.Width(), p.snapshot.Height())
	fmt.Fprintf(&text, "[white]Round:[-:-:-] %d\n", len(p.moves))
	fmt.Fprintf(&text, "[white]Colored:[-:-:-] %d / %d\n", p.snapshot.ClaimedCount(), p.snapshot.TotalCellCount())
	for _, side := range []types.Player{types.First, types.Second} {
		fmt.Fprintf(&text, "[%s]%s:[-:-:-] %d\n", colorTag(p.colors[side]), present.SideName(p.mode, side), p.snapshot.ClaimedBy(side))
	}

	if len(p.moves) == 0 {
		return text.String()
	}

	text.WriteString("\n[white::b]Moves[-:-:-]\n")
	text.WriteString("[dimgray]────────────────────────────[-:-:-]\n")

	// Show last N moves that fit, with scroll
	start := 0
	if len(p.moves) > maxVisibleMoves {
		start = len(p.moves) - maxVisibleMoves
	}
	for i := start; i < len(p.moves); i++ {
		m := p.moves[i]
		marker := " "
		if i == len(p.moves)-1 {
			marker = "[white]>[-]"
		}
		fmt.Fprintf(&text, "%s[%s]%s[-]\n", marker, colorTag(p.colors[m.Player]), tview.Escape(present.MoveText(p.mode, m)))
	}
	if start > 0 {
		fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text.String()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.Text())
}

// colorTag formats c for a tview color tag.
func colorTag(c tcell.Color) string {
	if hex := c.Hex(); hex >= 0 {
		return fmt.Sprintf("#%06x", hex)
	}
	return "white"
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *FrameBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *FrameBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel(board.styles[1], board.styles[2])

	// Store panel reference in board for updates
	board.mu.Lock()
	board.infoPanel = infoPanel
	game := board.game
	board.mu.Unlock()
	if game != nil {
		infoPanel.SetGame(game)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)                 // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), panelWidth, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, hintRows, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *FrameBoardUI) {
	gameFrame.Clear()

	// Calculate board dimensions
	boardWidth := 9*2 + boardLeft
	boardHeight := 9 + 1
	if b := board.Snapshot(); b != nil {
		boardWidth = b.Width()*2 + boardLeft // 2 chars per cell + row numbers
		boardHeight = b.Height() + 1         // + column numbers
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
