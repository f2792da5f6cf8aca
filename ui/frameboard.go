// Package ui specifies custom controls for tview to play on the rectangle frame in the terminal.
package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renate-frame/board"
	"renate-frame/config"
	"renate-frame/engine"
	"renate-frame/present"
	"renate-frame/types"
)

// Board drawing offsets: two columns of row numbers plus a gap on the left,
// one row of column numbers below.
const (
	boardLeft   = 4
	rulerEvery  = 5
	panelWidth  = 30
	hintRows    = 4
	noSelection = -1
)

type FrameBoardUI struct {
	Box    *tview.Box
	hint   *tview.TextView
	cfg    *config.Config
	app    *tview.Application
	styles []tcell.Color

	game   *engine.Game
	input  *MoveInput
	cancel context.CancelFunc

	mu        sync.Mutex
	infoPanel *GameInfoPanel
	focusMode bool
	snapshot  *board.Board
	turn      *engine.Turn // non-nil while a human move is awaited
	lastErr   string
	result    *engine.Result
	failure   error
	selX      int
	selY      int
	anchor    *types.Pos
}

// NewFrameBoard creates the board widget. app may be nil in tests.
func NewFrameBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *FrameBoardUI {
	fb := &FrameBoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		app:  app,
		selX: noSelection,
		selY: noSelection,
	}
	fb.SetConfig(c)
	fb.Box.SetDrawFunc(fb.draw)
	return fb
}

func (g *FrameBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.Empty),        // 0
		tcell.PaletteColor(c.Theme.Colors.First),        // 1
		tcell.PaletteColor(c.Theme.Colors.Second),       // 2
		tcell.PaletteColor(c.Theme.Colors.Empty),        // 3
		tcell.PaletteColor(c.Theme.Colors.FirstOld),     // 4
		tcell.PaletteColor(c.Theme.Colors.SecondOld),    // 5
		tcell.PaletteColor(c.Theme.Colors.SelectionBG),  // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.Ruler),        // 9
	}
	g.cfg = c
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *FrameBoardUI) ToggleFocusMode() bool {
	g.mu.Lock()
	g.focusMode = !g.focusMode
	enabled := g.focusMode
	g.mu.Unlock()
	g.refreshHint()
	return enabled
}

// SetFocusMode sets focus mode to the given state.
func (g *FrameBoardUI) SetFocusMode(enabled bool) {
	g.mu.Lock()
	g.focusMode = enabled
	g.mu.Unlock()
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *FrameBoardUI) IsFocusMode() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.focusMode
}

// Snapshot returns the board as last drawn.
func (g *FrameBoardUI) Snapshot() *board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot
}

// SelectedTile returns the cursor position, or nil when there is no cursor.
func (g *FrameBoardUI) SelectedTile() *types.Pos {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectedTileLocked()
}

func (g *FrameBoardUI) selectedTileLocked() *types.Pos {
	if g.selX == noSelection && g.selY == noSelection {
		return nil
	}
	return &types.Pos{X: g.selX, Y: g.selY}
}

// Selection returns the rectangle between the anchor and the cursor.
func (g *FrameBoardUI) Selection() (types.Rect, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectionLocked()
}

func (g *FrameBoardUI) selectionLocked() (types.Rect, bool) {
	sel := g.selectedTileLocked()
	if sel == nil {
		return types.Rect{}, false
	}
	if g.anchor == nil {
		return types.NewRect(sel.X, sel.Y, sel.X, sel.Y), true
	}
	return types.NewRect(g.anchor.X, g.anchor.Y, sel.X, sel.Y), true
}

func (g *FrameBoardUI) MoveSelection(h, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.snapshot == nil || g.result != nil {
		g.resetSelectionLocked()
		return
	}
	if g.selectedTileLocked() == nil {
		// Start at the end of the last move, or the top-left corner
		g.selX, g.selY = 0, 0
		if history := g.game.History(); len(history) > 0 {
			last := history[len(history)-1].Rect
			g.selX, g.selY = last.X2, last.Y2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.snapshot.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.snapshot.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

// ResetSelection removes the cursor and the anchor.
func (g *FrameBoardUI) ResetSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetSelectionLocked()
}

func (g *FrameBoardUI) resetSelectionLocked() {
	g.selX = noSelection
	g.selY = noSelection
	g.anchor = nil
}

// HasAnchor returns true once the first corner of a rectangle is set.
func (g *FrameBoardUI) HasAnchor() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.anchor != nil
}

// ClearAnchor drops the first corner and keeps the cursor.
func (g *FrameBoardUI) ClearAnchor() {
	g.mu.Lock()
	g.anchor = nil
	g.mu.Unlock()
	g.refreshHint()
}

// Select sets the first corner at the cursor, or submits the rectangle
// between the first corner and the cursor when one is set.
func (g *FrameBoardUI) Select() {
	g.mu.Lock()
	sel := g.selectedTileLocked()
	if sel == nil || g.turn == nil || g.result != nil {
		g.mu.Unlock()
		return
	}
	if g.anchor == nil {
		g.anchor = sel
		g.mu.Unlock()
		g.refreshHint()
		return
	}
	g.mu.Unlock()
	g.SelectSingle()
}

// SelectSingle submits the current selection right away.
func (g *FrameBoardUI) SelectSingle() {
	g.mu.Lock()
	r, ok := g.selectionLocked()
	if !ok || g.turn == nil || g.result != nil {
		g.mu.Unlock()
		return
	}
	g.anchor = nil
	g.lastErr = ""
	// The game asks again through onTurn, which needs the lock.
	if g.input != nil && g.input.Submit(r) {
		g.turn = nil
	} else {
		g.lastErr = "not your turn"
	}
	g.mu.Unlock()
	g.refreshHint()
}

// ConnectGame shows g on the board and starts playing it. Human moves are
// taken from the board selection.
func (g *FrameBoardUI) ConnectGame(game *engine.Game) {
	g.Close()

	input := NewMoveInput(func(turn engine.Turn) {
		g.mu.Lock()
		if g.game != game {
			g.mu.Unlock()
			return
		}
		g.turn = &turn
		g.mu.Unlock()
		g.refresh()
	})

	g.mu.Lock()
	g.game = game
	g.input = input
	g.snapshot = game.Snapshot()
	g.turn = nil
	g.lastErr = ""
	g.result = nil
	g.failure = nil
	g.resetSelectionLocked()
	panel := g.infoPanel
	g.mu.Unlock()
	if panel != nil {
		panel.SetGame(game)
	}

	// Callbacks of a replaced game may still arrive; they are dropped.
	game.OnMove(func(move engine.MoveRecord, snapshot *board.Board) {
		g.mu.Lock()
		if g.game != game {
			g.mu.Unlock()
			return
		}
		g.snapshot = snapshot
		g.turn = nil
		panel := g.infoPanel
		g.mu.Unlock()
		if panel != nil {
			panel.AddMove(move, snapshot)
		}
		g.refresh()
	})

	game.OnReject(func(_ engine.Turn, err error) {
		g.mu.Lock()
		if g.game != game {
			g.mu.Unlock()
			return
		}
		g.lastErr = present.RejectionText(err)
		g.mu.Unlock()
		g.refresh()
	})

	game.OnGameEnd(func(res engine.Result) {
		g.mu.Lock()
		if g.game != game {
			g.mu.Unlock()
			return
		}
		g.result = &res
		g.turn = nil
		g.resetSelectionLocked()
		g.mu.Unlock()
		g.refresh()
	})

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	go func() {
		_, err := game.Play(ctx, input)
		if err != nil && !errors.Is(err, context.Canceled) {
			g.mu.Lock()
			if g.game != game {
				g.mu.Unlock()
				return
			}
			g.failure = err
			g.turn = nil
			g.mu.Unlock()
			g.refresh()
		}
	}()
	g.refreshHint()
}

// Close stops the running game, if any.
func (g *FrameBoardUI) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// WaitingForMove returns true while the game waits for a human move.
func (g *FrameBoardUI) WaitingForMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn != nil
}

// IsFinished returns true if the game is over.
func (g *FrameBoardUI) IsFinished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result != nil
}

// refresh updates the hint and redraws. Callbacks arrive on the game's
// goroutine, so the draw is queued from a new one.
func (g *FrameBoardUI) refresh() {
	g.refreshHint()
	if g.app != nil {
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	}
}

// HintText returns the status shown below the board.
func (g *FrameBoardUI) HintText() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.focusMode {
		return "  f to toggle"
	}
	if g.failure != nil {
		return fmt.Sprintf("  [red]%s[-]\n\n  q · return to menu", tview.Escape(g.failure.Error()))
	}
	if g.result != nil {
		return fmt.Sprintf("  ───────── Game Complete ─────────\n  %s\n\n  q · return to menu", present.ResultText(*g.result))
	}
	if g.game == nil {
		return ""
	}

	var statusLine, turnLine string
	if g.turn != nil {
		last, next := present.TurnInfo(*g.turn)
		if last != "" {
			statusLine = "  " + last + "\n"
		}
		turnLine = "  " + next
		if g.anchor != nil {
			turnLine += fmt.Sprintf("  (from %d,%d)", g.anchor.X+1, g.anchor.Y+1)
		}
	} else if name := g.game.StrategyName(g.game.ActivePlayer()); name != "" {
		turnLine = fmt.Sprintf("  ◌ %s is thinking...", name)
	}
	if g.lastErr != "" {
		turnLine += fmt.Sprintf("  [red]%s[-]", g.lastErr)
	}

	controlsLine := "\n  hjkl/↑↓←→ move   ⏎ corner/claim   space claim   esc clear   f focus   q quit"
	return statusLine + turnLine + controlsLine
}

func (g *FrameBoardUI) refreshHint() {
	if g.hint == nil {
		return
	}
	g.hint.SetText(g.HintText())
}

func (g *FrameBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := g.snapshot
	if b == nil {
		return x, y, 1, 1
	}
	sel, hasSel := g.selectionLocked()
	cursor := g.selectedTileLocked()

	for by := 0; by < b.Height(); by++ {
		for bx := 0; bx < b.Width(); bx++ {
			cell := b.Get(bx, by)
			if cell.State == types.OffFrame {
				continue
			}
			// 2 characters per cell for square appearance
			drawRune := g.cfg.Theme.Symbols.Cell
			fg := g.styles[0]
			if cell.State == types.Claimed {
				i := int(cell.Owner)
				if !b.IsNewlyColored(bx, by) {
					i += 3
				}
				fg = g.styles[i]
			}
			style := tcell.StyleDefault.Foreground(fg)
			switch {
			case cursor != nil && bx == cursor.X && by == cursor.Y:
				if g.cfg.Theme.DrawCursorBackground {
					style = style.Background(g.styles[8])
				} else {
					drawRune = g.cfg.Theme.Symbols.Cursor
				}
			case hasSel && g.anchor != nil && sel.Contains(bx, by):
				style = style.Background(g.styles[6])
			case g.cfg.Theme.DrawLastPlayedBackground && b.IsNewlyColored(bx, by):
				style = style.Background(g.styles[7])
			}
			drawCell(screen, style, drawRune, bx, by, x+boardLeft, y)
		}
	}
	g.drawRulers(screen, x, y, b, cursor)
	// Add offset for coordinate display
	return x, y, b.Width()*2 + boardLeft, b.Height() + 1
}

// drawCell draws a cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, tcell.StyleDefault)
}

// drawRulers numbers every row on the left and every fifth column below,
// 1-indexed like the move notation.
func (g *FrameBoardUI) drawRulers(s tcell.Screen, x, y int, b *board.Board, cursor *types.Pos) {
	style := tcell.StyleDefault.Foreground(g.styles[9])
	highlight := tcell.StyleDefault.Background(g.styles[8])

	for ix := 0; ix < b.Width(); ix++ {
		onCursor := cursor != nil && ix == cursor.X
		if ix%rulerEvery != 0 && !onCursor {
			continue
		}
		_style := style
		if onCursor {
			_style = highlight
		}
		label := []rune(fmt.Sprint(ix + 1))
		for i, r := range label {
			s.SetContent(x+boardLeft+ix*2+i, y+b.Height(), r, nil, _style)
		}
	}

	for iy := 0; iy < b.Height(); iy++ {
		_style := style
		if cursor != nil && iy == cursor.Y {
			_style = highlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+iy, tensRune, nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+(displayNum%10)), nil, _style)
	}
}
