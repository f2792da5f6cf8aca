package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renate-frame/board"
	"renate-frame/config"
	"renate-frame/types"
)

// ColorConfigUI lets the players pick their cell colors with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	save      func() error
	sample    *board.Board

	// Current selection
	selectedFirst  int
	selectedSecond int
	editingSecond  bool
	saveErr        error
}

type paletteColor struct {
	code int
	name string
}

// Each entry pairs a bright color for fresh claims with a dimmer one for old claims.
var playerColors = []struct {
	paletteColor
	old int
}{
	{paletteColor{2, "Green"}, 10},
	{paletteColor{4, "Blue"}, 12},
	{paletteColor{1, "Red"}, 9},
	{paletteColor{5, "Magenta"}, 13},
	{paletteColor{6, "Cyan"}, 14},
	{paletteColor{3, "Yellow"}, 11},
	{paletteColor{208, "Orange"}, 214},
	{paletteColor{93, "Purple"}, 141},
	{paletteColor{28, "Forest"}, 71},
	{paletteColor{160, "Crimson"}, 203},
}

// NewColorConfig creates the color screen. onDone is called once both
// colors are chosen and saved.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:            cfg,
		onDone:         onDone,
		save:           cfg.Save,
		selectedFirst:  cfg.Theme.Colors.First,
		selectedSecond: cfg.Theme.Colors.Second,
		sample:         previewBoard(),
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(playerColors) {
			return
		}
		if cc.editingSecond {
			cc.selectedSecond = playerColors[index].code
		} else {
			cc.selectedFirst = playerColors[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(playerColors) {
			return
		}
		c := playerColors[index]
		if !cc.editingSecond {
			cc.cfg.Theme.Colors.First = c.code
			cc.cfg.Theme.Colors.FirstOld = c.old
			cc.editingSecond = true
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.Second = c.code
		cc.cfg.Theme.Colors.SecondOld = c.old
		cc.saveErr = cc.save()
		cc.editingSecond = false
		cc.populateColorList()
		if cc.saveErr == nil {
			cc.onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// previewBoard is a small frame with older and fresh claims of both sides.
func previewBoard() *board.Board {
	b, _ := board.New(6, 4)
	for x := 0; x < 6; x++ {
		b.Colorize(x, 0, types.First)
	}
	b.Colorize(5, 1, types.Second)
	b.Colorize(5, 2, types.Second)
	b.TakeNewlyColored()
	for x := 1; x < 5; x++ {
		b.Colorize(x, 3, types.First)
	}
	return b
}

// populateColorList fills the list for the side being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedFirst
	cc.colorList.SetTitle(" First player color (Tab: second) ")
	if cc.editingSecond {
		selected = cc.selectedSecond
		cc.colorList.SetTitle(" Second player color (Tab: first) ")
	}
	for i, c := range playerColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range playerColors {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// oldShade returns the dimmer partner of a palette color.
func oldShade(code, fallback int) int {
	for _, c := range playerColors {
		if c.code == code {
			return c.old
		}
	}
	return fallback
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	b := cc.sample
	if width < b.Width()*2+boardLeft+2 || height < b.Height()+4 {
		return x, y, width, height
	}
	colors := cc.cfg.Theme.Colors
	fresh := [3]tcell.Color{
		types.First:  tcell.PaletteColor(cc.selectedFirst),
		types.Second: tcell.PaletteColor(cc.selectedSecond),
	}
	old := [3]tcell.Color{
		types.First:  tcell.PaletteColor(oldShade(cc.selectedFirst, colors.FirstOld)),
		types.Second: tcell.PaletteColor(oldShade(cc.selectedSecond, colors.SecondOld)),
	}

	startX := x + 2
	startY := y + 1
	for by := 0; by < b.Height(); by++ {
		for bx := 0; bx < b.Width(); bx++ {
			cell := b.Get(bx, by)
			if cell.State == types.OffFrame {
				continue
			}
			fg := tcell.PaletteColor(colors.Empty)
			if cell.State == types.Claimed {
				fg = old[cell.Owner]
				if b.IsNewlyColored(bx, by) {
					fg = fresh[cell.Owner]
				}
			}
			drawCell(screen, tcell.StyleDefault.Foreground(fg), cc.cfg.Theme.Symbols.Cell, bx, by, startX, startY)
		}
	}

	info := fmt.Sprintf("First: %d  Second: %d", cc.selectedFirst, cc.selectedSecond)
	infoStyle := tcell.StyleDefault
	if cc.saveErr != nil {
		info = "Save failed: " + cc.saveErr.Error()
		infoStyle = infoStyle.Foreground(MenuColors.ErrorText)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+b.Height()+1, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between editing the first and the second color.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingSecond = !cc.editingSecond
	cc.populateColorList()
}
