package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renate-frame/types"
)

// menuWidget is one focus stop on a MenuCard.
type menuWidget interface {
	SetFocused(bool)
	HandleKey(*tcell.EventKey) bool
}

// MenuCard is a styled card container with rounded borders and title.
type MenuCard struct {
	*tview.Box
	title   string
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

// drawCard renders the border, background and title. It returns false when
// the card is too small to hold anything.
func (c *MenuCard) drawCard(screen tcell.Screen) bool {
	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 5 {
		return false
	}

	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	// ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if c.title != "" {
		titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
		accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

		// ■  Title, centered two rows below the top border
		titleX := x + (width-len([]rune(c.title))-3)/2
		titleY := y + 2
		screen.SetContent(titleX, titleY, '■', nil, accentStyle)
		for i, ch := range []rune(c.title) {
			screen.SetContent(titleX+3+i, titleY, ch, nil, titleStyle)
		}
		c.drawDivider(screen, y+4, borderStyle)
	}
	return true
}

func (c *MenuCard) drawDivider(screen tcell.Screen, divY int, style tcell.Style) {
	x, _, width, _ := c.GetInnerRect()
	screen.SetContent(x, divY, '├', nil, style)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, style)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, style)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}

// drawText writes s and returns the column after it.
func drawText(screen tcell.Screen, col, row int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(col, row, ch, nil, style)
		col++
	}
	return col
}

// ModeSelect is a radio group over the game modes. Digits pick a mode
// directly, in menu order.
type ModeSelect struct {
	label    string
	describe func(types.Mode) string
	selected int
	focused  bool
	onChange func(types.Mode)
}

// NewModeSelect creates a mode picker preset to initial.
func NewModeSelect(label string, initial types.Mode, describe func(types.Mode) string, onChange func(types.Mode)) *ModeSelect {
	m := &ModeSelect{label: label, describe: describe, onChange: onChange}
	for i, mode := range types.Modes {
		if mode == initial {
			m.selected = i
		}
	}
	return m
}

// SetFocused sets the focus state.
func (m *ModeSelect) SetFocused(focused bool) {
	m.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (m *ModeSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		m.pick(m.selected - 1)
		return true
	case tcell.KeyDown:
		m.pick(m.selected + 1)
		return true
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'k':
			m.pick(m.selected - 1)
			return true
		case r == 'j':
			m.pick(m.selected + 1)
			return true
		case r >= '1' && r <= '9':
			m.pick(int(r - '1'))
			return true
		}
	}
	return false
}

func (m *ModeSelect) pick(index int) {
	if index < 0 || index >= len(types.Modes) || index == m.selected {
		return
	}
	m.selected = index
	if m.onChange != nil {
		m.onChange(types.Modes[index])
	}
}

// Mode returns the selected mode.
func (m *ModeSelect) Mode() types.Mode {
	return types.Modes[m.selected]
}

// Draw renders the group and returns the number of rows used.
func (m *ModeSelect) Draw(screen tcell.Screen, x, y int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)

	row := y
	screen.SetContent(x, row, '◈', nil, accentStyle)
	drawText(screen, x+2, row, m.label, labelStyle)
	row++

	for i, mode := range types.Modes {
		col := x + 2
		if m.focused && i == m.selected {
			screen.SetContent(col, row, '▸', nil, selectedStyle)
		} else {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
		col += 2

		style := unselectedStyle
		bullet := '○'
		if i == m.selected {
			bullet = '●'
			style = selectedStyle
		}
		screen.SetContent(col, row, bullet, nil, style)
		col = drawText(screen, col+2, row, fmt.Sprintf("%d %s", i+1, mode), style)
		if m.describe != nil {
			drawText(screen, col+1, row, m.describe(mode), hintStyle)
		}
		row++
	}
	return row - y
}

// SizeSlider selects one side of the frame.
type SizeSlider struct {
	label    string
	min      int
	max      int
	step     int
	value    int
	focused  bool
	onChange func(int)
}

// NewSizeSlider creates a slider over min..max. PgUp and PgDn move by step.
func NewSizeSlider(label string, lo, hi, step, initial int, onChange func(int)) *SizeSlider {
	return &SizeSlider{
		label:    label,
		min:      lo,
		max:      hi,
		step:     step,
		value:    min(max(lo, initial), hi),
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (s *SizeSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *SizeSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		s.SetValue(s.value - 1)
	case tcell.KeyRight:
		s.SetValue(s.value + 1)
	case tcell.KeyPgDn:
		s.SetValue(max(s.min, s.value-s.step))
	case tcell.KeyPgUp:
		s.SetValue(min(s.max, s.value+s.step))
	case tcell.KeyHome:
		s.SetValue(s.min)
	case tcell.KeyEnd:
		s.SetValue(s.max)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			s.SetValue(s.value - 1)
		case 'l':
			s.SetValue(s.value + 1)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Draw renders the slider and returns the number of rows used.
func (s *SizeSlider) Draw(screen tcell.Screen, x, y int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	col := x
	if s.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	screen.SetContent(col, y, '◈', nil, accentStyle)
	col = drawText(screen, col+2, y, fmt.Sprintf("%-7s", s.label), labelStyle)

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
	}
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	// One bar segment per size, with a tick every step
	for v := s.min; v <= s.max; v++ {
		char, style := '░', unselectedStyle
		if v <= s.value {
			char, style = '█', selectedStyle
		} else if s.step > 0 && (v-1)%s.step == 0 {
			char = '▒'
		}
		screen.SetContent(col, y, char, nil, style)
		col++
	}
	col++
	col = drawText(screen, col, y, fmt.Sprintf("%2d", s.value), labelStyle)
	screen.SetContent(col+1, y, '▶', nil, arrowStyle)
	return 1
}

// Value returns the current slider value.
func (s *SizeSlider) Value() int {
	return s.value
}

// SetValue sets the slider value. Values outside the range are ignored.
func (s *SizeSlider) SetValue(v int) {
	if v < s.min || v > s.max || v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// MenuButton is a styled button component.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter || (event.Key() == tcell.KeyRune && event.Rune() == ' ') {
		if b.onSelect != nil {
			b.onSelect()
		}
		return true
	}
	return false
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button and returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	if b.focused {
		// Filled pill
		style := tcell.StyleDefault.Foreground(MenuColors.ButtonText).Background(MenuColors.ButtonFocus)
		drawText(screen, x, y, " "+label+" ", style)
	} else {
		dimStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
		bracketStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
		screen.SetContent(x, y, '[', nil, bracketStyle)
		col := drawText(screen, x+1, y, label, dimStyle)
		screen.SetContent(col, y, ']', nil, bracketStyle)
	}
	return b.Width()
}

// Width returns the button width.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}
