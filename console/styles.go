package console

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"renate-frame/config"
	"renate-frame/types"
)

// styles holds the lipgloss styles derived from a theme. They are bound to a
// renderer on the console's output, so colors are dropped when it is no terminal.
type styles struct {
	title       lipgloss.Style
	menu        lipgloss.Style
	information lipgloss.Style
	err         lipgloss.Style
	ruler       lipgloss.Style
	empty       lipgloss.Style
	fresh       [3]lipgloss.Style // Indexed by types.Player
	old         [3]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, theme config.Theme) styles {
	fg := func(c int) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c)))
	}
	c := theme.Colors
	s := styles{
		title:       fg(c.Title).Bold(true),
		menu:        fg(c.Menu),
		information: fg(c.Information),
		err:         fg(c.Error),
		ruler:       fg(c.Ruler),
		empty:       fg(c.Empty),
	}
	s.fresh[types.First] = fg(c.First)
	s.fresh[types.Second] = fg(c.Second)
	s.old[types.First] = fg(c.FirstOld)
	s.old[types.Second] = fg(c.SecondOld)
	return s
}

// player returns the style for messages by or about p.
func (s styles) player(p types.Player) lipgloss.Style {
	return s.fresh[p]
}
