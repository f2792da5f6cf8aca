package console

import (
	"fmt"
	"strings"

	"renate-frame/board"
	"renate-frame/present"
	"renate-frame/types"
)

const (
	rulerDist  = 5
	rulerWidth = 3
)

// hRuler labels every fifth column, 1-indexed. Each cell is two characters wide.
func hRuler(width int) string {
	var sb strings.Builder
	for sb.Len() < width*2 {
		if sb.Len()%rulerDist == 0 {
			fmt.Fprintf(&sb, "|%d", sb.Len()/2+1)
		} else {
			sb.WriteByte(' ')
		}
		if sb.Len()%2 == 1 {
			sb.WriteByte(' ')
		}
	}
	return strings.Repeat(" ", rulerWidth) + sb.String()
}

// vRuler returns the text before and after row y. Every fifth row is labelled
// with its 1-indexed number on both sides.
func vRuler(y int) (pre, suf string) {
	if y%rulerDist == 0 {
		pre = fmt.Sprintf("%d-", y+1)
		suf = fmt.Sprintf("-%d", y+1)
	}
	return fmt.Sprintf("%*s", rulerWidth, pre), suf
}

func (c *Console) cell(b *board.Board, x, y int) string {
	cell := b.Get(x, y)
	switch cell.State {
	case types.Empty:
		return c.styles.empty.Render(string(c.symbol))
	case types.Claimed:
		if b.IsNewlyColored(x, y) {
			return c.styles.fresh[cell.Owner].Render(string(c.symbol))
		}
		return c.styles.old[cell.Owner].Render(string(c.symbol))
	}
	return " "
}

// Render writes the title line and the board with rulers.
func (c *Console) Render(b *board.Board, mode types.Mode) {
	c.space()
	fmt.Fprintln(c.out, c.styles.title.Render(present.Title), c.styles.menu.Render(fmt.Sprintf("(mode %q)", mode.String())))

	ruler := c.styles.ruler.Render(hRuler(b.Width()))
	fmt.Fprintln(c.out, ruler)
	for y := 0; y < b.Height(); y++ {
		cells := make([]string, b.Width())
		for x := range cells {
			cells[x] = c.cell(b, x, y)
		}
		pre, suf := vRuler(y)
		fmt.Fprintln(c.out, c.styles.ruler.Render(pre)+strings.Join(cells, " ")+c.styles.ruler.Render(suf))
	}
	fmt.Fprintln(c.out, ruler)
}
