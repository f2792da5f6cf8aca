// Package console is the line-oriented frontend. It asks for the mode, the
// frame size and every move on a plain text stream, which also makes it
// usable from pipes and scripts.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"renate-frame/board"
	"renate-frame/config"
	"renate-frame/engine"
	"renate-frame/present"
	"renate-frame/types"
)

// Console reads answers from in and writes screens to out.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
	symbol rune

	// Spacing is the number of blank lines printed before each screen.
	Spacing int
}

// New returns a console for the given streams and theme.
func New(in io.Reader, out io.Writer, theme config.Theme) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		styles:  newStyles(lipgloss.NewRenderer(out), theme),
		symbol:  theme.Symbols.Cell,
		Spacing: 50,
	}
}

func (c *Console) space() {
	fmt.Fprint(c.out, strings.Repeat("\n", c.Spacing))
}

// readLine returns the next line without its line ending. A last line
// without newline is returned as well; io.EOF means there is nothing left.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) prompt() (string, error) {
	fmt.Fprint(c.out, c.styles.menu.Render("=> "))
	return c.readLine()
}

// ShowError prints msg and waits for ENTER.
func (c *Console) ShowError(msg string) {
	fmt.Fprintln(c.out, c.styles.err.Render(msg+" (press ENTER to continue and try again)"))
	_, _ = c.readLine()
}

// SelectMode asks until a mode is chosen by number or name.
func (c *Console) SelectMode() (types.Mode, error) {
	for {
		c.space()
		fmt.Fprintln(c.out, c.styles.menu.Render("~Which mode do you want to play in?~"))
		for i, m := range types.Modes {
			fmt.Fprintln(c.out, c.styles.information.Render(fmt.Sprintf("%d)", i+1)), m.String())
		}
		answer, err := c.prompt()
		if err != nil {
			return 0, err
		}
		if m, err := types.ParseMode(answer); err == nil {
			return m, nil
		}
		c.ShowError("invalid mode")
	}
}

// SelectDimensions asks until a valid "<width> <height>" is given.
func (c *Console) SelectDimensions() (width, height int, err error) {
	for {
		c.space()
		fmt.Fprintln(c.out, c.styles.menu.Render("~Which size do you want the rectangle frame to be?~"))
		fmt.Fprintln(c.out, c.styles.information.Render(`(The expected format is "<width> <height>")`))
		fmt.Fprintln(c.out, c.styles.information.Render(fmt.Sprintf(
			"(Both dimensions should be positive integers with %d<=width<=%d and %d<=height<=%d)",
			board.MinSize, board.MaxSize, board.MinSize, board.MaxSize)))
		answer, err := c.prompt()
		if err != nil {
			return 0, 0, err
		}
		if w, h, ok := parseDimensions(answer); ok {
			return w, h, nil
		}
		c.ShowError("invalid dimensions")
	}
}

func parseDimensions(s string) (int, int, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	if w < board.MinSize || w > board.MaxSize || h < board.MinSize || h > board.MaxSize {
		return 0, 0, false
	}
	return w, h, true
}

// NextMove shows the board and reads the move of a human player.
// It implements engine.MoveSource.
func (c *Console) NextMove(ctx context.Context, turn engine.Turn) (types.Rect, error) {
	if err := ctx.Err(); err != nil {
		return types.Rect{}, err
	}
	c.Render(turn.Board, turn.Mode)

	last, next := present.TurnInfo(turn)
	var parts []string
	if last != "" {
		parts = append(parts, c.styles.player(turn.Player.Opponent()).Render(last))
	}
	parts = append(parts, c.styles.player(turn.Player).Render(next))
	fmt.Fprintln(c.out, strings.Join(parts, " "))
	fmt.Fprintln(c.out, c.styles.information.Render(`(The expected format is "<x1> <y1> <x2> <y2>")`))

	answer, err := c.prompt()
	if err != nil {
		return types.Rect{}, err
	}
	return engine.ParseMove(answer)
}

// ShowRejection explains why a move was not accepted.
func (c *Console) ShowRejection(_ engine.Turn, err error) {
	c.ShowError(present.RejectionText(err))
}

// ShowResult shows the final board and the winner.
func (c *Console) ShowResult(res engine.Result) {
	c.Render(res.Board, res.Mode)
	fmt.Fprintln(c.out, c.styles.player(res.Winner).Render(present.ResultText(res)))
}

// Play runs g to the end with this console as the human players' input.
func (c *Console) Play(ctx context.Context, g *engine.Game) (engine.Result, error) {
	g.OnReject(c.ShowRejection)
	res, err := g.Play(ctx, c)
	if err != nil {
		return res, err
	}
	c.ShowResult(res)
	return res, nil
}
