package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/board"
	"renate-frame/config"
	"renate-frame/engine"
	"renate-frame/rules"
	"renate-frame/types"
)

func newConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, config.DefaultTheme)
	c.Spacing = 0
	return c, &out
}

func TestSelectMode(t *testing.T) {
	c, out := newConsole("7\n\nyes\n\n2\n")
	m, err := c.SelectMode()
	require.NoError(t, err)
	assert.Equal(t, types.YouVsRandom, m)
	assert.Equal(t, 2, strings.Count(out.String(), "invalid mode (press ENTER to continue and try again)"))
	assert.Contains(t, out.String(), "1) Renate vs. You")
	assert.Contains(t, out.String(), "4) You vs. Your Friend")
}

func TestSelectModeBySlug(t *testing.T) {
	c, _ := newConsole("random-vs-you")
	m, err := c.SelectMode()
	require.NoError(t, err)
	assert.Equal(t, types.RandomVsYou, m)
}

func TestSelectModeEOF(t *testing.T) {
	c, _ := newConsole("")
	_, err := c.SelectMode()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSelectDimensions(t *testing.T) {
	c, out := newConsole("3\n\n30 5\n\n2 4\n\n10 four\n\n10 4\n")
	w, h, err := c.SelectDimensions()
	require.NoError(t, err)
	assert.Equal(t, 10, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 4, strings.Count(out.String(), "invalid dimensions"))
	assert.Contains(t, out.String(), "3<=width<=25 and 3<=height<=25")
}

func TestHRuler(t *testing.T) {
	assert.Equal(t, "   |1    ", hRuler(3))
	assert.Equal(t, "   |1        ", hRuler(5))
	assert.Equal(t, "   |1        |6        |11 ", hRuler(12))
}

func TestVRuler(t *testing.T) {
	pre, suf := vRuler(0)
	assert.Equal(t, " 1-", pre)
	assert.Equal(t, "-1", suf)

	pre, suf = vRuler(3)
	assert.Equal(t, "   ", pre)
	assert.Empty(t, suf)

	pre, suf = vRuler(10)
	assert.Equal(t, "11-", pre)
	assert.Equal(t, "-11", suf)
}

func TestRender(t *testing.T) {
	b, err := board.New(5, 3)
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		b.Colorize(x, 0, types.First)
	}

	c, out := newConsole("")
	c.Render(b, types.RenateVsYou)
	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, `RenateErhardGame (mode "Renate vs. You")`, lines[0])
	assert.Equal(t, " 1-■ ■ ■ ■ ■-1", lines[2])
	assert.Equal(t, "   ■       ■", lines[3])
	assert.Equal(t, "   ■ ■ ■ ■ ■", lines[4])
}

func TestNextMoveParsesInput(t *testing.T) {
	b, err := board.New(4, 4)
	require.NoError(t, err)
	b.Colorize(0, 0, types.First)
	turn := engine.Turn{Board: b, Player: types.Second, Round: 1, Mode: types.RenateVsYou}

	c, out := newConsole("2 1 4 1\nnope\n")
	r, err := c.NextMove(context.Background(), turn)
	require.NoError(t, err)
	assert.Equal(t, types.NewRect(1, 0, 3, 0), r)
	assert.Contains(t, out.String(), "Why did Renate only color one cell in the corner? Let's find out by making your first move!")
	assert.Contains(t, out.String(), `(The expected format is "<x1> <y1> <x2> <y2>")`)

	_, err = c.NextMove(context.Background(), turn)
	assert.ErrorIs(t, err, rules.ErrMalformedInput)

	_, err = c.NextMove(context.Background(), turn)
	assert.ErrorIs(t, err, io.EOF)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.NextMove(ctx, turn)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayAgainstRenate(t *testing.T) {
	g, err := engine.NewGame(engine.GameConfig{Mode: types.RenateVsYou, Width: 3, Height: 3}, nil)
	require.NoError(t, err)

	c, out := newConsole(strings.Join([]string{
		"a b c", "",
		"2 1 2 1",
		"3 3 3 3", "",
		"3 1 3 1",
		"3 2 3 2",
	}, "\n") + "\n")
	res, err := c.Play(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, types.First, res.Winner)
	assert.Equal(t, 7, res.Rounds)
	s := out.String()
	assert.Contains(t, s, "malformed input (press ENTER to continue and try again)")
	assert.Contains(t, s, "uncolored area not coherent (press ENTER to continue and try again)")
	assert.Contains(t, s, "Renate colored 1 cell(s).")
	assert.True(t, strings.HasSuffix(s, "Sorry, but Renate wins (once again)!\n"))
}

func TestPlayStopsAtEndOfInput(t *testing.T) {
	g, err := engine.NewGame(engine.GameConfig{Mode: types.YouVsFriend, Width: 4, Height: 3}, nil)
	require.NoError(t, err)
	c, _ := newConsole("1 1 4 1\n")
	_, err = c.Play(context.Background(), g)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, g.Round())
}
