package strategy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/board"
	"renate-frame/rules"
	"renate-frame/types"
)

func newBoard(t *testing.T, w, h int) *board.Board {
	t.Helper()
	b, err := board.New(w, h)
	require.NoError(t, err)
	return b
}

// apply claims r for p the way the game engine does.
func apply(b *board.Board, r types.Rect, p types.Player) {
	b.TakeNewlyColored()
	for _, c := range r.Cells() {
		b.Colorize(c.X, c.Y, p)
	}
}

// legalMoves lists every rectangle the second player may claim on b.
func legalMoves(b *board.Board) []types.Rect {
	var moves []types.Rect
	w, h := b.Width(), b.Height()
	add := func(r types.Rect) {
		if rules.Validate(b, r, false) == nil {
			moves = append(moves, r)
		}
	}
	for _, y := range []int{0, h - 1} {
		for x1 := 0; x1 < w; x1++ {
			for x2 := x1; x2 < w; x2++ {
				add(types.NewRect(x1, y, x2, y))
			}
		}
	}
	for _, x := range []int{0, w - 1} {
		for y1 := 0; y1 < h; y1++ {
			for y2 := y1; y2 < h; y2++ {
				if y1 == y2 && (y1 == 0 || y1 == h-1) {
					continue
				}
				add(types.NewRect(x, y1, x, y2))
			}
		}
	}
	return moves
}

// gameTree plays Renate against every possible sequence of opponent moves.
type gameTree struct {
	t    *testing.T
	seen map[string]bool
}

func (g *gameTree) renateMoves(b *board.Board, round int) {
	rect := Renate{}.NextMove(b, round)
	require.NoError(g.t, rules.Validate(b, rect, round == 0), "Renate's %v in round %d on\n%s", rect, round, b)
	apply(b, rect, types.First)
	if b.Finished() {
		return
	}

	key := b.String()
	if g.seen[key] {
		return
	}
	g.seen[key] = true

	moves := legalMoves(b)
	require.NotEmpty(g.t, moves, "no move left on unfinished board\n%s", b)
	for _, m := range moves {
		next := b.Clone()
		apply(next, m, types.Second)
		require.False(g.t, next.Finished(), "opponent won with %v on\n%s", m, b)
		g.renateMoves(next, round+2)
	}
}

func TestRenateWinsEveryGame(t *testing.T) {
	for w := 3; w <= 7; w++ {
		for h := 3; h <= 7; h++ {
			t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
				tree := &gameTree{t: t, seen: map[string]bool{}}
				tree.renateMoves(newBoard(t, w, h), 0)
				assert.NotEmpty(t, tree.seen)
			})
		}
	}
}

func TestRenateOpenings(t *testing.T) {
	tests := []struct {
		w, h int
		want types.Rect
	}{
		{3, 3, types.NewRect(0, 0, 0, 0)},
		{9, 9, types.NewRect(0, 0, 0, 0)},
		{5, 3, types.NewRect(0, 0, 4, 0)},
		{3, 5, types.NewRect(0, 0, 0, 4)},
		{25, 24, types.NewRect(0, 0, 24, 0)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.w, tt.h), func(t *testing.T) {
			assert.Equal(t, tt.want, Renate{}.NextMove(newBoard(t, tt.w, tt.h), 0))
		})
	}
}

func TestRenateMirrorsOnSquare(t *testing.T) {
	b := newBoard(t, 3, 3)
	apply(b, types.NewRect(0, 0, 0, 0), types.First)
	apply(b, types.NewRect(1, 0, 1, 0), types.Second)

	assert.Equal(t, types.NewRect(0, 1, 0, 1), Renate{}.NextMove(b, 2))
	// The board itself is left alone.
	assert.False(t, b.Claimed(0, 1))
	assert.Equal(t, []types.Pos{{X: 1, Y: 0}}, b.NewlyColored())
}

func TestRenateClosesBottomRowOnSquare(t *testing.T) {
	b := newBoard(t, 4, 4)
	apply(b, types.NewRect(0, 0, 0, 0), types.First)
	apply(b, types.NewRect(1, 0, 3, 0), types.Second)
	apply(b, types.NewRect(0, 1, 0, 3), types.First)
	apply(b, types.NewRect(3, 1, 3, 3), types.Second)

	// A mirror would hit the left column; the rest of the bottom row is taken instead.
	assert.Equal(t, types.NewRect(1, 3, 2, 3), Renate{}.NextMove(b, 4))
}

func TestRenateClosesRightColumnOnSquare(t *testing.T) {
	b := newBoard(t, 4, 4)
	apply(b, types.NewRect(0, 0, 0, 0), types.First)
	apply(b, types.NewRect(0, 1, 0, 3), types.Second)
	apply(b, types.NewRect(1, 0, 3, 0), types.First)
	apply(b, types.NewRect(1, 3, 2, 3), types.Second)

	assert.Equal(t, types.NewRect(3, 1, 3, 3), Renate{}.NextMove(b, 4))
}

func TestRenateMirrorsOnWideAndTall(t *testing.T) {
	wide := newBoard(t, 6, 4)
	apply(wide, types.NewRect(0, 0, 5, 0), types.First)
	apply(wide, types.NewRect(0, 1, 0, 1), types.Second)
	assert.Equal(t, types.NewRect(5, 1, 5, 1), Renate{}.NextMove(wide, 2))

	tall := newBoard(t, 4, 6)
	apply(tall, types.NewRect(0, 0, 0, 5), types.First)
	apply(tall, types.NewRect(1, 0, 1, 0), types.Second)
	assert.Equal(t, types.NewRect(1, 5, 1, 5), Renate{}.NextMove(tall, 2))
}

func TestRenateCountdownOnWide(t *testing.T) {
	tests := []struct {
		name     string
		opponent types.Rect
		want     types.Rect
	}{
		// Right side done: bottom cells beyond the left column's reach,
		// then up to the first pair that is free on both ends.
		{"right side taken", types.NewRect(5, 1, 5, 2), types.NewRect(2, 2, 4, 2)},
		{"left side taken", types.NewRect(0, 1, 0, 1), types.NewRect(0, 2, 3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, 6, 3)
			apply(b, types.NewRect(0, 0, 5, 0), types.First)
			apply(b, tt.opponent, types.Second)
			assert.Equal(t, tt.want, Renate{}.NextMove(b, 2))
		})
	}
}
