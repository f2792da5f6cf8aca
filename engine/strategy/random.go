package strategy

import (
	"math/rand/v2"

	"renate-frame/board"
	"renate-frame/types"
)

// Random picks a random frame cell and a random direction around the frame.
// On the opening move it claims a random run from there; later it first walks
// to the border between claimed and unclaimed cells in that direction.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name implements Strategy.
func (r *Random) Name() string {
	return "Random"
}

// NextMove implements Strategy.
func (r *Random) NextMove(b *board.Board, round int) types.Rect {
	start := r.frameCell(b)
	clockwise := r.rng.IntN(2) == 0
	if round != 0 {
		start = frontier(b, start, clockwise)
	}
	end := r.runEnd(b, start, clockwise)
	return types.NewRect(start.X, start.Y, end.X, end.Y)
}

// frameCell picks a horizontal or vertical side, one of its two edges, and a
// cell along it.
func (r *Random) frameCell(b *board.Board) types.Pos {
	if r.rng.IntN(2) == 0 {
		y := 0
		if r.rng.IntN(2) == 1 {
			y = b.Height() - 1
		}
		return types.Pos{X: r.rng.IntN(b.Width()), Y: y}
	}
	x := 0
	if r.rng.IntN(2) == 1 {
		x = b.Width() - 1
	}
	return types.Pos{X: x, Y: r.rng.IntN(b.Height())}
}

// frontier walks from p until it steps from a claimed cell onto an unclaimed
// one and returns that unclaimed cell. The walk gives up after one lap.
func frontier(b *board.Board, p types.Pos, clockwise bool) types.Pos {
	for range b.TotalCellCount() + 1 {
		next := b.Step(p, clockwise)
		if b.Claimed(p.X, p.Y) && !b.Claimed(next.X, next.Y) {
			return next
		}
		p = next
	}
	return p
}

// runEnd picks the far end of a straight run starting at p. The run follows
// the edge in the walking direction and never turns a corner or reaches
// past the first claimed cell.
func (r *Random) runEnd(b *board.Board, p types.Pos, clockwise bool) types.Pos {
	next := b.Step(p, clockwise)
	dx, dy := next.X-p.X, next.Y-p.Y

	free := 0
	for b.Get(p.X+(free+1)*dx, p.Y+(free+1)*dy).State == types.Empty {
		free++
	}
	n := r.rng.IntN(free + 1)
	return types.Pos{X: p.X + n*dx, Y: p.Y + n*dy}
}
