package strategy

import (
	"renate-frame/board"
	"renate-frame/types"
)

// Renate plays first and cannot be beaten. Her opening leaves the unclaimed
// part of the frame symmetric, and every later move restores that symmetry
// by mirroring what the opponent just claimed. Near the end of the frame,
// where a mirrored move would hit claimed cells, she closes out a side.
type Renate struct{}

// Name implements Strategy.
func (Renate) Name() string {
	return "Renate"
}

// NextMove implements Strategy.
func (Renate) NextMove(b *board.Board, round int) types.Rect {
	scratch := b.Clone()
	opponent := scratch.TakeNewlyColored()

	switch aspectOf(b.Width(), b.Height()) {
	case square:
		replySquare(frame{b: scratch}, round, opponent)
	case wide:
		replyWide(frame{b: scratch}, round, opponent)
	case tall:
		// A tall frame is a wide frame with x and y swapped.
		replyWide(frame{b: scratch, transposed: true}, round, transpose(opponent))
	}

	rect, ok := types.BoundingRect(scratch.TakeNewlyColored())
	if !ok {
		// Nothing left to claim; the caller's validation reports it.
		return types.Rect{X1: -1, Y1: -1, X2: -1, Y2: -1}
	}
	return rect
}

type aspect uint8

const (
	square aspect = iota
	wide
	tall
)

func aspectOf(width, height int) aspect {
	switch {
	case width == height:
		return square
	case width > height:
		return wide
	default:
		return tall
	}
}

// frame is a view of the scratch board that can be transposed.
// Claims made through it are recorded as newly colored cells of the board.
type frame struct {
	b          *board.Board
	transposed bool
}

func (f frame) width() int {
	if f.transposed {
		return f.b.Height()
	}
	return f.b.Width()
}

func (f frame) height() int {
	if f.transposed {
		return f.b.Width()
	}
	return f.b.Height()
}

func (f frame) claimed(x, y int) bool {
	if f.transposed {
		x, y = y, x
	}
	return f.b.Claimed(x, y)
}

func (f frame) claim(x, y int) {
	if f.transposed {
		x, y = y, x
	}
	f.b.Colorize(x, y, types.First)
}

func (f frame) claimRow(y int) {
	for x := 0; x < f.width(); x++ {
		f.claim(x, y)
	}
}

func (f frame) claimColumn(x int) {
	for y := 0; y < f.height(); y++ {
		f.claim(x, y)
	}
}

// Boundary predicates, named from the point of view of an untransposed frame.

// bottomNearCorner: the bottom row is claimed up to the bottom-right corner.
func bottomNearCorner(f frame) bool {
	return f.claimed(f.width()-2, f.height()-1)
}

// rightNearCorner: the right column is claimed down to the bottom-right corner.
func rightNearCorner(f frame) bool {
	return f.claimed(f.width()-1, f.height()-2)
}

// leftNearCorner: the left column is claimed down to the bottom-left corner.
func leftNearCorner(f frame) bool {
	return f.claimed(0, f.height()-2)
}

// bottomLeftApproached: the bottom row is claimed up to the bottom-left corner.
func bottomLeftApproached(f frame) bool {
	return f.claimed(1, f.height()-1)
}

// replySquare keeps the frame symmetric about the main diagonal.
// The opening claims the top-left corner, which lies on the diagonal.
func replySquare(f frame, round int, opponent []types.Pos) {
	w, h := f.width(), f.height()
	switch {
	case round == 0:
		f.claim(0, 0)
	case bottomNearCorner(f):
		f.claimColumn(w - 1)
	case rightNearCorner(f):
		f.claimRow(h - 1)
	default:
		for _, p := range opponent {
			f.claim(p.Y, p.X)
		}
	}
}

// replyWide keeps the frame symmetric about the vertical center line.
// The opening claims the whole top row.
func replyWide(f frame, round int, opponent []types.Pos) {
	w, h := f.width(), f.height()
	if round == 0 {
		f.claimRow(0)
		return
	}

	leftDone := leftNearCorner(f)
	rightDone := rightNearCorner(f)
	switch {
	case rightDone && leftDone:
		f.claimRow(h - 1)
	case rightDone && bottomLeftApproached(f):
		f.claimColumn(0)
	case rightDone:
		countdown(f, func(i int) (types.Pos, types.Pos) {
			return types.Pos{X: i, Y: h - 1}, types.Pos{X: 0, Y: h - 1 - i}
		})
	case bottomNearCorner(f):
		f.claimColumn(w - 1)
	case leftDone:
		countdown(f, func(i int) (types.Pos, types.Pos) {
			return types.Pos{X: w - 1 - i, Y: h - 1}, types.Pos{X: w - 1, Y: h - 1 - i}
		})
	default:
		for _, p := range opponent {
			f.claim(w-1-p.X, p.Y)
		}
	}
}

// countdown claims the pairs returned by pair(i) for i = width-1, width-2, ...
// Pair i holds the two cells at distance i from a bottom corner, one along the
// bottom row and one up the side. The walk stops at the first i below the
// height where neither cell is claimed yet.
func countdown(f frame, pair func(i int) (types.Pos, types.Pos)) {
	for i := f.width() - 1; ; i-- {
		a, b := pair(i)
		if i < f.height() && !f.claimed(a.X, a.Y) && !f.claimed(b.X, b.Y) {
			return
		}
		f.claim(a.X, a.Y)
		f.claim(b.X, b.Y)
	}
}

func transpose(cells []types.Pos) []types.Pos {
	out := make([]types.Pos, len(cells))
	for i, c := range cells {
		out[i] = types.Pos{X: c.Y, Y: c.X}
	}
	return out
}
