// Package rules decides whether a rectangle may be claimed.
package rules

import (
	"errors"

	"renate-frame/board"
	"renate-frame/types"
)

// Rejection reasons. All of them are recoverable: the player may try again.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfFrame     = errors.New("area not in rectangle frame")
	ErrAlreadyColored = errors.New("area already colored")
	ErrIncoherent     = errors.New("uncolored area not coherent")
)

// IsRejection returns true if err is one of the rejection reasons above.
func IsRejection(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrOutOfFrame) ||
		errors.Is(err, ErrAlreadyColored) ||
		errors.Is(err, ErrIncoherent)
}

// Validate checks whether r may be claimed on b. The corners of r do not need
// to be normalized. opening is true for the first move of the game, which
// needs no claimed neighbour. The board is not modified.
func Validate(b *board.Board, r types.Rect, opening bool) error {
	r = r.Normalize()
	if r.X1 < 0 || r.Y1 < 0 || r.X2 >= b.Width() || r.Y2 >= b.Height() {
		return ErrOutOfFrame
	}
	cells := r.Cells()
	for _, c := range cells {
		if !b.OnFrame(c.X, c.Y) {
			return ErrOutOfFrame
		}
	}
	for _, c := range cells {
		if b.Claimed(c.X, c.Y) {
			return ErrAlreadyColored
		}
	}
	if !opening && !Touches(b, r) {
		return ErrIncoherent
	}
	return nil
}

// Touches returns true if any cell of r has a claimed axis neighbour.
func Touches(b *board.Board, r types.Rect) bool {
	for _, c := range r.Normalize().Cells() {
		if b.Claimed(c.X-1, c.Y) || b.Claimed(c.X+1, c.Y) || b.Claimed(c.X, c.Y-1) || b.Claimed(c.X, c.Y+1) {
			return true
		}
	}
	return false
}
