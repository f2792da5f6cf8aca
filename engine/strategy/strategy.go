// Package strategy implements the computer opponents.
package strategy

import (
	"fmt"
	"math/rand/v2"

	"renate-frame/board"
	"renate-frame/types"
)

// Strategy produces the move of a computer-controlled side.
type Strategy interface {
	// Name is shown to the player and written to the log.
	Name() string

	// NextMove returns the rectangle to claim for the side to move. round is
	// the 0-based number of moves played so far. The board's newly colored
	// cells are the opponent's previous move. b is not modified.
	NextMove(b *board.Board, round int) types.Rect
}

// New returns the strategy for controller c. rng is used by Random only.
func New(c types.Controller, rng *rand.Rand) (Strategy, error) {
	switch c {
	case types.Renate:
		return Renate{}, nil
	case types.Random:
		return NewRandom(rng), nil
	case types.Human:
	}
	return nil, fmt.Errorf("no strategy for %s controller", c)
}
