// Package engine runs a game of claiming the frame: it owns the board, checks
// every move, hands turns to humans or strategies and detects the end.
package engine

import (
	"context"
	"errors"

	"renate-frame/board"
	"renate-frame/types"
)

var (
	// ErrGameOver is returned for moves submitted after the frame is full.
	ErrGameOver = errors.New("game is over")
	// ErrNotHumanTurn is returned by Submit when a strategy is to move.
	ErrNotHumanTurn = errors.New("not a human player's turn")
	// ErrNotComputerTurn is returned by PlayComputer when a human is to move.
	ErrNotComputerTurn = errors.New("not a computer player's turn")
	// ErrStrategyDefect means a strategy produced an illegal move.
	ErrStrategyDefect = errors.New("strategy produced an illegal move")
)

// MoveSource supplies the moves of human players. NextMove blocks until the
// player has decided. Returning an error matching rules.ErrMalformedInput
// makes the game report the rejection and ask again; any other error stops
// the game.
type MoveSource interface {
	NextMove(ctx context.Context, turn Turn) (types.Rect, error)
}

// MoveSourceFunc adapts a function to MoveSource.
type MoveSourceFunc func(ctx context.Context, turn Turn) (types.Rect, error)

// NextMove calls f.
func (f MoveSourceFunc) NextMove(ctx context.Context, turn Turn) (types.Rect, error) {
	return f(ctx, turn)
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Mode   types.Mode
	Width  int
	Height int
	Seed   uint64 // Seeds the Random strategy; 0 picks a random seed
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Mode:   types.RenateVsYou,
		Width:  9,
		Height: 9,
	}
}

// State is the phase of a game.
type State uint8

const (
	InProgress State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "in progress"
}

// Turn describes the position a player has to move in.
type Turn struct {
	Board    *board.Board // Snapshot; its newly colored cells are the previous move
	Player   types.Player
	Round    int
	Mode     types.Mode
	LastMove *MoveRecord // nil before the opening move
}

// Controller returns who decides the move of this turn.
func (t Turn) Controller() types.Controller {
	return t.Mode.Controller(t.Player)
}

// MoveRecord is one applied move.
type MoveRecord struct {
	Round      int
	Player     types.Player
	Controller types.Controller
	Rect       types.Rect
}

// Result is the outcome of a finished game.
type Result struct {
	Winner types.Player
	Mode   types.Mode
	Rounds int
	Board  *board.Board
}
