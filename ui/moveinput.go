package ui

import (
	"context"
	"sync"

	"renate-frame/engine"
	"renate-frame/types"
)

// MoveInput hands rectangles chosen on the board to a running game.
// It implements engine.MoveSource.
type MoveInput struct {
	onTurn func(engine.Turn)

	mu      sync.Mutex
	pending chan types.Rect // non-nil while NextMove waits
}

// NewMoveInput returns an input that calls onTurn whenever the game starts
// waiting for a human move.
func NewMoveInput(onTurn func(engine.Turn)) *MoveInput {
	return &MoveInput{onTurn: onTurn}
}

// NextMove blocks until Submit is called or ctx is done.
func (m *MoveInput) NextMove(ctx context.Context, turn engine.Turn) (types.Rect, error) {
	ch := make(chan types.Rect, 1)
	m.mu.Lock()
	m.pending = ch
	m.mu.Unlock()

	if m.onTurn != nil {
		m.onTurn(turn)
	}
	select {
	case r := <-ch:
		return r, nil
	case <-ctx.Done():
		m.mu.Lock()
		if m.pending == ch {
			m.pending = nil
		}
		m.mu.Unlock()
		return types.Rect{}, ctx.Err()
	}
}

// Submit passes r to a waiting NextMove. It returns false without blocking
// when the game is not waiting for a human move.
func (m *MoveInput) Submit(r types.Rect) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return false
	}
	m.pending <- r
	m.pending = nil
	return true
}
