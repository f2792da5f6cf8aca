package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/board"
	"renate-frame/types"
)

func TestValidate(t *testing.T) {
	// 5x3 frame with the whole top row claimed by the first player.
	setup := func(t *testing.T) *board.Board {
		b, err := board.New(5, 3)
		require.NoError(t, err)
		for x := 0; x < 5; x++ {
			b.Colorize(x, 0, types.First)
		}
		return b
	}

	tests := []struct {
		name    string
		rect    types.Rect
		opening bool
		want    error
	}{
		{"interior cell", types.NewRect(2, 1, 2, 1), false, ErrOutOfFrame},
		{"left of board", types.NewRect(-1, 2, 0, 2), false, ErrOutOfFrame},
		{"below board", types.NewRect(0, 2, 0, 3), false, ErrOutOfFrame},
		{"spans a corner", types.NewRect(0, 1, 1, 2), false, ErrOutOfFrame},
		{"whole board", types.NewRect(0, 0, 4, 2), false, ErrOutOfFrame},
		{"overlaps claimed", types.NewRect(0, 0, 0, 2), false, ErrAlreadyColored},
		{"claimed cell", types.NewRect(3, 0, 3, 0), false, ErrAlreadyColored},
		{"detached run", types.NewRect(1, 2, 3, 2), false, ErrIncoherent},
		{"detached run on opening", types.NewRect(1, 2, 3, 2), true, nil},
		{"left column below claim", types.NewRect(0, 1, 0, 2), false, nil},
		{"reversed corners", types.Rect{X1: 4, Y1: 2, X2: 4, Y2: 1}, false, nil},
		{"bottom row touching via corner", types.NewRect(4, 2, 4, 2), false, ErrIncoherent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t)
			before := b.String()
			err := Validate(b, tt.rect, tt.opening)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Equal(t, before, b.String(), "validation must not modify the board")
		})
	}
}

func TestOpeningMoveNeedsNoNeighbour(t *testing.T) {
	b, err := board.New(4, 4)
	require.NoError(t, err)
	assert.NoError(t, Validate(b, types.NewRect(3, 1, 3, 2), true))
	assert.ErrorIs(t, Validate(b, types.NewRect(3, 1, 3, 2), false), ErrIncoherent)
}

func TestTouches(t *testing.T) {
	b, err := board.New(4, 4)
	require.NoError(t, err)
	b.Colorize(0, 0, types.Second)

	assert.True(t, Touches(b, types.NewRect(1, 0, 3, 0)))
	assert.True(t, Touches(b, types.NewRect(0, 3, 0, 1)))
	assert.False(t, Touches(b, types.NewRect(2, 0, 3, 0)))
	// Claimed neighbours count regardless of owner.
	b.Colorize(3, 0, types.First)
	assert.True(t, Touches(b, types.NewRect(2, 0, 2, 0)))
}

func TestIsRejection(t *testing.T) {
	for _, err := range []error{ErrMalformedInput, ErrOutOfFrame, ErrAlreadyColored, ErrIncoherent} {
		assert.True(t, IsRejection(err))
		assert.True(t, IsRejection(fmt.Errorf("move 3: %w", err)))
	}
	assert.False(t, IsRejection(board.ErrInvalidSize))
	assert.False(t, IsRejection(nil))
}
