package strategy

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/rules"
	"renate-frame/types"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// onOneEdge reports whether r lies within a single side of a w x h frame.
func onOneEdge(r types.Rect, w, h int) bool {
	if r.Y1 == r.Y2 && (r.Y1 == 0 || r.Y1 == h-1) {
		return true
	}
	return r.X1 == r.X2 && (r.X1 == 0 || r.X1 == w-1)
}

func TestRandomOpeningStaysOnOneEdge(t *testing.T) {
	b := newBoard(t, 5, 5)
	for seed := range uint64(500) {
		r := NewRandom(seeded(seed)).NextMove(b, 0)
		require.True(t, onOneEdge(r, 5, 5), "seed %d: %v", seed, r)
		require.NoError(t, rules.Validate(b, r, true), "seed %d: %v", seed, r)
	}
	assert.Zero(t, b.ClaimedCount())
}

func TestRandomMovesAreLegal(t *testing.T) {
	for _, dim := range [][2]int{{3, 3}, {4, 3}, {3, 7}, {8, 8}, {12, 5}, {25, 25}} {
		w, h := dim[0], dim[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			for seed := range uint64(50) {
				random := NewRandom(seeded(seed))
				b := newBoard(t, w, h)
				player := types.First
				for round := 0; !b.Finished(); round++ {
					require.Less(t, round, b.TotalCellCount(), "game does not end")
					r := random.NextMove(b, round)
					require.True(t, onOneEdge(r, w, h), "seed %d round %d: %v", seed, round, r)
					require.NoError(t, rules.Validate(b, r, round == 0), "seed %d round %d: %v on\n%s", seed, round, r, b)
					apply(b, r, player)
					player = player.Opponent()
				}
			}
		})
	}
}

func TestRandomIsReproducible(t *testing.T) {
	play := func(seed uint64) []types.Rect {
		random := NewRandom(seeded(seed))
		b := newBoard(t, 7, 4)
		var moves []types.Rect
		for round := 0; !b.Finished(); round++ {
			r := random.NextMove(b, round)
			moves = append(moves, r)
			apply(b, r, types.First)
		}
		return moves
	}
	assert.Equal(t, play(42), play(42))
}

func TestNewStrategy(t *testing.T) {
	s, err := New(types.Renate, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renate", s.Name())

	s, err = New(types.Random, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, "Random", s.Name())

	_, err = New(types.Human, nil)
	assert.Error(t, err)
}
