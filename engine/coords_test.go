package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/rules"
	"renate-frame/types"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want types.Rect
	}{
		{"1 1 3 1", types.Rect{X1: 0, Y1: 0, X2: 2, Y2: 0}},
		{"  5 3   5 1 ", types.Rect{X1: 4, Y1: 2, X2: 4, Y2: 0}},
		{"0 1 1 1", types.Rect{X1: -1, Y1: 0, X2: 0, Y2: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveMalformed(t *testing.T) {
	for _, in := range []string{"", "a b c", "1 2 3", "1 2 3 4 5", "1 2 x 4", "1.5 2 3 4"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseMove(in)
			assert.ErrorIs(t, err, rules.ErrMalformedInput)
		})
	}
}

func TestFormatRect(t *testing.T) {
	assert.Equal(t, "1 1 3 1", FormatRect(types.NewRect(0, 0, 2, 0)))
	assert.Equal(t, "5 1 5 3", FormatRect(types.Rect{X1: 4, Y1: 2, X2: 4, Y2: 0}))

	r, err := ParseMove(FormatRect(types.NewRect(3, 0, 3, 6)))
	require.NoError(t, err)
	assert.Equal(t, types.NewRect(3, 0, 3, 6), r)
}
