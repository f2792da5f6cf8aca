package engine

import (
	"fmt"
	"strconv"
	"strings"

	"renate-frame/rules"
	"renate-frame/types"
)

// Move notation:
// - Four integers "x1 y1 x2 y2" separated by blanks, the corners of the rectangle
// - 1-indexed, origin at the top-left cell
// - Corners may come in any order
//
// Board coordinates are 0-indexed, so "1 1 3 1" is the rectangle (0,0)-(2,0).

// ParseMove converts move notation to a rectangle. Anything but four integers
// yields rules.ErrMalformedInput. Range checks are left to rules.Validate.
func ParseMove(s string) (types.Rect, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return types.Rect{}, fmt.Errorf("%w: expected 4 numbers, got %d", rules.ErrMalformedInput, len(fields))
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return types.Rect{}, fmt.Errorf("%w: %q is not a number", rules.ErrMalformedInput, f)
		}
		v[i] = n - 1
	}
	return types.Rect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// FormatRect converts a rectangle to move notation.
func FormatRect(r types.Rect) string {
	r = r.Normalize()
	return fmt.Sprintf("%d %d %d %d", r.X1+1, r.Y1+1, r.X2+1, r.Y2+1)
}
