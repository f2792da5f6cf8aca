// Package types contains shared data structures for renate-frame.
package types

import "fmt"

// Player identifies one of the two sides. The zero value is no player.
type Player uint8

const (
	NoPlayer Player = iota
	First
	Second
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "none"
}

// CellState is the state of a single cell on the board.
type CellState uint8

const (
	// OffFrame cells are interior or outside the board and never playable.
	OffFrame CellState = iota
	// Empty cells are on the frame and not yet claimed.
	Empty
	// Claimed cells are owned by Cell.Owner for the rest of the game.
	Claimed
)

// Cell is the observable state of a board cell.
type Cell struct {
	State CellState
	Owner Player // NoPlayer unless State == Claimed
}

// IsClaimed returns true if some player owns the cell.
func (c Cell) IsClaimed() bool {
	return c.State == Claimed
}

// Pos is a 0-indexed board position, x to the right and y downwards.
type Pos struct {
	X int
	Y int
}

// Rect is an inclusive cell rectangle. Use NewRect to get a normalized one.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect returns the normalized rectangle spanned by two corners.
func NewRect(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}.Normalize()
}

// Normalize swaps coordinates so that X1 <= X2 and Y1 <= Y2.
func (r Rect) Normalize() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Size returns the number of cells in a normalized rectangle.
func (r Rect) Size() int {
	return (r.X2 - r.X1 + 1) * (r.Y2 - r.Y1 + 1)
}

// Contains reports whether (x, y) lies inside a normalized rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Cells lists the positions of a normalized rectangle row by row.
func (r Rect) Cells() []Pos {
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return nil
	}
	cells := make([]Pos, 0, r.Size())
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			cells = append(cells, Pos{X: x, Y: y})
		}
	}
	return cells
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

// BoundingRect returns the smallest rectangle covering all cells.
// Returns false for an empty list.
func BoundingRect(cells []Pos) (Rect, bool) {
	if len(cells) == 0 {
		return Rect{}, false
	}
	r := Rect{X1: cells[0].X, Y1: cells[0].Y, X2: cells[0].X, Y2: cells[0].Y}
	for _, c := range cells[1:] {
		r.X1 = min(r.X1, c.X)
		r.Y1 = min(r.Y1, c.Y)
		r.X2 = max(r.X2, c.X)
		r.Y2 = max(r.Y2, c.Y)
	}
	return r, true
}
