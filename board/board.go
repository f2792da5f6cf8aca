// Package board holds the rectangle frame and all cell ownership.
package board

import (
	"errors"
	"fmt"

	"renate-frame/types"
)

// Frame size bounds, per side.
const (
	MinSize = 3
	MaxSize = 25
)

// ErrInvalidSize is returned when a side is outside MinSize..MaxSize.
var ErrInvalidSize = errors.New("invalid frame size")

// Board is the cell grid of one game. Cells are indexed as cells[y][x].
// Only Colorize changes cell state, and only from Empty to Claimed.
type Board struct {
	width        int
	height       int
	cells        [][]types.Cell
	newlyColored []types.Pos
	claimedCount int
}

// New creates a board whose frame cells are all empty.
func New(width, height int) (*Board, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d (each side must be %d..%d)", ErrInvalidSize, width, height, MinSize, MaxSize)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([][]types.Cell, height),
	}
	for y := range b.cells {
		b.cells[y] = make([]types.Cell, width)
		for x := range b.cells[y] {
			if b.OnFrame(x, y) {
				b.cells[y][x].State = types.Empty
			}
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if (x, y) is a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// OnFrame returns true if (x, y) is a border cell.
func (b *Board) OnFrame(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return x == 0 || y == 0 || x == b.width-1 || y == b.height-1
}

// Get returns the cell at (x, y). Out of bounds positions read as OffFrame.
func (b *Board) Get(x, y int) types.Cell {
	if !b.InBounds(x, y) {
		return types.Cell{State: types.OffFrame}
	}
	return b.cells[y][x]
}

// Claimed returns true if (x, y) is owned by either player.
func (b *Board) Claimed(x, y int) bool {
	return b.Get(x, y).IsClaimed()
}

// Colorize claims (x, y) for p. Cells that are not empty are left as they are.
// Returns true if the cell changed.
func (b *Board) Colorize(x, y int, p types.Player) bool {
	if b.Get(x, y).State != types.Empty {
		return false
	}
	b.cells[y][x] = types.Cell{State: types.Claimed, Owner: p}
	b.newlyColored = append(b.newlyColored, types.Pos{X: x, Y: y})
	b.claimedCount++
	return true
}

// TakeNewlyColored returns the cells colored since the last call and clears the list.
func (b *Board) TakeNewlyColored() []types.Pos {
	taken := b.newlyColored
	b.newlyColored = nil
	return taken
}

// NewlyColored returns a copy of the cells colored by the latest move.
func (b *Board) NewlyColored() []types.Pos {
	return append([]types.Pos(nil), b.newlyColored...)
}

// IsNewlyColored returns true if (x, y) was colored by the latest move.
func (b *Board) IsNewlyColored(x, y int) bool {
	for _, p := range b.newlyColored {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// ClaimedCount returns how many frame cells are claimed.
func (b *Board) ClaimedCount() int {
	return b.claimedCount
}

// ClaimedBy returns how many frame cells p owns.
func (b *Board) ClaimedBy(p types.Player) int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.IsClaimed() && c.Owner == p {
				n++
			}
		}
	}
	return n
}

// TotalCellCount returns the number of frame cells.
func (b *Board) TotalCellCount() int {
	return b.width*b.height - (b.width-2)*(b.height-2)
}

// Finished returns true once no frame cell is empty.
func (b *Board) Finished() bool {
	for x := 0; x < b.width; x++ {
		if b.cells[0][x].State == types.Empty || b.cells[b.height-1][x].State == types.Empty {
			return false
		}
	}
	for y := 1; y < b.height-1; y++ {
		if b.cells[y][0].State == types.Empty || b.cells[y][b.width-1].State == types.Empty {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:        b.width,
		height:       b.height,
		cells:        make([][]types.Cell, b.height),
		newlyColored: b.NewlyColored(),
		claimedCount: b.claimedCount,
	}
	for y := range b.cells {
		c.cells[y] = append([]types.Cell(nil), b.cells[y]...)
	}
	return c
}

// String renders the board for debugging: '.' empty, '1'/'2' claimed, ' ' interior.
func (b *Board) String() string {
	out := make([]byte, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y][x]
			switch c.State {
			case types.OffFrame:
				out = append(out, ' ')
			case types.Empty:
				out = append(out, '.')
			case types.Claimed:
				out = append(out, byte('0'+c.Owner))
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
