package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/types"
)

func newBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := New(w, h)
	require.NoError(t, err)
	return b
}

func TestNewRejectsInvalidSizes(t *testing.T) {
	for _, dim := range [][2]int{{2, 5}, {5, 2}, {26, 3}, {3, 26}, {0, 0}} {
		_, err := New(dim[0], dim[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "%dx%d", dim[0], dim[1])
	}
}

func TestTotalCellCount(t *testing.T) {
	for w := MinSize; w <= MaxSize; w++ {
		for h := MinSize; h <= MaxSize; h++ {
			b := newBoard(t, w, h)
			empty := 0
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if b.Get(x, y).State == types.Empty {
						empty++
					}
				}
			}
			require.Equal(t, w*h-(w-2)*(h-2), b.TotalCellCount())
			require.Equal(t, b.TotalCellCount(), empty)
		}
	}
}

func TestGetClassifiesCells(t *testing.T) {
	b := newBoard(t, 5, 4)
	assert.Equal(t, types.Empty, b.Get(0, 0).State)
	assert.Equal(t, types.Empty, b.Get(4, 3).State)
	assert.Equal(t, types.Empty, b.Get(2, 3).State)
	assert.Equal(t, types.OffFrame, b.Get(2, 1).State)
	assert.Equal(t, types.OffFrame, b.Get(-1, 0).State)
	assert.Equal(t, types.OffFrame, b.Get(5, 0).State)
	assert.Equal(t, types.OffFrame, b.Get(0, 4).State)

	// Reading twice without colorize yields the same cell.
	assert.Equal(t, b.Get(3, 0), b.Get(3, 0))
}

func TestColorizeIsMonotonic(t *testing.T) {
	b := newBoard(t, 4, 4)

	assert.True(t, b.Colorize(1, 0, types.First))
	assert.Equal(t, types.Cell{State: types.Claimed, Owner: types.First}, b.Get(1, 0))

	// A claimed cell never changes owner.
	assert.False(t, b.Colorize(1, 0, types.Second))
	assert.Equal(t, types.First, b.Get(1, 0).Owner)

	// Interior and out of bounds cells are never claimed.
	assert.False(t, b.Colorize(1, 1, types.Second))
	assert.Equal(t, types.OffFrame, b.Get(1, 1).State)
	assert.False(t, b.Colorize(9, 9, types.Second))

	assert.Equal(t, 1, b.ClaimedCount())
	assert.Equal(t, 1, b.ClaimedBy(types.First))
	assert.Equal(t, 0, b.ClaimedBy(types.Second))
}

func TestNewlyColored(t *testing.T) {
	b := newBoard(t, 3, 3)
	b.Colorize(0, 0, types.First)
	b.Colorize(1, 0, types.First)
	b.Colorize(1, 0, types.First)

	assert.True(t, b.IsNewlyColored(1, 0))
	assert.False(t, b.IsNewlyColored(2, 0))
	assert.Equal(t, []types.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}}, b.NewlyColored())

	taken := b.TakeNewlyColored()
	assert.Len(t, taken, 2)
	assert.Empty(t, b.NewlyColored())
	assert.Empty(t, b.TakeNewlyColored())
	assert.Equal(t, 2, b.ClaimedCount())
}

func TestFinished(t *testing.T) {
	b := newBoard(t, 4, 3)
	for i, p := range walk(b) {
		require.False(t, b.Finished(), "finished after %d cells", i)
		b.Colorize(p.X, p.Y, types.Second)
	}
	assert.True(t, b.Finished())
	assert.Equal(t, b.TotalCellCount(), b.ClaimedCount())

	// Once finished, nothing can unfinish it.
	b.Colorize(1, 1, types.First)
	assert.True(t, b.Finished())
}

func TestCloneIsIndependent(t *testing.T) {
	b := newBoard(t, 3, 4)
	b.Colorize(0, 0, types.First)

	c := b.Clone()
	c.Colorize(1, 0, types.Second)
	c.TakeNewlyColored()

	assert.False(t, b.Claimed(1, 0))
	assert.Equal(t, []types.Pos{{X: 0, Y: 0}}, b.NewlyColored())
	assert.Equal(t, 1, b.ClaimedCount())
	assert.Equal(t, 2, c.ClaimedCount())
}

func TestStepVisitsEveryFrameCell(t *testing.T) {
	for _, dim := range [][2]int{{3, 3}, {5, 3}, {3, 6}, {25, 25}} {
		b := newBoard(t, dim[0], dim[1])
		cw := walk(b)
		require.Len(t, cw, b.TotalCellCount())

		seen := map[types.Pos]bool{}
		for i, p := range cw {
			require.True(t, b.OnFrame(p.X, p.Y))
			require.False(t, seen[p], "visited %v twice", p)
			seen[p] = true

			next := cw[(i+1)%len(cw)]
			assert.Equal(t, next, b.Step(p, true))
			// Counterclockwise undoes clockwise.
			assert.Equal(t, p, b.Step(next, false))
			// Consecutive frame cells are grid neighbours.
			assert.Equal(t, 1, abs(next.X-p.X)+abs(next.Y-p.Y))
		}
	}
}

func TestString(t *testing.T) {
	b := newBoard(t, 3, 3)
	b.Colorize(0, 0, types.First)
	b.Colorize(2, 2, types.Second)
	assert.Equal(t, "1..\n. .\n..2\n", b.String())
}

// walk lists the frame cells clockwise from the top-left corner.
func walk(b *Board) []types.Pos {
	cells := make([]types.Pos, 0, b.TotalCellCount())
	p := types.Pos{}
	for range b.TotalCellCount() {
		cells = append(cells, p)
		p = b.Step(p, true)
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
