package board

import "renate-frame/types"

// Step returns the frame cell after p when walking around the frame.
// Clockwise runs left to right along the top, down the right side, right to
// left along the bottom and up the left side. p must be a frame cell.
func (b *Board) Step(p types.Pos, clockwise bool) types.Pos {
	w, h := b.width, b.height
	if clockwise {
		switch {
		case p.Y == 0 && p.X < w-1:
			return types.Pos{X: p.X + 1, Y: p.Y}
		case p.X == w-1 && p.Y < h-1:
			return types.Pos{X: p.X, Y: p.Y + 1}
		case p.Y == h-1 && p.X > 0:
			return types.Pos{X: p.X - 1, Y: p.Y}
		default:
			return types.Pos{X: p.X, Y: p.Y - 1}
		}
	}
	switch {
	case p.Y == 0 && p.X > 0:
		return types.Pos{X: p.X - 1, Y: p.Y}
	case p.X == 0 && p.Y < h-1:
		return types.Pos{X: p.X, Y: p.Y + 1}
	case p.Y == h-1 && p.X < w-1:
		return types.Pos{X: p.X + 1, Y: p.Y}
	default:
		return types.Pos{X: p.X, Y: p.Y - 1}
	}
}
