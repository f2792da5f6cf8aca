// Package present phrases game state for the players. It is shared by the
// console and the full-screen frontends and does no I/O itself.
package present

import (
	"errors"
	"fmt"

	"renate-frame/engine"
	"renate-frame/rules"
	"renate-frame/types"
)

// Title is shown above the board.
const Title = "RenateErhardGame"

// SideName names who plays p in mode m.
func SideName(m types.Mode, p types.Player) string {
	switch m.Controller(p) {
	case types.Renate:
		return "Renate"
	case types.Random:
		return "Random"
	case types.Human:
		if m == types.YouVsFriend {
			if p == types.First {
				return "First friend"
			}
			return "Second friend"
		}
	}
	return "You"
}

// TurnInfo describes the previous move and calls on the player to move.
// Either string may be empty.
func TurnInfo(t engine.Turn) (last, next string) {
	n := len(t.Board.NewlyColored())
	switch t.Mode {
	case types.RenateVsYou:
		switch {
		case t.Round == 1 && t.Board.Width() == t.Board.Height():
			return "Why did Renate only color one cell in the corner?",
				"Let's find out by making your first move!"
		case t.Round == 1:
			return fmt.Sprintf("Renate captured a line of %d cells!", n),
				"To see why this is smart, make your first move!"
		case 2*t.Board.ClaimedCount() <= t.Board.TotalCellCount():
			return fmt.Sprintf("Renate colored %d cell(s).", n), "Now it's your turn again!"
		default:
			return fmt.Sprintf("Exactly %d more cell(s) green.", n), "Continue, if you think you have a chance!"
		}
	case types.YouVsRandom:
		if t.Round == 0 {
			return "", "You make the first move!"
		}
		return fmt.Sprintf("Random colored %d cell(s).", n), "Now it's your turn again!"
	case types.RandomVsYou:
		if t.Round == 1 {
			return fmt.Sprintf("Random got started by coloring %d cell(s).", n), "What is your first move?"
		}
		return fmt.Sprintf("Random colored %d cell(s).", n), "Now it's your turn again!"
	case types.YouVsFriend:
		if t.Round == 0 {
			return "", "It's the first player's turn!"
		}
		return fmt.Sprintf("The %s player colored %d cell(s).", t.Player.Opponent(), n),
			fmt.Sprintf("Now it's the %s player's turn!", t.Player)
	}
	return "", ""
}

// ResultText announces the winner.
func ResultText(r engine.Result) string {
	switch r.Mode.Controller(r.Winner) {
	case types.Renate:
		return "Sorry, but Renate wins (once again)!"
	case types.Random:
		return "Random wins!"
	case types.Human:
		if r.Mode == types.YouVsFriend {
			return fmt.Sprintf("The %s friend wins!", r.Winner)
		}
	}
	return "You win!"
}

// MoveText describes an applied move for the history list.
func MoveText(m types.Mode, rec engine.MoveRecord) string {
	n := rec.Rect.Size()
	cells := "cells"
	if n == 1 {
		cells = "cell"
	}
	return fmt.Sprintf("%d. %s: %s (%d %s)", rec.Round+1, SideName(m, rec.Player), engine.FormatRect(rec.Rect), n, cells)
}

var rejections = []error{
	rules.ErrMalformedInput,
	rules.ErrOutOfFrame,
	rules.ErrAlreadyColored,
	rules.ErrIncoherent,
}

// RejectionText returns the reason a move was rejected without parser detail.
func RejectionText(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return r.Error()
		}
	}
	return err.Error()
}
