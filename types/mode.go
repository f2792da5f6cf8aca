package types

import (
	"fmt"
	"strings"
)

// Mode selects which sides are played by the computer.
type Mode uint8

const (
	RenateVsYou Mode = iota // Renate plays first
	YouVsRandom             // Random plays second
	RandomVsYou             // Random plays first
	YouVsFriend             // both sides are human
)

// Modes lists every mode in menu order.
var Modes = []Mode{RenateVsYou, YouVsRandom, RandomVsYou, YouVsFriend}

// Controller says who produces the moves of one side.
type Controller uint8

const (
	Human Controller = iota
	Renate
	Random
)

func (c Controller) String() string {
	switch c {
	case Human:
		return "human"
	case Renate:
		return "renate"
	case Random:
		return "random"
	}
	return "unknown"
}

// Valid returns true for the four known modes.
func (m Mode) Valid() bool {
	switch m {
	case RenateVsYou, YouVsRandom, RandomVsYou, YouVsFriend:
		return true
	}
	return false
}

// Controller returns who plays side p in this mode.
func (m Mode) Controller(p Player) Controller {
	switch m {
	case RenateVsYou:
		if p == First {
			return Renate
		}
	case YouVsRandom:
		if p == Second {
			return Random
		}
	case RandomVsYou:
		if p == First {
			return Random
		}
	case YouVsFriend:
	}
	return Human
}

// String returns the menu title of the mode.
func (m Mode) String() string {
	switch m {
	case RenateVsYou:
		return "Renate vs. You"
	case YouVsRandom:
		return "You vs. Random"
	case RandomVsYou:
		return "Random vs. You"
	case YouVsFriend:
		return "You vs. Your Friend"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Slug returns the command line and config file spelling of the mode.
func (m Mode) Slug() string {
	switch m {
	case RenateVsYou:
		return "renate-vs-you"
	case YouVsRandom:
		return "you-vs-random"
	case RandomVsYou:
		return "random-vs-you"
	case YouVsFriend:
		return "you-vs-friend"
	}
	return ""
}

// ParseMode accepts a slug or a 1-based menu number.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, m := range Modes {
		if s == m.Slug() || s == fmt.Sprint(i+1) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode %d", uint8(m))
	}
	return []byte(m.Slug()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
