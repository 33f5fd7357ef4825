package preflop

import (
	"fmt"
	"strings"
)

// Position is a seat at a six-handed table, in pre-flop acting order.
type Position int

const (
	UTG Position = iota
	Middle
	Cutoff
	Button
	SmallBlind
	BigBlind
)

// Positions lists every seat in acting order.
var Positions = []Position{UTG, Middle, Cutoff, Button, SmallBlind, BigBlind}

// String returns the display name of the position.
func (p Position) String() string {
	switch p {
	case UTG:
		return "UTG"
	case Middle:
		return "Middle"
	case Cutoff:
		return "Cutoff"
	case Button:
		return "Button"
	case SmallBlind:
		return "Small Blind"
	case BigBlind:
		return "Big Blind"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// IsLate reports whether the seat is the Cutoff or Button.
func (p Position) IsLate() bool {
	return p == Cutoff || p == Button
}

// IsBlind reports whether the seat posts a blind.
func (p Position) IsBlind() bool {
	return p == SmallBlind || p == BigBlind
}

// Posted returns the blind this seat has already put in the pot.
func (p Position) Posted(b Blinds) int {
	switch p {
	case SmallBlind:
		return b.Small
	case BigBlind:
		return b.Big
	default:
		return 0
	}
}

// ParsePosition accepts display names and short forms ("utg", "mp", "co", "btn", "sb", "bb").
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "utg":
		return UTG, nil
	case "middle", "mp", "mid":
		return Middle, nil
	case "cutoff", "co":
		return Cutoff, nil
	case "button", "btn", "bu":
		return Button, nil
	case "smallblind", "sb":
		return SmallBlind, nil
	case "bigblind", "bb":
		return BigBlind, nil
	default:
		return 0, fmt.Errorf("unknown position: %q", s)
	}
}
