// Package preflop holds the pure pre-flop decision policy: canonical hand keys,
// strength tiers, positions, the scenario catalog, the ordered decision rules and
// raise sizing. Nothing in this package keeps state between calls.
package preflop

import (
	"errors"
	"fmt"

	"github.com/lox/preflop-trainer/poker"
)

// HandKey is the canonical starting-hand code: "AA", "AKs", "72o".
type HandKey string

// ErrInvalidHandKey is returned by ParseHandKey for malformed input.
var ErrInvalidHandKey = errors.New("invalid hand key")

// Hand is a dealt two-card starting hand.
type Hand struct {
	A poker.Card
	B poker.Card
}

// NewHand builds a hand from two cards.
func NewHand(a, b poker.Card) Hand {
	return Hand{A: a, B: b}
}

// Suited reports whether both cards share a suit.
func (h Hand) Suited() bool {
	return h.A.Suit == h.B.Suit
}

// Key returns the canonical hand key.
func (h Hand) Key() HandKey {
	return Classify(h.A, h.B)
}

// String returns both cards, e.g. "AsKd".
func (h Hand) String() string {
	return h.A.String() + h.B.String()
}

// Classify returns the canonical key for two cards. The result does not depend on
// card order or on which suits are held, only on whether they match.
func Classify(a, b poker.Card) HandKey {
	high, low := a.Rank, b.Rank
	if high < low {
		high, low = low, high
	}
	switch {
	case high == low:
		return HandKey(high.String() + low.String())
	case a.Suit == b.Suit:
		return HandKey(high.String() + low.String() + "s")
	default:
		return HandKey(high.String() + low.String() + "o")
	}
}

// Ranks returns the high and low rank of the key.
func (k HandKey) Ranks() (high, low poker.Rank) {
	if len(k) < 2 {
		return 0, 0
	}
	high, _ = poker.ParseRank(k[0])
	low, _ = poker.ParseRank(k[1])
	return high, low
}

// IsPair reports whether the key is a pocket pair.
func (k HandKey) IsPair() bool {
	return len(k) == 2 && k[0] == k[1]
}

// IsSuited reports whether the key is a suited combination.
func (k HandKey) IsSuited() bool {
	return len(k) == 3 && k[2] == 's'
}

// ParseHandKey normalises user input such as "kqs", "QKs" or "tt" into a HandKey.
func ParseHandKey(s string) (HandKey, error) {
	if len(s) != 2 && len(s) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandKey, s)
	}
	r1, err := poker.ParseRank(s[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandKey, s)
	}
	r2, err := poker.ParseRank(s[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandKey, s)
	}
	if r1 < r2 {
		r1, r2 = r2, r1
	}

	if r1 == r2 {
		if len(s) == 3 {
			return "", fmt.Errorf("%w: pairs take no suffix: %q", ErrInvalidHandKey, s)
		}
		return HandKey(r1.String() + r2.String()), nil
	}
	if len(s) != 3 {
		return "", fmt.Errorf("%w: missing s/o suffix: %q", ErrInvalidHandKey, s)
	}
	switch s[2] {
	case 's', 'S':
		return HandKey(r1.String() + r2.String() + "s"), nil
	case 'o', 'O':
		return HandKey(r1.String() + r2.String() + "o"), nil
	default:
		return "", fmt.Errorf("%w: bad suffix: %q", ErrInvalidHandKey, s)
	}
}

// DisplayName returns a human label: "Pocket Aces", "King-Queen Suited".
func DisplayName(k HandKey) string {
	high, low := k.Ranks()
	switch {
	case !high.Valid() || !low.Valid():
		return string(k)
	case k.IsPair():
		return "Pocket " + high.Plural()
	case k.IsSuited():
		return high.Name() + "-" + low.Name() + " Suited"
	default:
		return high.Name() + "-" + low.Name() + " Offsuit"
	}
}

// AllHandKeys returns the 169 distinct starting hands in grid order: row by the
// first rank from Ace down, suited above the diagonal, offsuit below.
func AllHandKeys() []HandKey {
	keys := make([]HandKey, 0, 169)
	for row := poker.Ace; row >= poker.Two; row-- {
		for col := poker.Ace; col >= poker.Two; col-- {
			keys = append(keys, GridKey(row, col))
		}
	}
	return keys
}

// GridKey returns the key at a 13x13 range-grid cell. Cells above the diagonal
// (row rank higher than column rank) are suited.
func GridKey(row, col poker.Rank) HandKey {
	switch {
	case row == col:
		return HandKey(row.String() + col.String())
	case row > col:
		return HandKey(row.String() + col.String() + "s")
	default:
		return HandKey(col.String() + row.String() + "o")
	}
}
