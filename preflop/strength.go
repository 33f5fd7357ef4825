package preflop

import (
	"errors"
	"fmt"
)

// Tier is a coarse strength class from 1 (premium) to 5 (weakest).
type Tier int

const (
	TierPremium Tier = iota + 1
	TierStrong
	TierPlayable
	TierSpeculative
	TierTrash
)

// TierWeakest is used when a key is missing from the table.
const TierWeakest = TierTrash

// ErrUnknownHandKey means the strength table has no entry for a key. With a total
// table this only happens for malformed keys.
var ErrUnknownHandKey = errors.New("unknown hand key")

// String returns the tier label.
func (t Tier) String() string {
	switch t {
	case TierPremium:
		return "Premium"
	case TierStrong:
		return "Strong"
	case TierPlayable:
		return "Playable"
	case TierSpeculative:
		return "Speculative"
	case TierTrash:
		return "Trash"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// handTiers covers all 169 starting hands.
var handTiers = map[HandKey]Tier{
	// Tier 1
	"AA": 1, "AKs": 1, "AKo": 1, "KK": 1, "QQ": 1, "JJ": 1,
	// Tier 2
	"AQs": 2, "AJs": 2, "KQs": 2, "AQo": 2, "TT": 2, "99": 2,
	// Tier 3
	"ATs": 3, "A9s": 3, "KJs": 3, "KTs": 3, "KQo": 3, "QJs": 3, "QTs": 3, "AJo": 3, "KJo": 3,
	"JTs": 3, "ATo": 3, "88": 3, "77": 3,
	// Tier 4
	"A8s": 4, "A7s": 4, "A6s": 4, "A5s": 4, "A4s": 4, "A3s": 4, "A2s": 4, "K9s": 4, "K8s": 4,
	"Q9s": 4, "QJo": 4, "J9s": 4, "KTo": 4, "QTo": 4, "JTo": 4, "T9s": 4, "T8s": 4, "A9o": 4,
	"98s": 4, "97s": 4, "87s": 4, "76s": 4, "66": 4, "65s": 4, "55": 4, "54s": 4, "44": 4, "33": 4,
	"22": 4,
	// Tier 5
	"K7s": 5, "K6s": 5, "K5s": 5, "K4s": 5, "K3s": 5, "K2s": 5, "Q8s": 5, "Q7s": 5, "Q6s": 5,
	"Q5s": 5, "Q4s": 5, "Q3s": 5, "Q2s": 5, "J8s": 5, "J7s": 5, "J6s": 5, "J5s": 5, "J4s": 5,
	"J3s": 5, "J2s": 5, "T7s": 5, "T6s": 5, "T5s": 5, "T4s": 5, "T3s": 5, "T2s": 5, "K9o": 5,
	"Q9o": 5, "J9o": 5, "T9o": 5, "96s": 5, "95s": 5, "94s": 5, "93s": 5, "92s": 5, "A8o": 5,
	"K8o": 5, "Q8o": 5, "J8o": 5, "T8o": 5, "98o": 5, "86s": 5, "85s": 5, "84s": 5, "83s": 5,
	"82s": 5, "A7o": 5, "K7o": 5, "Q7o": 5, "J7o": 5, "T7o": 5, "97o": 5, "87o": 5, "75s": 5,
	"74s": 5, "73s": 5, "72s": 5, "A6o": 5, "K6o": 5, "Q6o": 5, "J6o": 5, "T6o": 5, "96o": 5,
	"86o": 5, "76o": 5, "64s": 5, "63s": 5, "62s": 5, "A5o": 5, "K5o": 5, "Q5o": 5, "J5o": 5,
	"T5o": 5, "95o": 5, "85o": 5, "75o": 5, "65o": 5, "53s": 5, "52s": 5, "A4o": 5, "K4o": 5,
	"Q4o": 5, "J4o": 5, "T4o": 5, "94o": 5, "84o": 5, "74o": 5, "64o": 5, "54o": 5, "43s": 5,
	"42s": 5, "A3o": 5, "K3o": 5, "Q3o": 5, "J3o": 5, "T3o": 5, "93o": 5, "83o": 5, "73o": 5,
	"63o": 5, "53o": 5, "43o": 5, "32s": 5, "A2o": 5, "K2o": 5, "Q2o": 5, "J2o": 5, "T2o": 5,
	"92o": 5, "82o": 5, "72o": 5, "62o": 5, "52o": 5, "42o": 5, "32o": 5,
}

// StrengthOf returns the tier for a hand key.
func StrengthOf(k HandKey) (Tier, error) {
	tier, ok := handTiers[k]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHandKey, string(k))
	}
	return tier, nil
}

// KeysInTier returns every key in tier t, in grid order.
func KeysInTier(t Tier) []HandKey {
	var keys []HandKey
	for _, k := range AllHandKeys() {
		if handTiers[k] == t {
			keys = append(keys, k)
		}
	}
	return keys
}
