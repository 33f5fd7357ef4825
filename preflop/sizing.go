package preflop

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
)

// SizingKind names the kind of raise a scenario calls for.
type SizingKind int

const (
	OpenRaise SizingKind = iota
	IsolationRaise
	ThreeBetRaise
	FourBetRaise
)

// String returns the sizing kind label.
func (k SizingKind) String() string {
	switch k {
	case OpenRaise:
		return "open-raise"
	case IsolationRaise:
		return "isolation raise"
	case ThreeBetRaise:
		return "3-bet"
	case FourBetRaise:
		return "4-bet"
	default:
		return fmt.Sprintf("SizingKind(%d)", int(k))
	}
}

// SizingConfig holds the raise multipliers. Open and isolation raises are
// multiples of the big blind; re-raises are multiples of the last raise.
type SizingConfig struct {
	OpenMultiple      float64
	PerCallerMultiple float64
	ThreeBetMultiple  float64
	FourBetMultiple   float64
	FourBetMin        float64
	FourBetMax        float64
	// Band is the fractional tolerance either side of open, isolation and 3-bet targets.
	Band float64
}

// DefaultSizing returns the standard multipliers.
func DefaultSizing() SizingConfig {
	return SizingConfig{
		OpenMultiple:      3.0,
		PerCallerMultiple: 1.0,
		ThreeBetMultiple:  3.0,
		FourBetMultiple:   2.3,
		FourBetMin:        2.2,
		FourBetMax:        2.5,
		Band:              1.0 / 6.0,
	}
}

// Validate checks that the multipliers describe a usable band.
func (c SizingConfig) Validate() error {
	switch {
	case c.OpenMultiple <= 1 || c.ThreeBetMultiple <= 1 || c.FourBetMultiple <= 1:
		return fmt.Errorf("raise multiples must be greater than 1")
	case c.PerCallerMultiple < 0:
		return fmt.Errorf("per caller multiple must not be negative")
	case c.Band <= 0 || c.Band >= 1:
		return fmt.Errorf("band must be between 0 and 1, got %v", c.Band)
	case c.FourBetMin > c.FourBetMultiple || c.FourBetMax < c.FourBetMultiple:
		return fmt.Errorf("4-bet multiple %v outside [%v, %v]", c.FourBetMultiple, c.FourBetMin, c.FourBetMax)
	}
	return nil
}

// Sizing is the correct raise-to amount and the accepted band around it, in chips.
type Sizing struct {
	Kind     SizingKind
	Amount   int
	Min      int
	Max      int
	Multiple float64
	Unit     int
}

// Contains reports whether amount is inside the accepted band.
func (s Sizing) Contains(amount int) bool {
	return amount >= s.Min && amount <= s.Max
}

// SizingOption is one raise button offered to the user.
type SizingOption struct {
	Amount   int
	Multiple float64
	Label    string
	// Standard marks the correct amount for the scenario.
	Standard bool
}

// CorrectSizing returns the target raise and band for a scenario. It is defined
// for every scenario; callers only need it when the answer is Raise.
func (p *Policy) CorrectSizing(s Scenario) Sizing {
	cfg := p.sizing
	callers := float64(s.CallersAhead)

	var sz Sizing
	switch {
	case s.RaisesAhead == 0:
		sz.Unit = p.blinds.Big
		sz.Kind = OpenRaise
		if s.CallersAhead > 0 {
			sz.Kind = IsolationRaise
		}
		sz.Multiple = cfg.OpenMultiple + callers*cfg.PerCallerMultiple
	case s.RaisesAhead == 1:
		sz.Unit = s.LastRaise
		sz.Kind = ThreeBetRaise
		sz.Multiple = cfg.ThreeBetMultiple + callers*cfg.PerCallerMultiple
	default:
		sz.Unit = s.LastRaise
		sz.Kind = FourBetRaise
		sz.Multiple = cfg.FourBetMultiple
	}
	if sz.Unit <= 0 {
		sz.Unit = p.blinds.Big
	}

	lo, hi := sz.Multiple*(1-cfg.Band), sz.Multiple*(1+cfg.Band)
	if sz.Kind == FourBetRaise {
		lo, hi = cfg.FourBetMin, cfg.FourBetMax
	}

	sz.Amount = chips(sz.Multiple, sz.Unit)
	sz.Min = chips(lo, sz.Unit)
	sz.Max = chips(hi, sz.Unit)
	return sz
}

const sizeOptionCount = 4

// Distractor labels, nearest to the correct size first.
var (
	smallerLabels = [...]string{"Small", "Tiny", "Minimum"}
	largerLabels  = [...]string{"Large", "Huge", "Overbet"}
)

// SizingOptions returns four raise buttons in ascending order: the correct amount
// plus three distractors that fall outside its band. The correct amount is labelled
// Standard and the distractors are named by their distance from it.
func (p *Policy) SizingOptions(s Scenario) []SizingOption {
	correct := p.CorrectSizing(s)
	opts := []SizingOption{{Amount: correct.Amount, Multiple: correct.Multiple, Standard: true}}

	seen := map[int]bool{correct.Amount: true}
	add := func(m float64) {
		amount := chips(m, correct.Unit)
		if len(opts) == sizeOptionCount || seen[amount] || correct.Contains(amount) {
			return
		}
		seen[amount] = true
		opts = append(opts, SizingOption{Amount: amount, Multiple: m})
	}

	add(2)
	add(3)
	for m := math.Floor(correct.Multiple) + 1; len(opts) < sizeOptionCount && m < 100; m++ {
		add(m)
	}

	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Amount < opts[j].Amount
	})

	std := slices.IndexFunc(opts, func(o SizingOption) bool { return o.Standard })
	for i := range opts {
		name := "Standard"
		switch {
		case i < std:
			name = smallerLabels[std-i-1]
		case i > std:
			name = largerLabels[i-std-1]
		}
		opts[i].Label = fmt.Sprintf("%s (%sx)", name, strconv.FormatFloat(opts[i].Multiple, 'f', -1, 64))
	}
	return opts
}

func chips(multiple float64, unit int) int {
	return int(math.Round(multiple * float64(unit)))
}
