package preflop

import (
	"errors"
	"fmt"
)

// Blinds are the forced bets, in chips.
type Blinds struct {
	Small int
	Big   int
}

// DefaultBlinds are used when no configuration overrides them.
var DefaultBlinds = Blinds{Small: 5, Big: 10}

// Category is the kind of pre-flop action that happened before the hero acts.
type Category int

const (
	Unopened Category = iota
	Limped
	Raised
	ThreeBet
	FourBet
)

// String returns the category label.
func (c Category) String() string {
	switch c {
	case Unopened:
		return "Unopened"
	case Limped:
		return "Limped"
	case Raised:
		return "Raised"
	case ThreeBet:
		return "3-Bet"
	case FourBet:
		return "4-Bet"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// minRaises is the fewest raises a category can have seen.
func (c Category) minRaises() int {
	switch c {
	case Raised:
		return 1
	case ThreeBet:
		return 2
	case FourBet:
		return 3
	default:
		return 0
	}
}

// Scenario ids in the default catalog.
const (
	FoldedToYou    = "folded-to-you"
	OneLimper      = "one-limper"
	TwoLimpers     = "two-limpers"
	FacingRaise    = "facing-raise"
	RaiseAndCaller = "raise-and-caller"
	Facing3Bet     = "facing-3bet"
	Facing4Bet     = "facing-4bet"
)

// Scenario is a synthetic "action so far" before the hero acts.
type Scenario struct {
	ID           string
	Name         string
	Category     Category
	RaisesAhead  int
	CallersAhead int
	Pot          int
	ToCall       int
	LastRaise    int
}

// Catalog is the fixed set of scenarios a round can be drawn from.
type Catalog struct {
	Blinds    Blinds
	Scenarios []Scenario
}

var (
	errEmptyCatalog     = errors.New("catalog has no scenarios")
	errCategoryMismatch = errors.New("scenario category disagrees with raises ahead")
)

// NewCatalog builds the standard catalog for the given blinds. Raise sizes follow
// a 3x open, a 3x re-raise and a 2.2x four-bet.
func NewCatalog(b Blinds) *Catalog {
	dead := b.Small + b.Big
	open := 3 * b.Big
	threeBet := 3 * open
	fourBet := threeBet * 22 / 10

	return &Catalog{
		Blinds: b,
		Scenarios: []Scenario{
			{
				ID: FoldedToYou, Name: "Folded to you", Category: Unopened,
				Pot: dead, ToCall: b.Big,
			},
			{
				ID: OneLimper, Name: "One limper", Category: Limped, CallersAhead: 1,
				Pot: dead + b.Big, ToCall: b.Big,
			},
			{
				ID: TwoLimpers, Name: "Two limpers", Category: Limped, CallersAhead: 2,
				Pot: dead + 2*b.Big, ToCall: b.Big,
			},
			{
				ID: FacingRaise, Name: "Facing a raise", Category: Raised, RaisesAhead: 1,
				Pot: dead + open, ToCall: open, LastRaise: open,
			},
			{
				ID: RaiseAndCaller, Name: "Raise and a caller", Category: Raised, RaisesAhead: 1, CallersAhead: 1,
				Pot: dead + 2*open, ToCall: open, LastRaise: open,
			},
			{
				ID: Facing3Bet, Name: "Facing a 3-bet", Category: ThreeBet, RaisesAhead: 2,
				Pot: dead + open + threeBet, ToCall: threeBet, LastRaise: threeBet,
			},
			{
				ID: Facing4Bet, Name: "Facing a 4-bet", Category: FourBet, RaisesAhead: 3,
				Pot: dead + open + threeBet + fourBet, ToCall: fourBet, LastRaise: fourBet,
			},
		},
	}
}

// Validate checks the authoring invariants: category agrees with raises ahead,
// amounts are sane and every position has at least one eligible scenario.
func (c *Catalog) Validate() error {
	if len(c.Scenarios) == 0 {
		return errEmptyCatalog
	}
	for _, s := range c.Scenarios {
		if s.RaisesAhead < s.Category.minRaises() {
			return fmt.Errorf("%s: %w", s.ID, errCategoryMismatch)
		}
		if s.Category == Unopened && (s.RaisesAhead != 0 || s.CallersAhead != 0) {
			return fmt.Errorf("%s: %w", s.ID, errCategoryMismatch)
		}
		if s.Category == Limped && (s.RaisesAhead != 0 || s.CallersAhead == 0) {
			return fmt.Errorf("%s: %w", s.ID, errCategoryMismatch)
		}
		if s.RaisesAhead > 0 && s.LastRaise <= 0 {
			return fmt.Errorf("%s: raised scenario needs a last raise", s.ID)
		}
		if s.Pot <= 0 || s.ToCall <= 0 {
			return fmt.Errorf("%s: pot and amount to call must be positive", s.ID)
		}
	}
	for _, p := range Positions {
		if len(c.ForPosition(p)) == 0 {
			return fmt.Errorf("no scenario eligible for %s", p)
		}
	}
	return nil
}

// Get returns the scenario with the given id.
func (c *Catalog) Get(id string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// ForPosition returns the scenarios that can be dealt to a seat. Nobody acts
// before UTG, so UTG only ever sees an unopened pot; the Big Blind is only reached
// once somebody has limped or raised.
func (c *Catalog) ForPosition(p Position) []Scenario {
	var out []Scenario
	for _, s := range c.Scenarios {
		if Eligible(p, s) {
			out = append(out, s)
		}
	}
	return out
}

// Eligible reports whether scenario s can occur for seat p.
func Eligible(p Position, s Scenario) bool {
	unopened := s.RaisesAhead == 0 && s.CallersAhead == 0
	switch p {
	case UTG:
		return unopened
	case BigBlind:
		return !unopened
	default:
		return true
	}
}
