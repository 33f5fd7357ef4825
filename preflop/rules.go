package preflop

import "github.com/lox/preflop-trainer/poker"

// Situation is everything a rule may look at.
type Situation struct {
	Key      HandKey
	Tier     Tier
	Position Position
	Scenario Scenario
}

// Rule is one line of the pre-flop chart. Rules are evaluated top-down and the
// first rule whose condition holds decides the action, so more specific rules
// must come before the general ones they override.
type Rule struct {
	Name      string
	Condition func(Situation) bool
	Action    Action
	Reasoning string
}

// fourBetValue are the tier-2 hands that keep raising against a 3-bet.
var fourBetValue = map[HandKey]bool{
	"TT":  true,
	"AQs": true,
}

// DefaultRules returns the standard chart.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "premium",
			Condition: func(s Situation) bool {
				return s.Tier == TierPremium
			},
			Action:    Raise,
			Reasoning: "Premium hands raise for value in every spot",
		},
		{
			Name: "four-bet-value",
			Condition: func(s Situation) bool {
				return s.Scenario.RaisesAhead >= 2 && fourBetValue[s.Key]
			},
			Action:    Raise,
			Reasoning: "This hand is strong enough to re-raise against a 3-bet",
		},
		{
			Name: "three-bet-flat",
			Condition: func(s Situation) bool {
				return s.Scenario.RaisesAhead >= 2 && s.Tier <= TierPlayable
			},
			Action:    Call,
			Reasoning: "Against a 3-bet only the very top of the range re-raises; good hands call",
		},
		{
			Name: "three-bet-fold",
			Condition: func(s Situation) bool {
				return s.Scenario.RaisesAhead >= 2
			},
			Action:    Fold,
			Reasoning: "Speculative hands cannot continue against this much aggression",
		},
		{
			Name: "value-raise",
			Condition: func(s Situation) bool {
				return s.Tier <= TierPlayable
			},
			Action:    Raise,
			Reasoning: "Strong hands take the initiative and build the pot",
		},
		{
			Name: "big-blind-option",
			Condition: func(s Situation) bool {
				return s.Position == BigBlind && s.Scenario.RaisesAhead == 0
			},
			Action:    Call,
			Reasoning: "The Big Blind is already invested and nobody raised, so never fold; check your option",
		},
		{
			Name: "over-limp",
			Condition: func(s Situation) bool {
				return looseSeat(s.Position) && s.Scenario.RaisesAhead == 0 &&
					s.Scenario.CallersAhead >= 1 && s.Tier >= TierSpeculative
			},
			Action:    Call,
			Reasoning: "With limpers in and no raise, weaker hands call cheaply for a multiway pot",
		},
		{
			Name: "steal",
			Condition: func(s Situation) bool {
				return looseSeat(s.Position) && s.Scenario.RaisesAhead == 0 &&
					s.Scenario.CallersAhead == 0 && s.Tier == TierSpeculative
			},
			Action:    Raise,
			Reasoning: "Folded to a late seat, speculative hands open to steal the blinds",
		},
		{
			Name: "wide-steal",
			Condition: func(s Situation) bool {
				return looseSeat(s.Position) && s.Scenario.RaisesAhead == 0 &&
					s.Scenario.CallersAhead == 0 && stealable(s.Key)
			},
			Action:    Raise,
			Reasoning: "Only the blinds are left to act, so suited or connected hands and any ace open to steal",
		},
		{
			Name: "default-fold",
			Condition: func(Situation) bool {
				return true
			},
			Action:    Fold,
			Reasoning: "This hand is too weak to play from here",
		},
	}
}

// looseSeat is a seat that may widen its range when nobody has raised.
func looseSeat(p Position) bool {
	return p.IsLate() || p == SmallBlind
}

// stealable reports whether a weak hand is still worth opening when folded to a
// loose seat.
func stealable(k HandKey) bool {
	high, low := k.Ranks()
	return k.IsSuited() || high-low == 1 || high == poker.Ace
}
