// Package trainer deals training rounds, scores submitted decisions against the
// pre-flop policy and drives the per-round state machine.
package trainer

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/preflop-trainer/preflop"
)

var (
	// ErrInvalidScenarioForPosition means no catalog scenario can be dealt to a seat.
	ErrInvalidScenarioForPosition = errors.New("no scenario valid for position")
	// ErrSizingNotApplicable means correct sizing was requested for a round whose answer is not Raise.
	ErrSizingNotApplicable = errors.New("sizing not applicable")
)

// Round is the ground truth for one dealt question. It is replaced wholesale on
// every deal and never mutated after it is built.
type Round struct {
	ID       string
	Hand     preflop.Hand
	Key      preflop.HandKey
	Tier     preflop.Tier
	Position preflop.Position
	Scenario preflop.Scenario

	Answer    preflop.Action
	Rule      string
	Reasoning string

	// sizing is set only when Answer is Raise.
	sizing *preflop.Sizing
	// Options are the raise buttons offered if the user chooses to raise.
	Options []preflop.SizingOption

	// ToCall is what this seat still owes, net of any blind already posted.
	ToCall int
	// IsFreeCheck is set when the Big Blind owes nothing: Fold is not offered and
	// Call is shown as Check.
	IsFreeCheck bool

	DealtAt time.Time
}

// CorrectSizing returns the raise band for the round.
func (r *Round) CorrectSizing() (preflop.Sizing, error) {
	if r.sizing == nil {
		return preflop.Sizing{}, fmt.Errorf("%w: answer is %s", ErrSizingNotApplicable, r.Answer)
	}
	return *r.sizing, nil
}

// HandName returns the display name for the dealt hand.
func (r *Round) HandName() string {
	return preflop.DisplayName(r.Key)
}

// Actions returns the actions offered to the user, in button order.
func (r *Round) Actions() []preflop.Action {
	if r.IsFreeCheck {
		return []preflop.Action{preflop.Call, preflop.Raise}
	}
	return []preflop.Action{preflop.Fold, preflop.Call, preflop.Raise}
}

// Offers reports whether a is one of the offered actions.
func (r *Round) Offers(a preflop.Action) bool {
	for _, offered := range r.Actions() {
		if offered == a {
			return true
		}
	}
	return false
}

// AnswerLabel returns the correct action as it appears on the button.
func (r *Round) AnswerLabel() string {
	return r.Answer.Label(r.IsFreeCheck)
}
