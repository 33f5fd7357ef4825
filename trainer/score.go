package trainer

import (
	"time"

	"github.com/lox/preflop-trainer/preflop"
)

// Decision is what the user submitted for a round. Amount is only read for Raise.
type Decision struct {
	Action preflop.Action
	Amount int
}

// VerdictTier grades a decision.
type VerdictTier int

const (
	Incorrect VerdictTier = iota
	Partial
	Correct
)

func (t VerdictTier) String() string {
	switch t {
	case Correct:
		return "Correct"
	case Partial:
		return "Partial"
	default:
		return "Incorrect"
	}
}

// SizingMiss says which side of the band a raise landed on.
type SizingMiss int

const (
	SizingInBand SizingMiss = iota
	TooSmall
	TooLarge
)

func (m SizingMiss) String() string {
	switch m {
	case TooSmall:
		return "too small"
	case TooLarge:
		return "too large"
	default:
		return "in band"
	}
}

// Verdict is the scored outcome of one decision.
type Verdict struct {
	Tier          VerdictTier
	ActionCorrect bool
	// SizingJudged is set when the user raised and the answer was Raise.
	SizingJudged  bool
	SizingCorrect bool
	Miss          SizingMiss

	Explanation       string
	SizingExplanation string

	Elapsed time.Duration
}

// ScoreState holds the running counters. The caller owns it and passes it back
// in on every call.
type ScoreState struct {
	Correct       int
	Total         int
	SizingCorrect int
	SizingTotal   int
	Streak        int
	BestStreak    int
}

// Accuracy returns the fraction of rounds with the right action.
func (s ScoreState) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// SizingAccuracy returns the fraction of submitted raises that were in band.
func (s ScoreState) SizingAccuracy() float64 {
	if s.SizingTotal == 0 {
		return 0
	}
	return float64(s.SizingCorrect) / float64(s.SizingTotal)
}

// Score grades d against the round and returns the verdict with the updated
// counters. Every call counts: callers must score each round at most once.
func Score(d Decision, r *Round, state ScoreState) (Verdict, ScoreState) {
	state.Total++
	if d.Action == preflop.Raise {
		state.SizingTotal++
	}

	v := Verdict{ActionCorrect: d.Action == r.Answer}

	if v.ActionCorrect && d.Action == preflop.Raise {
		v.SizingJudged = true
		if sizing, err := r.CorrectSizing(); err == nil {
			switch {
			case d.Amount < sizing.Min:
				v.Miss = TooSmall
			case d.Amount > sizing.Max:
				v.Miss = TooLarge
			default:
				v.SizingCorrect = true
				state.SizingCorrect++
			}
		}
	}

	switch {
	case !v.ActionCorrect:
		v.Tier = Incorrect
		state.Streak = 0
	case v.SizingJudged && !v.SizingCorrect:
		v.Tier = Partial
		state.Correct++
		state.Streak = 0
	default:
		v.Tier = Correct
		state.Correct++
		state.Streak++
		state.BestStreak = max(state.BestStreak, state.Streak)
	}

	v.Explanation = explain(d, r, v)
	if v.SizingJudged {
		v.SizingExplanation = explainSizing(d, r, v)
	}
	return v, state
}
