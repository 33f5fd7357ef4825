package trainer

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"github.com/lox/preflop-trainer/preflop"
)

func TestScore(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 1, quartz.NewMock(t))
	aces := d.Build(hand(t, "As", "Ah"), preflop.UTG, scenario(t, d, preflop.FoldedToYou))
	trash := d.Build(hand(t, "7c", "2d"), preflop.Middle, scenario(t, d, preflop.FoldedToYou))

	tests := []struct {
		name     string
		round    *Round
		decision Decision
		tier     VerdictTier
		miss     SizingMiss
		want     ScoreState
	}{
		{
			name:     "raise in band",
			round:    aces,
			decision: Decision{Action: preflop.Raise, Amount: 30},
			tier:     Correct,
			want:     ScoreState{Correct: 1, Total: 1, SizingCorrect: 1, SizingTotal: 1, Streak: 1, BestStreak: 1},
		},
		{
			name:     "band edge counts",
			round:    aces,
			decision: Decision{Action: preflop.Raise, Amount: 35},
			tier:     Correct,
			want:     ScoreState{Correct: 1, Total: 1, SizingCorrect: 1, SizingTotal: 1, Streak: 1, BestStreak: 1},
		},
		{
			name:     "raise too large",
			round:    aces,
			decision: Decision{Action: preflop.Raise, Amount: 60},
			tier:     Partial,
			miss:     TooLarge,
			want:     ScoreState{Correct: 1, Total: 1, SizingTotal: 1},
		},
		{
			name:     "raise too small",
			round:    aces,
			decision: Decision{Action: preflop.Raise, Amount: 20},
			tier:     Partial,
			miss:     TooSmall,
			want:     ScoreState{Correct: 1, Total: 1, SizingTotal: 1},
		},
		{
			name:     "fold aces",
			round:    aces,
			decision: Decision{Action: preflop.Fold},
			tier:     Incorrect,
			want:     ScoreState{Total: 1},
		},
		{
			name:     "fold trash",
			round:    trash,
			decision: Decision{Action: preflop.Fold},
			tier:     Correct,
			want:     ScoreState{Correct: 1, Total: 1, Streak: 1, BestStreak: 1},
		},
		{
			name:     "raise trash counts toward sizing total",
			round:    trash,
			decision: Decision{Action: preflop.Raise, Amount: 30},
			tier:     Incorrect,
			want:     ScoreState{Total: 1, SizingTotal: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, got := Score(tt.decision, tt.round, ScoreState{})
			assert.Equal(t, tt.tier, v.Tier)
			assert.Equal(t, tt.miss, v.Miss)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, v.Explanation)
			assert.Equal(t, v.SizingJudged, v.SizingExplanation != "")
		})
	}
}

func TestScoreStreaks(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 1, quartz.NewMock(t))
	aces := d.Build(hand(t, "As", "Ah"), preflop.UTG, scenario(t, d, preflop.FoldedToYou))

	var state ScoreState
	for range 3 {
		_, state = Score(Decision{Action: preflop.Raise, Amount: 30}, aces, state)
	}
	assert.Equal(t, 3, state.Streak)

	// Right action, wrong size still breaks the streak.
	_, state = Score(Decision{Action: preflop.Raise, Amount: 100}, aces, state)
	assert.Equal(t, 0, state.Streak)
	assert.Equal(t, 3, state.BestStreak)
	assert.Equal(t, 4, state.Correct)
	assert.Equal(t, 3, state.SizingCorrect)
	assert.Equal(t, 4, state.SizingTotal)
	assert.InDelta(t, 0.75, state.SizingAccuracy(), 1e-9)

	_, state = Score(Decision{Action: preflop.Call}, aces, state)
	assert.Equal(t, 0, state.Streak)
	assert.Equal(t, 5, state.Total)
	assert.InDelta(t, 0.8, state.Accuracy(), 1e-9)
}

func TestScoreCountsEveryCall(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 1, quartz.NewMock(t))
	trash := d.Build(hand(t, "7c", "2d"), preflop.Middle, scenario(t, d, preflop.FoldedToYou))

	decision := Decision{Action: preflop.Fold}
	_, state := Score(decision, trash, ScoreState{})
	_, state = Score(decision, trash, state)

	assert.Equal(t, 2, state.Total, "scoring the same round twice double counts")
	assert.Equal(t, 2, state.Correct)
}

func TestExplanation(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 1, quartz.NewMock(t))

	option := d.Build(hand(t, "7c", "2d"), preflop.BigBlind, scenario(t, d, preflop.TwoLimpers))
	v, _ := Score(Decision{Action: preflop.Raise, Amount: 50}, option, ScoreState{})
	assert.Contains(t, v.Explanation, "The textbook play is Check, not Raise")
	assert.Contains(t, v.Explanation, "Seven-Two Offsuit")
	assert.Contains(t, v.Explanation, "behind 2 limpers")

	aces := d.Build(hand(t, "As", "Ah"), preflop.UTG, scenario(t, d, preflop.FoldedToYou))
	v, _ = Score(Decision{Action: preflop.Raise, Amount: 60}, aces, ScoreState{})
	assert.Contains(t, v.Explanation, "too large")
	assert.Contains(t, v.SizingExplanation, "Your raise to 60 is too large")
	assert.Contains(t, v.SizingExplanation, "3x the big blind to 30 (anything from 25 to 35)")
}
