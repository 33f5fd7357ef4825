package trainer

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/roundid"
	"github.com/lox/preflop-trainer/poker"
	"github.com/lox/preflop-trainer/preflop"
)

func newTestDealer(t *testing.T, seed int64, clock quartz.Clock) *Dealer {
	t.Helper()
	d, err := NewDealer(randutil.New(seed), preflop.NewPolicy(), preflop.NewCatalog(preflop.DefaultBlinds), WithDealerClock(clock))
	require.NoError(t, err)
	return d
}

func hand(t *testing.T, a, b string) preflop.Hand {
	t.Helper()
	return preflop.NewHand(poker.MustParseCard(a), poker.MustParseCard(b))
}

func scenario(t *testing.T, d *Dealer, id string) preflop.Scenario {
	t.Helper()
	s, ok := d.Catalog().Get(id)
	require.True(t, ok, "scenario %s", id)
	return s
}

func TestDealPositionConsistency(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 42, quartz.NewMock(t))

	seen := make(map[preflop.Position]int)
	for range 3000 {
		r, err := d.Deal()
		require.NoError(t, err)
		seen[r.Position]++

		unopened := r.Scenario.RaisesAhead == 0 && r.Scenario.CallersAhead == 0
		if r.Position == preflop.UTG {
			assert.Equal(t, preflop.FoldedToYou, r.Scenario.ID, "UTG dealt %s", r.Scenario.ID)
		}
		if r.Position == preflop.BigBlind {
			assert.False(t, unopened, "Big Blind dealt an unopened pot")
		}
		assert.NotEqual(t, r.Hand.A, r.Hand.B, "duplicate card")
	}

	for _, p := range preflop.Positions {
		assert.Positive(t, seen[p], "position %s never dealt", p)
	}
}

func TestDealFreeCheckNeverFolds(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 7, quartz.NewMock(t))

	freeChecks := 0
	for range 3000 {
		r, err := d.Deal()
		require.NoError(t, err)
		if !r.IsFreeCheck {
			continue
		}
		freeChecks++
		assert.Equal(t, preflop.BigBlind, r.Position)
		assert.NotEqual(t, preflop.Fold, r.Answer, "%s folded on a free check", r.Key)
		assert.NotContains(t, r.Actions(), preflop.Fold)
	}
	assert.Positive(t, freeChecks)
}

func TestDealSizingOnlyForRaise(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 11, quartz.NewMock(t))

	for range 1000 {
		r, err := d.Deal()
		require.NoError(t, err)

		sizing, err := r.CorrectSizing()
		if r.Answer == preflop.Raise {
			require.NoError(t, err)
			assert.True(t, sizing.Contains(sizing.Amount))
		} else {
			assert.ErrorIs(t, err, ErrSizingNotApplicable)
		}
		assert.Len(t, r.Options, 4)
	}
}

func TestDealDeterministic(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	a := newTestDealer(t, 99, clock)
	b := newTestDealer(t, 99, clock)

	for range 50 {
		ra, err := a.Deal()
		require.NoError(t, err)
		rb, err := b.Deal()
		require.NoError(t, err)

		assert.Equal(t, ra.ID, rb.ID)
		assert.Equal(t, ra.Key, rb.Key)
		assert.Equal(t, ra.Position, rb.Position)
		assert.Equal(t, ra.Scenario.ID, rb.Scenario.ID)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 1, quartz.NewMock(t))

	tests := []struct {
		name      string
		hand      preflop.Hand
		position  preflop.Position
		scenario  string
		answer    preflop.Action
		toCall    int
		freeCheck bool
	}{
		{"aces under the gun", hand(t, "As", "Ah"), preflop.UTG, preflop.FoldedToYou, preflop.Raise, 10, false},
		{"seven deuce middle", hand(t, "7c", "2d"), preflop.Middle, preflop.FoldedToYou, preflop.Fold, 10, false},
		{"king queen suited facing 3-bet", hand(t, "Kh", "Qh"), preflop.Button, preflop.Facing3Bet, preflop.Call, 90, false},
		{"small blind folds trash", hand(t, "7c", "2d"), preflop.SmallBlind, preflop.FoldedToYou, preflop.Fold, 5, false},
		{"big blind option", hand(t, "7c", "2d"), preflop.BigBlind, preflop.OneLimper, preflop.Call, 0, true},
		{"big blind facing raise", hand(t, "7c", "2d"), preflop.BigBlind, preflop.FacingRaise, preflop.Fold, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := d.Build(tt.hand, tt.position, scenario(t, d, tt.scenario))
			assert.Equal(t, tt.answer, r.Answer, "rule %s", r.Rule)
			assert.Equal(t, tt.toCall, r.ToCall)
			assert.Equal(t, tt.freeCheck, r.IsFreeCheck)
			assert.NoError(t, roundid.Validate(r.ID))
		})
	}
}

func TestBuildAcesSizing(t *testing.T) {
	t.Parallel()
	d := newTestDealer(t, 1, quartz.NewMock(t))

	r := d.Build(hand(t, "As", "Ad"), preflop.UTG, scenario(t, d, preflop.FoldedToYou))
	sizing, err := r.CorrectSizing()
	require.NoError(t, err)

	assert.Equal(t, 30, sizing.Amount)
	assert.Equal(t, 25, sizing.Min)
	assert.Equal(t, 35, sizing.Max)
	assert.Equal(t, "Pocket Aces", r.HandName())
}

func TestNewDealerRejectsBadCatalog(t *testing.T) {
	t.Parallel()
	catalog := preflop.NewCatalog(preflop.DefaultBlinds)
	var kept []preflop.Scenario
	for _, s := range catalog.Scenarios {
		if s.ID != preflop.FoldedToYou {
			kept = append(kept, s)
		}
	}
	catalog.Scenarios = kept

	_, err := NewDealer(randutil.New(1), preflop.NewPolicy(), catalog)
	assert.Error(t, err)
}
