package preflop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := NewCatalog(DefaultBlinds)
	require.NoError(t, c.Validate())
	require.Len(t, c.Scenarios, 7)

	tests := []struct {
		id                           string
		raises, callers, pot, toCall int
		category                     Category
	}{
		{FoldedToYou, 0, 0, 15, 10, Unopened},
		{OneLimper, 0, 1, 25, 10, Limped},
		{TwoLimpers, 0, 2, 35, 10, Limped},
		{FacingRaise, 1, 0, 45, 30, Raised},
		{RaiseAndCaller, 1, 1, 75, 30, Raised},
		{Facing3Bet, 2, 0, 135, 90, ThreeBet},
		{Facing4Bet, 3, 0, 333, 198, FourBet},
	}
	for _, tt := range tests {
		s, ok := c.Get(tt.id)
		require.True(t, ok, tt.id)
		assert.Equal(t, tt.raises, s.RaisesAhead, tt.id)
		assert.Equal(t, tt.callers, s.CallersAhead, tt.id)
		assert.Equal(t, tt.pot, s.Pot, tt.id)
		assert.Equal(t, tt.toCall, s.ToCall, tt.id)
		assert.Equal(t, tt.category, s.Category, tt.id)
	}

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCatalogForPosition(t *testing.T) {
	c := NewCatalog(DefaultBlinds)

	utg := c.ForPosition(UTG)
	require.Len(t, utg, 1)
	assert.Equal(t, FoldedToYou, utg[0].ID)

	bb := c.ForPosition(BigBlind)
	assert.Len(t, bb, 6)
	for _, s := range bb {
		assert.NotEqual(t, FoldedToYou, s.ID)
	}

	assert.Len(t, c.ForPosition(Button), 7)
}

func TestCatalogValidate(t *testing.T) {
	t.Run("category mismatch", func(t *testing.T) {
		c := NewCatalog(DefaultBlinds)
		c.Scenarios[5].RaisesAhead = 1 // facing-3bet with a single raise
		assert.ErrorIs(t, c.Validate(), errCategoryMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, (&Catalog{}).Validate(), errEmptyCatalog)
	})

	t.Run("no scenario for big blind", func(t *testing.T) {
		c := NewCatalog(DefaultBlinds)
		s, _ := c.Get(FoldedToYou)
		c.Scenarios = []Scenario{s}
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Big Blind")
	})

	t.Run("raise without size", func(t *testing.T) {
		c := NewCatalog(DefaultBlinds)
		c.Scenarios[3].LastRaise = 0
		assert.Error(t, c.Validate())
	})
}
