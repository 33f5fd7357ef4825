package chart

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/preflop"
)

func buildAll(t *testing.T, opts Options) []*Grid {
	t.Helper()
	grids, err := Build(context.Background(), preflop.NewPolicy(), preflop.NewCatalog(preflop.DefaultBlinds), opts)
	require.NoError(t, err)
	return grids
}

func TestBuildAllEligible(t *testing.T) {
	grids := buildAll(t, Options{})

	// UTG 1, BB 6, the other four seats 7 each
	assert.Len(t, grids, 1+6+4*7)
	for _, g := range grids {
		assert.True(t, preflop.Eligible(g.Position, g.Scenario), "%s in %s", g.Position, g.Scenario.ID)
	}
	assert.Equal(t, preflop.UTG, grids[0].Position)
	assert.Equal(t, preflop.BigBlind, grids[len(grids)-1].Position)
}

func TestGridMatchesPolicy(t *testing.T) {
	policy := preflop.NewPolicy()
	grids := buildAll(t, Options{Positions: []preflop.Position{preflop.Button}, Scenarios: []string{preflop.FoldedToYou}, Workers: 2})
	require.Len(t, grids, 1)
	g := grids[0]

	assert.Equal(t, preflop.HandKey("AA"), g.Cells[0][0].Key)
	assert.Equal(t, preflop.HandKey("AKs"), g.Cells[0][1].Key)
	assert.Equal(t, preflop.HandKey("AKo"), g.Cells[1][0].Key)
	assert.Equal(t, preflop.HandKey("22"), g.Cells[Size-1][Size-1].Key)

	seen := make(map[preflop.HandKey]bool)
	for _, row := range g.Cells {
		for _, c := range row {
			seen[c.Key] = true
			want := policy.Decide(c.Key, g.Position, g.Scenario)
			assert.Equal(t, want.Action, c.Action, c.Key)
		}
	}
	assert.Len(t, seen, 169)

	cell, ok := g.Cell("T9s")
	require.True(t, ok)
	assert.Equal(t, preflop.Raise, cell.Action)
}

func TestFrequencySumsToOne(t *testing.T) {
	for _, g := range buildAll(t, Options{Positions: []preflop.Position{preflop.Cutoff}}) {
		total := g.Frequency(preflop.Raise) + g.Frequency(preflop.Call) + g.Frequency(preflop.Fold)
		assert.InDelta(t, 1.0, total, 1e-9, g.Scenario.ID)
	}
}

func TestBigBlindOptionNeverFolds(t *testing.T) {
	grids := buildAll(t, Options{Positions: []preflop.Position{preflop.BigBlind}, Scenarios: []string{preflop.OneLimper, preflop.TwoLimpers}})
	require.Len(t, grids, 2)
	for _, g := range grids {
		assert.Zero(t, g.Frequency(preflop.Fold), g.Scenario.ID)
	}
}

func TestBuildNoEligible(t *testing.T) {
	_, err := Build(context.Background(), preflop.NewPolicy(), preflop.NewCatalog(preflop.DefaultBlinds), Options{
		Positions: []preflop.Position{preflop.UTG},
		Scenarios: []string{preflop.Facing3Bet},
	})
	assert.Error(t, err)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, preflop.NewPolicy(), preflop.NewCatalog(preflop.DefaultBlinds), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	grids := buildAll(t, Options{Positions: []preflop.Position{preflop.UTG}})
	require.Len(t, grids, 1)

	out := Render(grids[0])
	assert.Contains(t, out, "UTG, Folded to you")
	assert.Contains(t, out, "AKs")
	assert.Contains(t, out, "Legend")

	plain := RenderPlain(grids[0])
	lines := strings.Split(strings.TrimSpace(plain), "\n")
	require.Len(t, lines, Size+1)
	assert.True(t, strings.HasPrefix(lines[1], "R"), "AA should raise: %q", lines[1])
	assert.True(t, strings.HasSuffix(lines[Size], "F"), "22 should fold UTG: %q", lines[Size])
}
