// Package chart builds 13x13 range grids from the decision policy.
package chart

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/preflop-trainer/poker"
	"github.com/lox/preflop-trainer/preflop"
)

// Size is the number of ranks along each side of a grid.
const Size = 13

// totalCombos is the number of two-card starting hands.
const totalCombos = 1326

// Cell is one starting hand in a grid.
type Cell struct {
	Key    preflop.HandKey
	Tier   preflop.Tier
	Action preflop.Action
	Rule   string
}

// Combos returns how many card combinations the cell stands for.
func (c Cell) Combos() int {
	switch {
	case c.Key.IsPair():
		return 6
	case c.Key.IsSuited():
		return 4
	default:
		return 12
	}
}

// Grid is the policy's answer for every starting hand in one seat and scenario.
// Rows and columns run from Ace down to Two.
type Grid struct {
	Position preflop.Position
	Scenario preflop.Scenario
	Cells    [Size][Size]Cell
}

// Frequency returns the share of all starting combinations the policy plays
// with action a.
func (g *Grid) Frequency(a preflop.Action) float64 {
	combos := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Action == a {
				combos += c.Combos()
			}
		}
	}
	return float64(combos) / totalCombos
}

// Cell returns the cell for a hand key.
func (g *Grid) Cell(k preflop.HandKey) (Cell, bool) {
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Key == k {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Options filter which grids Build produces. Zero values select everything.
type Options struct {
	Positions []preflop.Position
	Scenarios []string
	Workers   int
}

// Build computes a grid for every eligible seat and scenario pair, fanning the
// work out across a bounded worker group. Grids come back in seat order, then
// catalog order.
func Build(ctx context.Context, policy *preflop.Policy, catalog *preflop.Catalog, opts Options) ([]*Grid, error) {
	positions := opts.Positions
	if len(positions) == 0 {
		positions = preflop.Positions
	}

	var jobs []*Grid
	for _, pos := range positions {
		for _, s := range catalog.ForPosition(pos) {
			if len(opts.Scenarios) > 0 && !contains(opts.Scenarios, s.ID) {
				continue
			}
			jobs = append(jobs, &Grid{Position: pos, Scenario: s})
		}
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no eligible scenario for the selected positions and scenarios")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, grid := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fill(policy, grid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func fill(policy *preflop.Policy, g *Grid) {
	for i := range Size {
		row := poker.Ace - poker.Rank(i)
		for j := range Size {
			col := poker.Ace - poker.Rank(j)
			key := preflop.GridKey(row, col)
			d := policy.Decide(key, g.Position, g.Scenario)
			g.Cells[i][j] = Cell{Key: key, Tier: d.Tier, Action: d.Action, Rule: d.Rule}
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
