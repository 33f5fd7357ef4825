package main

import (
	"context"
	"fmt"

	"github.com/lox/preflop-trainer/internal/chart"
	"github.com/lox/preflop-trainer/preflop"
)

type ChartCmd struct {
	Position []string `short:"p" help:"Seats to chart (default all)"`
	Scenario []string `short:"s" help:"Scenario ids to chart (default all)"`
	Plain    bool     `help:"Print action letters instead of coloured cells"`
	Workers  int      `help:"Number of concurrent chart builders (0 = number of CPUs)"`
}

func (c *ChartCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg)

	var positions []preflop.Position
	for _, s := range c.Position {
		p, err := preflop.ParsePosition(s)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}

	grids, err := chart.Build(context.Background(), newPolicy(cfg, logger), preflop.NewCatalog(cfg.PolicyBlinds()), chart.Options{
		Positions: positions,
		Scenarios: c.Scenario,
		Workers:   c.Workers,
	})
	if err != nil {
		return err
	}
	logger.Debug("Built charts", "count", len(grids))

	for _, g := range grids {
		if c.Plain || globals.NoColor {
			fmt.Println(chart.RenderPlain(g))
		} else {
			fmt.Println(chart.Render(g))
		}
	}
	return nil
}
