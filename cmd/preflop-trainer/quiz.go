package main

import (
	"fmt"
	"strings"

	"github.com/lox/preflop-trainer/poker"
	"github.com/lox/preflop-trainer/preflop"
	"github.com/lox/preflop-trainer/trainer"
)

type QuizCmd struct {
	Hand     string `arg:"" help:"Hand as a key (AKs, T9o, QQ) or two cards (AsKd)"`
	Position string `arg:"" help:"Seat: utg, mp, co, btn, sb or bb"`
	Scenario string `arg:"" help:"Scenario id, e.g. folded-to-you, one-limper, facing-3bet"`
}

func (c *QuizCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg)

	key, err := parseHand(c.Hand)
	if err != nil {
		return err
	}
	pos, err := preflop.ParsePosition(c.Position)
	if err != nil {
		return err
	}
	catalog := preflop.NewCatalog(cfg.PolicyBlinds())
	scenario, ok := catalog.Get(c.Scenario)
	if !ok {
		return fmt.Errorf("unknown scenario %q (have %s)", c.Scenario, strings.Join(scenarioIDs(catalog), ", "))
	}
	if !preflop.Eligible(pos, scenario) {
		return fmt.Errorf("%w: %s cannot face %s", trainer.ErrInvalidScenarioForPosition, pos, scenario.ID)
	}

	policy := newPolicy(cfg, logger)
	d := policy.Decide(key, pos, scenario)
	freeCheck := scenario.ToCall-pos.Posted(cfg.PolicyBlinds()) <= 0

	fmt.Printf("%s (%s, tier %d) in the %s, %s\n", preflop.DisplayName(key), d.Tier, int(d.Tier), pos, scenario.Name)
	fmt.Printf("Answer: %s\n", d.Action.Label(freeCheck))
	fmt.Printf("Rule:   %s\n", d.Rule)
	fmt.Printf("Why:    %s\n", d.Reasoning)

	if d.Action == preflop.Raise {
		sizing := policy.CorrectSizing(scenario)
		fmt.Printf("Size:   %s to %d (accept %d-%d)\n", sizing.Kind, sizing.Amount, sizing.Min, sizing.Max)
		for _, opt := range policy.SizingOptions(scenario) {
			marker := " "
			if sizing.Contains(opt.Amount) {
				marker = "*"
			}
			fmt.Printf("  %s %-16s %d\n", marker, opt.Label, opt.Amount)
		}
	}
	return nil
}

// parseHand accepts a hand key or a pair of cards.
func parseHand(s string) (preflop.HandKey, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 {
		a, errA := poker.ParseCard(s[:2])
		b, errB := poker.ParseCard(s[2:])
		if errA == nil && errB == nil {
			if a == b {
				return "", fmt.Errorf("hand %q repeats a card", s)
			}
			return preflop.Classify(a, b), nil
		}
	}
	return preflop.ParseHandKey(s)
}

func scenarioIDs(c *preflop.Catalog) []string {
	ids := make([]string, len(c.Scenarios))
	for i, s := range c.Scenarios {
		ids[i] = s.ID
	}
	return ids
}
