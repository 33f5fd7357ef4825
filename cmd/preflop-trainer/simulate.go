package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/statistics"
	"github.com/lox/preflop-trainer/preflop"
	"github.com/lox/preflop-trainer/trainer"
)

type SimulateCmd struct {
	Rounds  int    `short:"n" default:"1000" help:"Number of rounds to play"`
	Student string `default:"random" enum:"policy,random,tight" help:"Automated student: policy, random or tight"`
}

// student answers a round.
type student func(r *trainer.Round) trainer.Decision

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	logger := stderrLogger(cfg)

	dealer, err := newDealer(cfg, logger)
	if err != nil {
		return err
	}
	session := trainer.NewSession(dealer)

	// The student gets its own stream so its choices do not shift the deals
	answer := newStudent(c.Student, randutil.New(randutil.Resolve(cfg.Seed)+1))

	for range c.Rounds {
		round, err := session.Deal()
		if err != nil {
			return err
		}
		if _, err := session.Submit(answer(round)); err != nil {
			return fmt.Errorf("round %s: %w", round.ID, err)
		}
	}

	stats := session.Stats()
	if err := stats.Validate(); err != nil {
		return err
	}
	printStats(c.Student, session.Score(), stats)
	return nil
}

func newStudent(name string, rng *rand.Rand) student {
	switch name {
	case "policy":
		return func(r *trainer.Round) trainer.Decision {
			d := trainer.Decision{Action: r.Answer}
			if sizing, err := r.CorrectSizing(); err == nil {
				d.Amount = sizing.Amount
			}
			return d
		}
	case "tight":
		return func(r *trainer.Round) trainer.Decision {
			switch {
			case r.Tier <= preflop.TierStrong:
				return trainer.Decision{Action: preflop.Raise, Amount: standardOption(r)}
			case r.Tier == preflop.TierPlayable || r.IsFreeCheck:
				return trainer.Decision{Action: preflop.Call}
			default:
				return trainer.Decision{Action: preflop.Fold}
			}
		}
	default:
		return func(r *trainer.Round) trainer.Decision {
			actions := r.Actions()
			d := trainer.Decision{Action: actions[rng.IntN(len(actions))]}
			if d.Action == preflop.Raise {
				d.Amount = r.Options[rng.IntN(len(r.Options))].Amount
			}
			return d
		}
	}
}

func standardOption(r *trainer.Round) int {
	for _, opt := range r.Options {
		if opt.Standard {
			return opt.Amount
		}
	}
	return r.Options[0].Amount
}

func printStats(name string, score trainer.ScoreState, stats *statistics.Statistics) {
	lo, hi := stats.ConfidenceInterval95()
	fmt.Printf("Student %s over %d rounds\n", name, score.Total)
	fmt.Printf("  Action accuracy: %.1f%% (95%% CI %.1f%%-%.1f%%)\n", 100*stats.Accuracy(), 100*lo, 100*hi)
	fmt.Printf("  Sizing accuracy: %.1f%% of %d judged raises (%d raises submitted)\n",
		100*stats.SizingAccuracy(), stats.SizingRounds, score.SizingTotal)
	fmt.Printf("  Best streak:     %d\n", score.BestStreak)
	if pos, acc, ok := stats.Weakest(10); ok {
		fmt.Printf("  Weakest seat:    %s (%.1f%%)\n", pos, 100*acc)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BREAKDOWN\tROUNDS\tACCURACY")
	for _, p := range preflop.Positions {
		if b, ok := stats.ByPosition[p]; ok {
			fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", p, b.Rounds, 100*b.Accuracy())
		}
	}
	for _, cat := range sortedKeys(stats.ByCategory) {
		b := stats.ByCategory[cat]
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", cat, b.Rounds, 100*b.Accuracy())
	}
	for _, t := range sortedKeys(stats.ByTier) {
		b := stats.ByTier[t]
		fmt.Fprintf(w, "Tier %d (%s)\t%d\t%.1f%%\n", int(t), t, b.Rounds, 100*b.Accuracy())
	}
	w.Flush()
}

func sortedKeys[K ~int](m map[K]*statistics.Bucket) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
