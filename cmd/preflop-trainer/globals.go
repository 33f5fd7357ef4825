package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/preflop-trainer/internal/config"
	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/preflop"
	"github.com/lox/preflop-trainer/trainer"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"preflop-trainer.hcl" type:"path"`
	Seed     int64  `help:"Seed for deterministic rounds (0 for random)"`
	LogLevel string `help:"Log level (debug|info|warn|error)"`
	NoColor  bool   `help:"Disable colour output"`
}

// load reads the config file and applies flag overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

func stderrLogger(cfg *config.Config) *log.Logger {
	return newLogger(os.Stderr, cfg)
}

func newPolicy(cfg *config.Config, logger *log.Logger) *preflop.Policy {
	return preflop.NewPolicy(
		preflop.WithLogger(logger),
		preflop.WithBlinds(cfg.PolicyBlinds()),
		preflop.WithSizing(cfg.PolicySizing()),
	)
}

// newDealer builds the policy, catalog and dealer from the config. The seed is
// logged so a session can be replayed.
func newDealer(cfg *config.Config, logger *log.Logger, opts ...trainer.DealerOption) (*trainer.Dealer, error) {
	src := randutil.NewSource(cfg.Seed)
	logger.Info("Seeded dealer", "seed", src.Seed)

	opts = append([]trainer.DealerOption{trainer.WithDealerLogger(logger)}, opts...)
	return trainer.NewDealer(src.Rand, newPolicy(cfg, logger), preflop.NewCatalog(cfg.PolicyBlinds()), opts...)
}
