package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/profile"
	"github.com/lox/preflop-trainer/internal/tui"
	"github.com/lox/preflop-trainer/trainer"
)

type PlayCmd struct {
	Intro bool `help:"Show the introduction even if it was seen before"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := newLogger(logFile, cfg)
	logger.Info("Starting trainer", "version", version)

	statePath := cfg.StateFile
	if statePath == "" {
		if statePath, err = profile.DefaultPath(); err != nil {
			return fmt.Errorf("failed to locate state file: %w", err)
		}
	}
	store, err := profile.Open(statePath, logger)
	if err != nil {
		return err
	}

	var intro tui.IntroStore = store
	if c.Intro {
		intro = forcedIntro{store}
	}

	dealer, err := newDealer(cfg, logger)
	if err != nil {
		return err
	}
	session := trainer.NewSession(dealer, trainer.WithLogger(logger))

	program := tea.NewProgram(tui.New(session, intro, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("trainer exited: %w", err)
	}

	score := session.Score()
	if score.Total > 0 {
		fmt.Printf("Scored %d/%d (%.0f%%), best streak %d\n",
			score.Correct, score.Total, 100*score.Accuracy(), score.BestStreak)
	}
	return nil
}

// forcedIntro reports the intro as unseen so it is shown again.
type forcedIntro struct {
	*profile.Store
}

func (forcedIntro) IntroSeen() bool { return false }
