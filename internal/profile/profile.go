// Package profile persists the few presentation flags the trainer keeps between
// runs. The policy core never reads it.
package profile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/fileutil"
)

// IntroSeenKey marks that the user has dismissed the rules introduction.
const IntroSeenKey = "preflopTrainer.introSeen"

const (
	appDir    = "preflop-trainer"
	stateFile = "state.json"
)

// Store is a small JSON map of boolean flags on disk.
type Store struct {
	path   string
	flags  map[string]bool
	logger *log.Logger
}

// DefaultPath returns the state file under the user config directory
// ($XDG_CONFIG_HOME on Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, stateFile), nil
}

// Open reads the store at path. A missing file is an empty store. A corrupt file
// is logged and treated as empty so a bad state file never blocks the trainer.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		path:   path,
		flags:  make(map[string]bool),
		logger: logger.WithPrefix("profile"),
	}

	found, err := fileutil.ReadJSON(path, &s.flags)
	switch {
	case err != nil && found:
		s.logger.Warn("Ignoring unreadable state file", "path", path, "error", err)
		s.flags = make(map[string]bool)
	case err != nil:
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if s.flags == nil {
		s.flags = make(map[string]bool)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Flag returns the value of key, false when unset.
func (s *Store) Flag(key string) bool {
	return s.flags[key]
}

// SetFlag stores key and writes the file.
func (s *Store) SetFlag(key string, value bool) error {
	s.flags[key] = value
	if err := fileutil.WriteJSONAtomic(s.path, s.flags, 0o644); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	s.logger.Debug("Saved flag", "key", key, "value", value)
	return nil
}

// IntroSeen reports whether the introduction was dismissed before.
func (s *Store) IntroSeen() bool {
	return s.Flag(IntroSeenKey)
}

// MarkIntroSeen records that the introduction was dismissed.
func (s *Store) MarkIntroSeen() error {
	return s.SetFlag(IntroSeenKey, true)
}
