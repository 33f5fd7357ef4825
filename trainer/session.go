package trainer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/preflop-trainer/internal/statistics"
	"github.com/lox/preflop-trainer/preflop"
)

var (
	ErrNoRound          = errors.New("no round dealt")
	ErrAlreadyScored    = errors.New("round already scored")
	ErrWrongPhase       = errors.New("wrong phase for this input")
	ErrActionNotOffered = errors.New("action not offered")
	ErrInvalidAmount    = errors.New("invalid raise amount")
)

// Phase is where the current round is in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingAction
	PhaseAwaitingSizing
	PhaseScored
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAction:
		return "awaiting-action"
	case PhaseAwaitingSizing:
		return "awaiting-sizing"
	case PhaseScored:
		return "scored"
	default:
		return "idle"
	}
}

// Session owns the current round and the running score. It scores each round
// exactly once. It is not safe for concurrent use.
type Session struct {
	dealer *Dealer
	clock  quartz.Clock
	logger *log.Logger

	round   *Round
	dealtAt time.Time
	phase   Phase
	verdict *Verdict
	score   ScoreState
	stats   *statistics.Statistics
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the clock used to time decisions.
func WithClock(clock quartz.Clock) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger.WithPrefix("session")
	}
}

// NewSession returns an idle session dealing from dealer.
func NewSession(dealer *Dealer, opts ...SessionOption) *Session {
	s := &Session{
		dealer: dealer,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
		stats:  statistics.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deal replaces the current round. An unscored round is discarded without
// touching the score.
func (s *Session) Deal() (*Round, error) {
	if s.phase == PhaseAwaitingAction || s.phase == PhaseAwaitingSizing {
		s.logger.Debug("Discarding unscored round", "id", s.round.ID)
	}

	round, err := s.dealer.Deal()
	if err != nil {
		return nil, err
	}
	s.round = round
	s.dealtAt = s.clock.Now()
	s.verdict = nil
	s.phase = PhaseAwaitingAction
	return round, nil
}

// Act submits the user's action. Fold and Call are scored immediately. Raise moves
// the round to sizing and returns a nil verdict.
func (s *Session) Act(a preflop.Action) (*Verdict, error) {
	if err := s.expect(PhaseAwaitingAction); err != nil {
		return nil, err
	}
	if !s.round.Offers(a) {
		return nil, fmt.Errorf("%w: %s on a free check", ErrActionNotOffered, a)
	}

	if a == preflop.Raise {
		s.phase = PhaseAwaitingSizing
		return nil, nil
	}
	return s.finish(Decision{Action: a}), nil
}

// Size submits the raise amount after Act(Raise).
func (s *Session) Size(amount int) (*Verdict, error) {
	if err := s.expect(PhaseAwaitingSizing); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	return s.finish(Decision{Action: preflop.Raise, Amount: amount}), nil
}

// Submit is Act followed by Size for a raise.
func (s *Session) Submit(d Decision) (*Verdict, error) {
	v, err := s.Act(d.Action)
	if err != nil || d.Action != preflop.Raise {
		return v, err
	}
	return s.Size(d.Amount)
}

func (s *Session) expect(want Phase) error {
	switch {
	case s.phase == PhaseIdle:
		return ErrNoRound
	case s.phase == PhaseScored:
		return fmt.Errorf("%w: %s", ErrAlreadyScored, s.round.ID)
	case s.phase != want:
		return fmt.Errorf("%w: %s, want %s", ErrWrongPhase, s.phase, want)
	}
	return nil
}

func (s *Session) finish(d Decision) *Verdict {
	v, next := Score(d, s.round, s.score)
	v.Elapsed = s.clock.Now().Sub(s.dealtAt)

	s.score = next
	s.stats.Add(statistics.RoundResult{
		Position:      s.round.Position,
		Category:      s.round.Scenario.Category,
		Tier:          s.round.Tier,
		ActionCorrect: v.ActionCorrect,
		SizingJudged:  v.SizingJudged,
		SizingCorrect: v.SizingCorrect,
		Elapsed:       v.Elapsed,
	})
	s.verdict = &v
	s.phase = PhaseScored

	s.logger.Info("Scored round",
		"id", s.round.ID,
		"hand", s.round.Key,
		"position", s.round.Position,
		"scenario", s.round.Scenario.ID,
		"answer", s.round.Answer,
		"action", d.Action,
		"amount", d.Amount,
		"verdict", v.Tier,
		"streak", next.Streak,
		"elapsed", v.Elapsed)
	return &v
}

// Restart clears the score and statistics and drops the current round.
func (s *Session) Restart() {
	s.score = ScoreState{}
	s.stats = statistics.New()
	s.round = nil
	s.verdict = nil
	s.phase = PhaseIdle
	s.logger.Info("Session restarted")
}

// Round returns the current round, or nil when idle.
func (s *Session) Round() *Round { return s.round }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Verdict returns the last verdict for the current round, or nil before scoring.
func (s *Session) Verdict() *Verdict { return s.verdict }

// Score returns the running counters.
func (s *Session) Score() ScoreState { return s.score }

// Stats returns the accuracy breakdown for the session.
func (s *Session) Stats() *statistics.Statistics { return s.stats }

// Dealer returns the session dealer.
func (s *Session) Dealer() *Dealer { return s.dealer }
