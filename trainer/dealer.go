package trainer

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/preflop-trainer/internal/roundid"
	"github.com/lox/preflop-trainer/poker"
	"github.com/lox/preflop-trainer/preflop"
)

// Dealer draws rounds from a single shared random source.
type Dealer struct {
	rng     *rand.Rand
	policy  *preflop.Policy
	catalog *preflop.Catalog
	ids     *roundid.Generator
	clock   quartz.Clock
	logger  *log.Logger
}

// DealerOption configures a Dealer.
type DealerOption func(*Dealer)

// WithDealerClock sets the clock used to stamp rounds and IDs.
func WithDealerClock(clock quartz.Clock) DealerOption {
	return func(d *Dealer) {
		d.clock = clock
	}
}

// WithDealerLogger sets the dealer logger.
func WithDealerLogger(logger *log.Logger) DealerOption {
	return func(d *Dealer) {
		d.logger = logger.WithPrefix("dealer")
	}
}

// NewDealer returns a dealer for the given policy and catalog. The catalog is
// validated up front so a badly authored catalog fails here rather than mid-session.
func NewDealer(rng *rand.Rand, policy *preflop.Policy, catalog *preflop.Catalog, opts ...DealerOption) (*Dealer, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	d := &Dealer{
		rng:     rng,
		policy:  policy,
		catalog: catalog,
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.ids = roundid.New(rng, d.clock.Now)
	return d, nil
}

// Policy returns the policy rounds are judged against.
func (d *Dealer) Policy() *preflop.Policy {
	return d.policy
}

// Catalog returns the scenario catalog.
func (d *Dealer) Catalog() *preflop.Catalog {
	return d.catalog
}

// Deal draws a hand, a seat and a scenario valid for that seat, and computes the
// textbook answer. The seat is drawn first and the scenario only from the seat's
// eligible subset, so no resampling is needed.
func (d *Dealer) Deal() (*Round, error) {
	cards := poker.NewDeck(d.rng).Deal(2)
	hand := preflop.NewHand(cards[0], cards[1])

	pos := preflop.Positions[d.rng.IntN(len(preflop.Positions))]
	eligible := d.catalog.ForPosition(pos)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScenarioForPosition, pos)
	}
	scenario := eligible[d.rng.IntN(len(eligible))]

	round := d.Build(hand, pos, scenario)
	d.logger.Debug("Dealt round",
		"id", round.ID,
		"hand", round.Key,
		"position", pos,
		"scenario", scenario.ID,
		"answer", round.Answer,
		"rule", round.Rule)
	return round, nil
}

// Build computes the round for a fixed hand, seat and scenario.
func (d *Dealer) Build(hand preflop.Hand, pos preflop.Position, scenario preflop.Scenario) *Round {
	key := hand.Key()
	decision := d.policy.Decide(key, pos, scenario)

	toCall := max(scenario.ToCall-pos.Posted(d.catalog.Blinds), 0)

	round := &Round{
		ID:          d.ids.Next(),
		Hand:        hand,
		Key:         key,
		Tier:        decision.Tier,
		Position:    pos,
		Scenario:    scenario,
		Answer:      decision.Action,
		Rule:        decision.Rule,
		Reasoning:   decision.Reasoning,
		Options:     d.policy.SizingOptions(scenario),
		ToCall:      toCall,
		IsFreeCheck: toCall == 0,
		DealtAt:     d.clock.Now(),
	}
	if decision.Action == preflop.Raise {
		sizing := d.policy.CorrectSizing(scenario)
		round.sizing = &sizing
	}
	return round
}
