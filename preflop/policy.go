package preflop

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Action is a pre-flop decision.
type Action int

const (
	Fold Action = iota
	Call
	Raise
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Label returns the button text for the action. On a free check Call reads "Check".
func (a Action) Label(freeCheck bool) string {
	if a == Call && freeCheck {
		return "Check"
	}
	return a.String()
}

// ParseAction accepts "fold", "call", "check" and "raise" in any case.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "call", "check", "c", "k":
		return Call, nil
	case "raise", "r":
		return Raise, nil
	default:
		return 0, fmt.Errorf("unknown action: %q", s)
	}
}

// Decision is the textbook answer together with the rule that produced it.
type Decision struct {
	Action    Action
	Tier      Tier
	Rule      string
	Reasoning string
}

// Policy decides actions and raise sizes. The zero value is not usable; call NewPolicy.
type Policy struct {
	rules  []Rule
	sizing SizingConfig
	blinds Blinds
	logger *log.Logger
}

// Option configures a Policy.
type Option func(*Policy)

// WithLogger sets the logger used to report strength-table misses.
func WithLogger(logger *log.Logger) Option {
	return func(p *Policy) {
		p.logger = logger.WithPrefix("policy")
	}
}

// WithRules replaces the rule list.
func WithRules(rules []Rule) Option {
	return func(p *Policy) {
		p.rules = rules
	}
}

// WithSizing replaces the sizing multipliers.
func WithSizing(cfg SizingConfig) Option {
	return func(p *Policy) {
		p.sizing = cfg
	}
}

// WithBlinds sets the blinds that open and isolation raises are measured in.
func WithBlinds(b Blinds) Option {
	return func(p *Policy) {
		p.blinds = b
	}
}

// NewPolicy returns a policy using the default chart, sizing and blinds.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		rules:  DefaultRules(),
		sizing: DefaultSizing(),
		blinds: DefaultBlinds,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rules returns the rule list in evaluation order.
func (p *Policy) Rules() []Rule {
	return p.rules
}

// Blinds returns the blinds the policy sizes against.
func (p *Policy) Blinds() Blinds {
	return p.blinds
}

// Decide returns the textbook action for a hand in a seat and scenario. An unknown
// key is logged and played as the weakest tier.
func (p *Policy) Decide(key HandKey, pos Position, scenario Scenario) Decision {
	tier, err := StrengthOf(key)
	if err != nil {
		p.logger.Error("Strength table miss, treating as weakest tier", "key", key, "error", err)
		tier = TierWeakest
	}

	s := Situation{Key: key, Tier: tier, Position: pos, Scenario: scenario}
	for _, rule := range p.rules {
		if rule.Condition(s) {
			return Decision{Action: rule.Action, Tier: tier, Rule: rule.Name, Reasoning: rule.Reasoning}
		}
	}

	// Custom rule lists without a catch-all fall through to a fold.
	return Decision{Action: Fold, Tier: tier, Rule: "no-rule", Reasoning: "No rule matched"}
}
