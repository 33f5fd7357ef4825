package trainer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/preflop-trainer/preflop"
)

func explain(d Decision, r *Round, v Verdict) string {
	var sb strings.Builder

	switch v.Tier {
	case Correct:
		fmt.Fprintf(&sb, "Correct, %s is right. ", r.AnswerLabel())
	case Partial:
		fmt.Fprintf(&sb, "Raising is right, but the size was %s. ", v.Miss)
	default:
		fmt.Fprintf(&sb, "The textbook play is %s, not %s. ", r.AnswerLabel(), d.Action.Label(r.IsFreeCheck))
	}

	fmt.Fprintf(&sb, "%s is a %s hand (tier %d) in the %s, %s. %s.",
		r.HandName(),
		strings.ToLower(r.Tier.String()),
		int(r.Tier),
		r.Position,
		situation(r.Scenario),
		r.Reasoning)

	return sb.String()
}

func explainSizing(d Decision, r *Round, v Verdict) string {
	sizing, err := r.CorrectSizing()
	if err != nil {
		return ""
	}

	target := fmt.Sprintf("A standard %s here is %s to %d (anything from %d to %d).",
		sizing.Kind, multiple(sizing), sizing.Amount, sizing.Min, sizing.Max)
	if v.SizingCorrect {
		return fmt.Sprintf("Your raise to %d is in range. %s", d.Amount, target)
	}
	return fmt.Sprintf("Your raise to %d is %s. %s", d.Amount, v.Miss, target)
}

func situation(s preflop.Scenario) string {
	switch s.Category {
	case preflop.Unopened:
		return "with the action folded to you"
	case preflop.Limped:
		if s.CallersAhead == 1 {
			return "behind one limper"
		}
		return fmt.Sprintf("behind %d limpers", s.CallersAhead)
	case preflop.Raised:
		if s.CallersAhead > 0 {
			return "facing a raise and a caller"
		}
		return "facing a raise"
	case preflop.ThreeBet:
		return "facing a 3-bet"
	case preflop.FourBet:
		return "facing a 4-bet"
	default:
		return strings.ToLower(s.Name)
	}
}

func multiple(s preflop.Sizing) string {
	unit := "the big blind"
	if s.Kind == preflop.ThreeBetRaise || s.Kind == preflop.FourBetRaise {
		unit = "the last raise"
	}
	return strconv.FormatFloat(s.Multiple, 'f', -1, 64) + "x " + unit
}
