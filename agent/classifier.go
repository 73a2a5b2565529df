package agent

import "strings"

// Decision is the trinary outcome of classifying a completion reply. It is
// never persisted; only its consequences are.
type Decision int

const (
	DecisionUnclear Decision = iota
	DecisionMute
	DecisionNoMute
)

func (d Decision) String() string {
	switch d {
	case DecisionMute:
		return "MUTE"
	case DecisionNoMute:
		return "NO_MUTE"
	default:
		return "UNCLEAR"
	}
}

type decisionRule struct {
	exact    []string
	contains []string
	decision Decision
}

// decisionRules is checked in order: the affirmative rule runs before the
// negative one, so a reply containing both "yes" and "no" classifies as
// MUTE. That precedence is load-bearing for compatibility; do not reorder.
var decisionRules = []decisionRule{
	{
		exact:    []string{"true", "yes", "y"},
		contains: []string{"true", "yes"},
		decision: DecisionMute,
	},
	{
		exact:    []string{"false", "no", "n"},
		contains: []string{"false", "no"},
		decision: DecisionNoMute,
	},
}

// ClassifyDecision normalizes a free-text completion reply and maps it onto
// a Decision via the ordered rule table. Anything that matches no rule is
// UNCLEAR; callers treat that as NO_MUTE.
func ClassifyDecision(reply string) Decision {
	normalized := strings.ToLower(strings.TrimSpace(reply))

	for _, rule := range decisionRules {
		for _, word := range rule.exact {
			if normalized == word {
				return rule.decision
			}
		}
		for _, sub := range rule.contains {
			if strings.Contains(normalized, sub) {
				return rule.decision
			}
		}
	}

	return DecisionUnclear
}
