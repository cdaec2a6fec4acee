package domain

import "strings"

// StatusOutcome classifies a free-text courier status string.
type StatusOutcome string

// List of possible status outcomes
const (
	OutcomeSuccess StatusOutcome = "success"
	OutcomeReturn  StatusOutcome = "return"
	OutcomeOther   StatusOutcome = "other"
)

// statusRule maps a set of lowercase substrings to an outcome.
type statusRule struct {
	substrings []string
	outcome    StatusOutcome
}

// statusRules is evaluated top to bottom; the first matching rule wins.
// Order matters: "returned to sender" contains "return", and a delivered
// status must never be shadowed by a later rule.
var statusRules = []statusRule{
	{
		substrings: []string{"successful delivery", "completed", "delivered"},
		outcome:    OutcomeSuccess,
	},
	{
		substrings: []string{"returned to sender", "return", "rts", "cancelled"},
		outcome:    OutcomeReturn,
	},
}

// ClassifyStatus maps a raw courier status string onto the outcome taxonomy.
// Matching is case-insensitive substring; unmatched input is OutcomeOther.
func ClassifyStatus(raw string) StatusOutcome {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range statusRules {
		for _, sub := range rule.substrings {
			if strings.Contains(s, sub) {
				return rule.outcome
			}
		}
	}
	return OutcomeOther
}
