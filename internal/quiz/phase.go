package quiz

import (
	"fmt"
	"strings"
)

// Phase is the current state of a quiz session.
type Phase int

const (
	PhaseSetup         Phase = iota // Questions being authored
	PhaseAdministering              // A pass is asking questions
	PhaseGrading                    // Pass finished, grade not yet reported
	PhaseRetryOffered               // Some questions missed, retry may follow
	PhaseDone                       // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseAdministering:
		return "administering"
	case PhaseGrading:
		return "grading"
	case PhaseRetryOffered:
		return "retry-offered"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// RetryPolicy controls how the retry prompt treats input other than 1 or 2.
type RetryPolicy string

const (
	// RetryStrict re-prompts until the answer is 1 or 2.
	RetryStrict RetryPolicy = "strict"

	// RetryLenient treats anything other than 1 as "stop".
	RetryLenient RetryPolicy = "lenient"
)

// ParseRetryPolicy validates a policy name, ignoring case and surrounding
// space. The empty string selects RetryStrict.
func ParseRetryPolicy(s string) (RetryPolicy, error) {
	switch RetryPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RetryStrict:
		return RetryStrict, nil
	case RetryLenient:
		return RetryLenient, nil
	}
	return "", fmt.Errorf("unknown retry policy %q (want %q or %q)", s, RetryStrict, RetryLenient)
}
