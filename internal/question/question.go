package question

import (
	"errors"
	"fmt"

	"github.com/abhisek/quiztime/internal/console"
)

var (
	// ErrUnknownKind is returned when a selector names no question kind.
	ErrUnknownKind = errors.New("unknown question kind")

	// ErrInvalidAnswer is returned when a correct answer is not one of the
	// values the question can hold.
	ErrInvalidAnswer = errors.New("invalid correct answer")

	// ErrTooFewChoices is returned when a choice question has fewer than
	// MinChoices options.
	ErrTooFewChoices = errors.New("too few choices")
)

// MinChoices is the smallest number of options a choice question accepts.
const MinChoices = 2

// Kind identifies a question variant. The numeric values double as the
// authoring menu selectors.
type Kind int

const (
	KindTrueFalse   Kind = 1
	KindMultiChoice Kind = 2
	KindMultiSelect Kind = 3
)

// Kinds returns every question kind in menu order.
func Kinds() []Kind {
	return []Kind{KindTrueFalse, KindMultiChoice, KindMultiSelect}
}

// ParseKind maps a menu selector to a Kind.
func ParseKind(n int) (Kind, error) {
	k := Kind(n)
	switch k {
	case KindTrueFalse, KindMultiChoice, KindMultiSelect:
		return k, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownKind, n)
}

// String returns the human-readable name shown in menus.
func (k Kind) String() string {
	switch k {
	case KindTrueFalse:
		return "True or False"
	case KindMultiChoice:
		return "Multi Choice"
	case KindMultiSelect:
		return "Multi Select"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Slug returns the stable identifier used when recording results.
func (k Kind) Slug() string {
	switch k {
	case KindTrueFalse:
		return "true_false"
	case KindMultiChoice:
		return "multi_choice"
	case KindMultiSelect:
		return "multi_select"
	}
	return "unknown"
}

// Question is the capability set shared by all variants.
type Question interface {
	// Kind reports the variant.
	Kind() Kind

	// Description returns the question text.
	Description() string

	// Ask presents the question on c, reads the respondent's answer, and
	// replaces any previously stored answer.
	Ask(c *console.Console) error

	// Answered reports whether Ask has completed at least once.
	Answered() bool

	// IsCorrect compares the stored answer with the correct one. It is
	// false until the question has been answered.
	IsCorrect() bool

	// CorrectAnswer renders the correct answer for reports.
	CorrectAnswer() string

	// Response renders the stored answer, or "" when unanswered.
	Response() string
}
