package question

import (
	"fmt"

	"github.com/abhisek/quiztime/internal/console"
)

// SelectHint is printed before the options when asking for a selection.
const SelectHint = "For each option, enter 'y' to select it or anything else to skip"

// MultiSelect is a question with numbered options where any subset may be
// correct. Only an exact match of the correct subset scores.
type MultiSelect struct {
	description string
	choices     Choices
	correct     IndexSet

	response IndexSet
	answered bool
}

// NewMultiSelect creates a MultiSelect question. Every index in correct
// must name one of the choices; the set may be empty.
func NewMultiSelect(description string, choices Choices, correct IndexSet) (*MultiSelect, error) {
	if choices.Len() < MinChoices {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewChoices, choices.Len(), MinChoices)
	}
	for idx := range correct {
		if !choices.Has(idx) {
			return nil, fmt.Errorf("%w: choice %d of %d", ErrInvalidAnswer, idx, choices.Len())
		}
	}
	return &MultiSelect{description: description, choices: choices, correct: correct.Clone()}, nil
}

func (q *MultiSelect) Kind() Kind          { return KindMultiSelect }
func (q *MultiSelect) Description() string { return q.description }
func (q *MultiSelect) Answered() bool      { return q.answered }

// Choices returns the options in display order.
func (q *MultiSelect) Choices() []Choice { return q.choices.All() }

// Ask walks the options in display order and collects the ones the
// respondent affirms.
func (q *MultiSelect) Ask(c *console.Console) error {
	c.Println(q.description)
	c.Hint(SelectHint)
	selected := NewIndexSet()
	for _, ch := range q.choices.All() {
		ok, err := console.Confirm(c, fmt.Sprintf("%d : %s", ch.Index, ch.Text))
		if err != nil {
			return fmt.Errorf("ask multi select: %w", err)
		}
		if ok {
			selected.Add(ch.Index)
		}
	}
	q.response = selected
	q.answered = true
	return nil
}

func (q *MultiSelect) IsCorrect() bool {
	return q.answered && q.response.Equal(q.correct)
}

func (q *MultiSelect) CorrectAnswer() string {
	return q.correct.String()
}

func (q *MultiSelect) Response() string {
	if !q.answered {
		return ""
	}
	return q.response.String()
}
