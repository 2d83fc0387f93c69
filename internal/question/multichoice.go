package question

import (
	"fmt"
	"strconv"

	"github.com/abhisek/quiztime/internal/console"
)

// MultiChoice is a question with numbered options and exactly one correct
// option.
type MultiChoice struct {
	description string
	choices     Choices
	correct     int

	response int
	answered bool
}

// NewMultiChoice creates a MultiChoice question. correct must name one of
// the choices.
func NewMultiChoice(description string, choices Choices, correct int) (*MultiChoice, error) {
	if choices.Len() < MinChoices {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewChoices, choices.Len(), MinChoices)
	}
	if !choices.Has(correct) {
		return nil, fmt.Errorf("%w: choice %d of %d", ErrInvalidAnswer, correct, choices.Len())
	}
	return &MultiChoice{description: description, choices: choices, correct: correct}, nil
}

func (q *MultiChoice) Kind() Kind          { return KindMultiChoice }
func (q *MultiChoice) Description() string { return q.description }
func (q *MultiChoice) Answered() bool      { return q.answered }

// Choices returns the options in display order.
func (q *MultiChoice) Choices() []Choice { return q.choices.All() }

// Ask prints the description and options and reads one option number.
func (q *MultiChoice) Ask(c *console.Console) error {
	c.Println(q.description)
	q.choices.print(c)
	n, err := console.PromptInt(c, "Enter the number of your answer", console.InRange(1, q.choices.Len()))
	if err != nil {
		return fmt.Errorf("ask multi choice: %w", err)
	}
	q.response = n
	q.answered = true
	return nil
}

func (q *MultiChoice) IsCorrect() bool {
	return q.answered && q.response == q.correct
}

func (q *MultiChoice) CorrectAnswer() string {
	return q.label(q.correct)
}

func (q *MultiChoice) Response() string {
	if !q.answered {
		return ""
	}
	return q.label(q.response)
}

func (q *MultiChoice) label(idx int) string {
	if text, ok := q.choices.Text(idx); ok {
		return fmt.Sprintf("%d (%s)", idx, text)
	}
	return strconv.Itoa(idx)
}
