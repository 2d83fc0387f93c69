package question

import (
	"fmt"
	"strconv"

	"github.com/abhisek/quiztime/internal/console"
)

// Answer codes for TrueFalse questions.
const (
	True  = 1
	False = 2
)

// TrueFalse is a question answered with a single integer code.
type TrueFalse struct {
	description string
	correct     int

	response int
	answered bool
}

// NewTrueFalse creates a TrueFalse question. correct must be True or False.
func NewTrueFalse(description string, correct int) (*TrueFalse, error) {
	if correct != True && correct != False {
		return nil, fmt.Errorf("%w: true/false code %d", ErrInvalidAnswer, correct)
	}
	return &TrueFalse{description: description, correct: correct}, nil
}

func (q *TrueFalse) Kind() Kind          { return KindTrueFalse }
func (q *TrueFalse) Description() string { return q.description }
func (q *TrueFalse) Answered() bool      { return q.answered }

// Ask prints the description and the two codes, then stores whatever
// integer the respondent enters.
func (q *TrueFalse) Ask(c *console.Console) error {
	c.Println(q.description)
	n, err := console.PromptInt(c, fmt.Sprintf("%d: True\n%d: False", True, False), nil)
	if err != nil {
		return fmt.Errorf("ask true/false: %w", err)
	}
	q.response = n
	q.answered = true
	return nil
}

func (q *TrueFalse) IsCorrect() bool {
	return q.answered && q.response == q.correct
}

func (q *TrueFalse) CorrectAnswer() string {
	return codeLabel(q.correct)
}

func (q *TrueFalse) Response() string {
	if !q.answered {
		return ""
	}
	return codeLabel(q.response)
}

func codeLabel(code int) string {
	switch code {
	case True:
		return "True"
	case False:
		return "False"
	}
	return strconv.Itoa(code)
}
