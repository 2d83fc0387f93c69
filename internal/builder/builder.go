// Package builder runs the interactive prompts an operator answers to
// author one question of a chosen kind.
package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quiztime/internal/console"
	"github.com/abhisek/quiztime/internal/question"
)

// DoneSentinel ends choice entry. It is matched case-insensitively and is
// refused with a warning until question.MinChoices options exist.
const DoneSentinel = "done"

// Builder authors questions through a console. Every Build method either
// returns a complete question or an input error; malformed answers
// re-prompt without losing what was already collected.
type Builder struct {
	c *console.Console
}

// New creates a Builder reading from c.
func New(c *console.Console) *Builder {
	return &Builder{c: c}
}

// Build dispatches to the builder for kind.
func (b *Builder) Build(kind question.Kind) (question.Question, error) {
	var (
		q   question.Question
		err error
	)
	switch kind {
	case question.KindTrueFalse:
		var tf *question.TrueFalse
		tf, err = b.BuildTrueFalse()
		q = tf
	case question.KindMultiChoice:
		var mc *question.MultiChoice
		mc, err = b.BuildMultiChoice()
		q = mc
	case question.KindMultiSelect:
		var ms *question.MultiSelect
		ms, err = b.BuildMultiSelect()
		q = ms
	default:
		return nil, fmt.Errorf("build question: %w: %d", question.ErrUnknownKind, int(kind))
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", kind, err)
	}
	return q, nil
}

// BuildTrueFalse asks for a description and the correct code.
func (b *Builder) BuildTrueFalse() (*question.TrueFalse, error) {
	desc, err := b.promptDescription()
	if err != nil {
		return nil, err
	}
	answer, err := console.PromptInt(b.c,
		fmt.Sprintf("What is the correct answer?\n%d: True\n%d: False", question.True, question.False),
		console.InRange(question.True, question.False))
	if err != nil {
		return nil, fmt.Errorf("prompt answer: %w", err)
	}
	return question.NewTrueFalse(desc, answer)
}

// BuildMultiChoice asks for a description, the options, and the number of
// the single correct option.
func (b *Builder) BuildMultiChoice() (*question.MultiChoice, error) {
	desc, err := b.promptDescription()
	if err != nil {
		return nil, err
	}
	choices, err := b.promptChoices()
	if err != nil {
		return nil, err
	}

	b.c.Println("Which option is correct for the following question?")
	b.c.Println(desc)
	for _, ch := range choices.All() {
		b.c.Printf("%d : %s\n", ch.Index, ch.Text)
	}
	correct, err := console.PromptInt(b.c, "Enter the number of the correct option", console.InRange(1, choices.Len()))
	if err != nil {
		return nil, fmt.Errorf("prompt correct option: %w", err)
	}
	return question.NewMultiChoice(desc, choices, correct)
}

// BuildMultiSelect asks for a description, the options, and then a yes/no
// for each option marking it correct.
func (b *Builder) BuildMultiSelect() (*question.MultiSelect, error) {
	desc, err := b.promptDescription()
	if err != nil {
		return nil, err
	}
	choices, err := b.promptChoices()
	if err != nil {
		return nil, err
	}

	b.c.Println("Please tell us which are all the correct options for the following question")
	b.c.Println(desc)
	b.c.Hint("For each option, enter 'y' if it is correct or anything else to skip")
	correct := question.NewIndexSet()
	for _, ch := range choices.All() {
		ok, err := console.Confirm(b.c, fmt.Sprintf("%d : %s", ch.Index, ch.Text))
		if err != nil {
			return nil, fmt.Errorf("prompt correct options: %w", err)
		}
		if ok {
			correct.Add(ch.Index)
		}
	}
	return question.NewMultiSelect(desc, choices, correct)
}

func (b *Builder) promptDescription() (string, error) {
	desc, err := console.PromptLine(b.c, "What is the question description?", console.NotBlank)
	if err != nil {
		return "", fmt.Errorf("prompt description: %w", err)
	}
	return strings.TrimSpace(desc), nil
}

// promptChoices collects options until the operator types the sentinel
// with at least MinChoices options recorded.
func (b *Builder) promptChoices() (question.Choices, error) {
	var choices question.Choices
	for {
		line, err := console.PromptLine(b.c,
			fmt.Sprintf("Enter the answer options or '%s' to complete", DoneSentinel), nil)
		if err != nil {
			return question.Choices{}, fmt.Errorf("prompt choices: %w", err)
		}

		if strings.EqualFold(strings.TrimSpace(line), DoneSentinel) {
			if choices.Len() >= question.MinChoices {
				return choices, nil
			}
			b.c.Warn(fmt.Sprintf("A question needs at least %d options", question.MinChoices))
			continue
		}

		if _, err := choices.Add(line); err != nil {
			if errors.Is(err, question.ErrDuplicateChoice) || errors.Is(err, question.ErrBlankChoice) {
				b.c.Warn(capitalize(err.Error()))
				continue
			}
			return question.Choices{}, err
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
