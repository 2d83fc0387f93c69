package console

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooManyAttempts is returned by a prompt loop that exceeded the
// console's attempt limit.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Validator accepts or rejects a parsed value. The error text is shown to
// the user before re-prompting.
type Validator[T any] func(T) error

// Retry prints prompt, reads a value with read, and checks it with validate
// (which may be nil). Unparseable input and rejected values re-prompt;
// any other read error, including io.EOF, is returned as-is.
func Retry[T any](c *Console, prompt string, read func() (T, error), validate Validator[T]) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if c.maxAttempts > 0 && attempt > c.maxAttempts {
			return zero, ErrTooManyAttempts
		}

		c.Ask(prompt)
		v, err := read()
		if errors.Is(err, ErrNotInteger) {
			c.Warn("Invalid input, please enter a whole number")
			continue
		}
		if err != nil {
			return zero, err
		}
		if validate != nil {
			if verr := validate(v); verr != nil {
				c.Warn(verr.Error())
				continue
			}
		}
		return v, nil
	}
}

// PromptInt asks for an integer until one passes validate.
func PromptInt(c *Console, prompt string, validate Validator[int]) (int, error) {
	return Retry(c, prompt, c.ReadInt, validate)
}

// PromptLine asks for a line of text until one passes validate.
func PromptLine(c *Console, prompt string, validate Validator[string]) (string, error) {
	return Retry(c, prompt, c.ReadLine, validate)
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) count as
// yes; everything else is a no, without re-prompting.
func Confirm(c *Console, prompt string) (bool, error) {
	c.Ask(prompt)
	line, err := c.ReadLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// InRange accepts integers in [lo, hi].
func InRange(lo, hi int) Validator[int] {
	return func(n int) error {
		if n < lo || n > hi {
			return fmt.Errorf("Invalid choice, enter a number from %d to %d", lo, hi)
		}
		return nil
	}
}

// Positive accepts integers greater than zero.
func Positive(n int) error {
	if n <= 0 {
		return fmt.Errorf("Please enter a number greater than zero")
	}
	return nil
}

// NotBlank accepts text with at least one non-space character.
func NotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("Input cannot be empty")
	}
	return nil
}
