package config

import (
	"fmt"
	"strings"

	"github.com/abhisek/quiztime/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

func (err *ValidationError) Unwrap() error { return ErrInvalidConfig }

// Validate checks field values. It returns a *ValidationError listing every
// problem found.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if _, err := quiz.ParseRetryPolicy(cfg.RetryPrompt); err != nil {
		add("retry_prompt", fmt.Sprintf("must be %q or %q", quiz.RetryStrict, quiz.RetryLenient))
	}
	if cfg.MaxAttempts < 0 {
		add("max_attempts", "must not be negative")
	}
	if cfg.DBPath != "" && strings.TrimSpace(cfg.DBPath) == "" {
		add("db_path", "must not be blank")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// RetryPolicy returns the parsed retry policy. Call after Validate.
func (c Config) RetryPolicy() quiz.RetryPolicy {
	p, err := quiz.ParseRetryPolicy(c.RetryPrompt)
	if err != nil {
		return quiz.RetryStrict
	}
	return p
}
