package quiz

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/quiztime/internal/builder"
	"github.com/abhisek/quiztime/internal/console"
	"github.com/abhisek/quiztime/internal/question"
	"github.com/abhisek/quiztime/internal/store"
)

var (
	// ErrNoQuestions is returned when administration starts on an empty quiz.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrInvalidTransition is returned when an operation is called in a
	// phase that does not allow it.
	ErrInvalidTransition = errors.New("invalid quiz transition")
)

// Options configures a Quiz.
type Options struct {
	// EventRepo records session and answer events (nil disables recording).
	EventRepo store.EventRepo

	// RetryPolicy selects how the retry prompt handles invalid input.
	RetryPolicy RetryPolicy

	// SessionID identifies the session in recorded events. A random UUID
	// is used when empty.
	SessionID string
}

// Quiz is an ordered set of questions administered to one respondent
// over one or more passes.
type Quiz struct {
	name      string
	c         *console.Console
	builder   *builder.Builder
	questions []question.Question

	phase       Phase
	passes      int
	sessionID   string
	repo        store.EventRepo
	retryPolicy RetryPolicy
}

// New creates an empty quiz in PhaseSetup.
func New(name string, c *console.Console, opts Options) *Quiz {
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	policy := opts.RetryPolicy
	if policy == "" {
		policy = RetryStrict
	}
	return &Quiz{
		name:        name,
		c:           c,
		builder:     builder.New(c),
		phase:       PhaseSetup,
		sessionID:   sessionID,
		repo:        opts.EventRepo,
		retryPolicy: policy,
	}
}

// Build creates a quiz and runs the interactive Setup on it.
func Build(name string, c *console.Console, opts Options) (*Quiz, error) {
	q := New(name, c, opts)
	if err := q.Setup(); err != nil {
		return nil, err
	}
	return q, nil
}

// Name returns the quiz name.
func (q *Quiz) Name() string { return q.name }

// SessionID returns the identifier used for recorded events.
func (q *Quiz) SessionID() string { return q.sessionID }

// Phase returns the current state.
func (q *Quiz) Phase() Phase { return q.phase }

// Passes returns how many administration passes have started.
func (q *Quiz) Passes() int { return q.passes }

// Questions returns the questions in authoring order.
func (q *Quiz) Questions() []question.Question {
	out := make([]question.Question, len(q.questions))
	copy(out, q.questions)
	return out
}

// Setup asks the operator how many questions to author, then builds each
// one through the kind menu. It returns only once every question exists.
func (q *Quiz) Setup() error {
	if q.phase != PhaseSetup {
		return fmt.Errorf("%w: setup during %s", ErrInvalidTransition, q.phase)
	}

	count, err := console.PromptInt(q.c, "How many questions should be on the quiz?", console.Positive)
	if err != nil {
		return fmt.Errorf("prompt question count: %w", err)
	}

	for i := 0; i < count; i++ {
		q.c.Title(fmt.Sprintf("Building question %d of %d", i+1, count))
		kind, err := q.promptKind()
		if err != nil {
			return err
		}
		qn, err := q.builder.Build(kind)
		if err != nil {
			return err
		}
		if err := q.AddQuestion(qn); err != nil {
			return err
		}
	}
	return nil
}

// AddQuestion appends an authored question. Questions can only be added
// during setup.
func (q *Quiz) AddQuestion(qn question.Question) error {
	if q.phase != PhaseSetup {
		return fmt.Errorf("%w: add question during %s", ErrInvalidTransition, q.phase)
	}
	if qn == nil {
		return fmt.Errorf("add question: nil question")
	}
	q.questions = append(q.questions, qn)
	return nil
}

func (q *Quiz) promptKind() (question.Kind, error) {
	var b strings.Builder
	b.WriteString("Which type of question do you want to build?")
	kinds := question.Kinds()
	for _, k := range kinds {
		fmt.Fprintf(&b, "\n%d: %s", int(k), k)
	}

	n, err := console.PromptInt(q.c, b.String(), console.InRange(int(kinds[0]), int(kinds[len(kinds)-1])))
	if err != nil {
		return 0, fmt.Errorf("prompt question kind: %w", err)
	}
	return question.ParseKind(n)
}

// warn reports a non-fatal problem on stderr.
func warn(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
}
