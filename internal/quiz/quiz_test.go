package quiz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quiztime/internal/console"
	"github.com/abhisek/quiztime/internal/question"
	"github.com/abhisek/quiztime/internal/store"
)

// memRepo is an in-memory EventRepo.
type memRepo struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
	err      error
}

func (r *memRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if r.err != nil {
		return r.err
	}
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *memRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	if r.err != nil {
		return r.err
	}
	r.answers = append(r.answers, data)
	return nil
}

func (r *memRepo) RecentSessions(context.Context, int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func (r *memRepo) SessionAnswers(context.Context, string) ([]store.AnswerRecord, error) {
	return nil, nil
}

func (r *memRepo) Reset(context.Context) error { return nil }

func scripted(lines ...string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out), &out
}

func trueFalse(t *testing.T, desc string, correct int) *question.TrueFalse {
	t.Helper()
	q, err := question.NewTrueFalse(desc, correct)
	require.NoError(t, err)
	return q
}

func newQuiz(t *testing.T, c *console.Console, opts Options, qs ...question.Question) *Quiz {
	t.Helper()
	q := New("Test quiz", c, opts)
	for _, qn := range qs {
		require.NoError(t, q.AddQuestion(qn))
	}
	return q
}

func TestSetup_BuildsEveryQuestion(t *testing.T) {
	c, out := scripted(
		"0", // not positive
		"2",
		"4", // no such kind
		"1",
		"Sky is blue",
		"1",
		"3",
		"Pick the primes",
		"2", "3", "4", "done",
		"y", "y", "n",
	)

	q, err := Build("Mixed", c, Options{})
	require.NoError(t, err)
	assert.Equal(t, PhaseSetup, q.Phase())

	qs := q.Questions()
	require.Len(t, qs, 2)
	assert.Equal(t, question.KindTrueFalse, qs[0].Kind())
	assert.Equal(t, "Sky is blue", qs[0].Description())
	assert.Equal(t, question.KindMultiSelect, qs[1].Kind())
	assert.Equal(t, "{1, 2}", qs[1].CorrectAnswer())

	assert.Contains(t, out.String(), "Please enter a number greater than zero")
	assert.Contains(t, out.String(), "Invalid choice, enter a number from 1 to 3")
	assert.Contains(t, out.String(), "3: Multi Select")
}

func TestSetup_EOF(t *testing.T) {
	c, _ := scripted("2", "1", "Sky is blue")

	_, err := Build("Short", c, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestRun_TrueFalseRetry(t *testing.T) {
	repo := &memRepo{}
	c, out := scripted(
		"2", // wrong
		"1", // retry
		"1", // right
	)
	q := newQuiz(t, c, Options{EventRepo: repo}, trueFalse(t, "Sky is blue", question.True))

	rep, err := q.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseDone, q.Phase())
	assert.Equal(t, 2, q.Passes())
	assert.Equal(t, 100.0, rep.Grade)
	assert.True(t, rep.Perfect())

	text := out.String()
	assert.Contains(t, text, "Quiz: Test quiz")
	assert.Contains(t, text, "Retrying Quiz: Test quiz")
	assert.Contains(t, text, "Grade: 0%")
	assert.Contains(t, text, "Question 1: Sky is blue")
	assert.Contains(t, text, "Grade: 100%")
	assert.Contains(t, text, "No missed questions!")

	require.Len(t, repo.sessions, 2)
	assert.Equal(t, store.ActionStart, repo.sessions[0].Action)
	assert.Equal(t, store.ActionEnd, repo.sessions[1].Action)
	assert.Equal(t, 2, repo.sessions[1].Passes)
	assert.Equal(t, 100.0, repo.sessions[1].Grade)

	require.Len(t, repo.answers, 2)
	assert.Equal(t, "False", repo.answers[0].Response)
	assert.False(t, repo.answers[0].Correct)
	assert.Equal(t, 2, repo.answers[1].Pass)
	assert.True(t, repo.answers[1].Correct)
}

func TestRun_MultiSelect(t *testing.T) {
	build := func(t *testing.T) *question.MultiSelect {
		choices, err := question.NewChoices("Go", "Rust", "Python")
		require.NoError(t, err)
		ms, err := question.NewMultiSelect("Which compile to native code?", choices, question.NewIndexSet(1, 2))
		require.NoError(t, err)
		return ms
	}

	t.Run("exact set", func(t *testing.T) {
		c, out := scripted("y", "y", "n")
		q := newQuiz(t, c, Options{}, build(t))

		rep, err := q.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 100.0, rep.Grade)
		assert.Equal(t, PhaseDone, q.Phase())
		assert.NotContains(t, out.String(), "retry")
	})

	t.Run("subset is wrong", func(t *testing.T) {
		c, out := scripted("y", "n", "n", "2")
		q := newQuiz(t, c, Options{}, build(t))

		rep, err := q.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0.0, rep.Grade)
		assert.Equal(t, []MissedQuestion{{Number: 1, Description: "Which compile to native code?"}}, rep.Missed)
		assert.Contains(t, out.String(), "Better luck next time!")
		assert.Equal(t, PhaseDone, q.Phase())
	})
}

func TestFinish_GradeAndMissed(t *testing.T) {
	c, out := scripted("1", "2", "1", "2")
	q := newQuiz(t, c, Options{},
		trueFalse(t, "one", question.True),
		trueFalse(t, "two", question.True),
		trueFalse(t, "three", question.True),
		trueFalse(t, "four", question.True),
	)

	ctx := context.Background()
	require.NoError(t, q.Start(ctx, false))
	assert.Equal(t, PhaseGrading, q.Phase())

	rep, err := q.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rep.Grade)
	assert.Equal(t, 2, rep.Correct)
	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, []MissedQuestion{{2, "two"}, {4, "four"}}, rep.Missed)
	assert.Equal(t, PhaseRetryOffered, q.Phase())

	text := out.String()
	assert.Contains(t, text, "Question 4/4: ")
	assert.Contains(t, text, "Grade: 50%")
	assert.Contains(t, text, "Question 2: two")
	assert.Contains(t, text, "Question 4: four")
	assert.NotContains(t, text, "Question 1: one")
}

func TestRetry_AsksOnlyMissedQuestions(t *testing.T) {
	repo := &memRepo{}
	c, out := scripted(
		"1", "2", "2", // pass 1: only q1 right
		"1",      // retry
		"1", "2", // pass 2: q2 right, q3 still wrong
		"2", // stop
	)
	q := newQuiz(t, c, Options{EventRepo: repo},
		trueFalse(t, "one", question.True),
		trueFalse(t, "two", question.True),
		trueFalse(t, "three", question.True),
	)

	rep, err := q.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Pass)
	assert.Equal(t, 2, rep.Correct)
	assert.Equal(t, "66.67", FormatGrade(rep.Grade))
	assert.Equal(t, []MissedQuestion{{3, "three"}}, rep.Missed)

	text := out.String()
	assert.Contains(t, text, "Question 3/3: ")
	assert.Contains(t, text, "Question 2/2: ")
	assert.NotContains(t, text, "Question 3/2: ")

	require.Len(t, repo.answers, 5)
	assert.Equal(t, 2, repo.answers[3].QuestionNumber)
	assert.Equal(t, 3, repo.answers[4].QuestionNumber)
	assert.Equal(t, 2, repo.answers[4].Pass)
	assert.Equal(t, "true_false", repo.answers[4].Kind)
}

func TestOfferRetry_Strict(t *testing.T) {
	c, out := scripted("2", "maybe", "3", "2")
	q := newQuiz(t, c, Options{}, trueFalse(t, "one", question.True))

	ctx := context.Background()
	require.NoError(t, q.Start(ctx, false))
	_, err := q.Finish(ctx)
	require.NoError(t, err)

	again, err := q.OfferRetry(ctx)
	require.NoError(t, err)
	assert.False(t, again)
	assert.Equal(t, PhaseDone, q.Phase())
	assert.Equal(t, 3, strings.Count(out.String(), "retry the questions you missed"))
	assert.Contains(t, out.String(), "Invalid input, please enter a whole number")
	assert.Contains(t, out.String(), "Invalid choice, enter a number from 1 to 2")
}

func TestOfferRetry_Lenient(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"2", false},
		{"3", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, out := scripted("2", tt.input)
			q := newQuiz(t, c, Options{RetryPolicy: RetryLenient}, trueFalse(t, "one", question.True))

			ctx := context.Background()
			require.NoError(t, q.Start(ctx, false))
			_, err := q.Finish(ctx)
			require.NoError(t, err)

			again, err := q.OfferRetry(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, again)
			assert.Equal(t, 1, strings.Count(out.String(), "retry the questions you missed"))
			if tt.want {
				assert.Equal(t, PhaseRetryOffered, q.Phase())
			} else {
				assert.Equal(t, PhaseDone, q.Phase())
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("start empty quiz", func(t *testing.T) {
		c, _ := scripted()
		q := newQuiz(t, c, Options{})
		assert.ErrorIs(t, q.Start(ctx, false), ErrNoQuestions)
	})

	t.Run("restart before retry offered", func(t *testing.T) {
		c, _ := scripted()
		q := newQuiz(t, c, Options{}, trueFalse(t, "one", question.True))
		assert.ErrorIs(t, q.Start(ctx, true), ErrInvalidTransition)
	})

	t.Run("finish during setup", func(t *testing.T) {
		c, _ := scripted()
		q := newQuiz(t, c, Options{}, trueFalse(t, "one", question.True))
		_, err := q.Finish(ctx)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("add question after start", func(t *testing.T) {
		c, _ := scripted("1")
		q := newQuiz(t, c, Options{}, trueFalse(t, "one", question.True))
		require.NoError(t, q.Start(ctx, false))
		assert.ErrorIs(t, q.AddQuestion(trueFalse(t, "two", question.False)), ErrInvalidTransition)
	})

	t.Run("offer retry after perfect pass", func(t *testing.T) {
		c, _ := scripted("1")
		q := newQuiz(t, c, Options{}, trueFalse(t, "one", question.True))
		require.NoError(t, q.Start(ctx, false))
		_, err := q.Finish(ctx)
		require.NoError(t, err)
		_, err = q.OfferRetry(ctx)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestGrade_EmptyQuiz(t *testing.T) {
	c, _ := scripted()
	assert.Equal(t, 0.0, New("empty", c, Options{}).Grade())
}

func TestStart_EOFDuringPass(t *testing.T) {
	c, _ := scripted("1")
	q := newQuiz(t, c, Options{},
		trueFalse(t, "one", question.True),
		trueFalse(t, "two", question.True),
	)

	err := q.Start(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestRecordingFailureDoesNotAbort(t *testing.T) {
	repo := &memRepo{err: errors.New("disk full")}
	c, _ := scripted("1")
	q := newQuiz(t, c, Options{EventRepo: repo}, trueFalse(t, "one", question.True))

	rep, err := q.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, rep.Grade)
	assert.Empty(t, repo.sessions)
}

func TestSessionID(t *testing.T) {
	c, _ := scripted()
	assert.Equal(t, "fixed", New("q", c, Options{SessionID: "fixed"}).SessionID())
	assert.NotEqual(t, New("q", c, Options{}).SessionID(), New("q", c, Options{}).SessionID())
}

func TestFormatGrade(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{100, "100"},
		{100.0 / 3, "33.33"},
		{200.0 / 3, "66.67"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatGrade(tt.in))
	}
}

func TestParseRetryPolicy(t *testing.T) {
	p, err := ParseRetryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RetryStrict, p)

	p, err = ParseRetryPolicy("lenient")
	require.NoError(t, err)
	assert.Equal(t, RetryLenient, p)

	p, err = ParseRetryPolicy(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, RetryStrict, p)

	p, err = ParseRetryPolicy("LENIENT")
	require.NoError(t, err)
	assert.Equal(t, RetryLenient, p)

	_, err = ParseRetryPolicy("sometimes")
	assert.Error(t, err)
}
