package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/abhisek/quiztime/internal/console"
	"github.com/abhisek/quiztime/internal/question"
	"github.com/abhisek/quiztime/internal/store"
)

const retryPrompt = "Would you like to retry the questions you missed?\n1: Yes\n2: No"

// MissedQuestion identifies a question answered incorrectly, by its
// 1-based position in the quiz.
type MissedQuestion struct {
	Number      int
	Description string
}

// Report is the outcome of grading one pass.
type Report struct {
	Pass    int
	Correct int
	Total   int
	Grade   float64
	Missed  []MissedQuestion
}

// Perfect reports whether every question was answered correctly.
func (r Report) Perfect() bool { return len(r.Missed) == 0 }

// Start administers one pass. With restart false the quiz must still be in
// setup and every question is asked. With restart true the quiz must be in
// PhaseRetryOffered and only questions not yet answered correctly are asked.
func (q *Quiz) Start(ctx context.Context, restart bool) error {
	switch {
	case !restart && q.phase != PhaseSetup:
		return fmt.Errorf("%w: start during %s", ErrInvalidTransition, q.phase)
	case restart && q.phase != PhaseRetryOffered:
		return fmt.Errorf("%w: restart during %s", ErrInvalidTransition, q.phase)
	}
	if len(q.questions) == 0 {
		return ErrNoQuestions
	}

	q.phase = PhaseAdministering
	q.passes++
	if q.passes == 1 {
		q.recordSession(ctx, store.ActionStart)
	}

	if restart {
		q.c.Title(fmt.Sprintf(">>>>> Retrying Quiz: %s <<<<<", q.name))
	} else {
		q.c.Title(fmt.Sprintf(">>>>> Quiz: %s <<<<<", q.name))
	}

	pending := q.pending(restart)
	for i, idx := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		qn := q.questions[idx]
		q.c.Println()
		q.c.Printf("Question %d/%d: ", i+1, len(pending))
		if err := qn.Ask(q.c); err != nil {
			return fmt.Errorf("ask question %d: %w", idx+1, err)
		}
		q.recordAnswer(ctx, idx, qn)
	}

	q.phase = PhaseGrading
	return nil
}

// pending returns the indices of the questions to ask in this pass.
func (q *Quiz) pending(restart bool) []int {
	idx := make([]int, 0, len(q.questions))
	for i, qn := range q.questions {
		if restart && qn.IsCorrect() {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Grade returns the percentage of questions currently answered correctly.
// An empty quiz grades as 0.
func (q *Quiz) Grade() float64 {
	if len(q.questions) == 0 {
		return 0
	}
	return 100 * float64(q.correctCount()) / float64(len(q.questions))
}

func (q *Quiz) correctCount() int {
	n := 0
	for _, qn := range q.questions {
		if qn.IsCorrect() {
			n++
		}
	}
	return n
}

// Missed lists the questions not answered correctly, in quiz order.
func (q *Quiz) Missed() []MissedQuestion {
	var missed []MissedQuestion
	for i, qn := range q.questions {
		if !qn.IsCorrect() {
			missed = append(missed, MissedQuestion{Number: i + 1, Description: qn.Description()})
		}
	}
	return missed
}

// Finish grades the pass just administered and prints the report. The quiz
// moves to PhaseDone when nothing was missed, otherwise to
// PhaseRetryOffered.
func (q *Quiz) Finish(ctx context.Context) (Report, error) {
	if q.phase != PhaseGrading {
		return Report{}, fmt.Errorf("%w: finish during %s", ErrInvalidTransition, q.phase)
	}

	rep := Report{
		Pass:    q.passes,
		Correct: q.correctCount(),
		Total:   len(q.questions),
		Grade:   q.Grade(),
		Missed:  q.Missed(),
	}
	q.printReport(rep)

	if rep.Perfect() {
		q.finish(ctx)
	} else {
		q.phase = PhaseRetryOffered
	}
	return rep, nil
}

func (q *Quiz) printReport(rep Report) {
	q.c.Println()
	q.c.Title(fmt.Sprintf("Grade: %s%%", FormatGrade(rep.Grade)))
	q.c.Printf("%d of %d correct\n", rep.Correct, rep.Total)
	q.c.Println()
	q.c.Title(">>>>> Missed Questions <<<<<")
	if rep.Perfect() {
		q.c.Success("No missed questions!")
		return
	}
	for _, m := range rep.Missed {
		q.c.Failure(fmt.Sprintf("Question %d: %s", m.Number, m.Description))
	}
}

// OfferRetry asks whether to retry the missed questions. It returns true
// when the respondent accepts; the caller then calls Start with restart
// true. Declining moves the quiz to PhaseDone.
func (q *Quiz) OfferRetry(ctx context.Context) (bool, error) {
	if q.phase != PhaseRetryOffered {
		return false, fmt.Errorf("%w: retry offered during %s", ErrInvalidTransition, q.phase)
	}

	again, err := q.promptRetry()
	if err != nil {
		return false, err
	}
	if !again {
		q.c.Println("Better luck next time!")
		q.finish(ctx)
	}
	return again, nil
}

func (q *Quiz) promptRetry() (bool, error) {
	q.c.Println()
	if q.retryPolicy == RetryLenient {
		q.c.Println(retryPrompt)
		n, err := q.c.ReadInt()
		if errors.Is(err, console.ErrNotInteger) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("prompt retry: %w", err)
		}
		return n == 1, nil
	}

	n, err := console.PromptInt(q.c, retryPrompt, console.InRange(1, 2))
	if err != nil {
		return false, fmt.Errorf("prompt retry: %w", err)
	}
	return n == 1, nil
}

// Run drives the quiz from setup to done: the first pass, grading, and as
// many retry passes as the respondent asks for. The returned report is the
// one from the last graded pass.
func (q *Quiz) Run(ctx context.Context) (Report, error) {
	if err := q.Start(ctx, false); err != nil {
		return Report{}, err
	}
	for {
		rep, err := q.Finish(ctx)
		if err != nil {
			return rep, err
		}
		if q.phase == PhaseDone {
			return rep, nil
		}

		again, err := q.OfferRetry(ctx)
		if err != nil || !again {
			return rep, err
		}
		if err := q.Start(ctx, true); err != nil {
			return rep, err
		}
	}
}

func (q *Quiz) finish(ctx context.Context) {
	q.phase = PhaseDone
	q.recordSession(ctx, store.ActionEnd)
}

// FormatGrade renders a percentage with at most two decimals and no
// trailing zeros.
func FormatGrade(g float64) string {
	return strconv.FormatFloat(math.Round(g*100)/100, 'f', -1, 64)
}

func (q *Quiz) recordSession(ctx context.Context, action string) {
	if q.repo == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:     q.sessionID,
		QuizName:      q.name,
		Action:        action,
		QuestionCount: len(q.questions),
	}
	if action == store.ActionEnd {
		data.Passes = q.passes
		data.CorrectCount = q.correctCount()
		data.Grade = q.Grade()
	}
	if err := q.repo.AppendSessionEvent(ctx, data); err != nil {
		warn("failed to record session %s: %v", action, err)
	}
}

func (q *Quiz) recordAnswer(ctx context.Context, idx int, qn question.Question) {
	if q.repo == nil {
		return
	}
	data := store.AnswerEventData{
		SessionID:      q.sessionID,
		Pass:           q.passes,
		QuestionNumber: idx + 1,
		Kind:           qn.Kind().Slug(),
		Description:    qn.Description(),
		CorrectAnswer:  qn.CorrectAnswer(),
		Response:       qn.Response(),
		Correct:        qn.IsCorrect(),
	}
	if err := q.repo.AppendAnswerEvent(ctx, data); err != nil {
		warn("failed to record answer: %v", err)
	}
}
