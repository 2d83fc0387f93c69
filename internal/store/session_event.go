package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builders and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(sessionEventsTable).
		Columns(colSequence, colTimestamp, colSessionID, colQuizName, colAction,
			colQuestionCount, colCorrectCount, colGrade, colPasses).
		Values(seqNum, time.Now().UTC(), data.SessionID, data.QuizName, data.Action,
			data.QuestionCount, data.CorrectCount, data.Grade, data.Passes).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(answerEventsTable).
		Columns(colSequence, colTimestamp, colSessionID, colPass, colQuestionNumber,
			colKind, colDescription, colCorrectAnswer, colResponse, colCorrect).
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Pass, data.QuestionNumber,
			data.Kind, data.Description, data.CorrectAnswer, data.Response, data.Correct).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummaryRecord, error) {
	sel := builder().
		Select(colSessionID, colQuizName, colTimestamp, colQuestionCount,
			colCorrectCount, colGrade, colPasses, colSequence).
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ(colAction, ActionEnd)).
		OrderBy(entsql.Desc(colSequence))
	if limit > 0 {
		sel = sel.Limit(limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(&rec.SessionID, &rec.QuizName, &rec.Timestamp, &rec.QuestionCount,
			&rec.CorrectCount, &rec.Grade, &rec.Passes, &rec.Sequence); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return records, nil
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	query, args := builder().
		Select(colSessionID, colPass, colQuestionNumber, colKind, colDescription,
			colCorrectAnswer, colResponse, colCorrect, colSequence, colTimestamp).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ(colSessionID, sessionID)).
		OrderBy(colSequence).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	defer rows.Close()

	var records []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		if err := rows.Scan(&rec.SessionID, &rec.Pass, &rec.QuestionNumber, &rec.Kind, &rec.Description,
			&rec.CorrectAnswer, &rec.Response, &rec.Correct, &rec.Sequence, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	return records, nil
}

// Reset clears both event tables and rewinds the sequence in one
// transaction.
func (r *eventRepo) Reset(ctx context.Context) error {
	r.seq.mu.Lock()
	defer r.seq.mu.Unlock()

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	for _, table := range []string{answerEventsTable, sessionEventsTable} {
		query, args := builder().Delete(table).Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return rollback(tx, fmt.Errorf("clear %s: %w", table, err))
		}
	}
	if err := r.seq.resetTx(ctx, tx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// rollback calls tx.Rollback and wraps the given error with the rollback
// error if occurred.
func rollback(tx dialect.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
