package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures a quiz session lifecycle event.
type SessionEventData struct {
	SessionID     string
	QuizName      string
	Action        string // ActionStart or ActionEnd
	QuestionCount int
	CorrectCount  int     // end only
	Grade         float64 // end only, 0-100
	Passes        int     // end only
}

// AnswerEventData captures one respondent answer.
type AnswerEventData struct {
	SessionID      string
	Pass           int // 1 for the first pass, 2+ for retries
	QuestionNumber int // 1-based position in the quiz
	Kind           string
	Description    string
	CorrectAnswer  string
	Response       string
	Correct        bool
}

// SessionSummaryRecord is one finished session.
type SessionSummaryRecord struct {
	SessionID     string
	QuizName      string
	Timestamp     time.Time
	QuestionCount int
	CorrectCount  int
	Grade         float64
	Passes        int
	Sequence      int64
}

// AnswerRecord is one recorded answer.
type AnswerRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to recorded quiz results.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentSessions returns finished sessions, newest first. A limit of 0
	// returns all of them.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummaryRecord, error)

	// SessionAnswers returns the answers of one session in the order given.
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// Reset deletes every recorded event.
	Reset(ctx context.Context) error
}
