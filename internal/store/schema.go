package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the migration and the queries.
const (
	sessionEventsTable = "session_events"
	answerEventsTable  = "answer_events"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
	colSessionID = "session_id"

	colQuizName      = "quiz_name"
	colAction        = "action"
	colQuestionCount = "question_count"
	colCorrectCount  = "correct_count"
	colGrade         = "grade"
	colPasses        = "passes"

	colPass           = "pass"
	colQuestionNumber = "question_number"
	colKind           = "kind"
	colDescription    = "description"
	colCorrectAnswer  = "correct_answer"
	colResponse       = "response"
	colCorrect        = "correct"
)

var (
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colQuizName, Type: field.TypeString},
		{Name: colAction, Type: field.TypeString},
		{Name: colQuestionCount, Type: field.TypeInt, Default: 0},
		{Name: colCorrectCount, Type: field.TypeInt, Default: 0},
		{Name: colGrade, Type: field.TypeFloat64, Default: 0},
		{Name: colPasses, Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
			{Name: "sessionevent_action", Columns: []*schema.Column{SessionEventsColumns[5]}},
		},
	}

	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colPass, Type: field.TypeInt},
		{Name: colQuestionNumber, Type: field.TypeInt},
		{Name: colKind, Type: field.TypeString},
		{Name: colDescription, Type: field.TypeString, Size: 2147483647},
		{Name: colCorrectAnswer, Type: field.TypeString},
		{Name: colResponse, Type: field.TypeString},
		{Name: colCorrect, Type: field.TypeBool},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       answerEventsTable,
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_session_id", Columns: []*schema.Column{AnswerEventsColumns[3]}},
			{Name: "answerevent_correct", Columns: []*schema.Column{AnswerEventsColumns[10]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionEventsTable,
		AnswerEventsTable,
	}
)
