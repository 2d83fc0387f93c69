package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("quiz_name").
			Comment("Name given to the quiz by its author"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("question_count").
			Default(0).
			Comment("Questions in the quiz"),
		field.Int("correct_count").
			Default(0).
			Comment("Questions answered correctly (on end only)"),
		field.Float("grade").
			Default(0).
			Comment("Final grade in percent (on end only)"),
		field.Int("passes").
			Default(0).
			Comment("Administration passes taken (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
