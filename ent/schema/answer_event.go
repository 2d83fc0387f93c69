package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answer given during a quiz pass.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("pass").
			Comment("1 for the first pass, 2+ for retries"),
		field.Int("question_number").
			Comment("1-based position in the quiz"),
		field.String("kind").
			NotEmpty().
			Comment("true_false, multi_choice, or multi_select"),
		field.Text("description").
			Comment("The question shown"),
		field.String("correct_answer").
			Comment("Rendered correct answer"),
		field.String("response").
			Comment("Rendered respondent answer"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
