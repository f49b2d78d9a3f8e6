package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one practice question in the inventory, addressable by
// (domain, difficulty) for plan content selection.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable question identifier exposed in plans"),
		field.String("domain").
			NotEmpty().
			Comment("Content domain, e.g. Algebra or Craft & Structure"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("text").
			NotEmpty().
			Comment("The question prompt"),
		field.JSON("choices", []string{}).
			Comment("Exactly 4 options, one of which is the answer"),
		field.String("answer").
			NotEmpty().
			Comment("Text of the correct option"),
		field.String("explanation").
			Default("").
			Comment("Worked solution shown after answering"),
		field.Bool("active").
			Default(true).
			Comment("Inactive questions are excluded from plan selection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain", "difficulty"),
		index.Fields("qid"),
	}
}
