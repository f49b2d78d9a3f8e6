package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerProfile stores the diagnostic outcome the planner consumes:
// weak/strong domains and the recommended daily budget.
type LearnerProfile struct {
	ent.Schema
}

func (LearnerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Comment("Opaque user identifier"),
		field.JSON("weak_domains", []string{}).
			Optional().
			Comment("Weakest domains first"),
		field.JSON("strength_domains", []string{}).
			Optional().
			Comment("Strongest domains first"),
		field.Int("daily_minutes").
			Default(30).
			Comment("Recommended daily study time"),
		field.Int("score_low").
			Default(0).
			Comment("Low end of the estimated score range"),
		field.Int("score_high").
			Default(0).
			Comment("High end of the estimated score range"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last diagnostic run"),
	}
}

func (LearnerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
