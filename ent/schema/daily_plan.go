package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEntry is the serialized form of one plan activity.
type ActivityEntry struct {
	Type             string   `json:"type"`
	Domain           string   `json:"domain"`
	QuestionIDs      []string `json:"question_ids"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Completed        bool     `json:"completed"`
}

// DailyPlan is one day's practice plan for a user. Exactly one plan may
// exist per (user, calendar day).
type DailyPlan struct {
	ent.Schema
}

func (DailyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID exposed to callers"),
		field.String("user_id").
			NotEmpty().
			Comment("Opaque user identifier"),
		field.String("plan_date").
			NotEmpty().
			Comment("Calendar day in the clock's locale, formatted 2006-01-02"),
		field.JSON("activities", []ActivityEntry{}).
			Optional().
			Comment("Up to three activities: warmup, core_focus, boost"),
		field.Bool("completed").
			Default(false).
			Comment("True iff every activity is completed"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set when completed flips to true"),
	}
}

func (DailyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "plan_date").
			Unique(),
		index.Fields("plan_id"),
	}
}
