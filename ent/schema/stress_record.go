package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StressEventEntry is the serialized form of a single stress event kept in
// the record's bounded audit log.
type StressEventEntry struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// StressRecord holds the decaying stress score for one (user, subject, topic).
type StressRecord struct {
	ent.Schema
}

func (StressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Opaque user identifier from the auth layer"),
		field.String("subject_id").
			NotEmpty().
			Comment("Subject the topic belongs to, e.g. sat-math"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the score tracks, e.g. linear-equations"),
		field.Float("level").
			Default(50).
			Comment("Current stress score, clamped to [0, 100]"),
		field.Time("last_updated").
			Default(time.Now).
			Comment("Time of the last mutation; drives decay"),
		field.JSON("events", []StressEventEntry{}).
			Optional().
			Comment("Most recent events, capped at 50 entries"),
	}
}

func (StressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id", "topic_id").
			Unique(),
		index.Fields("user_id", "subject_id"),
	}
}
