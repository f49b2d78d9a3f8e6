// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DailyPlansColumns holds the columns for the "daily_plans" table.
	DailyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plan_date", Type: field.TypeString},
		{Name: "activities", Type: field.TypeJSON, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// DailyPlansTable holds the schema information for the "daily_plans" table.
	DailyPlansTable = &schema.Table{
		Name:       "daily_plans",
		Columns:    DailyPlansColumns,
		PrimaryKey: []*schema.Column{DailyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailyplan_user_id_plan_date",
				Unique:  true,
				Columns: []*schema.Column{DailyPlansColumns[2], DailyPlansColumns[3]},
			},
			{
				Name:    "dailyplan_plan_id",
				Unique:  false,
				Columns: []*schema.Column{DailyPlansColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// LearnerProfilesColumns holds the columns for the "learner_profiles" table.
	LearnerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "weak_domains", Type: field.TypeJSON, Nullable: true},
		{Name: "strength_domains", Type: field.TypeJSON, Nullable: true},
		{Name: "daily_minutes", Type: field.TypeInt, Default: 30},
		{Name: "score_low", Type: field.TypeInt, Default: 0},
		{Name: "score_high", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerProfilesTable holds the schema information for the "learner_profiles" table.
	LearnerProfilesTable = &schema.Table{
		Name:       "learner_profiles",
		Columns:    LearnerProfilesColumns,
		PrimaryKey: []*schema.Column{LearnerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearnerProfilesColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "qid", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_domain_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2], QuestionsColumns[3]},
			},
			{
				Name:    "question_qid",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
		},
	}
	// StressRecordsColumns holds the columns for the "stress_records" table.
	StressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeFloat64, Default: 50},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "events", Type: field.TypeJSON, Nullable: true},
	}
	// StressRecordsTable holds the schema information for the "stress_records" table.
	StressRecordsTable = &schema.Table{
		Name:       "stress_records",
		Columns:    StressRecordsColumns,
		PrimaryKey: []*schema.Column{StressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stressrecord_user_id_subject_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{StressRecordsColumns[1], StressRecordsColumns[2], StressRecordsColumns[3]},
			},
			{
				Name:    "stressrecord_user_id_subject_id",
				Unique:  false,
				Columns: []*schema.Column{StressRecordsColumns[1], StressRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DailyPlansTable,
		LlmRequestEventsTable,
		LearnerProfilesTable,
		QuestionsTable,
		StressRecordsTable,
	}
)

func init() {
}
