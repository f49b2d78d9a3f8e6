package store

import (
	"context"
	"time"
)

// StressEvent is one entry in a stress record's bounded audit log.
type StressEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// StressRecord is the decaying stress score for one (user, subject, topic).
type StressRecord struct {
	UserID      string
	SubjectID   string
	TopicID     string
	Level       float64
	LastUpdated time.Time
	Events      []StressEvent
}

// StressRepo persists stress records keyed by (user, subject, topic).
type StressRepo interface {
	// Get returns the record for the composite key, or nil if untracked.
	Get(ctx context.Context, userID, subjectID, topicID string) (*StressRecord, error)

	// ListBySubject returns all tracked records for a user's subject.
	ListBySubject(ctx context.Context, userID, subjectID string) ([]*StressRecord, error)

	// ListByUser returns all tracked records for a user.
	ListByUser(ctx context.Context, userID string) ([]*StressRecord, error)

	// Upsert inserts or replaces the record for its composite key.
	Upsert(ctx context.Context, rec *StressRecord) error
}

// Activity is one of the up-to-three parts of a daily plan.
type Activity struct {
	Type             string   `json:"type"`
	Domain           string   `json:"domain"`
	QuestionIDs      []string `json:"question_ids"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Completed        bool     `json:"completed"`
}

// DailyPlan is one day's practice plan for a user.
type DailyPlan struct {
	ID          string
	UserID      string
	PlanDate    string // 2006-01-02
	Activities  []Activity
	Completed   bool
	CompletedAt *time.Time
}

// PlanRepo persists daily plans, one per (user, calendar day).
type PlanRepo interface {
	// Get returns the plan with the given ID, or nil if absent.
	Get(ctx context.Context, planID string) (*DailyPlan, error)

	// GetByDate returns the user's plan for a calendar day, or nil if absent.
	GetByDate(ctx context.Context, userID, date string) (*DailyPlan, error)

	// Create inserts a new plan. Fails if a plan already exists for the
	// same (user, day); the unique index backs the one-plan-per-day rule.
	Create(ctx context.Context, plan *DailyPlan) error

	// Update replaces the mutable fields of an existing plan.
	Update(ctx context.Context, plan *DailyPlan) error
}

// LearnerProfile is the diagnostic outcome the planner consumes.
type LearnerProfile struct {
	UserID          string
	WeakDomains     []string
	StrengthDomains []string
	DailyMinutes    int
	ScoreLow        int
	ScoreHigh       int
	UpdatedAt       time.Time
}

// ProfileRepo persists one learner profile per user.
type ProfileRepo interface {
	// Get returns the user's profile, or nil if no diagnostic has run.
	Get(ctx context.Context, userID string) (*LearnerProfile, error)

	// Upsert inserts or replaces the user's profile.
	Upsert(ctx context.Context, p *LearnerProfile) error
}

// Question is one practice question in the inventory.
type Question struct {
	QID         string
	Domain      string
	Difficulty  string
	Text        string
	Choices     []string
	Answer      string
	Explanation string
	Active      bool
}

// QuestionRepo provides inventory lookup and authoring.
type QuestionRepo interface {
	// IDsByDomainDifficulty returns up to limit active question IDs
	// matching the domain and any of the given difficulties.
	IDsByDomainDifficulty(ctx context.Context, domain string, difficulties []string, limit int) ([]string, error)

	// Put inserts a question into the inventory.
	Put(ctx context.Context, q *Question) error

	// CountByDomain returns the number of active questions per domain.
	CountByDomain(ctx context.Context) (map[string]int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is one recorded LLM API call.
type LLMRequestEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventQuery filters QueryLLMEvents results.
type LLMEventQuery struct {
	Limit   int    // max results, newest first (0 = unlimited)
	Purpose string // exact purpose match ("" = all)
}

// EventRepo provides access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts LLMEventQuery) ([]LLMRequestEvent, error)
}
