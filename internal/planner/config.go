package planner

// Activity types, in plan order.
const (
	ActivityWarmup    = "warmup"
	ActivityCoreFocus = "core_focus"
	ActivityBoost     = "boost"
)

// Question difficulties used for inventory lookup.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Config holds the plan-shape tuning.
type Config struct {
	// WarmupShare, CoreShare, and BoostShare split the daily-minute budget.
	WarmupShare float64
	CoreShare   float64
	BoostShare  float64

	// WarmupQuestions, CoreQuestions, and BoostQuestions cap how many
	// questions each activity pulls from the inventory.
	WarmupQuestions int
	CoreQuestions   int
	BoostQuestions  int

	// DefaultDailyMinutes applies when the profile carries no budget.
	DefaultDailyMinutes int

	// FallbackDomains seed focus selection when the learner has no
	// diagnosed weaknesses yet.
	FallbackDomains []string
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		WarmupShare:         0.2,
		CoreShare:           0.6,
		BoostShare:          0.2,
		WarmupQuestions:     3,
		CoreQuestions:       6,
		BoostQuestions:      3,
		DefaultDailyMinutes: 30,
		FallbackDomains: []string{
			"Algebra",
			"Problem Solving & Data Analysis",
			"Craft & Structure",
			"Information & Ideas",
		},
	}
}
