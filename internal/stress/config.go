package stress

// Config holds the tuned constants of the stress heuristic. These are
// product-tuned values, not derived quantities; treat them as configuration.
type Config struct {
	// NeutralLevel is the starting score for a newly tracked topic.
	NeutralLevel float64

	// StreakThreshold is the minimum streak length (correct or wrong)
	// that moves the score. Shorter streaks are no-ops.
	StreakThreshold int

	// CorrectStreakRelief is the per-step decrease for a correct streak:
	// (streakLength - 1) * CorrectStreakRelief.
	CorrectStreakRelief float64

	// WrongStreakSpike is the per-step increase for a wrong streak:
	// (streakLength - 1) * WrongStreakSpike.
	WrongStreakSpike float64

	// CompletionScoreBar is the minimum task score that counts as a
	// confidence-building completion.
	CompletionScoreBar int

	// CompletionRelief is the flat decrease for a good task completion.
	CompletionRelief float64

	// AbandonSpike is the flat increase for abandoning a quiz.
	AbandonSpike float64

	// SkipThreshold is the minimum skip count that registers.
	SkipThreshold int

	// SkipSpikePerQuestion is the increase per skipped question.
	SkipSpikePerQuestion float64

	// DecayPerHour is the downward drift per elapsed hour.
	DecayPerHour float64

	// MinDecay is the smallest decay applied per invocation, so stale
	// scores always drift down a little.
	MinDecay float64

	// EventLogCap bounds the per-record audit log; oldest entries drop.
	EventLogCap int
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		NeutralLevel:         50,
		StreakThreshold:      2,
		CorrectStreakRelief:  12,
		WrongStreakSpike:     15,
		CompletionScoreBar:   70,
		CompletionRelief:     8,
		AbandonSpike:         20,
		SkipThreshold:        2,
		SkipSpikePerQuestion: 5,
		DecayPerHour:         1,
		MinDecay:             0.5,
		EventLogCap:          50,
	}
}
