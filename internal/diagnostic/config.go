package diagnostic

// Config holds the tuned constants of the diagnostic heuristics. The score
// range conversion is a crude linear estimate, not a scaled-score model;
// keep the constants intact for behavioral parity with the product.
type Config struct {
	// StrengthMin: a domain at or above this percentage is a strength.
	StrengthMin float64

	// WeaknessMax: a domain strictly below this percentage is a weakness.
	WeaknessMax float64

	// SectionBase and SectionSpan map the overall percentage to one
	// section estimate: base + pct/100 * span, capped at SectionMax.
	SectionBase int
	SectionSpan int
	SectionMax  int

	// RangeVariance widens the summed estimate by ± this amount.
	RangeVariance int

	// ScoreFloor and ScoreCeiling clamp the final range.
	ScoreFloor   int
	ScoreCeiling int

	// BaseDailyMinutes is the default recommendation. MinuteSteps are
	// checked in order and each match overwrites the recommendation, so
	// the last matching step wins.
	BaseDailyMinutes int
	MinuteSteps      []MinuteStep
}

// MinuteStep recommends Minutes when the overall percentage is strictly
// below Below.
type MinuteStep struct {
	Below   float64
	Minutes int
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		StrengthMin:      75,
		WeaknessMax:      60,
		SectionBase:      400,
		SectionSpan:      400,
		SectionMax:       800,
		RangeVariance:    60,
		ScoreFloor:       800,
		ScoreCeiling:     1600,
		BaseDailyMinutes: 30,
		MinuteSteps: []MinuteStep{
			{Below: 50, Minutes: 45},
			{Below: 40, Minutes: 60},
		},
	}
}
