package diagnostic

// Mastery labels, weakest to strongest. Display-only; nothing downstream
// branches on them.
const (
	MasteryBeginner   = "beginner"
	MasteryDeveloping = "developing"
	MasteryStrong     = "strong"
	MasteryExpert     = "expert"
)

// MasteryLabel maps an accuracy percentage to a coarse display label. The
// strong boundary matches the strength threshold so the two surfaces agree.
func MasteryLabel(percentage float64) string {
	switch {
	case percentage >= 90:
		return MasteryExpert
	case percentage >= 75:
		return MasteryStrong
	case percentage >= 50:
		return MasteryDeveloping
	default:
		return MasteryBeginner
	}
}
