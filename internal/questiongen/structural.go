package questiongen

// StructuralValidator checks that required fields are present, within
// length limits, and internally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "choices must contain exactly 4 options",
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(q.Choices))
	answerFound := false
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choices contains an empty option",
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choices contains duplicate options",
				Retryable: true,
			}
		}
		seen[c] = true
		if c == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer does not match any choice",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	return nil
}
