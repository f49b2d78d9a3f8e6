package questiongen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		Text:        "If 3x + 5 = 20, what is the value of x?",
		Domain:      "Algebra",
		Difficulty:  "easy",
		Choices:     []string{"3", "5", "15", "25"},
		Answer:      "5",
		Explanation: "Subtract 5 from both sides to get 3x = 15, then divide by 3.",
	}
}

func TestStructuralValidator_Valid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected valid question to pass, got: %v", err)
	}
}

func TestStructuralValidator_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty text", func(q *Question) { q.Text = "" }},
		{"text too long", func(q *Question) { q.Text = strings.Repeat("x", 501) }},
		{"too few choices", func(q *Question) { q.Choices = q.Choices[:3] }},
		{"too many choices", func(q *Question) { q.Choices = append(q.Choices, "99") }},
		{"empty choice", func(q *Question) { q.Choices[2] = "" }},
		{"duplicate choices", func(q *Question) { q.Choices[0] = "5" }},
		{"answer not a choice", func(q *Question) { q.Answer = "42" }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
		{"explanation too long", func(q *Question) { q.Explanation = strings.Repeat("x", 1001) }},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, GenerateInput{})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Validator != "structural" {
				t.Errorf("Validator = %q, want structural", err.Validator)
			}
			if !err.Retryable {
				t.Error("expected structural failures to be retryable")
			}
		})
	}
}
