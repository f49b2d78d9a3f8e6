package diagnostic

import (
	"fmt"
	"testing"
)

// domainBatch builds an aligned question/answer run for one domain with the
// given number of correct answers out of total.
func domainBatch(domain string, correct, total int) ([]Question, []Answer) {
	qs := make([]Question, 0, total)
	as := make([]Answer, 0, total)
	for i := 0; i < total; i++ {
		qs = append(qs, Question{ID: fmt.Sprintf("%s-%d", domain, i), Domain: domain})
		as = append(as, Answer{IsCorrect: i < correct})
	}
	return qs, as
}

func buildDiagnostic(parts ...func() ([]Question, []Answer)) ([]Question, []Answer) {
	var qs []Question
	var as []Answer
	for _, part := range parts {
		pq, pa := part()
		qs = append(qs, pq...)
		as = append(as, pa...)
	}
	return qs, as
}

func part(domain string, correct, total int) func() ([]Question, []Answer) {
	return func() ([]Question, []Answer) { return domainBatch(domain, correct, total) }
}

func TestScoreRejectsBadInput(t *testing.T) {
	s := NewScorer(DefaultConfig())

	if _, err := s.Score(nil, nil); err == nil {
		t.Error("expected error for empty diagnostic")
	}

	qs, as := domainBatch("algebra", 2, 4)
	if _, err := s.Score(qs, as[:3]); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestScoreDomainClassification(t *testing.T) {
	s := NewScorer(DefaultConfig())

	// algebra 3/4 = 75% (strength, boundary), geometry 3/5 = 60% (neither,
	// boundary), reading 2/4 = 50% (weakness), grammar 1/4 = 25% (weakness).
	qs, as := buildDiagnostic(
		part("algebra", 3, 4),
		part("geometry", 3, 5),
		part("reading", 2, 4),
		part("grammar", 1, 4),
	)

	res, err := s.Score(qs, as)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if len(res.Strengths) != 1 || res.Strengths[0].Domain != "algebra" {
		t.Errorf("Strengths = %v, want [algebra]", res.Strengths)
	}
	if len(res.Weaknesses) != 2 {
		t.Fatalf("Weaknesses = %v, want 2 entries", res.Weaknesses)
	}
	// Weakest first.
	if res.Weaknesses[0].Domain != "grammar" || res.Weaknesses[1].Domain != "reading" {
		t.Errorf("Weaknesses order = [%s %s], want [grammar reading]",
			res.Weaknesses[0].Domain, res.Weaknesses[1].Domain)
	}

	if res.CorrectAnswers != 9 || res.TotalQuestions != 17 {
		t.Errorf("totals = %d/%d, want 9/17", res.CorrectAnswers, res.TotalQuestions)
	}
}

func TestScoreStrengthsSortedDescending(t *testing.T) {
	s := NewScorer(DefaultConfig())

	qs, as := buildDiagnostic(
		part("algebra", 3, 4),  // 75%
		part("geometry", 4, 4), // 100%
	)

	res, err := s.Score(qs, as)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if len(res.Strengths) != 2 {
		t.Fatalf("Strengths = %v, want 2 entries", res.Strengths)
	}
	if res.Strengths[0].Domain != "geometry" || res.Strengths[1].Domain != "algebra" {
		t.Errorf("Strengths order = [%s %s], want [geometry algebra]",
			res.Strengths[0].Domain, res.Strengths[1].Domain)
	}
}

func TestScoreRange(t *testing.T) {
	s := NewScorer(DefaultConfig())

	tests := []struct {
		name     string
		correct  int
		total    int
		wantLow  int
		wantHigh int
	}{
		{"perfect clamps high", 20, 20, 1540, 1600},
		{"zero clamps low", 0, 20, 800, 860},
		{"midpoint", 10, 20, 1140, 1260},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, as := domainBatch("algebra", tt.correct, tt.total)
			res, err := s.Score(qs, as)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if res.ScoreLow != tt.wantLow || res.ScoreHigh != tt.wantHigh {
				t.Errorf("range = [%d, %d], want [%d, %d]",
					res.ScoreLow, res.ScoreHigh, tt.wantLow, tt.wantHigh)
			}
		})
	}
}

func TestRecommendedMinutes(t *testing.T) {
	s := NewScorer(DefaultConfig())

	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"above half", 11, 20, 30},  // 55%
		{"exactly half", 10, 20, 30},
		{"below half", 9, 20, 45},   // 45%
		{"exactly forty", 8, 20, 45},
		{"well below", 7, 20, 60},   // 35%
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, as := domainBatch("algebra", tt.correct, tt.total)
			res, err := s.Score(qs, as)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if res.RecommendedDailyMinutes != tt.want {
				t.Errorf("RecommendedDailyMinutes = %d, want %d", res.RecommendedDailyMinutes, tt.want)
			}
		})
	}
}

func TestMasteryLabel(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, MasteryExpert},
		{90, MasteryExpert},
		{89.9, MasteryStrong},
		{75, MasteryStrong},
		{74.9, MasteryDeveloping},
		{50, MasteryDeveloping},
		{49.9, MasteryBeginner},
		{0, MasteryBeginner},
	}
	for _, tt := range tests {
		if got := MasteryLabel(tt.percentage); got != tt.want {
			t.Errorf("MasteryLabel(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}
