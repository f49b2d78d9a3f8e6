// Package diagnostic turns a diagnostic quiz's answer set into an
// actionable summary: per-domain strengths and weaknesses, a coarse score
// range estimate, and a recommended daily study budget.
package diagnostic

import (
	"fmt"
	"sort"
)

// Question is one diagnostic question, tagged with its content domain.
type Question struct {
	ID     string
	Domain string
}

// Answer is the learner's answer to the question at the same index.
type Answer struct {
	IsCorrect bool
}

// DomainScore is the per-domain accuracy computed for one diagnostic run.
type DomainScore struct {
	Domain     string
	Correct    int
	Total      int
	Percentage float64
}

// Result is the scored outcome of a diagnostic.
type Result struct {
	ScoreLow                int
	ScoreHigh               int
	CorrectAnswers          int
	TotalQuestions          int
	Percentage              float64
	Strengths               []DomainScore // strongest first
	Weaknesses              []DomainScore // weakest first
	RecommendedDailyMinutes int
}

// Scorer computes diagnostic results.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer with the given tuning.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score grades an index-aligned question/answer set. The alignment is the
// caller's obligation; a length mismatch or empty set is rejected rather
// than silently producing a misleading result.
func (s *Scorer) Score(questions []Question, answers []Answer) (*Result, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("empty diagnostic: no questions")
	}
	if len(questions) != len(answers) {
		return nil, fmt.Errorf("questions/answers mismatch: %d questions, %d answers", len(questions), len(answers))
	}

	correct := 0
	byDomain := make(map[string]*DomainScore)
	for i, q := range questions {
		ds, ok := byDomain[q.Domain]
		if !ok {
			ds = &DomainScore{Domain: q.Domain}
			byDomain[q.Domain] = ds
		}
		ds.Total++
		if answers[i].IsCorrect {
			ds.Correct++
			correct++
		}
	}

	percentage := float64(correct) / float64(len(questions)) * 100

	var strengths, weaknesses []DomainScore
	for _, ds := range byDomain {
		ds.Percentage = float64(ds.Correct) / float64(ds.Total) * 100
		switch {
		case ds.Percentage >= s.cfg.StrengthMin:
			strengths = append(strengths, *ds)
		case ds.Percentage < s.cfg.WeaknessMax:
			weaknesses = append(weaknesses, *ds)
		}
	}

	sort.Slice(strengths, func(i, j int) bool {
		if strengths[i].Percentage != strengths[j].Percentage {
			return strengths[i].Percentage > strengths[j].Percentage
		}
		return strengths[i].Domain < strengths[j].Domain
	})
	sort.Slice(weaknesses, func(i, j int) bool {
		if weaknesses[i].Percentage != weaknesses[j].Percentage {
			return weaknesses[i].Percentage < weaknesses[j].Percentage
		}
		return weaknesses[i].Domain < weaknesses[j].Domain
	})

	low, high := s.scoreRange(percentage)

	return &Result{
		ScoreLow:                low,
		ScoreHigh:               high,
		CorrectAnswers:          correct,
		TotalQuestions:          len(questions),
		Percentage:              percentage,
		Strengths:               strengths,
		Weaknesses:              weaknesses,
		RecommendedDailyMinutes: s.recommendMinutes(percentage),
	}, nil
}

// scoreRange estimates a total score range from the overall percentage.
// Both sections are derived from the same overall percentage, so they
// always move together; kept as-is for parity with the product (flagged
// for clarification, do not "fix" here).
func (s *Scorer) scoreRange(percentage float64) (int, int) {
	section := s.sectionEstimate(percentage)
	total := section * 2

	low := total - s.cfg.RangeVariance
	high := total + s.cfg.RangeVariance
	if low < s.cfg.ScoreFloor {
		low = s.cfg.ScoreFloor
	}
	if high > s.cfg.ScoreCeiling {
		high = s.cfg.ScoreCeiling
	}
	return low, high
}

func (s *Scorer) sectionEstimate(percentage float64) int {
	section := s.cfg.SectionBase + int(percentage/100*float64(s.cfg.SectionSpan))
	if section > s.cfg.SectionMax {
		section = s.cfg.SectionMax
	}
	return section
}

// recommendMinutes walks the steps in order; each match overwrites the
// recommendation, so the last configured match wins.
func (s *Scorer) recommendMinutes(percentage float64) int {
	minutes := s.cfg.BaseDailyMinutes
	for _, step := range s.cfg.MinuteSteps {
		if percentage < step.Below {
			minutes = step.Minutes
		}
	}
	return minutes
}
