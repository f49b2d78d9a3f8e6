package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mightyhq/prepcore/internal/diagnostic"
	"github.com/mightyhq/prepcore/internal/store"
)

// diagnosticResult is the input file format for `prepcore diagnose`:
// one entry per answered question, in quiz order.
type diagnosticResult struct {
	ID      string `json:"id"`
	Domain  string `json:"domain"`
	Correct bool   `json:"correct"`
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <results.json>",
	Short: "Score a diagnostic quiz and update the learner profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read results file: %w", err)
		}

		var results []diagnosticResult
		if err := json.Unmarshal(data, &results); err != nil {
			return fmt.Errorf("parse results file: %w", err)
		}

		questions := make([]diagnostic.Question, len(results))
		answers := make([]diagnostic.Answer, len(results))
		for i, r := range results {
			questions[i] = diagnostic.Question{ID: r.ID, Domain: r.Domain}
			answers[i] = diagnostic.Answer{IsCorrect: r.Correct}
		}

		scorer := diagnostic.NewScorer(diagnostic.DefaultConfig())
		res, err := scorer.Score(questions, answers)
		if err != nil {
			return fmt.Errorf("score diagnostic: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		profile := &store.LearnerProfile{
			UserID:          userID(cmd),
			WeakDomains:     domainNames(res.Weaknesses),
			StrengthDomains: domainNames(res.Strengths),
			DailyMinutes:    res.RecommendedDailyMinutes,
			ScoreLow:        res.ScoreLow,
			ScoreHigh:       res.ScoreHigh,
		}
		if err := s.Profiles().Upsert(context.Background(), profile); err != nil {
			return fmt.Errorf("save learner profile: %w", err)
		}

		printDiagnostic(res)
		return nil
	},
}

func domainNames(scores []diagnostic.DomainScore) []string {
	names := make([]string, len(scores))
	for i, ds := range scores {
		names[i] = ds.Domain
	}
	return names
}

func printDiagnostic(res *diagnostic.Result) {
	fmt.Printf("Score: %d/%d (%.0f%%), mastery: %s\n",
		res.CorrectAnswers, res.TotalQuestions, res.Percentage, diagnostic.MasteryLabel(res.Percentage))
	fmt.Printf("Estimated range: %d - %d\n", res.ScoreLow, res.ScoreHigh)
	fmt.Printf("Recommended practice: %d min/day\n", res.RecommendedDailyMinutes)

	if len(res.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, ds := range res.Strengths {
			fmt.Printf("  %-36s %3.0f%% (%d/%d)\n", ds.Domain, ds.Percentage, ds.Correct, ds.Total)
		}
	}
	if len(res.Weaknesses) > 0 {
		fmt.Println("\nFocus areas:")
		for _, ds := range res.Weaknesses {
			fmt.Printf("  %-36s %3.0f%% (%d/%d)\n", ds.Domain, ds.Percentage, ds.Correct, ds.Total)
		}
	}
	fmt.Println(strings.Repeat("─", 48))
	fmt.Println("Run `prepcore plan` to generate today's practice.")
}
