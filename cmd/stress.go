package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mightyhq/prepcore/internal/clock"
	"github.com/mightyhq/prepcore/internal/stress"
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Inspect and maintain stress tracking",
}

var stressReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show tracked stress levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		recs, err := s.Stress().ListByUser(ctx, userID(cmd))
		if err != nil {
			return fmt.Errorf("list stress records: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No stress records yet.")
			return nil
		}

		fmt.Printf("%-16s  %-24s  %6s  %s\n", "Subject", "Topic", "Level", "Updated")
		fmt.Println(strings.Repeat("─", 72))
		for _, rec := range recs {
			fmt.Printf("%-16s  %-24s  %6.1f  %s\n",
				rec.SubjectID, rec.TopicID, rec.Level,
				rec.LastUpdated.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var stressDecayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Apply time-based decay to all tracked topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		tracker := stress.NewTracker(s.Stress(), clock.System{}, stress.DefaultConfig(), newLogger())
		tracker.ApplyDecay(context.Background(), userID(cmd))
		fmt.Println("Decay applied.")
		return nil
	},
}

var stressRecordCmd = &cobra.Command{
	Use:   "record <event> <subject> <topic> [value]",
	Short: "Record a practice event",
	Long: `Record a practice event against a (subject, topic) pair.

Events:
  correct-streak <length>   streak of correct answers
  wrong-streak <length>     streak of wrong answers
  completion <score>        task finished with the given score (0-100)
  abandon                   quiz abandoned mid-way
  skips <count>             questions skipped in a session`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, subject, topic := args[0], args[1], args[2]

		value := 0
		if len(args) == 4 {
			v, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[3], err)
			}
			value = v
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		user := userID(cmd)
		tracker := stress.NewTracker(s.Stress(), clock.System{}, stress.DefaultConfig(), newLogger())

		switch event {
		case "correct-streak":
			tracker.RecordCorrectStreak(ctx, user, subject, topic, value)
		case "wrong-streak":
			tracker.RecordWrongStreak(ctx, user, subject, topic, value)
		case "completion":
			tracker.RecordTaskCompletion(ctx, user, subject, topic, value)
		case "abandon":
			tracker.RecordQuizAbandon(ctx, user, subject, topic)
		case "skips":
			tracker.RecordSkippedQuestions(ctx, user, subject, topic, value)
		default:
			return fmt.Errorf("unknown event %q", event)
		}

		fmt.Printf("Topic stress: %.1f, subject stress: %.0f\n",
			tracker.TopicStress(ctx, user, subject, topic),
			tracker.SubjectStress(ctx, user, subject))
		return nil
	},
}

func init() {
	stressCmd.AddCommand(stressReportCmd)
	stressCmd.AddCommand(stressDecayCmd)
	stressCmd.AddCommand(stressRecordCmd)
}
