package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner profile and inventory statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		profile, err := s.Profiles().Get(ctx, userID(cmd))
		if err != nil {
			return fmt.Errorf("load learner profile: %w", err)
		}

		if profile == nil {
			fmt.Println("No diagnostic on record. Run `prepcore diagnose` first.")
		} else {
			fmt.Printf("Learner: %s\n", profile.UserID)
			fmt.Printf("Estimated range: %d - %d\n", profile.ScoreLow, profile.ScoreHigh)
			fmt.Printf("Daily practice: %d min\n", profile.DailyMinutes)
			if len(profile.StrengthDomains) > 0 {
				fmt.Printf("Strengths: %s\n", strings.Join(profile.StrengthDomains, ", "))
			}
			if len(profile.WeakDomains) > 0 {
				fmt.Printf("Focus areas: %s\n", strings.Join(profile.WeakDomains, ", "))
			}
			fmt.Printf("Last diagnostic: %s\n", profile.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}

		counts, err := s.Questions().CountByDomain(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}

		fmt.Println("\nQuestion inventory:")
		if len(counts) == 0 {
			fmt.Println("  empty. Run `prepcore generate` to author questions.")
			return nil
		}

		domains := make([]string, 0, len(counts))
		total := 0
		for d, n := range counts {
			domains = append(domains, d)
			total += n
		}
		sort.Strings(domains)
		for _, d := range domains {
			fmt.Printf("  %-36s %4d\n", d, counts[d])
		}
		fmt.Printf("  %-36s %4d\n", "total", total)
		return nil
	},
}
