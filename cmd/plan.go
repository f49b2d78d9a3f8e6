package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mightyhq/prepcore/internal/clock"
	"github.com/mightyhq/prepcore/internal/planner"
	"github.com/mightyhq/prepcore/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show or generate today's practice plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		user := userID(cmd)

		profile, err := s.Profiles().Get(ctx, user)
		if err != nil {
			return fmt.Errorf("load learner profile: %w", err)
		}

		gen := planner.NewGenerator(s.Plans(), s.Questions(), clock.System{}, planner.DefaultConfig(), newLogger())
		plan, err := gen.GenerateDailyPlan(ctx, user, profile)
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		printPlan(plan)
		return nil
	},
}

var planCompleteCmd = &cobra.Command{
	Use:   "complete <plan-id> <activity-index>",
	Short: "Mark a plan activity as completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid activity index %q: %w", args[1], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		gen := planner.NewGenerator(s.Plans(), s.Questions(), clock.System{}, planner.DefaultConfig(), newLogger())
		plan, err := gen.MarkActivityComplete(context.Background(), args[0], index)
		if err != nil {
			return err
		}

		if plan.Completed {
			fmt.Println("Plan complete. Nice work!")
		} else {
			fmt.Printf("Activity %d done.\n", index)
		}
		printPlan(plan)
		return nil
	},
}

func printPlan(plan *store.DailyPlan) {
	fmt.Printf("Plan %s for %s\n", plan.ID, plan.PlanDate)
	fmt.Println(strings.Repeat("─", 64))

	if len(plan.Activities) == 0 {
		fmt.Println("No activities: the question inventory is empty.")
		fmt.Println("Run `prepcore generate` to author questions first.")
		return
	}

	for i, a := range plan.Activities {
		mark := " "
		if a.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %d. %-10s  %-36s %2d min, %d questions\n",
			mark, i, a.Type, a.Domain, a.EstimatedMinutes, len(a.QuestionIDs))
	}

	if plan.Completed && plan.CompletedAt != nil {
		fmt.Printf("\nCompleted at %s\n", plan.CompletedAt.Local().Format("15:04"))
	}
}

func init() {
	planCmd.AddCommand(planCompleteCmd)
}
