package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mightyhq/prepcore/internal/llm"
	"github.com/mightyhq/prepcore/internal/questiongen"
)

var (
	generateDomain     string
	generateDifficulty string
	generateCount      int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Author practice questions into the inventory",
	Long: `Generate practice questions for a domain and difficulty using the
configured LLM provider, validate them, and store them in the inventory.

Provider selection: PREPCORE_LLM_PROVIDER plus the matching
PREPCORE_*_API_KEY, or a standard GEMINI/OPENAI/ANTHROPIC_API_KEY env var.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no usable LLM configuration: %w", err)
			}
			cfg = discovered
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		log := newLogger()
		ctx := context.Background()

		provider, err := llm.NewProvider(ctx, cfg, s.Events(), log)
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		svc := questiongen.NewService(gen, s.Questions(), log)

		fmt.Printf("Generating %d %s question(s) for %q...\n",
			generateCount, generateDifficulty, generateDomain)

		saved, err := svc.Fill(ctx, generateDomain, generateDifficulty, generateCount)
		for _, q := range saved {
			fmt.Printf("  + %s\n", q.Text)
		}
		if err != nil {
			return fmt.Errorf("generation stopped after %d question(s): %w", len(saved), err)
		}

		fmt.Printf("Stored %d question(s).\n", len(saved))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateDomain, "domain", "Algebra", "Question domain")
	generateCmd.Flags().StringVar(&generateDifficulty, "difficulty", "medium", "Question difficulty: easy, medium, hard")
	generateCmd.Flags().IntVar(&generateCount, "count", 5, "Number of questions to generate")
}
