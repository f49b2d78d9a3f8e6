package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an SAT content writer creating multiple-choice practice questions.

Rules:
- Generate a single question appropriate for the given content domain and difficulty.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- The question text should be clear, self-contained, and in the style of real SAT questions.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- The answer field must match the text of the correct option exactly.
- The explanation should show the reasoning step by step.
- Calibrate to the requested difficulty: "easy" is a single-step problem, "medium" requires two or three steps, "hard" requires multi-step reasoning or an unfamiliar setup.
- Do not repeat any question from the "already generated" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Domain: %s\n", input.Domain)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready generated in this batch:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
