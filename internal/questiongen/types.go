// Package questiongen authors multiple-choice practice questions with an
// LLM provider and validates them before they enter the inventory.
package questiongen

// Question represents a generated practice question ready for the inventory.
type Question struct {
	// Text is the question prompt displayed to the learner.
	// Plain ASCII text, e.g. "If 3x + 5 = 20, what is the value of x?"
	Text string

	// Domain is the content area this question was generated for,
	// e.g. "Algebra" or "Craft & Structure".
	Domain string

	// Difficulty is the requested difficulty: "easy", "medium", or "hard".
	Difficulty string

	// Choices contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Answer is the text of the correct option.
	Answer string

	// Explanation is a brief worked solution shown after the learner answers.
	// Always present.
	Explanation string
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Domain is the target content area for the question.
	Domain string

	// Difficulty is the requested difficulty: "easy", "medium", or "hard".
	Difficulty string

	// PriorQuestions contains the Text of questions already generated in
	// this batch for this domain. Used for deduplication in the prompt.
	PriorQuestions []string
}
