package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mightyhq/prepcore/internal/llm"
)

func validResponse() llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(`{
			"question_text": "If 3x + 5 = 20, what is the value of x?",
			"choices": ["3", "5", "15", "25"],
			"answer": "5",
			"explanation": "Subtract 5 from both sides to get 3x = 15, then divide by 3."
		}`),
	}
}

func TestLLMGenerator_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(validResponse())
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Domain:     "Algebra",
		Difficulty: "easy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "If 3x + 5 = 20, what is the value of x?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Domain != "Algebra" || q.Difficulty != "easy" {
		t.Errorf("tagging = %s/%s, want Algebra/easy", q.Domain, q.Difficulty)
	}
	if q.Answer != "5" || len(q.Choices) != 4 {
		t.Errorf("answer/choices = %q/%d, want 5/4", q.Answer, len(q.Choices))
	}
}

func TestLLMGenerator_PassesContextToPrompt(t *testing.T) {
	mock := llm.NewMockProvider(validResponse())
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Domain:         "Craft & Structure",
		Difficulty:     "hard",
		PriorQuestions: []string{"old question"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("expected question schema on request")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	for _, want := range []string{"Craft & Structure", "hard", "old question"} {
		if !strings.Contains(req.Messages[0].Content, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Domain: "Algebra", Difficulty: "easy"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestLLMGenerator_ValidationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"question_text": "If 3x + 5 = 20, what is the value of x?",
			"choices": ["3", "5", "15", "25"],
			"answer": "42",
			"explanation": "Wrong on purpose."
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Domain: "Algebra", Difficulty: "easy"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
}

func TestLLMGenerator_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Domain: "Algebra", Difficulty: "easy"})
	if err == nil {
		t.Fatal("expected parse error")
	}
}
