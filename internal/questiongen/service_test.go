package questiongen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/store"
)

// scriptedGenerator returns results in order, recording inputs.
type scriptedGenerator struct {
	results []scriptedResult
	inputs  []GenerateInput
}

type scriptedResult struct {
	q   *Question
	err error
}

func (g *scriptedGenerator) Generate(_ context.Context, input GenerateInput) (*Question, error) {
	g.inputs = append(g.inputs, input)
	if len(g.results) == 0 {
		return nil, errors.New("script exhausted")
	}
	r := g.results[0]
	g.results = g.results[1:]
	return r.q, r.err
}

type fakeInventory struct {
	put    []*store.Question
	putErr error
}

func (f *fakeInventory) Put(_ context.Context, q *store.Question) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.put = append(f.put, q)
	return nil
}

func (f *fakeInventory) IDsByDomainDifficulty(_ context.Context, _ string, _ []string, _ int) ([]string, error) {
	return nil, nil
}

func (f *fakeInventory) CountByDomain(_ context.Context) (map[string]int, error) {
	return nil, nil
}

func scriptedQuestion(i int) *Question {
	return &Question{
		Text:        fmt.Sprintf("question %d", i),
		Domain:      "Algebra",
		Difficulty:  "medium",
		Choices:     []string{"1", "2", "3", "4"},
		Answer:      "2",
		Explanation: "because",
	}
}

func TestFill_PersistsGeneratedQuestions(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{
		{q: scriptedQuestion(1)},
		{q: scriptedQuestion(2)},
	}}
	inv := &fakeInventory{}
	svc := NewService(gen, inv, zerolog.Nop())

	saved, err := svc.Fill(context.Background(), "Algebra", "medium", 2)
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if len(saved) != 2 || len(inv.put) != 2 {
		t.Fatalf("saved %d, persisted %d, want 2 each", len(saved), len(inv.put))
	}
	for _, q := range inv.put {
		if q.QID == "" {
			t.Error("persisted question has empty QID")
		}
		if !q.Active {
			t.Error("persisted question not active")
		}
	}

	// The second generation must see the first question for dedup.
	if len(gen.inputs) != 2 {
		t.Fatalf("expected 2 generator calls, got %d", len(gen.inputs))
	}
	if len(gen.inputs[1].PriorQuestions) != 1 || gen.inputs[1].PriorQuestions[0] != "question 1" {
		t.Errorf("second input PriorQuestions = %v, want [question 1]", gen.inputs[1].PriorQuestions)
	}
}

func TestFill_RetriesValidationFailureOnce(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{
		{err: &ValidationError{Validator: "structural", Message: "bad", Retryable: true}},
		{q: scriptedQuestion(1)},
	}}
	inv := &fakeInventory{}
	svc := NewService(gen, inv, zerolog.Nop())

	saved, err := svc.Fill(context.Background(), "Algebra", "medium", 1)
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved %d, want 1", len(saved))
	}
	if len(gen.inputs) != 2 {
		t.Fatalf("expected 2 generator calls, got %d", len(gen.inputs))
	}
}

func TestFill_SkipsSlotAfterRepeatedValidationFailures(t *testing.T) {
	verr := &ValidationError{Validator: "structural", Message: "bad", Retryable: true}
	gen := &scriptedGenerator{results: []scriptedResult{
		{err: verr},
		{err: verr},
		{q: scriptedQuestion(2)},
	}}
	inv := &fakeInventory{}
	svc := NewService(gen, inv, zerolog.Nop())

	saved, err := svc.Fill(context.Background(), "Algebra", "medium", 2)
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved %d, want 1 (first slot skipped)", len(saved))
	}
}

func TestFill_ProviderErrorAborts(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{
		{q: scriptedQuestion(1)},
		{err: errors.New("provider down")},
	}}
	inv := &fakeInventory{}
	svc := NewService(gen, inv, zerolog.Nop())

	saved, err := svc.Fill(context.Background(), "Algebra", "medium", 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(saved) != 1 {
		t.Fatalf("saved %d, want 1 (work before the failure is kept)", len(saved))
	}
}

func TestFill_StorageErrorAborts(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{
		{q: scriptedQuestion(1)},
	}}
	inv := &fakeInventory{putErr: errors.New("disk full")}
	svc := NewService(gen, inv, zerolog.Nop())

	if _, err := svc.Fill(context.Background(), "Algebra", "medium", 1); err == nil {
		t.Fatal("expected error")
	}
}

func TestFill_RejectsNonPositiveCount(t *testing.T) {
	svc := NewService(&scriptedGenerator{}, &fakeInventory{}, zerolog.Nop())
	if _, err := svc.Fill(context.Background(), "Algebra", "medium", 0); err == nil {
		t.Fatal("expected error for zero count")
	}
}
