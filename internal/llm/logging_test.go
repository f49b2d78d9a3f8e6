package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/store"
)

type fakeEventRepo struct {
	events    []store.LLMRequestEventData
	appendErr error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.LLMEventQuery) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"question":"If 3x = 12, what is x?"}`),
			Usage:   Usage{InputTokens: 20, OutputTokens: 12, TotalTokens: 32},
		},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo, zerolog.Nop())

	ctx := WithPurpose(context.Background(), "question-authoring")
	_, err := p.Generate(ctx, Request{
		System:   "You are an SAT question writer.",
		Messages: []Message{{Role: RoleUser, Content: "Write an algebra question."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("expected Success = true")
	}
	if ev.Purpose != "question-authoring" {
		t.Errorf("Purpose = %q, want question-authoring", ev.Purpose)
	}
	if ev.InputTokens != 20 || ev.OutputTokens != 12 {
		t.Errorf("tokens = %d/%d, want 20/12", ev.InputTokens, ev.OutputTokens)
	}
	if ev.RequestBody == "" || ev.ResponseBody == "" {
		t.Error("expected request and response bodies to be captured")
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo, zerolog.Nop())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected Success = false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected ErrorMessage to be set")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	repo := &fakeEventRepo{appendErr: errors.New("db locked")}
	p := WithLogging(mock, repo, zerolog.Nop())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected response despite event repo failure")
	}
}
