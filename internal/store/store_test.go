package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestStressRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)
	rec, err := s.Stress().Get(context.Background(), "u1", "sat-math", "algebra")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for untracked topic, got %+v", rec)
	}
}

func TestStressRepo_UpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Stress()

	now := time.Now().Truncate(time.Second)
	rec := &StressRecord{
		UserID:      "u1",
		SubjectID:   "sat-math",
		TopicID:     "algebra",
		Level:       65,
		LastUpdated: now,
		Events: []StressEvent{
			{Type: "wrong_streak", Timestamp: now, Value: 15},
		},
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "sat-math", "algebra")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record after upsert")
	}
	if got.Level != 65 {
		t.Errorf("Level = %v, want 65", got.Level)
	}
	if len(got.Events) != 1 || got.Events[0].Type != "wrong_streak" {
		t.Errorf("Events = %+v, want one wrong_streak entry", got.Events)
	}

	// Second upsert replaces, not duplicates.
	rec.Level = 40
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	all, err := repo.ListBySubject(ctx, "u1", "sat-math")
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record after re-upsert, got %d", len(all))
	}
	if all[0].Level != 40 {
		t.Errorf("Level = %v, want 40", all[0].Level)
	}
}

func TestPlanRepo_UniquePerDay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Plans()

	plan := &DailyPlan{
		ID:       "plan-1",
		UserID:   "u1",
		PlanDate: "2026-08-28",
		Activities: []Activity{
			{Type: "warmup", Domain: "Algebra", QuestionIDs: []string{"q1"}, EstimatedMinutes: 6},
		},
	}
	if err := repo.Create(ctx, plan); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &DailyPlan{ID: "plan-2", UserID: "u1", PlanDate: "2026-08-28"}
	if err := repo.Create(ctx, dup); err == nil {
		t.Error("expected unique-index violation for second plan on same day")
	}

	got, err := repo.GetByDate(ctx, "u1", "2026-08-28")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got == nil || got.ID != "plan-1" {
		t.Errorf("GetByDate = %+v, want plan-1", got)
	}
}

func TestPlanRepo_UpdateCompletion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Plans()

	plan := &DailyPlan{
		ID:       "plan-1",
		UserID:   "u1",
		PlanDate: "2026-08-28",
		Activities: []Activity{
			{Type: "warmup", Domain: "Algebra", QuestionIDs: []string{"q1"}, EstimatedMinutes: 6},
		},
	}
	if err := repo.Create(ctx, plan); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().Truncate(time.Second)
	plan.Activities[0].Completed = true
	plan.Completed = true
	plan.CompletedAt = &now
	if err := repo.Update(ctx, plan); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(ctx, "plan-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt = nil, want set")
	}
}

func TestProfileRepo_Upsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	missing, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil profile before upsert, got %+v", missing)
	}

	p := &LearnerProfile{
		UserID:          "u1",
		WeakDomains:     []string{"Geometry & Trigonometry"},
		StrengthDomains: []string{"Algebra"},
		DailyMinutes:    45,
		ScoreLow:        980,
		ScoreHigh:       1100,
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	p.DailyMinutes = 60
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DailyMinutes != 60 {
		t.Errorf("DailyMinutes = %d, want 60", got.DailyMinutes)
	}
	if len(got.WeakDomains) != 1 || got.WeakDomains[0] != "Geometry & Trigonometry" {
		t.Errorf("WeakDomains = %v", got.WeakDomains)
	}
}

func TestQuestionRepo_LookupByDomainDifficulty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Questions()

	seed := []*Question{
		{QID: "q1", Domain: "Algebra", Difficulty: "easy", Text: "t1", Choices: []string{"a", "b", "c", "d"}, Answer: "a", Active: true},
		{QID: "q2", Domain: "Algebra", Difficulty: "medium", Text: "t2", Choices: []string{"a", "b", "c", "d"}, Answer: "b", Active: true},
		{QID: "q3", Domain: "Algebra", Difficulty: "hard", Text: "t3", Choices: []string{"a", "b", "c", "d"}, Answer: "c", Active: true},
		{QID: "q4", Domain: "Algebra", Difficulty: "hard", Text: "t4", Choices: []string{"a", "b", "c", "d"}, Answer: "d", Active: false},
		{QID: "q5", Domain: "Information & Ideas", Difficulty: "easy", Text: "t5", Choices: []string{"a", "b", "c", "d"}, Answer: "a", Active: true},
	}
	for _, q := range seed {
		if err := repo.Put(ctx, q); err != nil {
			t.Fatalf("Put %s: %v", q.QID, err)
		}
	}

	ids, err := repo.IDsByDomainDifficulty(ctx, "Algebra", []string{"medium", "hard"}, 6)
	if err != nil {
		t.Fatalf("IDsByDomainDifficulty: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2 (inactive excluded): %v", len(ids), ids)
	}

	counts, err := repo.CountByDomain(ctx)
	if err != nil {
		t.Fatalf("CountByDomain: %v", err)
	}
	if counts["Algebra"] != 3 {
		t.Errorf("Algebra count = %d, want 3", counts["Algebra"])
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	seed := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-authoring", InputTokens: 20, OutputTokens: 120, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-authoring", Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "smoke-test", Success: true},
	}
	for i, data := range seed {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("AppendLLMRequest %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, LLMEventQuery{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	// Newest first.
	if all[0].Purpose != "smoke-test" {
		t.Errorf("first event purpose = %q, want smoke-test", all[0].Purpose)
	}

	authored, err := repo.QueryLLMEvents(ctx, LLMEventQuery{Purpose: "question-authoring"})
	if err != nil {
		t.Fatalf("QueryLLMEvents filtered: %v", err)
	}
	if len(authored) != 2 {
		t.Fatalf("got %d question-authoring events, want 2", len(authored))
	}
	if authored[0].Success || authored[0].ErrorMessage != "rate limited" {
		t.Errorf("newest authoring event = %+v, want the failed one", authored[0])
	}

	limited, err := repo.QueryLLMEvents(ctx, LLMEventQuery{Limit: 1})
	if err != nil {
		t.Fatalf("QueryLLMEvents limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d events with limit 1, want 1", len(limited))
	}
}
