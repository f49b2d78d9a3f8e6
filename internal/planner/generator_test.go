package planner

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/clock"
	"github.com/mightyhq/prepcore/internal/store"
)

type fakePlanRepo struct {
	byID      map[string]*store.DailyPlan
	byUserDay map[string]*store.DailyPlan

	getErr    error
	createErr error
	updateErr error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{
		byID:      make(map[string]*store.DailyPlan),
		byUserDay: make(map[string]*store.DailyPlan),
	}
}

func dayKey(userID, date string) string { return userID + "|" + date }

func copyPlan(p *store.DailyPlan) *store.DailyPlan {
	cp := *p
	cp.Activities = append([]store.Activity(nil), p.Activities...)
	if p.CompletedAt != nil {
		at := *p.CompletedAt
		cp.CompletedAt = &at
	}
	return &cp
}

func (f *fakePlanRepo) Get(_ context.Context, planID string) (*store.DailyPlan, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.byID[planID]
	if !ok {
		return nil, nil
	}
	return copyPlan(p), nil
}

func (f *fakePlanRepo) GetByDate(_ context.Context, userID, date string) (*store.DailyPlan, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.byUserDay[dayKey(userID, date)]
	if !ok {
		return nil, nil
	}
	return copyPlan(p), nil
}

func (f *fakePlanRepo) Create(_ context.Context, plan *store.DailyPlan) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := dayKey(plan.UserID, plan.PlanDate)
	if _, exists := f.byUserDay[key]; exists {
		return errors.New("unique constraint: plan exists for day")
	}
	cp := copyPlan(plan)
	f.byID[plan.ID] = cp
	f.byUserDay[key] = cp
	return nil
}

func (f *fakePlanRepo) Update(_ context.Context, plan *store.DailyPlan) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := copyPlan(plan)
	f.byID[plan.ID] = cp
	f.byUserDay[dayKey(plan.UserID, plan.PlanDate)] = cp
	return nil
}

// fakeQuestionRepo serves IDs from a (domain, difficulty) inventory.
type fakeQuestionRepo struct {
	inventory map[string][]string // domain|difficulty -> ids
	lookupErr error
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{inventory: make(map[string][]string)}
}

func (f *fakeQuestionRepo) stock(domain, difficulty string, count int) {
	key := domain + "|" + difficulty
	for i := 0; i < count; i++ {
		f.inventory[key] = append(f.inventory[key], fmt.Sprintf("%s-%s-%d", domain, difficulty, i))
	}
}

func (f *fakeQuestionRepo) IDsByDomainDifficulty(_ context.Context, domain string, difficulties []string, limit int) ([]string, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var ids []string
	for _, d := range difficulties {
		ids = append(ids, f.inventory[domain+"|"+d]...)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeQuestionRepo) Put(_ context.Context, _ *store.Question) error { return nil }

func (f *fakeQuestionRepo) CountByDomain(_ context.Context) (map[string]int, error) {
	return nil, nil
}

func testGenerator(plans *fakePlanRepo, questions *fakeQuestionRepo) (*Generator, *clock.Fixed) {
	clk := clock.NewFixed(time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))
	return NewGenerator(plans, questions, clk, DefaultConfig(), zerolog.Nop()), clk
}

func fullProfile() *store.LearnerProfile {
	return &store.LearnerProfile{
		UserID:          "u1",
		WeakDomains:     []string{"Algebra", "Craft & Structure"},
		StrengthDomains: []string{"Information & Ideas"},
		DailyMinutes:    30,
	}
}

func stockAllDomains(q *fakeQuestionRepo) {
	for _, domain := range []string{"Algebra", "Craft & Structure", "Information & Ideas", "Problem Solving & Data Analysis"} {
		q.stock(domain, DifficultyEasy, 5)
		q.stock(domain, DifficultyMedium, 5)
		q.stock(domain, DifficultyHard, 5)
	}
}

func TestGenerateDailyPlanShape(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)
	gen, _ := testGenerator(plans, questions)

	plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile())
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}
	if plan == nil {
		t.Fatal("GenerateDailyPlan() returned nil plan")
	}
	if plan.ID == "" {
		t.Error("plan ID is empty")
	}
	if plan.PlanDate != "2026-08-28" {
		t.Errorf("PlanDate = %q, want 2026-08-28", plan.PlanDate)
	}
	if plan.Completed {
		t.Error("new plan marked completed")
	}
	if len(plan.Activities) != 3 {
		t.Fatalf("len(Activities) = %d, want 3", len(plan.Activities))
	}

	warmup, core, boost := plan.Activities[0], plan.Activities[1], plan.Activities[2]
	if warmup.Type != ActivityWarmup || warmup.Domain != "Information & Ideas" {
		t.Errorf("warmup = %s/%s, want warmup in strength domain", warmup.Type, warmup.Domain)
	}
	if len(warmup.QuestionIDs) != 3 || warmup.EstimatedMinutes != 6 {
		t.Errorf("warmup = %d questions / %d min, want 3 / 6", len(warmup.QuestionIDs), warmup.EstimatedMinutes)
	}
	if core.Type != ActivityCoreFocus || core.Domain != "Algebra" {
		t.Errorf("core = %s/%s, want core_focus in first weak domain", core.Type, core.Domain)
	}
	if len(core.QuestionIDs) != 6 || core.EstimatedMinutes != 18 {
		t.Errorf("core = %d questions / %d min, want 6 / 18", len(core.QuestionIDs), core.EstimatedMinutes)
	}
	if boost.Type != ActivityBoost || boost.Domain != "Craft & Structure" {
		t.Errorf("boost = %s/%s, want boost in second weak domain", boost.Type, boost.Domain)
	}
	if len(boost.QuestionIDs) != 3 || boost.EstimatedMinutes != 6 {
		t.Errorf("boost = %d questions / %d min, want 3 / 6", len(boost.QuestionIDs), boost.EstimatedMinutes)
	}
}

func TestGenerateDailyPlanIdempotent(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)
	gen, _ := testGenerator(plans, questions)

	first, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile())
	if err != nil {
		t.Fatalf("first GenerateDailyPlan() error = %v", err)
	}

	// A changed profile must not alter the already-generated day.
	changed := &store.LearnerProfile{
		UserID:       "u1",
		WeakDomains:  []string{"Problem Solving & Data Analysis"},
		DailyMinutes: 60,
	}
	second, err := gen.GenerateDailyPlan(context.Background(), "u1", changed)
	if err != nil {
		t.Fatalf("second GenerateDailyPlan() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second generation differs from first:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGenerateDailyPlanFallbacks(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)
	gen, _ := testGenerator(plans, questions)

	// No diagnostic yet: focus comes from the fallback list, warmup from
	// its first entry, and the budget from the default.
	plan, err := gen.GenerateDailyPlan(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}
	cfg := DefaultConfig()
	if plan.Activities[0].Domain != cfg.FallbackDomains[0] {
		t.Errorf("warmup domain = %q, want first fallback %q", plan.Activities[0].Domain, cfg.FallbackDomains[0])
	}
	if plan.Activities[1].Domain != cfg.FallbackDomains[0] {
		t.Errorf("core domain = %q, want first fallback %q", plan.Activities[1].Domain, cfg.FallbackDomains[0])
	}
	if plan.Activities[2].Domain != cfg.FallbackDomains[1] {
		t.Errorf("boost domain = %q, want second fallback %q", plan.Activities[2].Domain, cfg.FallbackDomains[1])
	}
}

func TestGenerateDailyPlanSingleWeakDomainBoostsSameDomain(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)
	gen, _ := testGenerator(plans, questions)

	profile := &store.LearnerProfile{
		UserID:       "u1",
		WeakDomains:  []string{"Algebra"},
		DailyMinutes: 30,
	}
	plan, err := gen.GenerateDailyPlan(context.Background(), "u1", profile)
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}
	if plan.Activities[2].Domain != "Algebra" {
		t.Errorf("boost domain = %q, want Algebra", plan.Activities[2].Domain)
	}
}

func TestGenerateDailyPlanOmitsEmptyInventory(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	// Only medium Algebra questions exist: no warmup, no boost.
	questions.stock("Algebra", DifficultyMedium, 4)
	gen, _ := testGenerator(plans, questions)

	plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile())
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}
	if len(plan.Activities) != 1 {
		t.Fatalf("len(Activities) = %d, want 1", len(plan.Activities))
	}
	if plan.Activities[0].Type != ActivityCoreFocus {
		t.Errorf("surviving activity = %s, want core_focus", plan.Activities[0].Type)
	}

	// An entirely empty inventory still persists an (empty) plan for the
	// day, and never more than three activities in any case.
	empty := newFakeQuestionRepo()
	gen2, _ := testGenerator(newFakePlanRepo(), empty)
	plan, err = gen2.GenerateDailyPlan(context.Background(), "u1", fullProfile())
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}
	if len(plan.Activities) != 0 {
		t.Errorf("len(Activities) = %d, want 0", len(plan.Activities))
	}
}

func TestGenerateDailyPlanStorageErrors(t *testing.T) {
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)

	plans := newFakePlanRepo()
	plans.getErr = errors.New("db locked")
	gen, _ := testGenerator(plans, questions)
	if plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile()); err == nil || plan != nil {
		t.Errorf("lookup failure: plan = %v, err = %v, want nil plan and error", plan, err)
	}

	plans = newFakePlanRepo()
	plans.createErr = errors.New("disk full")
	gen, _ = testGenerator(plans, questions)
	if plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile()); err == nil || plan != nil {
		t.Errorf("create failure: plan = %v, err = %v, want nil plan and error", plan, err)
	}

	broken := newFakeQuestionRepo()
	broken.lookupErr = errors.New("query failed")
	gen, _ = testGenerator(newFakePlanRepo(), broken)
	if plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile()); err == nil || plan != nil {
		t.Errorf("inventory failure: plan = %v, err = %v, want nil plan and error", plan, err)
	}
}

func TestMarkActivityComplete(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)
	gen, clk := testGenerator(plans, questions)

	plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile())
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}

	updated, err := gen.MarkActivityComplete(context.Background(), plan.ID, 0)
	if err != nil {
		t.Fatalf("MarkActivityComplete(0) error = %v", err)
	}
	if !updated.Activities[0].Completed {
		t.Error("activity 0 not marked completed")
	}
	if updated.Completed || updated.CompletedAt != nil {
		t.Error("plan marked completed with activities outstanding")
	}

	if _, err := gen.MarkActivityComplete(context.Background(), plan.ID, 1); err != nil {
		t.Fatalf("MarkActivityComplete(1) error = %v", err)
	}

	clk.Advance(2 * time.Hour)
	updated, err = gen.MarkActivityComplete(context.Background(), plan.ID, 2)
	if err != nil {
		t.Fatalf("MarkActivityComplete(2) error = %v", err)
	}
	if !updated.Completed {
		t.Error("plan not completed after last activity")
	}
	if updated.CompletedAt == nil {
		t.Fatal("CompletedAt not stamped on completion")
	}
	if !updated.CompletedAt.Equal(clk.Now()) {
		t.Errorf("CompletedAt = %v, want %v", updated.CompletedAt, clk.Now())
	}
}

func TestMarkActivityCompleteRejectsBadInput(t *testing.T) {
	plans := newFakePlanRepo()
	questions := newFakeQuestionRepo()
	stockAllDomains(questions)
	gen, _ := testGenerator(plans, questions)

	if _, err := gen.MarkActivityComplete(context.Background(), "missing", 0); err == nil {
		t.Error("expected error for unknown plan ID")
	}

	plan, err := gen.GenerateDailyPlan(context.Background(), "u1", fullProfile())
	if err != nil {
		t.Fatalf("GenerateDailyPlan() error = %v", err)
	}
	if _, err := gen.MarkActivityComplete(context.Background(), plan.ID, 3); err == nil {
		t.Error("expected error for out-of-range activity index")
	}
	if _, err := gen.MarkActivityComplete(context.Background(), plan.ID, -1); err == nil {
		t.Error("expected error for negative activity index")
	}
}
