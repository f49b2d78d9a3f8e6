package stress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/clock"
	"github.com/mightyhq/prepcore/internal/store"
)

// fakeStressRepo implements store.StressRepo in memory.
type fakeStressRepo struct {
	recs      map[string]*store.StressRecord
	getErr    error
	listErr   error
	upsertErr error
}

func newFakeStressRepo() *fakeStressRepo {
	return &fakeStressRepo{recs: make(map[string]*store.StressRecord)}
}

func key(userID, subjectID, topicID string) string {
	return userID + "|" + subjectID + "|" + topicID
}

func (f *fakeStressRepo) Get(_ context.Context, userID, subjectID, topicID string) (*store.StressRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.recs[key(userID, subjectID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStressRepo) ListBySubject(_ context.Context, userID, subjectID string) ([]*store.StressRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*store.StressRecord
	for _, rec := range f.recs {
		if rec.UserID == userID && rec.SubjectID == subjectID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStressRepo) ListByUser(_ context.Context, userID string) ([]*store.StressRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*store.StressRecord
	for _, rec := range f.recs {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStressRepo) Upsert(_ context.Context, rec *store.StressRecord) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cp := *rec
	f.recs[key(rec.UserID, rec.SubjectID, rec.TopicID)] = &cp
	return nil
}

func newTestTracker(repo store.StressRepo, clk clock.Clock) *Tracker {
	return NewTracker(repo, clk, DefaultConfig(), zerolog.Nop())
}

var t0 = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func TestRecordWrongStreak_BelowThresholdIsNoOp(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	tr.RecordWrongStreak(ctx, "u1", "sat-math", "algebra", 1)
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 0 {
		t.Errorf("stress after sub-threshold streak = %v, want 0 (untracked)", got)
	}
	if len(repo.recs) != 0 {
		t.Errorf("expected no record created, got %d", len(repo.recs))
	}
}

func TestRecordWrongStreak_IncreasesByPerStepSpike(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	tr.RecordWrongStreak(ctx, "u1", "sat-math", "algebra", 3)
	// Starts neutral at 50, then (3-1)*15 = 30.
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 80 {
		t.Errorf("stress = %v, want 80", got)
	}
}

func TestRecordWrongStreak_CeilingAt100(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	tr.RecordWrongStreak(ctx, "u1", "sat-math", "algebra", 5)
	tr.RecordWrongStreak(ctx, "u1", "sat-math", "algebra", 5)
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 100 {
		t.Errorf("stress = %v, want ceiling 100", got)
	}
}

func TestRecordCorrectStreak_DecreasesWithFloor(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	tr.RecordCorrectStreak(ctx, "u1", "sat-math", "algebra", 1)
	if len(repo.recs) != 0 {
		t.Error("streak of 1 should be a no-op")
	}

	tr.RecordCorrectStreak(ctx, "u1", "sat-math", "algebra", 3)
	// 50 - (3-1)*12 = 26.
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 26 {
		t.Errorf("stress = %v, want 26", got)
	}

	tr.RecordCorrectStreak(ctx, "u1", "sat-math", "algebra", 5)
	// 26 - 48 clamps to 0.
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 0 {
		t.Errorf("stress = %v, want floor 0", got)
	}
}

func TestRecordTaskCompletion(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"below bar is no-op", 69, 58},
		{"at bar relieves", 70, 50},
		{"above bar relieves", 95, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStressRepo()
			tr := newTestTracker(repo, clock.NewFixed(t0))
			ctx := context.Background()

			// Seed away from neutral so a no-op is observable:
			// abandon → 70, then correct streak of 2 → 58.
			tr.RecordQuizAbandon(ctx, "u1", "sat-math", "algebra")
			tr.RecordCorrectStreak(ctx, "u1", "sat-math", "algebra", 2)
			tr.RecordTaskCompletion(ctx, "u1", "sat-math", "algebra", tt.score)

			if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != tt.want {
				t.Errorf("stress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordQuizAbandon_Unconditional(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	tr.RecordQuizAbandon(ctx, "u1", "sat-math", "algebra")
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 70 {
		t.Errorf("stress = %v, want 70", got)
	}
}

func TestRecordSkippedQuestions(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	tr.RecordSkippedQuestions(ctx, "u1", "sat-math", "algebra", 1)
	if len(repo.recs) != 0 {
		t.Error("single skip should be a no-op")
	}

	tr.RecordSkippedQuestions(ctx, "u1", "sat-math", "algebra", 3)
	// 50 + 3*5 = 65.
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 65 {
		t.Errorf("stress = %v, want 65", got)
	}
}

func TestLevelStaysInBounds(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	ops := []func(){
		func() { tr.RecordWrongStreak(ctx, "u1", "s", "t", 6) },
		func() { tr.RecordQuizAbandon(ctx, "u1", "s", "t") },
		func() { tr.RecordSkippedQuestions(ctx, "u1", "s", "t", 9) },
		func() { tr.RecordCorrectStreak(ctx, "u1", "s", "t", 8) },
		func() { tr.RecordTaskCompletion(ctx, "u1", "s", "t", 100) },
		func() { tr.RecordWrongStreak(ctx, "u1", "s", "t", 9) },
		func() { tr.RecordCorrectStreak(ctx, "u1", "s", "t", 10) },
	}
	for i, op := range ops {
		op()
		got := tr.TopicStress(ctx, "u1", "s", "t")
		if got < 0 || got > 100 {
			t.Fatalf("after op %d: stress = %v, out of [0, 100]", i, got)
		}
	}
}

func TestEventLogCappedAt50(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	for range 60 {
		tr.RecordQuizAbandon(ctx, "u1", "s", "t")
	}
	rec := repo.recs[key("u1", "s", "t")]
	if len(rec.Events) != 50 {
		t.Errorf("event log length = %d, want 50", len(rec.Events))
	}
}

func TestSubjectStress_RoundedMean(t *testing.T) {
	repo := newFakeStressRepo()
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	if got := tr.SubjectStress(ctx, "u1", "sat-math"); got != 0 {
		t.Errorf("untracked subject stress = %v, want 0", got)
	}

	tr.RecordQuizAbandon(ctx, "u1", "sat-math", "algebra")           // 70
	tr.RecordWrongStreak(ctx, "u1", "sat-math", "geometry", 2)       // 65
	tr.RecordCorrectStreak(ctx, "u1", "sat-math", "linear-eqs", 3)   // 26
	tr.RecordQuizAbandon(ctx, "u1", "sat-reading", "craft-structure") // other subject

	// mean(70, 65, 26) = 53.67 → 54.
	if got := tr.SubjectStress(ctx, "u1", "sat-math"); got != 54 {
		t.Errorf("subject stress = %v, want 54", got)
	}
}

func TestApplyDecay(t *testing.T) {
	repo := newFakeStressRepo()
	clk := clock.NewFixed(t0)
	tr := newTestTracker(repo, clk)
	ctx := context.Background()

	tr.RecordQuizAbandon(ctx, "u1", "sat-math", "algebra") // 70

	clk.Advance(5 * time.Hour)
	tr.ApplyDecay(ctx, "u1")
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 65 {
		t.Errorf("stress after 5h decay = %v, want 65", got)
	}

	// Immediate second invocation still drifts by the minimum.
	tr.ApplyDecay(ctx, "u1")
	if got := tr.TopicStress(ctx, "u1", "sat-math", "algebra"); got != 64.5 {
		t.Errorf("stress after min decay = %v, want 64.5", got)
	}
}

func TestApplyDecay_NeverBelowZeroNeverIncreases(t *testing.T) {
	repo := newFakeStressRepo()
	clk := clock.NewFixed(t0)
	tr := newTestTracker(repo, clk)
	ctx := context.Background()

	tr.RecordCorrectStreak(ctx, "u1", "sat-math", "algebra", 5) // floor 0
	prev := tr.TopicStress(ctx, "u1", "sat-math", "algebra")

	for range 5 {
		clk.Advance(48 * time.Hour)
		tr.ApplyDecay(ctx, "u1")
		got := tr.TopicStress(ctx, "u1", "sat-math", "algebra")
		if got > prev {
			t.Fatalf("decay increased stress: %v -> %v", prev, got)
		}
		if got < 0 {
			t.Fatalf("decay pushed stress below 0: %v", got)
		}
		prev = got
	}
}

func TestApplyDecay_RefreshesLastUpdated(t *testing.T) {
	repo := newFakeStressRepo()
	clk := clock.NewFixed(t0)
	tr := newTestTracker(repo, clk)
	ctx := context.Background()

	tr.RecordQuizAbandon(ctx, "u1", "sat-math", "algebra")
	clk.Advance(3 * time.Hour)
	tr.ApplyDecay(ctx, "u1")

	rec := repo.recs[key("u1", "sat-math", "algebra")]
	if !rec.LastUpdated.Equal(clk.Now()) {
		t.Errorf("LastUpdated = %v, want %v", rec.LastUpdated, clk.Now())
	}
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	repo := newFakeStressRepo()
	repo.getErr = errors.New("disk gone")
	repo.listErr = errors.New("disk gone")
	repo.upsertErr = errors.New("disk gone")
	tr := newTestTracker(repo, clock.NewFixed(t0))
	ctx := context.Background()

	// None of these may panic or surface an error.
	tr.RecordWrongStreak(ctx, "u1", "s", "t", 3)
	tr.RecordQuizAbandon(ctx, "u1", "s", "t")
	tr.ApplyDecay(ctx, "u1")

	if got := tr.TopicStress(ctx, "u1", "s", "t"); got != 0 {
		t.Errorf("stress under storage failure = %v, want neutral 0", got)
	}
	if got := tr.SubjectStress(ctx, "u1", "s"); got != 0 {
		t.Errorf("subject stress under storage failure = %v, want 0", got)
	}
}
