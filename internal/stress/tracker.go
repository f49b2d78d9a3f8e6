// Package stress maintains a bounded, decaying stress score per
// (user, subject, topic). The score is a heuristic UX signal for supportive
// messaging, not a measurement instrument: tracking is best-effort and
// storage failures never surface to callers.
package stress

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/clock"
	"github.com/mightyhq/prepcore/internal/store"
)

// Event type labels kept in the per-record audit log.
const (
	EventCorrectStreak    = "correct_streak"
	EventWrongStreak      = "wrong_streak"
	EventTaskCompletion   = "task_completion"
	EventQuizAbandon      = "quiz_abandon"
	EventSkippedQuestions = "skipped_questions"
)

// Tracker records practice events and exposes the current stress scores.
type Tracker struct {
	repo store.StressRepo
	clk  clock.Clock
	cfg  Config
	log  zerolog.Logger
}

// NewTracker creates a Tracker over the given repo and clock.
func NewTracker(repo store.StressRepo, clk clock.Clock, cfg Config, log zerolog.Logger) *Tracker {
	return &Tracker{
		repo: repo,
		clk:  clk,
		cfg:  cfg,
		log:  log.With().Str("component", "stress").Logger(),
	}
}

// RecordCorrectStreak lowers stress after a run of correct answers.
// Streaks below the threshold are no-ops.
func (t *Tracker) RecordCorrectStreak(ctx context.Context, userID, subjectID, topicID string, streakLength int) {
	if streakLength < t.cfg.StreakThreshold {
		return
	}
	delta := -float64(streakLength-1) * t.cfg.CorrectStreakRelief
	t.apply(ctx, userID, subjectID, topicID, EventCorrectStreak, delta)
}

// RecordWrongStreak raises stress after a run of wrong answers.
// Streaks below the threshold are no-ops.
func (t *Tracker) RecordWrongStreak(ctx context.Context, userID, subjectID, topicID string, streakLength int) {
	if streakLength < t.cfg.StreakThreshold {
		return
	}
	delta := float64(streakLength-1) * t.cfg.WrongStreakSpike
	t.apply(ctx, userID, subjectID, topicID, EventWrongStreak, delta)
}

// RecordTaskCompletion lowers stress when a task finishes with a good score.
func (t *Tracker) RecordTaskCompletion(ctx context.Context, userID, subjectID, topicID string, score int) {
	if score < t.cfg.CompletionScoreBar {
		return
	}
	t.apply(ctx, userID, subjectID, topicID, EventTaskCompletion, -t.cfg.CompletionRelief)
}

// RecordQuizAbandon raises stress when the user walks away mid-quiz.
func (t *Tracker) RecordQuizAbandon(ctx context.Context, userID, subjectID, topicID string) {
	t.apply(ctx, userID, subjectID, topicID, EventQuizAbandon, t.cfg.AbandonSpike)
}

// RecordSkippedQuestions raises stress proportionally to the skip count.
// Counts below the threshold are no-ops.
func (t *Tracker) RecordSkippedQuestions(ctx context.Context, userID, subjectID, topicID string, skipCount int) {
	if skipCount < t.cfg.SkipThreshold {
		return
	}
	delta := float64(skipCount) * t.cfg.SkipSpikePerQuestion
	t.apply(ctx, userID, subjectID, topicID, EventSkippedQuestions, delta)
}

// TopicStress returns the current score for a topic, or 0 if untracked.
func (t *Tracker) TopicStress(ctx context.Context, userID, subjectID, topicID string) float64 {
	rec, err := t.repo.Get(ctx, userID, subjectID, topicID)
	if err != nil {
		t.log.Warn().Err(err).Str("topic", topicID).Msg("read stress record failed, treating as untracked")
		return 0
	}
	if rec == nil {
		return 0
	}
	return rec.Level
}

// SubjectStress returns the rounded mean score across all tracked topics in
// a subject, or 0 if none are tracked.
func (t *Tracker) SubjectStress(ctx context.Context, userID, subjectID string) float64 {
	recs, err := t.repo.ListBySubject(ctx, userID, subjectID)
	if err != nil {
		t.log.Warn().Err(err).Str("subject", subjectID).Msg("list stress records failed, treating as untracked")
		return 0
	}
	if len(recs) == 0 {
		return 0
	}
	sum := 0.0
	for _, rec := range recs {
		sum += rec.Level
	}
	return math.Round(sum / float64(len(recs)))
}

// ApplyDecay drifts every tracked topic downward by elapsed time since its
// last mutation, at least MinDecay per invocation, and refreshes
// last_updated so decay is not applied twice for the same interval.
func (t *Tracker) ApplyDecay(ctx context.Context, userID string) {
	recs, err := t.repo.ListByUser(ctx, userID)
	if err != nil {
		t.log.Warn().Err(err).Msg("list stress records failed, skipping decay")
		return
	}

	now := t.clk.Now()
	for _, rec := range recs {
		elapsedHours := now.Sub(rec.LastUpdated).Hours()
		decay := elapsedHours * t.cfg.DecayPerHour
		if decay < t.cfg.MinDecay {
			decay = t.cfg.MinDecay
		}

		rec.Level = clamp(rec.Level-decay, 0, 100)
		rec.LastUpdated = now
		if err := t.repo.Upsert(ctx, rec); err != nil {
			t.log.Warn().Err(err).Str("topic", rec.TopicID).Msg("persist decayed stress record failed")
		}
	}
}

// apply records an event: loads (or lazily creates) the record, shifts the
// clamped level, appends to the bounded event log, and writes through.
func (t *Tracker) apply(ctx context.Context, userID, subjectID, topicID, eventType string, delta float64) {
	now := t.clk.Now()

	rec, err := t.repo.Get(ctx, userID, subjectID, topicID)
	if err != nil {
		t.log.Warn().Err(err).Str("topic", topicID).Msg("read stress record failed, starting from neutral")
		rec = nil
	}
	if rec == nil {
		rec = &store.StressRecord{
			UserID:    userID,
			SubjectID: subjectID,
			TopicID:   topicID,
			Level:     t.cfg.NeutralLevel,
		}
	}

	rec.Level = clamp(rec.Level+delta, 0, 100)
	rec.LastUpdated = now
	rec.Events = append(rec.Events, store.StressEvent{
		Type:      eventType,
		Timestamp: now,
		Value:     delta,
	})
	if len(rec.Events) > t.cfg.EventLogCap {
		rec.Events = rec.Events[len(rec.Events)-t.cfg.EventLogCap:]
	}

	if err := t.repo.Upsert(ctx, rec); err != nil {
		t.log.Warn().Err(err).Str("topic", topicID).Str("event", eventType).Msg("persist stress record failed")
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
