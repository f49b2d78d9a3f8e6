// Package planner assembles one practice plan per user per calendar day:
// a warm-up in a strong domain, a core block in the weakest domain, and a
// hard-question boost. Generation is idempotent; a day's plan is never
// regenerated or overwritten.
package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/clock"
	"github.com/mightyhq/prepcore/internal/store"
)

// Generator builds and mutates daily plans.
type Generator struct {
	plans     store.PlanRepo
	questions store.QuestionRepo
	clk       clock.Clock
	cfg       Config
	log       zerolog.Logger
}

// NewGenerator creates a Generator over the given repos and clock.
func NewGenerator(plans store.PlanRepo, questions store.QuestionRepo, clk clock.Clock, cfg Config, log zerolog.Logger) *Generator {
	return &Generator{
		plans:     plans,
		questions: questions,
		clk:       clk,
		cfg:       cfg,
		log:       log.With().Str("component", "planner").Logger(),
	}
}

// GenerateDailyPlan returns the user's plan for today, creating it if the
// day has none yet. Profile changes after the first generation of a day do
// not alter that day's plan. A storage error returns a nil plan; the caller
// treats that as "plan unavailable".
func (g *Generator) GenerateDailyPlan(ctx context.Context, userID string, profile *store.LearnerProfile) (*store.DailyPlan, error) {
	today := g.clk.Today()

	existing, err := g.plans.GetByDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("look up existing plan: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	minutes := g.cfg.DefaultDailyMinutes
	var weak, strong []string
	if profile != nil {
		weak = profile.WeakDomains
		strong = profile.StrengthDomains
		if profile.DailyMinutes > 0 {
			minutes = profile.DailyMinutes
		}
	}

	focus := weak
	if len(focus) == 0 {
		focus = g.cfg.FallbackDomains
	}
	warmupDomain := focus[0]
	if len(strong) > 0 {
		warmupDomain = strong[0]
	}
	boostDomain := focus[0]
	if len(focus) > 1 {
		boostDomain = focus[1]
	}

	var activities []store.Activity
	appendActivity := func(actType, domain string, difficulties []string, limit int, share float64) error {
		ids, err := g.questions.IDsByDomainDifficulty(ctx, domain, difficulties, limit)
		if err != nil {
			return fmt.Errorf("select %s questions: %w", actType, err)
		}
		if len(ids) == 0 {
			g.log.Debug().Str("activity", actType).Str("domain", domain).Msg("no inventory, omitting activity")
			return nil
		}
		activities = append(activities, store.Activity{
			Type:             actType,
			Domain:           domain,
			QuestionIDs:      ids,
			EstimatedMinutes: int(math.Round(float64(minutes) * share)),
		})
		return nil
	}

	if err := appendActivity(ActivityWarmup, warmupDomain, []string{DifficultyEasy}, g.cfg.WarmupQuestions, g.cfg.WarmupShare); err != nil {
		return nil, err
	}
	if err := appendActivity(ActivityCoreFocus, focus[0], []string{DifficultyMedium, DifficultyHard}, g.cfg.CoreQuestions, g.cfg.CoreShare); err != nil {
		return nil, err
	}
	if err := appendActivity(ActivityBoost, boostDomain, []string{DifficultyHard}, g.cfg.BoostQuestions, g.cfg.BoostShare); err != nil {
		return nil, err
	}

	plan := &store.DailyPlan{
		ID:         uuid.NewString(),
		UserID:     userID,
		PlanDate:   today,
		Activities: activities,
	}
	if err := g.plans.Create(ctx, plan); err != nil {
		// A concurrent call may have won the unique (user, day) index.
		// Prefer its plan over failing.
		if raced, lookupErr := g.plans.GetByDate(ctx, userID, today); lookupErr == nil && raced != nil {
			return raced, nil
		}
		return nil, fmt.Errorf("persist plan: %w", err)
	}
	return plan, nil
}

// MarkActivityComplete flags one activity done and recomputes the plan's
// aggregate completion, stamping completed_at when the aggregate flips to
// true.
func (g *Generator) MarkActivityComplete(ctx context.Context, planID string, activityIndex int) (*store.DailyPlan, error) {
	plan, err := g.plans.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("plan %s not found", planID)
	}
	if activityIndex < 0 || activityIndex >= len(plan.Activities) {
		return nil, fmt.Errorf("activity index %d out of range for plan with %d activities", activityIndex, len(plan.Activities))
	}

	plan.Activities[activityIndex].Completed = true

	allDone := true
	for _, a := range plan.Activities {
		if !a.Completed {
			allDone = false
			break
		}
	}
	if allDone && !plan.Completed {
		now := g.clk.Now()
		plan.CompletedAt = &now
	}
	plan.Completed = allDone

	if err := g.plans.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}
	return plan, nil
}
