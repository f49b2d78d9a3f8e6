package store

import (
	"context"
	"fmt"

	"github.com/mightyhq/prepcore/ent"
	"github.com/mightyhq/prepcore/ent/dailyplan"
	"github.com/mightyhq/prepcore/ent/schema"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Get(ctx context.Context, planID string) (*DailyPlan, error) {
	e, err := r.client.DailyPlan.Query().
		Where(dailyplan.PlanID(planID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return entPlanToPlan(e), nil
}

func (r *planRepo) GetByDate(ctx context.Context, userID, date string) (*DailyPlan, error) {
	e, err := r.client.DailyPlan.Query().
		Where(
			dailyplan.UserID(userID),
			dailyplan.PlanDate(date),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan by date: %w", err)
	}
	return entPlanToPlan(e), nil
}

func (r *planRepo) Create(ctx context.Context, plan *DailyPlan) error {
	builder := r.client.DailyPlan.Create().
		SetPlanID(plan.ID).
		SetUserID(plan.UserID).
		SetPlanDate(plan.PlanDate).
		SetActivities(activitiesToEntries(plan.Activities)).
		SetCompleted(plan.Completed)

	if plan.CompletedAt != nil {
		builder = builder.SetCompletedAt(*plan.CompletedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

func (r *planRepo) Update(ctx context.Context, plan *DailyPlan) error {
	e, err := r.client.DailyPlan.Query().
		Where(dailyplan.PlanID(plan.ID)).
		First(ctx)
	if err != nil {
		return fmt.Errorf("query plan for update: %w", err)
	}

	builder := e.Update().
		SetActivities(activitiesToEntries(plan.Activities)).
		SetCompleted(plan.Completed)

	if plan.CompletedAt != nil {
		builder = builder.SetCompletedAt(*plan.CompletedAt)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

func entPlanToPlan(e *ent.DailyPlan) *DailyPlan {
	plan := &DailyPlan{
		ID:          e.PlanID,
		UserID:      e.UserID,
		PlanDate:    e.PlanDate,
		Completed:   e.Completed,
		CompletedAt: e.CompletedAt,
	}
	for _, a := range e.Activities {
		plan.Activities = append(plan.Activities, Activity{
			Type:             a.Type,
			Domain:           a.Domain,
			QuestionIDs:      a.QuestionIDs,
			EstimatedMinutes: a.EstimatedMinutes,
			Completed:        a.Completed,
		})
	}
	return plan
}

func activitiesToEntries(activities []Activity) []schema.ActivityEntry {
	out := make([]schema.ActivityEntry, len(activities))
	for i, a := range activities {
		out[i] = schema.ActivityEntry{
			Type:             a.Type,
			Domain:           a.Domain,
			QuestionIDs:      a.QuestionIDs,
			EstimatedMinutes: a.EstimatedMinutes,
			Completed:        a.Completed,
		}
	}
	return out
}
