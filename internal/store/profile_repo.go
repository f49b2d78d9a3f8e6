package store

import (
	"context"
	"fmt"

	"github.com/mightyhq/prepcore/ent"
	"github.com/mightyhq/prepcore/ent/learnerprofile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*LearnerProfile, error) {
	e, err := r.client.LearnerProfile.Query().
		Where(learnerprofile.UserID(userID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &LearnerProfile{
		UserID:          e.UserID,
		WeakDomains:     e.WeakDomains,
		StrengthDomains: e.StrengthDomains,
		DailyMinutes:    e.DailyMinutes,
		ScoreLow:        e.ScoreLow,
		ScoreHigh:       e.ScoreHigh,
		UpdatedAt:       e.UpdatedAt,
	}, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *LearnerProfile) error {
	existing, err := r.client.LearnerProfile.Query().
		Where(learnerprofile.UserID(p.UserID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile for upsert: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearnerProfile.Create().
			SetUserID(p.UserID).
			SetWeakDomains(p.WeakDomains).
			SetStrengthDomains(p.StrengthDomains).
			SetDailyMinutes(p.DailyMinutes).
			SetScoreLow(p.ScoreLow).
			SetScoreHigh(p.ScoreHigh).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetWeakDomains(p.WeakDomains).
		SetStrengthDomains(p.StrengthDomains).
		SetDailyMinutes(p.DailyMinutes).
		SetScoreLow(p.ScoreLow).
		SetScoreHigh(p.ScoreHigh).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
