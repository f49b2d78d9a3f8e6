package store

import (
	"context"
	"fmt"

	"github.com/mightyhq/prepcore/ent"
	"github.com/mightyhq/prepcore/ent/schema"
	"github.com/mightyhq/prepcore/ent/stressrecord"
)

// stressRepo implements StressRepo using the ent client.
type stressRepo struct {
	client *ent.Client
}

func (r *stressRepo) Get(ctx context.Context, userID, subjectID, topicID string) (*StressRecord, error) {
	e, err := r.client.StressRecord.Query().
		Where(
			stressrecord.UserID(userID),
			stressrecord.SubjectID(subjectID),
			stressrecord.TopicID(topicID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query stress record: %w", err)
	}
	return entStressToRecord(e), nil
}

func (r *stressRepo) ListBySubject(ctx context.Context, userID, subjectID string) ([]*StressRecord, error) {
	rows, err := r.client.StressRecord.Query().
		Where(
			stressrecord.UserID(userID),
			stressrecord.SubjectID(subjectID),
		).
		Order(ent.Asc(stressrecord.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject stress records: %w", err)
	}
	return entStressToRecords(rows), nil
}

func (r *stressRepo) ListByUser(ctx context.Context, userID string) ([]*StressRecord, error) {
	rows, err := r.client.StressRecord.Query().
		Where(stressrecord.UserID(userID)).
		Order(ent.Asc(stressrecord.FieldSubjectID), ent.Asc(stressrecord.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user stress records: %w", err)
	}
	return entStressToRecords(rows), nil
}

func (r *stressRepo) Upsert(ctx context.Context, rec *StressRecord) error {
	existing, err := r.client.StressRecord.Query().
		Where(
			stressrecord.UserID(rec.UserID),
			stressrecord.SubjectID(rec.SubjectID),
			stressrecord.TopicID(rec.TopicID),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query stress record for upsert: %w", err)
	}

	events := stressEventsToEntries(rec.Events)

	if existing == nil {
		_, err = r.client.StressRecord.Create().
			SetUserID(rec.UserID).
			SetSubjectID(rec.SubjectID).
			SetTopicID(rec.TopicID).
			SetLevel(rec.Level).
			SetLastUpdated(rec.LastUpdated).
			SetEvents(events).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create stress record: %w", err)
		}
		return nil
	}

	// Last write wins: concurrent callers for the same key are accepted.
	_, err = existing.Update().
		SetLevel(rec.Level).
		SetLastUpdated(rec.LastUpdated).
		SetEvents(events).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update stress record: %w", err)
	}
	return nil
}

func entStressToRecord(e *ent.StressRecord) *StressRecord {
	rec := &StressRecord{
		UserID:      e.UserID,
		SubjectID:   e.SubjectID,
		TopicID:     e.TopicID,
		Level:       e.Level,
		LastUpdated: e.LastUpdated,
	}
	for _, ev := range e.Events {
		rec.Events = append(rec.Events, StressEvent{
			Type:      ev.Type,
			Timestamp: ev.Timestamp,
			Value:     ev.Value,
		})
	}
	return rec
}

func entStressToRecords(rows []*ent.StressRecord) []*StressRecord {
	out := make([]*StressRecord, len(rows))
	for i, e := range rows {
		out[i] = entStressToRecord(e)
	}
	return out
}

func stressEventsToEntries(events []StressEvent) []schema.StressEventEntry {
	out := make([]schema.StressEventEntry, len(events))
	for i, ev := range events {
		out[i] = schema.StressEventEntry{
			Type:      ev.Type,
			Timestamp: ev.Timestamp,
			Value:     ev.Value,
		}
	}
	return out
}
