package store

import (
	"context"
	"fmt"

	"github.com/mightyhq/prepcore/ent"
	"github.com/mightyhq/prepcore/ent/question"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) IDsByDomainDifficulty(ctx context.Context, domain string, difficulties []string, limit int) ([]string, error) {
	q := r.client.Question.Query().
		Where(
			question.Domain(domain),
			question.DifficultyIn(difficulties...),
			question.Active(true),
		).
		Order(ent.Asc(question.FieldQid))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	ids := make([]string, len(rows))
	for i, e := range rows {
		ids[i] = e.Qid
	}
	return ids, nil
}

func (r *questionRepo) Put(ctx context.Context, q *Question) error {
	_, err := r.client.Question.Create().
		SetQid(q.QID).
		SetDomain(q.Domain).
		SetDifficulty(q.Difficulty).
		SetText(q.Text).
		SetChoices(q.Choices).
		SetAnswer(q.Answer).
		SetExplanation(q.Explanation).
		SetActive(q.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *questionRepo) CountByDomain(ctx context.Context) (map[string]int, error) {
	rows, err := r.client.Question.Query().
		Where(question.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for counts: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range rows {
		counts[e.Domain]++
	}
	return counts, nil
}
