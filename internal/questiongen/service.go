package questiongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mightyhq/prepcore/internal/store"
)

// maxAttemptsPerQuestion bounds regeneration when a question fails
// validation. A slot that keeps failing is skipped, not fatal.
const maxAttemptsPerQuestion = 2

// Service fills the question inventory from a Generator.
type Service struct {
	gen       Generator
	questions store.QuestionRepo
	log       zerolog.Logger
}

// NewService creates a Service over the given generator and inventory.
func NewService(gen Generator, questions store.QuestionRepo, log zerolog.Logger) *Service {
	return &Service{
		gen:       gen,
		questions: questions,
		log:       log.With().Str("component", "questiongen").Logger(),
	}
}

// Fill generates count questions for (domain, difficulty) and persists them
// to the inventory. Generated question texts are fed back into the prompt so
// a batch does not repeat itself. Returns the questions that were persisted;
// provider and storage errors abort the batch, validation failures skip the
// slot after bounded retries.
func (s *Service) Fill(ctx context.Context, domain, difficulty string, count int) ([]*store.Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	var saved []*store.Question
	var prior []string

	for i := 0; i < count; i++ {
		q, err := s.generateOne(ctx, GenerateInput{
			Domain:         domain,
			Difficulty:     difficulty,
			PriorQuestions: prior,
		})
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				s.log.Warn().Err(err).Str("domain", domain).Str("difficulty", difficulty).Msg("skipping slot after repeated validation failures")
				continue
			}
			return saved, fmt.Errorf("generate question %d/%d: %w", i+1, count, err)
		}

		rec := &store.Question{
			QID:         uuid.NewString(),
			Domain:      q.Domain,
			Difficulty:  q.Difficulty,
			Text:        q.Text,
			Choices:     q.Choices,
			Answer:      q.Answer,
			Explanation: q.Explanation,
			Active:      true,
		}
		if err := s.questions.Put(ctx, rec); err != nil {
			return saved, fmt.Errorf("persist question: %w", err)
		}

		saved = append(saved, rec)
		prior = append(prior, q.Text)
	}

	return saved, nil
}

// generateOne retries validation failures up to the per-question bound.
func (s *Service) generateOne(ctx context.Context, input GenerateInput) (*Question, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttemptsPerQuestion; attempt++ {
		q, err := s.gen.Generate(ctx, input)
		if err == nil {
			return q, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
		s.log.Debug().Err(err).Int("attempt", attempt+1).Msg("generated question failed validation, retrying")
	}
	return nil, lastErr
}
