package attempt

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/config"
	"github.com/well-living/nurse-exam-app/internal/question"
)

var ErrQuestionNotFound = errors.New("question not found")

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, questionID string, selectedAnswer int) (*AttemptResult, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) (*ListAttemptsResponse, error)
	Stats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error)
}

type service struct {
	repo      Repository
	questions question.Repository
}

func NewService(repo Repository, questions question.Repository) Service {
	return &service{repo: repo, questions: questions}
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, questionID string, selectedAnswer int) (*AttemptResult, error) {
	log := config.WithContext(ctx)

	q, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		log.WithError(err).Error("failed to load question for attempt")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	a := Attempt{
		UserID:         userID,
		QuestionID:     q.ID,
		SelectedAnswer: selectedAnswer,
		IsCorrect:      selectedAnswer == q.CorrectAnswer,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		log.WithError(err).Error("failed to insert attempt")
		return nil, err
	}

	log.WithField("attempt_id", a.ID.String()).Info("attempt recorded")

	return &AttemptResult{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		SelectedAnswer: a.SelectedAnswer,
		IsCorrect:      a.IsCorrect,
		CorrectAnswer:  q.CorrectAnswer,
		Explanation:    q.Explanation,
		CreatedAt:      a.CreatedAt,
	}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, limit, offset int) (*ListAttemptsResponse, error) {
	summaries, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to list attempts")
		return nil, err
	}
	if summaries == nil {
		summaries = []AttemptSummary{}
	}
	return &ListAttemptsResponse{
		Attempts: summaries,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (s *service) Stats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	counts, err := s.repo.CategoryCounts(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to aggregate attempts")
		return nil, err
	}

	resp := StatsResponse{ByCategory: make([]CategoryStats, 0, len(counts))}
	for _, c := range counts {
		resp.TotalAttempts += c.Total
		resp.CorrectCount += c.Correct
		resp.ByCategory = append(resp.ByCategory, CategoryStats{
			Category:     c.Category,
			Total:        c.Total,
			Correct:      c.Correct,
			AccuracyRate: accuracyRate(c.Correct, c.Total),
		})
	}
	resp.AccuracyRate = accuracyRate(resp.CorrectCount, resp.TotalAttempts)

	return &resp, nil
}

// accuracyRate is correct/total*100 rounded to one decimal. A zero total
// yields 0.0 by policy rather than a division fault.
func accuracyRate(correct, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
