package attempt

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryCount is one GROUP BY row of the per-category aggregate.
type CategoryCount struct {
	Category string
	Total    int
	Correct  int
}

type Repository interface {
	Create(ctx context.Context, a *Attempt) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]AttemptSummary, error)
	CategoryCounts(ctx context.Context, userID uuid.UUID) ([]CategoryCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attempt) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListByUser joins each attempt to its question; inner join semantics drop
// attempts whose question has since been removed.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]AttemptSummary, error) {
	var summaries []AttemptSummary
	if err := r.db.WithContext(ctx).
		Table("attempts").
		Select("attempts.id, attempts.question_id, questions.question_text, questions.category, attempts.selected_answer, attempts.is_correct, attempts.created_at").
		Joins("INNER JOIN questions ON questions.id = attempts.question_id").
		Where("attempts.user_id = ?", userID).
		Order("attempts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) CategoryCounts(ctx context.Context, userID uuid.UUID) ([]CategoryCount, error) {
	var counts []CategoryCount
	if err := r.db.WithContext(ctx).
		Table("attempts").
		Select("questions.category AS category, COUNT(*) AS total, SUM(CASE WHEN attempts.is_correct THEN 1 ELSE 0 END) AS correct").
		Joins("INNER JOIN questions ON questions.id = attempts.question_id").
		Where("attempts.user_id = ?", userID).
		Group("questions.category").
		Order("questions.category ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
