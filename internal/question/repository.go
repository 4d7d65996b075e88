package question

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ListFilter struct {
	Year     int
	Category string
	Limit    int
	Offset   int
}

type Repository interface {
	FindByID(ctx context.Context, id string) (*Question, error)
	List(ctx context.Context, filter ListFilter) ([]*Question, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Question, error) {
	tx := r.db.WithContext(ctx).Model(&Question{})
	if filter.Year != 0 {
		tx = tx.Where("year = ?", filter.Year)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	var questions []*Question
	if err := tx.
		Order("year ASC, number ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
