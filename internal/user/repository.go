package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetOrCreateByEmail(ctx context.Context, email string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EnsureUser(ctx context.Context, email string) (uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetOrCreateByEmail registers the caller on first sight. The insert is an
// ON CONFLICT DO NOTHING upsert followed by a lookup, so two concurrent
// first-time requests for the same email both resolve to the same row.
func (r *repository) GetOrCreateByEmail(ctx context.Context, email string) (*User, error) {
	u := User{Email: email}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&u).Error; err != nil {
		return nil, err
	}
	// The conflict path leaves the struct without an id; always re-read.
	return r.FindByEmail(ctx, email)
}

// EnsureUser satisfies auth.UserStore.
func (r *repository) EnsureUser(ctx context.Context, email string) (uuid.UUID, error) {
	u, err := r.GetOrCreateByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	if u == nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return u.ID, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
