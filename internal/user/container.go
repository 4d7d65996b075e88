package user

import "gorm.io/gorm"

type UserContainer struct {
	Repo    Repository
	Handler *Handler
}

// NewUserContainer accepts a nil db; the handler then serves the identity
// without a stored row and auth skips registration.
func NewUserContainer(db *gorm.DB) *UserContainer {
	var repo Repository
	if db != nil {
		repo = NewRepository(db)
	}
	handler := NewHandler(repo)

	return &UserContainer{
		Repo:    repo,
		Handler: handler,
	}
}
