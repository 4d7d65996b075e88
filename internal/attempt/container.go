package attempt

import (
	"github.com/well-living/nurse-exam-app/internal/question"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Handler *Handler
}

// NewAttemptContainer accepts a nil db; the handler then answers 503 for
// every operation.
func NewAttemptContainer(db *gorm.DB, questions question.Repository) *AttemptContainer {
	var service Service
	if db != nil && questions != nil {
		service = NewService(NewRepository(db), questions)
	}
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
	}
}
