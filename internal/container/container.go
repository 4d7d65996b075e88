package container

import (
	"context"

	"gorm.io/gorm"

	"github.com/well-living/nurse-exam-app/internal/attempt"
	"github.com/well-living/nurse-exam-app/internal/auth"
	"github.com/well-living/nurse-exam-app/internal/chat"
	"github.com/well-living/nurse-exam-app/internal/config"
	"github.com/well-living/nurse-exam-app/internal/question"
	"github.com/well-living/nurse-exam-app/internal/user"
)

type Container struct {
	Config            *config.Config
	DB                *gorm.DB
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	AttemptContainer  *attempt.AttemptContainer
	ChatContainer     *chat.ChatContainer
}

// New wires the service. An unset DATABASE_URL leaves DB nil and the service
// runs degraded: authentication still works, persistence-backed endpoints
// answer 503. A configured but unreachable database is a startup error.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = config.Connect(ctx, cfg.DatabaseURL,
			&user.User{},
			&question.Question{},
			&attempt.Attempt{},
			&chat.ChatThread{},
			&chat.ChatMessage{},
		)
		if err != nil {
			return nil, err
		}
	}

	userContainer := user.NewUserContainer(db)
	questionContainer := question.NewQuestionContainer(db)
	attemptContainer := attempt.NewAttemptContainer(db, questionContainer.Repo)

	chatContainer, err := chat.NewChatContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:            cfg,
		DB:                db,
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		AttemptContainer:  attemptContainer,
		ChatContainer:     chatContainer,
	}, nil
}

// UserStore exposes the registration dependency of the auth middleware;
// nil when the service runs without persistence.
func (c *Container) UserStore() auth.UserStore {
	if c.UserContainer.Repo == nil {
		return nil
	}
	return c.UserContainer.Repo
}
