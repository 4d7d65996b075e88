package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/question"
	"github.com/well-living/nurse-exam-app/internal/user"
)

// Attempt is append-only: is_correct is frozen at insert time and never
// recomputed, even if the question is later edited.
type Attempt struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_attempts_user_id;index:idx_attempts_user_question,priority:1" json:"user_id"`
	QuestionID     uuid.UUID `gorm:"type:uuid;not null;index:idx_attempts_user_question,priority:2" json:"question_id"`
	SelectedAnswer int       `gorm:"not null" json:"selected_answer"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_attempts_created_at,sort:desc" json:"created_at"`

	User     user.User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Question question.Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}
