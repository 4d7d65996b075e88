package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question rows are seeded out-of-band and treated as read-only here.
type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Year          int            `gorm:"not null;index:idx_questions_year;uniqueIndex:idx_questions_year_number" json:"year"`
	Number        int            `gorm:"not null;uniqueIndex:idx_questions_year_number" json:"number"`
	Category      string         `gorm:"type:varchar(100);not null;index:idx_questions_category" json:"category"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	Choices       datatypes.JSON `gorm:"type:jsonb;not null" json:"choices"`
	CorrectAnswer int            `gorm:"not null" json:"correct_answer"`
	Explanation   string         `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
