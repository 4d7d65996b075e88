package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/user"
)

// ChatThread and ChatMessage exist for schema parity with the question and
// attempt tables. The streaming endpoint is transient per call and does not
// write them yet; persisting conversations is planned but not wired in.
type ChatThread struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_threads_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ThreadID  uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_thread,priority:1" json:"thread_id"`
	Role      string    `gorm:"type:varchar(20);not null;check:role IN ('user','assistant')" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_chat_messages_thread,priority:2" json:"created_at"`

	Thread ChatThread `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"-"`
}
