package attempt

import (
	"time"

	"github.com/google/uuid"
)

type SubmitAttemptRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer int    `json:"selected_answer"`
}

// AttemptResult carries everything the client needs to render immediate
// feedback, including the correct answer and its explanation.
type AttemptResult struct {
	ID             uuid.UUID `json:"id"`
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	CorrectAnswer  int       `json:"correct_answer"`
	Explanation    string    `json:"explanation,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type AttemptSummary struct {
	ID             uuid.UUID `json:"id"`
	QuestionID     uuid.UUID `json:"question_id"`
	QuestionText   string    `json:"question_text"`
	Category       string    `json:"category"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListAttemptsResponse struct {
	Attempts []AttemptSummary `json:"attempts"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

type CategoryStats struct {
	Category     string  `json:"category"`
	Total        int     `json:"total"`
	Correct      int     `json:"correct"`
	AccuracyRate float64 `json:"accuracy_rate"`
}

type StatsResponse struct {
	TotalAttempts int             `json:"total_attempts"`
	CorrectCount  int             `json:"correct_count"`
	AccuracyRate  float64         `json:"accuracy_rate"`
	ByCategory    []CategoryStats `json:"by_category"`
}
