package question

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionResponse is the public view of a question: the correct answer and
// explanation stay server-side until an attempt is submitted.
type QuestionResponse struct {
	ID           uuid.UUID      `json:"id"`
	Year         int            `json:"year"`
	Number       int            `json:"number"`
	Category     string         `json:"category"`
	QuestionText string         `json:"question_text"`
	Choices      datatypes.JSON `json:"choices"`
}

type ListQuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

func toResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Year:         q.Year,
		Number:       q.Number,
		Category:     q.Category,
		QuestionText: q.QuestionText,
		Choices:      q.Choices,
	}
}
