package attempt_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/attempt"
	"github.com/well-living/nurse-exam-app/internal/auth"
)

type fakeService struct {
	result *attempt.AttemptResult
	stats  *attempt.StatsResponse
	err    error

	lastLimit  int
	lastOffset int
}

func (f *fakeService) Submit(ctx context.Context, userID uuid.UUID, questionID string, selectedAnswer int) (*attempt.AttemptResult, error) {
	return f.result, f.err
}

func (f *fakeService) List(ctx context.Context, userID uuid.UUID, limit, offset int) (*attempt.ListAttemptsResponse, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return &attempt.ListAttemptsResponse{Attempts: []attempt.AttemptSummary{}, Limit: limit, Offset: offset}, f.err
}

func (f *fakeService) Stats(ctx context.Context, userID uuid.UUID) (*attempt.StatsResponse, error) {
	return f.stats, f.err
}

func withIdentity(r *http.Request, id auth.Identity) *http.Request {
	return r.WithContext(auth.ContextWithIdentity(r.Context(), id))
}

func storedIdentity() auth.Identity {
	id := uuid.New()
	return auth.Identity{Email: "user@example.com", UserID: &id}
}

func TestSubmitAttempt(t *testing.T) {
	t.Run("NoIdentity", func(t *testing.T) {
		h := attempt.NewHandler(&fakeService{})
		req := httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("NoPersistence", func(t *testing.T) {
		h := attempt.NewHandler(nil)
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader("{}")), storedIdentity())
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("IdentityWithoutStoredUser", func(t *testing.T) {
		h := attempt.NewHandler(&fakeService{})
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader("{}")), auth.Identity{Email: "user@example.com"})
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("InvalidBody", func(t *testing.T) {
		h := attempt.NewHandler(&fakeService{})
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader("not json")), storedIdentity())
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("InvalidQuestionID", func(t *testing.T) {
		h := attempt.NewHandler(&fakeService{})
		body := `{"question_id":"not-a-uuid","selected_answer":1}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader(body)), storedIdentity())
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		h := attempt.NewHandler(&fakeService{err: attempt.ErrQuestionNotFound})
		body := `{"question_id":"` + uuid.NewString() + `","selected_answer":1}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader(body)), storedIdentity())
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		result := &attempt.AttemptResult{
			ID:             uuid.New(),
			QuestionID:     uuid.New(),
			SelectedAnswer: 1,
			IsCorrect:      true,
			CorrectAnswer:  1,
			Explanation:    "解説",
		}
		h := attempt.NewHandler(&fakeService{result: result})
		body := `{"question_id":"` + result.QuestionID.String() + `","selected_answer":1}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/attempts", strings.NewReader(body)), storedIdentity())
		rec := httptest.NewRecorder()
		h.SubmitAttempt(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got attempt.AttemptResult
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if !got.IsCorrect || got.CorrectAnswer != 1 || got.Explanation != "解説" {
			t.Errorf("unexpected result %+v", got)
		}
	})
}

func TestListAttempts_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"Defaults", "", 50, 0},
		{"Explicit", "?limit=10&offset=30", 10, 30},
		{"LimitCappedAt100", "?limit=500", 100, 0},
		{"ZeroLimitFallsBack", "?limit=0", 50, 0},
		{"NegativeOffsetFallsBack", "?offset=-5", 50, 0},
		{"Garbage", "?limit=abc&offset=xyz", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := attempt.NewHandler(svc)
			req := withIdentity(httptest.NewRequest(http.MethodGet, "/attempts"+tt.query, nil), storedIdentity())
			rec := httptest.NewRecorder()
			h.ListAttempts(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if svc.lastLimit != tt.wantLimit || svc.lastOffset != tt.wantOffset {
				t.Errorf("service saw limit=%d offset=%d, want %d/%d",
					svc.lastLimit, svc.lastOffset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	t.Run("NoPersistence", func(t *testing.T) {
		h := attempt.NewHandler(nil)
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/stats", nil), storedIdentity())
		rec := httptest.NewRecorder()
		h.GetStats(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		stats := &attempt.StatsResponse{
			TotalAttempts: 10,
			CorrectCount:  7,
			AccuracyRate:  70.0,
			ByCategory: []attempt.CategoryStats{
				{Category: "A", Total: 5, Correct: 4, AccuracyRate: 80.0},
				{Category: "B", Total: 5, Correct: 3, AccuracyRate: 60.0},
			},
		}
		h := attempt.NewHandler(&fakeService{stats: stats})
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/stats", nil), storedIdentity())
		rec := httptest.NewRecorder()
		h.GetStats(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got attempt.StatsResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if got.AccuracyRate != 70.0 || len(got.ByCategory) != 2 {
			t.Errorf("unexpected stats %+v", got)
		}
	})
}
