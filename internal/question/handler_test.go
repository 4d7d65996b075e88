package question_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/well-living/nurse-exam-app/internal/question"
)

type fakeRepo struct {
	byID       map[string]*question.Question
	listed     []*question.Question
	lastFilter question.ListFilter
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*question.Question, error) {
	return f.byID[id], nil
}

func (f *fakeRepo) List(ctx context.Context, filter question.ListFilter) ([]*question.Question, error) {
	f.lastFilter = filter
	return f.listed, nil
}

func sampleQuestion() *question.Question {
	return &question.Question{
		ID:            uuid.New(),
		Year:          2026,
		Number:        12,
		Category:      "必修",
		QuestionText:  "看護における基本は何か。",
		Choices:       datatypes.JSON(`["選択肢1","選択肢2","選択肢3","選択肢4"]`),
		CorrectAnswer: 2,
		Explanation:   "解説テキスト",
	}
}

func newQuestionRouter(repo question.Repository) http.Handler {
	r := chi.NewRouter()
	r.Mount("/questions", question.Routes(question.NewHandler(repo)))
	return r
}

func TestListQuestions(t *testing.T) {
	t.Run("NoPersistence", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newQuestionRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("InvalidYear", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newQuestionRouter(&fakeRepo{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions?year=abc", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("FiltersForwardedToRepository", func(t *testing.T) {
		repo := &fakeRepo{}
		rec := httptest.NewRecorder()
		newQuestionRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions?year=2026&category=必修&limit=10&offset=20", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		want := question.ListFilter{Year: 2026, Category: "必修", Limit: 10, Offset: 20}
		if repo.lastFilter != want {
			t.Errorf("repository saw %+v, want %+v", repo.lastFilter, want)
		}
	})

	t.Run("PaginationClamped", func(t *testing.T) {
		repo := &fakeRepo{}
		rec := httptest.NewRecorder()
		newQuestionRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions?limit=500&offset=-3", nil))
		if repo.lastFilter.Limit != 100 || repo.lastFilter.Offset != 0 {
			t.Errorf("repository saw limit=%d offset=%d, want 100/0", repo.lastFilter.Limit, repo.lastFilter.Offset)
		}
	})

	t.Run("AnswerNotLeaked", func(t *testing.T) {
		q := sampleQuestion()
		repo := &fakeRepo{listed: []*question.Question{q}}
		rec := httptest.NewRecorder()
		newQuestionRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp struct {
			Questions []map[string]json.RawMessage `json:"questions"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if len(resp.Questions) != 1 {
			t.Fatalf("got %d questions, want 1", len(resp.Questions))
		}
		for _, field := range []string{"correct_answer", "explanation"} {
			if _, ok := resp.Questions[0][field]; ok {
				t.Errorf("%s must not appear in the list payload", field)
			}
		}
	})

	t.Run("EmptyResultIsNotNull", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newQuestionRouter(&fakeRepo{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions", nil))

		var resp struct {
			Questions json.RawMessage `json:"questions"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if string(resp.Questions) == "null" {
			t.Error("questions must be an empty array, not null")
		}
	})
}

func TestGetQuestion(t *testing.T) {
	t.Run("NoPersistence", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newQuestionRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions/"+uuid.NewString(), nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("InvalidID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newQuestionRouter(&fakeRepo{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions/not-a-uuid", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newQuestionRouter(&fakeRepo{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions/"+uuid.NewString(), nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("Found", func(t *testing.T) {
		q := sampleQuestion()
		repo := &fakeRepo{byID: map[string]*question.Question{q.ID.String(): q}}
		rec := httptest.NewRecorder()
		newQuestionRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions/"+q.ID.String(), nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got question.QuestionResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if got.ID != q.ID || got.Year != 2026 || got.Number != 12 {
			t.Errorf("unexpected question %+v", got)
		}
	})
}
