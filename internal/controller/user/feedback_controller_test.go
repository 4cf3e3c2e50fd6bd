package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/service"
	"github.com/lshigami/intervu/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEvaluator struct {
	total int
	err   error
}

func (s *stubEvaluator) Evaluate(_ context.Context, _ string) (*model.Evaluation, error) {
	if s.err != nil {
		return nil, s.err
	}
	scores := make([]model.CategoryScore, 0, len(model.CategoryNames))
	for _, name := range model.CategoryNames {
		scores = append(scores, model.CategoryScore{Name: name, Score: float64(s.total), Comment: "noted"})
	}
	return &model.Evaluation{
		TotalScore:          s.total,
		CategoryScores:      scores,
		Strengths:           []string{"Concise"},
		AreasForImprovement: []string{"Examples"},
		FinalAssessment:     "Good effort.",
	}, nil
}

func newFeedbackRouter(t *testing.T, evaluator service.FeedbackEvaluator) (*gin.Engine, repository.FeedbackRepository, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctrl := NewFeedbackController(service.NewFeedbackService(repo, evaluator))

	r := gin.New()
	r.GET("/api/v1/feedback", ctrl.GetFeedbacks)
	r.POST("/api/v1/feedback", ctrl.CreateFeedback)
	r.GET("/api/v1/feedback/latest", ctrl.GetLatestFeedback)
	r.GET("/api/v1/attempts/:feedback_id", ctrl.GetFeedbackAttempt)
	return r, repo, db
}

func seedAttempt(t *testing.T, repo repository.FeedbackRepository, score int, at time.Time) string {
	t.Helper()
	id := repo.NewID()
	require.NoError(t, repo.Save(context.Background(), &model.Feedback{
		ID:               id,
		InterviewID:      "i1",
		UserID:           "u1",
		AttemptTimestamp: at,
		TotalScore:       score,
		CategoryScores:   []model.CategoryScore{},
		CreatedAt:        at,
	}))
	return id
}

func perform(r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetFeedbacks_MissingParams(t *testing.T) {
	r, _, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})

	for _, target := range []string{
		"/api/v1/feedback?userId=u1",
		"/api/v1/feedback?interviewId=i1",
		"/api/v1/feedback",
		"/api/v1/feedback?interviewId=&userId=u1",
	} {
		rec := perform(r, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.JSONEq(t, `{"error":"Missing required parameters"}`, rec.Body.String(), target)
	}
}

func TestGetFeedbacks_NewestFirst(t *testing.T) {
	r, repo, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})
	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	oldest := seedAttempt(t, repo, 40, base)
	newest := seedAttempt(t, repo, 90, base.Add(2*time.Hour))
	middle := seedAttempt(t, repo, 65, base.Add(time.Hour))

	rec := perform(r, http.MethodGet, "/api/v1/feedback?interviewId=i1&userId=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []dto.FeedbackResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 3)
	assert.Equal(t, []string{newest, middle, oldest}, []string{body[0].ID, body[1].ID, body[2].ID})
	assert.Equal(t, 90, body[0].TotalScore)
}

func TestGetFeedbacks_EmptyHistoryIsEmptyArray(t *testing.T) {
	r, _, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})

	rec := perform(r, http.MethodGet, "/api/v1/feedback?interviewId=i1&userId=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetFeedbacks_StoreFailure(t *testing.T) {
	r, _, db := newFeedbackRouter(t, &stubEvaluator{total: 80})
	testhelpers.DropFeedbackTable(t, db)

	rec := perform(r, http.MethodGet, "/api/v1/feedback?interviewId=i1&userId=u1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch feedbacks"}`, rec.Body.String())
}

func TestGetLatestFeedback(t *testing.T) {
	r, repo, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})

	rec := perform(r, http.MethodGet, "/api/v1/feedback/latest?interviewId=i1&userId=u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	seedAttempt(t, repo, 40, base)
	newest := seedAttempt(t, repo, 75, base.Add(time.Hour))

	rec = perform(r, http.MethodGet, "/api/v1/feedback/latest?interviewId=i1&userId=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.FeedbackResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, newest, body.ID)

	rec = perform(r, http.MethodGet, "/api/v1/feedback/latest?userId=u1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFeedbackAttempt(t *testing.T) {
	r, repo, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})
	id := seedAttempt(t, repo, 55, time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC))

	rec := perform(r, http.MethodGet, "/api/v1/attempts/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.FeedbackResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 55, body.TotalScore)
	assert.Equal(t, "i1", body.InterviewID)

	rec = perform(r, http.MethodGet, "/api/v1/attempts/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFeedback(t *testing.T) {
	t.Run("creates and then updates in place", func(t *testing.T) {
		r, repo, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})
		payload := []byte(`{"interviewId":"i1","userId":"u1","transcript":[{"role":"assistant","content":"Hi"},{"role":"user","content":"Hello"}]}`)

		rec := perform(r, http.MethodPost, "/api/v1/feedback", payload)
		require.Equal(t, http.StatusOK, rec.Code)
		var created dto.CreateFeedbackResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.True(t, created.Success)
		require.NotEmpty(t, created.FeedbackID)

		update := []byte(`{"interviewId":"i1","userId":"u1","transcript":[],"feedbackId":"` + created.FeedbackID + `"}`)
		rec = perform(r, http.MethodPost, "/api/v1/feedback", update)
		require.Equal(t, http.StatusOK, rec.Code)
		var updated dto.CreateFeedbackResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, created.FeedbackID, updated.FeedbackID)

		all, err := repo.FindAllByInterviewAndUser(context.Background(), "i1", "u1")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("evaluator failure", func(t *testing.T) {
		r, repo, _ := newFeedbackRouter(t, &stubEvaluator{err: errors.New("model overloaded")})
		payload := []byte(`{"interviewId":"i1","userId":"u1","transcript":[{"role":"user","content":"Hello"}]}`)

		rec := perform(r, http.MethodPost, "/api/v1/feedback", payload)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to save feedback"}`, rec.Body.String())

		all, err := repo.FindAllByInterviewAndUser(context.Background(), "i1", "u1")
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("invalid body", func(t *testing.T) {
		r, _, _ := newFeedbackRouter(t, &stubEvaluator{total: 80})

		rec := perform(r, http.MethodPost, "/api/v1/feedback", []byte(`{"userId":"u1","transcript":[]}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = perform(r, http.MethodPost, "/api/v1/feedback", []byte(`{"interviewId":"i1","userId":"u1","transcript":[{"content":"no role"}]}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = perform(r, http.MethodPost, "/api/v1/feedback", []byte(`{`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
