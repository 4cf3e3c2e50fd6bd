package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/service"
	"github.com/lshigami/intervu/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInterview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDB(t)
	svc := service.NewInterviewService(repository.NewInterviewRepository(db), repository.NewFeedbackRepository(db), 0)
	ctrl := NewAdminInterviewController(svc)

	r := gin.New()
	r.POST("/api/v1/admin/interviews", ctrl.CreateInterview)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/interviews", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"userId":"u1","role":"Frontend Engineer","type":"Technical","techstack":["react"],"level":"Junior","questions":["What is the virtual DOM?"],"finalized":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.InterviewResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "u1", created.UserID)
	assert.True(t, created.Finalized)

	rec = post(`{"userId":"u1","role":"Frontend Engineer","type":"Technical","level":"Junior","questions":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(`{"role":"Frontend Engineer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
