package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/llm"
	"github.com/noah-isme/engineering-compass-api/internal/middleware"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
)

type scriptedGenerator struct {
	response string
	err      error
}

func (g *scriptedGenerator) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func newAdvisorHandler(repo *fakeStudentRepo, gen *scriptedGenerator) *AdvisorHandler {
	return NewAdvisorHandler(service.NewAdvisorService(service.AdvisorServiceParams{
		Repo:      repo,
		Generator: gen,
	}))
}

func advisorTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	if body == "" {
		body = "{}"
	}
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextStudentKey, &models.JWTClaims{StudentID: "s1"})
	return c, rec
}

func advisorTestRecord() *models.StudentRecord {
	return &models.StudentRecord{
		ID:    "s1",
		Email: "asha@college.edu",
		Profile: models.Profile{
			Name:   "Asha Verma",
			Branch: models.BranchComputerScience,
			Skills: []models.Skill{{Name: "Python", Level: models.LevelIntermediate}},
		},
	}
}

func TestAdvisorHandlerRecommendationsNonJSONAnswerIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeStudentRepo(advisorTestRecord())
	handler := newAdvisorHandler(repo, &scriptedGenerator{response: "Sure! Here are some ideas:"})

	c, rec := advisorTestContext(t, http.MethodPost, "/ai/recommendations", "")
	handler.Recommendations(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "UPSTREAM_GENERATION_ERROR", envelope.Error.Code)
}

func TestAdvisorHandlerChatAlwaysAnswers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeStudentRepo(advisorTestRecord())
	handler := newAdvisorHandler(repo, &scriptedGenerator{err: context.DeadlineExceeded})

	c, rec := advisorTestContext(t, http.MethodPost, "/ai/chat", `{"message":"How do I prepare for interviews?"}`)
	handler.Chat(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data service.ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Response)
}
