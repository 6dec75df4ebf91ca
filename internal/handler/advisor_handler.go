package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/response"
)

// AdvisorHandler wires HTTP endpoints to the advisor service.
type AdvisorHandler struct {
	service *service.AdvisorService
}

// NewAdvisorHandler creates a new handler.
func NewAdvisorHandler(svc *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{service: svc}
}

// Recommendations godoc
// @Summary Generate recommendations
// @Description Generate and persist personalized recommendations
// @Tags Advisor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /ai/recommendations [post]
func (h *AdvisorHandler) Recommendations(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, err := h.service.GenerateRecommendations(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}

// Chat godoc
// @Summary Advisor chat
// @Description Answer a student question in mentor persona; degrades instead of erroring
// @Tags Advisor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ChatRequest true "Chat turn"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /ai/chat [post]
func (h *AdvisorHandler) Chat(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}

// WeeklyFocus godoc
// @Summary Generate weekly focus
// @Description Generate and persist three weekly tasks
// @Tags Advisor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /ai/weekly-focus [post]
func (h *AdvisorHandler) WeeklyFocus(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, err := h.service.GenerateWeeklyFocus(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}

// ProjectIdeas godoc
// @Summary Generate project ideas
// @Description Generate project ideas at the requested complexity; nothing is persisted
// @Tags Advisor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ProjectIdeasRequest true "Complexity"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /ai/project-ideas [post]
func (h *AdvisorHandler) ProjectIdeas(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ProjectIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid project ideas payload"))
		return
	}

	resp, err := h.service.GenerateProjectIdeas(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}

// EnhanceResume godoc
// @Summary Resume enhancement advice
// @Description Generate resume improvement suggestions; nothing is persisted
// @Tags Advisor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /ai/resume-enhancement [post]
func (h *AdvisorHandler) EnhanceResume(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, err := h.service.EnhanceResume(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}
