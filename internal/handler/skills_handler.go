package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/response"
)

// SkillsHandler wires HTTP endpoints to the skills service.
type SkillsHandler struct {
	service *service.SkillsService
}

// NewSkillsHandler creates a new handler.
func NewSkillsHandler(svc *service.SkillsService) *SkillsHandler {
	return &SkillsHandler{service: svc}
}

// LearningPaths godoc
// @Summary List learning paths
// @Description Curated multi-week study tracks
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /skills/learning-paths [get]
func (h *SkillsHandler) LearningPaths(c *gin.Context) {
	response.OK(c, gin.H{"paths": h.service.LearningPaths(c.Request.Context())})
}

// SubmitAssessment godoc
// @Summary Submit skills assessment
// @Description Replace the self-assessed skill list
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SkillsAssessmentRequest true "Skill list"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skills/assessment [post]
func (h *SkillsHandler) SubmitAssessment(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SkillsAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assessment payload"))
		return
	}

	if err := h.service.SubmitAssessment(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "assessment saved"})
}

// Recommended godoc
// @Summary Recommended skills
// @Description Branch and goal based skill suggestions minus skills already held
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /skills/recommended [get]
func (h *SkillsHandler) Recommended(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, err := h.service.RecommendedSkills(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}

// PathsProgress godoc
// @Summary Started path progress
// @Description Learning paths the student has started, with completed steps
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /skills/progress [get]
func (h *SkillsHandler) PathsProgress(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	views, err := h.service.PathsProgress(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"paths": views})
}

// StartPath godoc
// @Summary Start a learning path
// @Description Enroll in a learning path; starting twice is a conflict
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PathRequest true "Path id"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /skills/start-path [post]
func (h *SkillsHandler) StartPath(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid path payload"))
		return
	}

	if err := h.service.StartPath(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "learning path started"})
}

// CompleteStep godoc
// @Summary Complete a path step
// @Description Mark one step of a started path as done; repeats are no-ops
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PathStepRequest true "Path and step"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/complete-step [post]
func (h *SkillsHandler) CompleteStep(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.PathStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid step payload"))
		return
	}

	if err := h.service.CompleteStep(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "step completed"})
}

// AddGoal godoc
// @Summary Add a skill goal
// @Description Promote a recommended skill into a current-semester timeline goal
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SkillGoalRequest true "Skill name"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skills/add-goal [post]
func (h *SkillsHandler) AddGoal(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SkillGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid skill goal payload"))
		return
	}

	if err := h.service.AddGoal(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "skill goal added"})
}

// AIAssessment godoc
// @Summary Generated skill assessment
// @Description Skill-check questions tailored to the student; degrades to a static set
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /skills/ai-assessment [post]
func (h *SkillsHandler) AIAssessment(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, err := h.service.AIAssessment(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}
