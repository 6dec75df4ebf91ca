package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/response"
)

// StudentHandler wires HTTP endpoints to the student service.
type StudentHandler struct {
	service *service.StudentService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// Dashboard godoc
// @Summary Get dashboard
// @Description Aggregated profile, goal progress, weekly focus and recent recommendations
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/dashboard [get]
func (h *StudentHandler) Dashboard(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dashboard)
}

// UpdateCGPA godoc
// @Summary Update CGPA
// @Description Upsert one semester of graded subjects and recompute the CGPA
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CGPAUpdateRequest true "Semester record"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/cgpa [put]
func (h *StudentHandler) UpdateCGPA(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CGPAUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cgpa payload"))
		return
	}

	result, err := h.service.UpdateCGPA(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ExportCGPA godoc
// @Summary Export CGPA history
// @Description Download the semester-wise grade history as CSV
// @Tags Students
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Router /students/cgpa/export [get]
func (h *StudentHandler) ExportCGPA(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	payload, filename, err := h.service.ExportCGPACSV(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Blob(c, "text/csv", filename, payload)
}

// SetTimelineGoals godoc
// @Summary Set timeline goals
// @Description Replace the goals of one semester on the academic timeline
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.TimelineGoalsRequest true "Semester goals"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/timeline-goals [post]
func (h *StudentHandler) SetTimelineGoals(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.TimelineGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timeline payload"))
		return
	}

	if err := h.service.SetTimelineGoals(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "timeline goals saved"})
}

// ToggleGoal godoc
// @Summary Toggle a timeline goal
// @Description Flip the completion flag of one goal in one semester
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param semester path int true "Semester number"
// @Param goalId path string true "Goal id"
// @Param payload body models.ToggleRequest true "Completion flag"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/timeline-goals/{semester}/{goalId} [put]
func (h *StudentHandler) ToggleGoal(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	semester, err := strconv.Atoi(c.Param("semester"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester must be a number"))
		return
	}

	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid toggle payload"))
		return
	}

	if err := h.service.ToggleGoal(c.Request.Context(), studentID, semester, c.Param("goalId"), req.Completed); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "goal updated"})
}

// SetWeeklyFocus godoc
// @Summary Set weekly focus
// @Description Replace the resident week of focus tasks
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.WeeklyFocusRequest true "Weekly tasks"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/weekly-focus [post]
func (h *StudentHandler) SetWeeklyFocus(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.WeeklyFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid weekly focus payload"))
		return
	}

	if err := h.service.SetWeeklyFocus(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "weekly focus saved"})
}

// ToggleTask godoc
// @Summary Toggle a weekly task
// @Description Flip the completion flag of one weekly focus task
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task id"
// @Param payload body models.ToggleRequest true "Completion flag"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/weekly-focus/{taskId} [put]
func (h *StudentHandler) ToggleTask(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid toggle payload"))
		return
	}

	if err := h.service.ToggleTask(c.Request.Context(), studentID, c.Param("taskId"), req.Completed); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "task updated"})
}

// InitializeSampleData godoc
// @Summary Seed sample data
// @Description Populate the record with starter goals, tasks and recommendations
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/initialize-sample-data [post]
func (h *StudentHandler) InitializeSampleData(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.InitializeSampleData(c.Request.Context(), studentID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "sample data initialized"})
}

// Opportunities godoc
// @Summary List opportunities
// @Description Curated opportunities the student's branch is eligible for
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/opportunities [get]
func (h *StudentHandler) Opportunities(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	listings, err := h.service.Opportunities(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"opportunities": listings})
}
