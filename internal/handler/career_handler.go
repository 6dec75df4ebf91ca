package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/response"
)

// CareerHandler wires HTTP endpoints to the career service.
type CareerHandler struct {
	service *service.CareerService
}

// NewCareerHandler creates a new handler.
func NewCareerHandler(svc *service.CareerService) *CareerHandler {
	return &CareerHandler{service: svc}
}

// UpdateResume godoc
// @Summary Update resume
// @Description Replace the stored resume document
// @Tags Career
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ResumeUpdateRequest true "Resume document"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /career/resume [post]
func (h *CareerHandler) UpdateResume(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ResumeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resume payload"))
		return
	}

	if err := h.service.UpdateResume(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "resume saved"})
}

// ExportResume godoc
// @Summary Export resume
// @Description Download the resume plus profile highlights as PDF
// @Tags Career
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Router /career/resume/export [get]
func (h *CareerHandler) ExportResume(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	payload, filename, err := h.service.ExportResumePDF(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Blob(c, "application/pdf", filename, payload)
}

// Companies godoc
// @Summary List company kits
// @Description Curated company preparation kits
// @Tags Career
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /career/companies [get]
func (h *CareerHandler) Companies(c *gin.Context) {
	response.OK(c, gin.H{"companies": h.service.Companies(c.Request.Context())})
}

// MockInterview godoc
// @Summary Start a mock interview
// @Description Select interview questions matched to the student's skills
// @Tags Career
// @Produce json
// @Security BearerAuth
// @Param type query string false "Interview type" Enums(technical, hr)
// @Param company query string false "Target company"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /career/mock-interview [get]
func (h *CareerHandler) MockInterview(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, err := h.service.MockInterview(c.Request.Context(), studentID, c.Query("type"), c.Query("company"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, resp)
}

// InterviewFeedback godoc
// @Summary Review a mock interview
// @Description Score submitted answers and attach coaching content
// @Tags Career
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.InterviewFeedbackRequest true "Interview answers"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /career/interview-feedback [post]
func (h *CareerHandler) InterviewFeedback(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.InterviewFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	feedback, err := h.service.ReviewInterview(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, feedback)
}
