package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/response"
)

// CommunityHandler wires HTTP endpoints to the community service.
type CommunityHandler struct {
	service *service.CommunityService
}

// NewCommunityHandler creates a new handler.
func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: svc}
}

// Cohort godoc
// @Summary List college cohort
// @Description Same-college students split into seniors, peers and juniors
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /community/students [get]
func (h *CommunityHandler) Cohort(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	cohort, err := h.service.Cohort(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cohort)
}

// Connect godoc
// @Summary Request a connection
// @Description Send a mentorship or peer connection request to another student
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ConnectRequest true "Connection request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /community/connect [post]
func (h *CommunityHandler) Connect(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid connect payload"))
		return
	}

	if err := h.service.Connect(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "connection request sent"})
}

// DecideConnection godoc
// @Summary Decide on a connection
// @Description Accept or reject a pending connection request
// @Tags Community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param connectionId path string true "Connection id"
// @Param payload body models.ConnectionDecisionRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /community/connections/{connectionId} [put]
func (h *CommunityHandler) DecideConnection(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ConnectionDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}

	if err := h.service.DecideConnection(c.Request.Context(), studentID, c.Param("connectionId"), req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "connection updated"})
}

// Connections godoc
// @Summary List connections
// @Description The caller's connections grouped by relation and state
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /community/connections [get]
func (h *CommunityHandler) Connections(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	connections, err := h.service.Connections(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, connections)
}

// Forums godoc
// @Summary List campus forums
// @Description Forum topics and categories for the caller's college
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /community/forums [get]
func (h *CommunityHandler) Forums(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	forums, err := h.service.Forums(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, forums)
}

// Events godoc
// @Summary List campus events
// @Description Events for the caller's college, split into upcoming and past
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /community/events [get]
func (h *CommunityHandler) Events(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	events, err := h.service.Events(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, events)
}
