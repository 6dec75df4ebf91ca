package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register godoc
// @Summary Register a student
// @Description Create a student account and return an access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, token)
}

// Login godoc
// @Summary Authenticate a student
// @Description Authenticate by email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, token)
}

// Me godoc
// @Summary Get current student
// @Description Returns the authenticated student's record with profile completion
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	me, err := h.service.Me(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, me)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Apply partial profile updates; email and password are immutable here
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ProfileUpdateRequest true "Profile updates"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	me, err := h.service.UpdateProfile(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, me)
}

// InterestQuiz godoc
// @Summary Submit interest quiz
// @Description Store quiz interests and career goals, marking the quiz milestone
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.InterestQuizRequest true "Quiz results"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/interest-quiz [post]
func (h *AuthHandler) InterestQuiz(c *gin.Context) {
	studentID := studentIDFromContext(c)
	if studentID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.InterestQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid quiz payload"))
		return
	}

	if err := h.service.SubmitInterestQuiz(c.Request.Context(), studentID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "interest quiz saved"})
}
