package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/engineering-compass-api/internal/middleware"
	"github.com/noah-isme/engineering-compass-api/internal/models"
)

func studentIDFromContext(c *gin.Context) string {
	value, exists := c.Get(middleware.ContextStudentKey)
	if !exists {
		return ""
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return ""
	}
	return claims.StudentID
}
