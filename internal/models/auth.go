package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims carries only the student identity; profile data always comes
// from the store, never from the token.
type JWTClaims struct {
	StudentID string `json:"studentId"`
	jwt.RegisteredClaims
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name              string  `json:"name" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=6"`
	Phone             string  `json:"phone"`
	College           College `json:"college" validate:"required"`
	Branch            string  `json:"branch" validate:"required,oneof='Computer Science' 'Information Technology' Electronics Mechanical Civil Chemical Electrical Other"`
	AdmissionYear     int     `json:"admissionYear" validate:"required"`
	CurrentYear       int     `json:"currentYear" validate:"required,gte=1,lte=4"`
	CurrentSemester   int     `json:"currentSemester" validate:"required,gte=1,lte=8"`
	TwelfthPercentage float64 `json:"twelfthPercentage" validate:"omitempty,gte=0,lte=100"`
	JEEScore          float64 `json:"jeeScore"`
	CETScore          float64 `json:"cetScore"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ProfileUpdateRequest carries partial profile updates. Email and password
// are immutable through this path.
type ProfileUpdateRequest struct {
	Name              *string    `json:"name"`
	Phone             *string    `json:"phone"`
	College           *College   `json:"college"`
	Branch            *string    `json:"branch"`
	AdmissionYear     *int       `json:"admissionYear"`
	CurrentYear       *int       `json:"currentYear" validate:"omitempty,gte=1,lte=4"`
	CurrentSemester   *int       `json:"currentSemester" validate:"omitempty,gte=1,lte=8"`
	TwelfthPercentage *float64   `json:"twelfthPercentage" validate:"omitempty,gte=0,lte=100"`
	JEEScore          *float64   `json:"jeeScore"`
	CETScore          *float64   `json:"cetScore"`
	TargetCGPA        *float64   `json:"targetCgpa" validate:"omitempty,gte=0,lte=10"`
	Projects          *[]Project `json:"projects"`
}

// InterestQuizRequest carries interest-quiz results.
type InterestQuizRequest struct {
	Interests   []Interest `json:"interests" validate:"required,dive"`
	CareerGoals []string   `json:"careerGoals" validate:"required,min=1,dive,oneof='MNC Job' Startup 'MS Abroad' 'Government Job' Entrepreneurship Research"`
}
