package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/middleware"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	"github.com/noah-isme/engineering-compass-api/pkg/config"
)

type fakeStudentRepo struct {
	records map[string]*models.StudentRecord
}

func newFakeStudentRepo(records ...*models.StudentRecord) *fakeStudentRepo {
	repo := &fakeStudentRepo{records: map[string]*models.StudentRecord{}}
	for _, record := range records {
		repo.records[record.ID] = record
	}
	return repo
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.StudentRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *record
	return &clone, nil
}

func (f *fakeStudentRepo) FindByEmail(ctx context.Context, email string) (*models.StudentRecord, error) {
	for _, record := range f.records {
		if record.Email == email {
			clone := *record
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, record := range f.records {
		if record.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, record *models.StudentRecord) error {
	record.Version = 1
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeStudentRepo) Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error {
	record.Version++
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func newTestAuthService(repo *fakeStudentRepo) *service.AuthService {
	return service.NewAuthService(service.AuthServiceParams{
		Repo: repo,
		Config: config.JWTConfig{
			Secret:     "test-secret",
			Expiration: time.Hour,
			Issuer:     "engineering-compass",
		},
	})
}

func TestAuthHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(newTestAuthService(newFakeStudentRepo()))

	body := `{
		"name": "Asha Verma",
		"email": "asha@college.edu",
		"password": "secret123",
		"college": {"name": "Rajiv Gandhi Institute of Technology", "tier": "Tier-2"},
		"branch": "Computer Science",
		"admissionYear": 2023,
		"currentYear": 2,
		"currentSemester": 3
	}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var envelope struct {
		Data models.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Token)
}

func TestAuthHandlerRegisterMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(newTestAuthService(newFakeStudentRepo()))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerLoginUnknownEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(newTestAuthService(newFakeStudentRepo()))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ghost@college.edu","password":"secret123"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerMeWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(newTestAuthService(newFakeStudentRepo()))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeStudentRepo(&models.StudentRecord{
		ID:    "s1",
		Email: "asha@college.edu",
		Profile: models.Profile{
			Name:   "Asha Verma",
			Branch: models.BranchComputerScience,
		},
	})
	authService := newTestAuthService(repo)
	token, err := authService.Register(context.Background(), models.RegisterRequest{
		Name:            "Ravi Kumar",
		Email:           "ravi@college.edu",
		Password:        "secret123",
		College:         models.College{Name: "Rajiv Gandhi Institute of Technology", Tier: models.TierTwo},
		Branch:          models.BranchComputerScience,
		AdmissionYear:   2023,
		CurrentYear:     2,
		CurrentSemester: 3,
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", middleware.JWT(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"studentId": studentIDFromContext(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Legacy header clients still authenticate.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", token.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
