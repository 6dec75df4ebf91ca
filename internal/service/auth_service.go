package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/progress"
	"github.com/noah-isme/engineering-compass-api/pkg/config"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

type authStudentRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.StudentRecord, error)
	FindByID(ctx context.Context, id string) (*models.StudentRecord, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, record *models.StudentRecord) error
	Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error
}

// AuthService provides registration, login and profile use cases.
type AuthService struct {
	repo      authStudentRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	config    config.JWTConfig
	now       func() time.Time
}

// AuthServiceParams bundles AuthService dependencies.
type AuthServiceParams struct {
	Repo      authStudentRepository
	Cache     *CacheService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    config.JWTConfig
	Now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(p AuthServiceParams) *AuthService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	if p.Now == nil {
		p.Now = func() time.Time { return time.Now().UTC() }
	}
	return &AuthService{
		repo:      p.Repo,
		cache:     p.Cache,
		validator: p.Validator,
		logger:    p.Logger,
		config:    p.Config,
		now:       p.Now,
	}
}

// MeResponse is the authenticated profile view.
type MeResponse struct {
	models.StudentRecord
	CompletionPercentage int `json:"completionPercentage"`
}

// Register creates a new student account and issues a token. Registration
// captures basic and academic info in one step, so both milestone flags flip
// immediately.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check registration")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	record := &models.StudentRecord{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
		Profile: models.Profile{
			Name:              req.Name,
			Phone:             req.Phone,
			College:           req.College,
			Branch:            req.Branch,
			AdmissionYear:     req.AdmissionYear,
			CurrentYear:       req.CurrentYear,
			CurrentSemester:   req.CurrentSemester,
			TwelfthPercentage: req.TwelfthPercentage,
			JEEScore:          req.JEEScore,
			CETScore:          req.CETScore,
			Interests:         []models.Interest{},
			CareerGoals:       []string{},
			Skills:            []models.Skill{},
			Projects:          []models.Project{},
			TimelineGoals:     []models.SemesterGoals{},
			Connections:       []models.Connection{},
			AIRecommendations: []models.Recommendation{},
			ProfileCompletion: models.CompletionFlags{
				BasicInfo:    true,
				AcademicInfo: true,
			},
		},
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	return s.issueToken(record.ID)
}

// Login authenticates a student and returns an issued token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	record, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
	}

	return s.issueToken(record.ID)
}

// Me returns the full record (credential stripped by JSON tags) plus the
// derived completion percentage.
func (s *AuthService) Me(ctx context.Context, studentID string) (*MeResponse, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &MeResponse{
		StudentRecord:        *record,
		CompletionPercentage: progress.CompletionPercentage(record.Email, &record.Profile),
	}, nil
}

// UpdateProfile applies partial profile updates. Email and password never
// change through this path. Submitting projects flips the projects milestone.
func (s *AuthService) UpdateProfile(ctx context.Context, studentID string, req models.ProfileUpdateRequest) (*MeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	p := &record.Profile
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.College != nil {
		p.College = *req.College
	}
	if req.Branch != nil {
		p.Branch = *req.Branch
	}
	if req.AdmissionYear != nil {
		p.AdmissionYear = *req.AdmissionYear
	}
	if req.CurrentYear != nil {
		p.CurrentYear = *req.CurrentYear
	}
	if req.CurrentSemester != nil {
		p.CurrentSemester = *req.CurrentSemester
	}
	if req.TwelfthPercentage != nil {
		p.TwelfthPercentage = *req.TwelfthPercentage
	}
	if req.JEEScore != nil {
		p.JEEScore = *req.JEEScore
	}
	if req.CETScore != nil {
		p.CETScore = *req.CETScore
	}
	if req.TargetCGPA != nil {
		p.CGPA.Target = *req.TargetCGPA
	}
	if req.Projects != nil {
		p.Projects = *req.Projects
		if len(p.Projects) > 0 {
			p.ProfileCompletion.Projects = true
		}
	}

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	return &MeResponse{
		StudentRecord:        *record,
		CompletionPercentage: progress.CompletionPercentage(record.Email, &record.Profile),
	}, nil
}

// SubmitInterestQuiz stores quiz results and flips the interestQuiz flag.
func (s *AuthService) SubmitInterestQuiz(ctx context.Context, studentID string, req models.InterestQuizRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid quiz payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	record.Profile.Interests = req.Interests
	record.Profile.CareerGoals = req.CareerGoals
	record.Profile.ProfileCompletion.InterestQuiz = true

	return s.save(ctx, record)
}

// VerifyToken parses and validates an issued token, returning the claims.
func (s *AuthService) VerifyToken(token string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token is not valid")
	}
	return claims, nil
}

func (s *AuthService) issueToken(studentID string) (*models.TokenResponse, error) {
	expiresAt := s.now().Add(s.config.Expiration)
	claims := models.JWTClaims{
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   studentID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}
	return &models.TokenResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	record, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return record, nil
}

func (s *AuthService) save(ctx context.Context, record *models.StudentRecord) error {
	if err := s.repo.Save(ctx, record, s.now()); err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save student")
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, dashboardCacheKey(record.ID)); err != nil {
			s.logger.Warn("dashboard cache invalidation failed", zap.String("student_id", record.ID), zap.Error(err))
		}
	}
	return nil
}
