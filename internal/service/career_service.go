package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/engineering-compass-api/internal/catalog"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/export"
)

type careerStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.StudentRecord, error)
	Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error
}

// CareerService provides resume and interview preparation use cases.
type CareerService struct {
	repo      careerStudentRepository
	cache     *CacheService
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	score     func() int
}

// CareerServiceParams bundles CareerService dependencies.
type CareerServiceParams struct {
	Repo      careerStudentRepository
	Cache     *CacheService
	PDF       *export.PDFExporter
	Validator *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
	Score     func() int
}

// NewCareerService constructs a CareerService instance.
func NewCareerService(p CareerServiceParams) *CareerService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	if p.PDF == nil {
		p.PDF = export.NewPDFExporter()
	}
	if p.Now == nil {
		p.Now = func() time.Time { return time.Now().UTC() }
	}
	if p.Score == nil {
		p.Score = func() int { return 70 + rand.Intn(31) }
	}
	return &CareerService{
		repo:      p.Repo,
		cache:     p.Cache,
		pdf:       p.PDF,
		validator: p.Validator,
		logger:    p.Logger,
		now:       p.Now,
		score:     p.Score,
	}
}

// UpdateResume replaces the stored resume document.
func (s *CareerService) UpdateResume(ctx context.Context, studentID string, req models.ResumeUpdateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resume payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	record.Profile.Resume = models.Resume{
		Summary:        req.Summary,
		Experience:     req.Experience,
		Certifications: req.Certifications,
	}
	return s.save(ctx, record)
}

// ExportResumePDF renders the stored resume plus profile highlights as a
// downloadable PDF.
func (s *CareerService) ExportResumePDF(ctx context.Context, studentID string) ([]byte, string, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	p := record.Profile
	doc := export.Document{
		Title:    p.Name,
		Subtitle: fmt.Sprintf("%s, %s | %s", p.Branch, p.College.Name, record.Email),
	}

	if p.Resume.Summary != "" {
		doc.Sections = append(doc.Sections, export.Section{Heading: "Summary", Lines: []string{p.Resume.Summary}})
	}

	education := []string{fmt.Sprintf("%s - %s (%s)", p.College.Name, p.Branch, p.College.Tier)}
	if p.CGPA.Current > 0 {
		education = append(education, fmt.Sprintf("CGPA: %.2f", p.CGPA.Current))
	}
	doc.Sections = append(doc.Sections, export.Section{Heading: "Education", Lines: education})

	if len(p.Skills) > 0 {
		names := make([]string, 0, len(p.Skills))
		for _, skill := range p.Skills {
			names = append(names, fmt.Sprintf("%s (%s)", skill.Name, skill.Level))
		}
		doc.Sections = append(doc.Sections, export.Section{Heading: "Skills", Lines: []string{strings.Join(names, ", ")}})
	}

	if len(p.Resume.Experience) > 0 {
		lines := []string{}
		for _, exp := range p.Resume.Experience {
			lines = append(lines, fmt.Sprintf("%s, %s (%s)", exp.Title, exp.Company, exp.Duration))
			if exp.Description != "" {
				lines = append(lines, exp.Description)
			}
		}
		doc.Sections = append(doc.Sections, export.Section{Heading: "Experience", Lines: lines})
	}

	if len(p.Projects) > 0 {
		lines := []string{}
		for _, project := range p.Projects {
			lines = append(lines, project.Title)
			if project.Description != "" {
				lines = append(lines, project.Description)
			}
			if len(project.Technologies) > 0 {
				lines = append(lines, "Technologies: "+strings.Join(project.Technologies, ", "))
			}
		}
		doc.Sections = append(doc.Sections, export.Section{Heading: "Projects", Lines: lines})
	}

	if len(p.Resume.Certifications) > 0 {
		lines := []string{}
		for _, cert := range p.Resume.Certifications {
			lines = append(lines, fmt.Sprintf("%s - %s", cert.Name, cert.Issuer))
		}
		doc.Sections = append(doc.Sections, export.Section{Heading: "Certifications", Lines: lines})
	}

	payload, err := s.pdf.Render(doc)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render resume export")
	}
	return payload, "resume.pdf", nil
}

// Companies returns the curated company preparation kits.
func (s *CareerService) Companies(ctx context.Context) []catalog.Company {
	return catalog.Companies()
}

// MockInterviewResponse bundles selected questions with student context.
type MockInterviewResponse struct {
	Type           string                      `json:"type"`
	Company        string                      `json:"company"`
	Questions      []catalog.InterviewQuestion `json:"questions"`
	StudentContext MockInterviewContext        `json:"studentContext"`
}

// MockInterviewContext echoes the profile slice used for selection.
type MockInterviewContext struct {
	Branch      string   `json:"branch"`
	Skills      []string `json:"skills"`
	CareerGoals []string `json:"careerGoals"`
}

const mockInterviewQuestions = 5

// MockInterview selects questions from the banks. Technical questions are
// filtered to the student's skill categories, with Programming and
// Algorithms always considered relevant; HR questions all apply.
func (s *CareerService) MockInterview(ctx context.Context, studentID, interviewType, company string) (*MockInterviewResponse, error) {
	if interviewType == "" {
		interviewType = "technical"
	}
	if company == "" {
		company = "general"
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(record.Profile.Skills))
	for _, skill := range record.Profile.Skills {
		names = append(names, skill.Name)
	}

	var questions []catalog.InterviewQuestion
	if interviewType == "technical" {
		for _, q := range catalog.TechnicalQuestions() {
			if q.Category == "Programming" || q.Category == "Algorithms" || skillMatchesCategory(names, q.Category) {
				questions = append(questions, q)
			}
		}
	} else {
		questions = catalog.HRQuestions()
	}
	if len(questions) > mockInterviewQuestions {
		questions = questions[:mockInterviewQuestions]
	}

	return &MockInterviewResponse{
		Type:      interviewType,
		Company:   company,
		Questions: questions,
		StudentContext: MockInterviewContext{
			Branch:      record.Profile.Branch,
			Skills:      names,
			CareerGoals: record.Profile.CareerGoals,
		},
	}, nil
}

func skillMatchesCategory(skillNames []string, category string) bool {
	lowered := strings.ToLower(category)
	for _, name := range skillNames {
		if strings.Contains(strings.ToLower(name), lowered) {
			return true
		}
	}
	return false
}

// InterviewFeedback is the scored review of a mock-interview run.
type InterviewFeedback struct {
	OverallScore int `json:"overallScore"`
	catalog.InterviewFeedbackContent
}

// ReviewInterview scores submitted answers and attaches the coaching
// content. The score band is 70..100.
func (s *CareerService) ReviewInterview(ctx context.Context, studentID string, req models.InterviewFeedbackRequest) (*InterviewFeedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}

	if _, err := s.fetch(ctx, studentID); err != nil {
		return nil, err
	}

	return &InterviewFeedback{
		OverallScore:             s.score(),
		InterviewFeedbackContent: catalog.InterviewFeedback(),
	}, nil
}

func (s *CareerService) fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	record, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return record, nil
}

func (s *CareerService) save(ctx context.Context, record *models.StudentRecord) error {
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
