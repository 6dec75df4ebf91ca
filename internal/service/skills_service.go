package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/engineering-compass-api/internal/catalog"
	"github.com/noah-isme/engineering-compass-api/internal/llm"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/progress"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

type skillsStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.StudentRecord, error)
	Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error
}

type textGenerator interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// SkillsService provides skill assessment and learning path use cases.
type SkillsService struct {
	repo      skillsStudentRepository
	cache     *CacheService
	generator textGenerator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// SkillsServiceParams bundles SkillsService dependencies.
type SkillsServiceParams struct {
	Repo      skillsStudentRepository
	Cache     *CacheService
	Generator textGenerator
	Validator *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewSkillsService constructs a SkillsService instance.
func NewSkillsService(p SkillsServiceParams) *SkillsService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	if p.Now == nil {
		p.Now = func() time.Time { return time.Now().UTC() }
	}
	return &SkillsService{
		repo:      p.Repo,
		cache:     p.Cache,
		generator: p.Generator,
		validator: p.Validator,
		logger:    p.Logger,
		now:       p.Now,
	}
}

// LearningPaths returns the curated study tracks.
func (s *SkillsService) LearningPaths(ctx context.Context) []catalog.LearningPath {
	return catalog.LearningPaths()
}

// SubmitAssessment replaces the skill list and flips the skillsAssessment
// milestone.
func (s *SkillsService) SubmitAssessment(ctx context.Context, studentID string, req models.SkillsAssessmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assessment payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	record.Profile.Skills = req.Skills
	record.Profile.ProfileCompletion.SkillsAssessment = true
	return s.save(ctx, record)
}

// RecommendedSkillsResponse pairs the suggestion diff with the student's
// current skills.
type RecommendedSkillsResponse struct {
	RecommendedSkills []string       `json:"recommendedSkills"`
	CurrentSkills     []models.Skill `json:"currentSkills"`
}

// RecommendedSkills diffs the branch/goal recommendation table against the
// skills the student already holds.
func (s *SkillsService) RecommendedSkills(ctx context.Context, studentID string) (*RecommendedSkillsResponse, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	held := make([]string, 0, len(record.Profile.Skills))
	for _, skill := range record.Profile.Skills {
		held = append(held, skill.Name)
	}

	return &RecommendedSkillsResponse{
		RecommendedSkills: progress.DiffRecommendedSkills(catalog.SkillRecommendations(), record.Profile.Branch, record.Profile.CareerGoals, held),
		CurrentSkills:     record.Profile.Skills,
	}, nil
}

// PathProgressView joins a stored path progress with its catalog entry.
type PathProgressView struct {
	Path           catalog.LearningPath `json:"path"`
	StartedAt      time.Time            `json:"startedAt"`
	CompletedSteps []int                `json:"completedSteps"`
	TotalSteps     int                  `json:"totalSteps"`
}

// PathsProgress lists every learning path the student has started.
func (s *SkillsService) PathsProgress(ctx context.Context, studentID string) ([]PathProgressView, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	views := []PathProgressView{}
	for _, started := range record.Profile.LearningPaths {
		path, ok := catalog.LearningPathByID(started.PathID)
		if !ok {
			continue
		}
		steps := started.CompletedSteps
		if steps == nil {
			steps = []int{}
		}
		views = append(views, PathProgressView{
			Path:           path,
			StartedAt:      started.StartedAt,
			CompletedSteps: steps,
			TotalSteps:     len(path.Steps),
		})
	}
	return views, nil
}

// StartPath enrolls the student in a learning path. Starting a path twice
// is a conflict.
func (s *SkillsService) StartPath(ctx context.Context, studentID string, req models.PathRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid path payload")
	}
	if _, ok := catalog.LearningPathByID(req.PathID); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "learning path not found")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	for _, started := range record.Profile.LearningPaths {
		if started.PathID == req.PathID {
			return appErrors.Clone(appErrors.ErrConflict, "learning path already started")
		}
	}

	record.Profile.LearningPaths = append(record.Profile.LearningPaths, models.PathProgress{
		PathID:         req.PathID,
		StartedAt:      s.now(),
		CompletedSteps: []int{},
	})
	return s.save(ctx, record)
}

// CompleteStep marks one step of a started path as done. Completing a step
// twice is a no-op.
func (s *SkillsService) CompleteStep(ctx context.Context, studentID string, req models.PathStepRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid step payload")
	}

	path, ok := catalog.LearningPathByID(req.PathID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "learning path not found")
	}
	if req.Step > len(path.Steps) {
		return appErrors.Clone(appErrors.ErrValidation, "step out of range")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	for i := range record.Profile.LearningPaths {
		if record.Profile.LearningPaths[i].PathID != req.PathID {
			continue
		}
		for _, done := range record.Profile.LearningPaths[i].CompletedSteps {
			if done == req.Step {
				return nil
			}
		}
		record.Profile.LearningPaths[i].CompletedSteps = append(record.Profile.LearningPaths[i].CompletedSteps, req.Step)
		return s.save(ctx, record)
	}
	return appErrors.Clone(appErrors.ErrNotFound, "learning path not started")
}

// AddGoal promotes a recommended skill into a current-semester timeline goal.
func (s *SkillsService) AddGoal(ctx context.Context, studentID string, req models.SkillGoalRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid skill goal payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	goal := models.Goal{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("Learn %s", req.Skill),
		Description: fmt.Sprintf("Reach a working level of %s through practice and a small project", req.Skill),
	}

	semester := record.Profile.CurrentSemester
	added := false
	for i := range record.Profile.TimelineGoals {
		if record.Profile.TimelineGoals[i].Semester == semester {
			record.Profile.TimelineGoals[i].Goals = append(record.Profile.TimelineGoals[i].Goals, goal)
			added = true
			break
		}
	}
	if !added {
		record.Profile.TimelineGoals = append(record.Profile.TimelineGoals, models.SemesterGoals{
			Semester: semester,
			Goals:    []models.Goal{goal},
		})
	}
	return s.save(ctx, record)
}

// AssessmentQuestion is one generated skill-check question.
type AssessmentQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Skill    string   `json:"skill"`
}

// AIAssessmentResponse carries generated assessment questions.
type AIAssessmentResponse struct {
	Questions []AssessmentQuestion `json:"questions"`
	Generated bool                 `json:"generated"`
}

// AIAssessment asks the model for assessment questions tailored to the
// student's skills. Generation failures degrade to a static question set
// rather than an error.
func (s *SkillsService) AIAssessment(ctx context.Context, studentID string) (*AIAssessmentResponse, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	fallback := &AIAssessmentResponse{Questions: staticAssessmentQuestions(), Generated: false}
	if s.generator == nil {
		return fallback, nil
	}

	names := make([]string, 0, len(record.Profile.Skills))
	for _, skill := range record.Profile.Skills {
		names = append(names, skill.Name)
	}

	prompt := fmt.Sprintf(`Generate 5 multiple-choice questions to assess an engineering student.
Branch: %s. Skills: %s.
Return ONLY a valid JSON object in the specified format:
{ "questions": [{"question": "...", "options": ["...","...","...","..."], "answer": "...", "skill": "..."}] }`,
		record.Profile.Branch, strings.Join(names, ", "))

	text, err := s.generator.Complete(ctx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		s.logger.Warn("assessment generation failed", zap.Error(err))
		return fallback, nil
	}

	var parsed struct {
		Questions []AssessmentQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(llm.StripFences(text)), &parsed); err != nil || len(parsed.Questions) == 0 {
		s.logger.Warn("assessment response was not valid JSON", zap.Error(err))
		return fallback, nil
	}

	return &AIAssessmentResponse{Questions: parsed.Questions, Generated: true}, nil
}

func staticAssessmentQuestions() []AssessmentQuestion {
	return []AssessmentQuestion{
		{
			Question: "Which data structure gives O(1) average lookup by key?",
			Options:  []string{"Array", "Hash map", "Linked list", "Binary tree"},
			Answer:   "Hash map",
			Skill:    "Data Structures",
		},
		{
			Question: "What is the time complexity of binary search on a sorted array?",
			Options:  []string{"O(n)", "O(n log n)", "O(log n)", "O(1)"},
			Answer:   "O(log n)",
			Skill:    "Algorithms",
		},
		{
			Question: "Which SQL clause filters grouped rows?",
			Options:  []string{"WHERE", "HAVING", "ORDER BY", "LIMIT"},
			Answer:   "HAVING",
			Skill:    "Database Management",
		},
		{
			Question: "Which HTTP status code signals a resource was created?",
			Options:  []string{"200", "201", "204", "301"},
			Answer:   "201",
			Skill:    "Web Development",
		},
		{
			Question: "What does the 'I' in ACID stand for?",
			Options:  []string{"Integrity", "Isolation", "Idempotency", "Indexing"},
			Answer:   "Isolation",
			Skill:    "Database Management",
		},
	}
}

func (s *SkillsService) fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	record, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return record, nil
}

func (s *SkillsService) save(ctx context.Context, record *models.StudentRecord) error {
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
