package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/engineering-compass-api/internal/catalog"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/progress"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
	"github.com/noah-isme/engineering-compass-api/pkg/export"
)

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.StudentRecord, error)
	Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error
}

// StudentService provides dashboard, academics and planning use cases.
type StudentService struct {
	repo      studentRepository
	cache     *CacheService
	csv       *export.CSVExporter
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
	now       func() time.Time
}

// StudentServiceParams bundles StudentService dependencies.
type StudentServiceParams struct {
	Repo      studentRepository
	Cache     *CacheService
	CSV       *export.CSVExporter
	Validator *validator.Validate
	Logger    *zap.Logger
	CacheTTL  time.Duration
	Now       func() time.Time
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(p StudentServiceParams) *StudentService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	if p.CSV == nil {
		p.CSV = export.NewCSVExporter()
	}
	if p.Now == nil {
		p.Now = func() time.Time { return time.Now().UTC() }
	}
	return &StudentService{
		repo:      p.Repo,
		cache:     p.Cache,
		csv:       p.CSV,
		validator: p.Validator,
		logger:    p.Logger,
		cacheTTL:  p.CacheTTL,
		now:       p.Now,
	}
}

func dashboardCacheKey(studentID string) string {
	return fmt.Sprintf("dashboard:%s", studentID)
}

// DashboardStudent is the identity slice of the dashboard payload.
type DashboardStudent struct {
	Name              string                 `json:"name"`
	College           models.College         `json:"college"`
	Branch            string                 `json:"branch"`
	CurrentYear       int                    `json:"currentYear"`
	CurrentSemester   int                    `json:"currentSemester"`
	CGPA              models.CGPA            `json:"cgpa"`
	ProfileCompletion models.CompletionFlags `json:"profileCompletion"`
}

// Dashboard is the aggregated dashboard payload.
type Dashboard struct {
	Student               DashboardStudent        `json:"student"`
	Progress              progress.GoalProgress   `json:"progress"`
	WeeklyFocus           models.WeeklyFocus      `json:"weeklyFocus"`
	RecentRecommendations []models.Recommendation `json:"recentRecommendations"`
}

// Dashboard aggregates the student's progress view, served from cache when
// possible. Every write path invalidates the cached entry.
func (s *StudentService) Dashboard(ctx context.Context, studentID string) (*Dashboard, error) {
	key := dashboardCacheKey(studentID)
	if s.cache != nil {
		var cached Dashboard
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	recent := record.Profile.AIRecommendations
	if len(recent) > models.RecentRecsShown {
		recent = recent[:models.RecentRecsShown]
	}

	dashboard := &Dashboard{
		Student: DashboardStudent{
			Name:              record.Profile.Name,
			College:           record.Profile.College,
			Branch:            record.Profile.Branch,
			CurrentYear:       record.Profile.CurrentYear,
			CurrentSemester:   record.Profile.CurrentSemester,
			CGPA:              record.Profile.CGPA,
			ProfileCompletion: record.Profile.ProfileCompletion,
		},
		Progress:              progress.ComputeGoalProgress(&record.Profile),
		WeeklyFocus:           record.Profile.WeeklyFocus,
		RecentRecommendations: recent,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, dashboard, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache store failed", zap.String("student_id", studentID), zap.Error(err))
		}
	}
	return dashboard, nil
}

// CGPAResult reports the recomputed average after a semester upsert.
type CGPAResult struct {
	CurrentCGPA float64 `json:"currentCgpa"`
}

// UpdateCGPA upserts one semester of grades and recomputes the
// credit-weighted average from the full history. Unknown grade strings are
// rejected up front rather than silently scored as zero.
func (s *StudentService) UpdateCGPA(ctx context.Context, studentID string, req models.CGPAUpdateRequest) (*CGPAResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid cgpa payload")
	}
	for _, subject := range req.Subjects {
		if !knownGrade(subject.Grade) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown grade %q for subject %q", subject.Grade, subject.Name))
		}
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	updated, err := progress.UpsertSemester(record.Profile.CGPA.SemesterWise, models.SemesterRecord{
		Semester: req.Semester,
		GPA:      req.GPA,
		Subjects: req.Subjects,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "semester out of range")
	}

	record.Profile.CGPA.SemesterWise = updated
	record.Profile.CGPA.Current = progress.RecomputeCGPA(updated)

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return &CGPAResult{CurrentCGPA: record.Profile.CGPA.Current}, nil
}

// ExportCGPACSV renders the semester history as a CSV download.
func (s *StudentService) ExportCGPACSV(ctx context.Context, studentID string) ([]byte, string, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Semester", "GPA", "Subject", "Grade", "Credits"},
	}
	for _, sem := range record.Profile.CGPA.SemesterWise {
		for _, subject := range sem.Subjects {
			dataset.Rows = append(dataset.Rows, []string{
				strconv.Itoa(sem.Semester),
				strconv.FormatFloat(sem.GPA, 'f', 2, 64),
				subject.Name,
				subject.Grade,
				strconv.FormatFloat(subject.Credits, 'f', 1, 64),
			})
		}
	}

	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render cgpa export")
	}
	return payload, "cgpa-history.csv", nil
}

// SetTimelineGoals replaces the goal list of one semester. Goals without an
// id get one assigned.
func (s *StudentService) SetTimelineGoals(ctx context.Context, studentID string, req models.TimelineGoalsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timeline payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	goals := make([]models.Goal, len(req.Goals))
	copy(goals, req.Goals)
	for i := range goals {
		if goals[i].ID == "" {
			goals[i].ID = uuid.NewString()
		}
	}

	replaced := false
	for i := range record.Profile.TimelineGoals {
		if record.Profile.TimelineGoals[i].Semester == req.Semester {
			record.Profile.TimelineGoals[i].Goals = goals
			replaced = true
			break
		}
	}
	if !replaced {
		record.Profile.TimelineGoals = append(record.Profile.TimelineGoals, models.SemesterGoals{
			Semester: req.Semester,
			Goals:    goals,
		})
	}

	return s.save(ctx, record)
}

// ToggleGoal updates one goal's completion flag.
func (s *StudentService) ToggleGoal(ctx context.Context, studentID string, semester int, goalID string, completed bool) error {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	if err := progress.ToggleGoal(&record.Profile, semester, goalID, completed); err != nil {
		return mapProgressErr(err)
	}
	return s.save(ctx, record)
}

// SetWeeklyFocus replaces the resident week of tasks wholesale.
func (s *StudentService) SetWeeklyFocus(ctx context.Context, studentID string, req models.WeeklyFocusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid weekly focus payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	tasks := make([]models.Task, len(req.Tasks))
	copy(tasks, req.Tasks)
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
	}

	record.Profile.WeeklyFocus = models.WeeklyFocus{CurrentWeek: req.CurrentWeek, Tasks: tasks}
	return s.save(ctx, record)
}

// ToggleTask updates one weekly task's completion flag.
func (s *StudentService) ToggleTask(ctx context.Context, studentID, taskID string, completed bool) error {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	if err := progress.ToggleTask(&record.Profile, taskID, completed); err != nil {
		return mapProgressErr(err)
	}
	return s.save(ctx, record)
}

// InitializeSampleData seeds a fresh account with starter goals, weekly
// tasks and recommendations so the dashboard is not empty on first visit.
func (s *StudentService) InitializeSampleData(ctx context.Context, studentID string) error {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	now := s.now()
	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	record.Profile.TimelineGoals = []models.SemesterGoals{{
		Semester: record.Profile.CurrentSemester,
		Goals: []models.Goal{
			{ID: uuid.NewString(), Title: "Master Data Structures", Description: "Complete 50+ problems on arrays, linked lists, and trees", DueDate: due(30)},
			{ID: uuid.NewString(), Title: "Build a Web Project", Description: "Create a full-stack web application using React and Node.js", DueDate: due(45)},
			{ID: uuid.NewString(), Title: "Improve CGPA", Description: "Score above 8.5 in current semester", DueDate: due(60)},
		},
	}}

	record.Profile.WeeklyFocus = models.WeeklyFocus{
		CurrentWeek: 1,
		Tasks: []models.Task{
			{ID: uuid.NewString(), Title: "Solve 10 Array Problems", Description: "Practice array manipulation and searching algorithms", Category: "Coding"},
			{ID: uuid.NewString(), Title: "Update LinkedIn Profile", Description: "Add recent projects and skills to your profile", Category: "Networking"},
			{ID: uuid.NewString(), Title: "Watch Communication Skills Video", Description: "20-minute video on effective communication", Category: "Soft Skills"},
		},
	}

	record.Profile.AIRecommendations = []models.Recommendation{
		{Type: "Skill", Title: "Learn React.js", Description: "Based on your interest in web development", Priority: models.PriorityHigh, CreatedAt: now},
		{Type: "Project", Title: "Build a Portfolio Website", Description: "Showcase your skills and projects", Priority: models.PriorityMedium, CreatedAt: now},
		{Type: "Course", Title: "Data Structures & Algorithms", Description: "Essential for technical interviews", Priority: models.PriorityHigh, CreatedAt: now},
	}

	return s.save(ctx, record)
}

// Opportunities returns the static listings the student's branch is
// eligible for.
func (s *StudentService) Opportunities(ctx context.Context, studentID string) ([]catalog.Opportunity, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return catalog.OpportunitiesForBranch(record.Profile.Branch), nil
}

func (s *StudentService) fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	record, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return record, nil
}

func (s *StudentService) save(ctx context.Context, record *models.StudentRecord) error {
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

func knownGrade(grade string) bool {
	for _, g := range models.KnownGrades {
		if g == grade {
			return true
		}
	}
	return false
}

func mapProgressErr(err error) error {
	switch {
	case errors.Is(err, progress.ErrInvalidSemester):
		return appErrors.Clone(appErrors.ErrValidation, "semester out of range")
	case errors.Is(err, progress.ErrSemesterNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	case errors.Is(err, progress.ErrGoalNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "goal not found")
	case errors.Is(err, progress.ErrTaskNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "task not found")
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "progress update failed")
	}
}
