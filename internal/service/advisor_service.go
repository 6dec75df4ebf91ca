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

	"github.com/noah-isme/engineering-compass-api/internal/llm"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

// chatFallback is returned with a 200 when generation fails: the chat
// surface degrades instead of erroring.
const chatFallback = "I'm having trouble processing your request right now. Please try again."

type advisorStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.StudentRecord, error)
	Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error
}

// AdvisorService provides the text-generation backed guidance features.
// Generated content is persisted only after it parses; a malformed upstream
// answer never corrupts stored state.
type AdvisorService struct {
	repo      advisorStudentRepository
	cache     *CacheService
	generator textGenerator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// AdvisorServiceParams bundles AdvisorService dependencies.
type AdvisorServiceParams struct {
	Repo      advisorStudentRepository
	Cache     *CacheService
	Generator textGenerator
	Validator *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewAdvisorService constructs an AdvisorService instance.
func NewAdvisorService(p AdvisorServiceParams) *AdvisorService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	if p.Now == nil {
		p.Now = func() time.Time { return time.Now().UTC() }
	}
	return &AdvisorService{
		repo:      p.Repo,
		cache:     p.Cache,
		generator: p.Generator,
		validator: p.Validator,
		logger:    p.Logger,
		now:       p.Now,
	}
}

// RecommendationsResponse carries freshly generated recommendations.
type RecommendationsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}

// GenerateRecommendations asks the model for personalized recommendations
// and replaces the stored list once the answer parses.
func (s *AdvisorService) GenerateRecommendations(ctx context.Context, studentID string) (*RecommendationsResponse, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	profile := map[string]interface{}{
		"branch":      record.Profile.Branch,
		"skills":      skillNames(record.Profile.Skills),
		"careerGoals": record.Profile.CareerGoals,
	}
	profileJSON, _ := json.Marshal(profile)

	prompt := fmt.Sprintf(`Generate 5 personalized recommendations for this engineering student:
Student Profile: %s
Return ONLY a valid JSON object in the specified format:
{ "recommendations": [{"type": "Skill|Project", "title": "...", "description": "...", "priority": "High|Medium|Low"}] }`, profileJSON)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(llm.StripFences(text)), &parsed); err != nil {
		s.logger.Warn("recommendations response was not valid JSON", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUpstreamGeneration, "generated recommendations were not valid JSON")
	}

	now := s.now()
	for i := range parsed.Recommendations {
		parsed.Recommendations[i].CreatedAt = now
	}

	record.Profile.AIRecommendations = parsed.Recommendations
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return &RecommendationsResponse{Recommendations: parsed.Recommendations}, nil
}

// ChatResponse is one advisor chat answer.
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat answers a student question in mentor persona. Generation failures
// degrade to a fixed apology instead of an error.
func (s *AdvisorService) Chat(ctx context.Context, studentID string, req models.ChatRequest) (*ChatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid chat payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrNotFound.Code {
			return nil, err
		}
		// A store hiccup degrades like a generation failure: the chat
		// surface never hard-fails.
		s.logger.Warn("chat student fetch failed", zap.Error(err))
		return &ChatResponse{Response: chatFallback, Timestamp: s.now()}, nil
	}

	previous := req.Context
	if previous == "" {
		previous = "None"
	}
	prompt := fmt.Sprintf(`You are an AI mentor for an engineering student.
Student Context: Branch - %s, Skills - %s.
Previous Context: %s
Student Question: %q
Provide a helpful, concise, and encouraging response.`,
		record.Profile.Branch, strings.Join(skillNames(record.Profile.Skills), ", "), previous, req.Message)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("chat generation failed", zap.Error(err))
		return &ChatResponse{Response: chatFallback, Timestamp: s.now()}, nil
	}
	return &ChatResponse{Response: text, Timestamp: s.now()}, nil
}

// WeeklyFocusResponse carries freshly generated weekly tasks.
type WeeklyFocusResponse struct {
	Tasks []models.Task `json:"tasks"`
}

// GenerateWeeklyFocus asks the model for three weekly tasks and replaces
// the resident week once the answer parses. The week number is days since
// the Unix epoch divided by seven.
func (s *AdvisorService) GenerateWeeklyFocus(ctx context.Context, studentID string) (*WeeklyFocusResponse, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	profile := map[string]interface{}{
		"branch": record.Profile.Branch,
		"year":   record.Profile.CurrentYear,
		"goals":  record.Profile.CareerGoals,
	}
	profileJSON, _ := json.Marshal(profile)

	prompt := fmt.Sprintf(`Generate 3 specific, actionable weekly tasks for this engineering student:
Profile: %s
Return ONLY a valid JSON object in the specified format:
{ "tasks": [{"title": "...", "description": "...", "category": "Academic|Skill|Career", "estimatedTime": "X hours"}] }`, profileJSON)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(llm.StripFences(text)), &parsed); err != nil {
		s.logger.Warn("weekly focus response was not valid JSON", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUpstreamGeneration, "generated weekly tasks were not valid JSON")
	}

	for i := range parsed.Tasks {
		parsed.Tasks[i].ID = uuid.NewString()
		parsed.Tasks[i].Completed = false
	}

	record.Profile.WeeklyFocus = models.WeeklyFocus{
		CurrentWeek: int(s.now().Unix() / (7 * 24 * 60 * 60)),
		Tasks:       parsed.Tasks,
	}
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return &WeeklyFocusResponse{Tasks: parsed.Tasks}, nil
}

// ProjectIdea is one generated project suggestion.
type ProjectIdea struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Difficulty   string   `json:"difficulty"`
}

// ProjectIdeasResponse carries generated project ideas.
type ProjectIdeasResponse struct {
	Projects []ProjectIdea `json:"projects"`
}

// GenerateProjectIdeas asks the model for project ideas at the requested
// complexity. Nothing is persisted.
func (s *AdvisorService) GenerateProjectIdeas(ctx context.Context, studentID string, req models.ProjectIdeasRequest) (*ProjectIdeasResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid project ideas payload")
	}
	complexity := req.Complexity
	if complexity == "" {
		complexity = "Intermediate"
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Generate 5 project ideas for a %s student at %s level.
Student Skills: %s.
Return ONLY a valid JSON object in the specified format:
{ "projects": [{"title": "...", "description": "...", "technologies": ["...", "..."], "difficulty": "%s"}] }`,
		record.Profile.Branch, complexity, strings.Join(skillNames(record.Profile.Skills), ", "), complexity)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed ProjectIdeasResponse
	if err := json.Unmarshal([]byte(llm.StripFences(text)), &parsed); err != nil {
		s.logger.Warn("project ideas response was not valid JSON", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUpstreamGeneration, "generated project ideas were not valid JSON")
	}
	return &parsed, nil
}

// SkillEnhancement suggests an improvement for one listed skill.
type SkillEnhancement struct {
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion"`
}

// ProjectEnhancement rewrites one project description.
type ProjectEnhancement struct {
	Project             string `json:"project"`
	EnhancedDescription string `json:"enhancedDescription"`
}

// ResumeEnhancementResponse carries generated resume improvement advice.
type ResumeEnhancementResponse struct {
	Summary             string               `json:"summary"`
	SkillEnhancements   []SkillEnhancement   `json:"skillEnhancements"`
	ProjectEnhancements []ProjectEnhancement `json:"projectEnhancements"`
	MissingElements     []string             `json:"missingElements"`
}

// EnhanceResume asks the model for resume improvement advice. Nothing is
// persisted.
func (s *AdvisorService) EnhanceResume(ctx context.Context, studentID string) (*ResumeEnhancementResponse, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(record.Profile.Projects))
	for _, project := range record.Profile.Projects {
		titles = append(titles, project.Title)
	}
	profile := map[string]interface{}{
		"branch":   record.Profile.Branch,
		"cgpa":     record.Profile.CGPA.Current,
		"skills":   record.Profile.Skills,
		"projects": titles,
	}
	profileJSON, _ := json.Marshal(profile)

	prompt := fmt.Sprintf(`Analyze this student's profile and provide resume enhancement suggestions.
Profile: %s
Return ONLY a valid JSON object in the specified format:
{ "summary": "...", "skillEnhancements": [{"skill": "...", "suggestion": "..."}], "projectEnhancements": [{"project": "...", "enhancedDescription": "..."}], "missingElements": ["..."] }`, profileJSON)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed ResumeEnhancementResponse
	if err := json.Unmarshal([]byte(llm.StripFences(text)), &parsed); err != nil {
		s.logger.Warn("resume enhancement response was not valid JSON", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUpstreamGeneration, "generated resume suggestions were not valid JSON")
	}
	return &parsed, nil
}

func (s *AdvisorService) complete(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", appErrors.Clone(appErrors.ErrUpstreamGeneration, "text generation is not configured")
	}
	text, err := s.generator.Complete(ctx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUpstreamGeneration.Code, appErrors.ErrUpstreamGeneration.Status, "text generation failed")
	}
	return text, nil
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}

func (s *AdvisorService) fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	record, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return record, nil
}

func (s *AdvisorService) save(ctx context.Context, record *models.StudentRecord) error {
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
