package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

func newSkillsService(repo *mockStudentRepo, generator *mockGenerator) *SkillsService {
	params := SkillsServiceParams{Repo: repo, Now: fixedNow}
	if generator != nil {
		params.Generator = generator
	}
	return NewSkillsService(params)
}

func TestSubmitAssessment(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newSkillsService(repo, nil)

	err := svc.SubmitAssessment(context.Background(), "s1", models.SkillsAssessmentRequest{
		Skills: []models.Skill{{Name: "Go", Level: models.LevelIntermediate}},
	})
	require.NoError(t, err)

	stored := repo.records["s1"]
	require.Len(t, stored.Profile.Skills, 1)
	assert.Equal(t, "Go", stored.Profile.Skills[0].Name)
	assert.True(t, stored.Profile.ProfileCompletion.SkillsAssessment)
}

func TestRecommendedSkills(t *testing.T) {
	svc := newSkillsService(newMockStudentRepo(testStudent()), nil)

	resp, err := svc.RecommendedSkills(context.Background(), "s1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RecommendedSkills)
	assert.LessOrEqual(t, len(resp.RecommendedSkills), models.RecommendedSkillsMax)
	// Held skills never come back as recommendations.
	assert.NotContains(t, resp.RecommendedSkills, "Data Structures")
	assert.Len(t, resp.CurrentSkills, 2)
}

func TestStartPath(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newSkillsService(repo, nil)

	err := svc.StartPath(context.Background(), "s1", models.PathRequest{PathID: 1})
	require.NoError(t, err)

	stored := repo.records["s1"]
	require.Len(t, stored.Profile.LearningPaths, 1)
	assert.Equal(t, fixedNow(), stored.Profile.LearningPaths[0].StartedAt)
	assert.Empty(t, stored.Profile.LearningPaths[0].CompletedSteps)

	err = svc.StartPath(context.Background(), "s1", models.PathRequest{PathID: 1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	err = svc.StartPath(context.Background(), "s1", models.PathRequest{PathID: 42})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCompleteStep(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newSkillsService(repo, nil)

	require.NoError(t, svc.StartPath(context.Background(), "s1", models.PathRequest{PathID: 1}))
	require.NoError(t, svc.CompleteStep(context.Background(), "s1", models.PathStepRequest{PathID: 1, Step: 1}))

	stored := repo.records["s1"]
	assert.Equal(t, []int{1}, stored.Profile.LearningPaths[0].CompletedSteps)

	saves := len(repo.saved)
	// Repeating a completed step changes nothing.
	require.NoError(t, svc.CompleteStep(context.Background(), "s1", models.PathStepRequest{PathID: 1, Step: 1}))
	assert.Len(t, repo.saved, saves)

	err := svc.CompleteStep(context.Background(), "s1", models.PathStepRequest{PathID: 1, Step: 99})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	err = svc.CompleteStep(context.Background(), "s1", models.PathStepRequest{PathID: 2, Step: 1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAddGoal(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newSkillsService(repo, nil)

	err := svc.AddGoal(context.Background(), "s1", models.SkillGoalRequest{Skill: "React.js"})
	require.NoError(t, err)

	stored := repo.records["s1"]
	require.Len(t, stored.Profile.TimelineGoals, 1)
	goals := stored.Profile.TimelineGoals[0].Goals
	require.Len(t, goals, 3)
	assert.Equal(t, "Learn React.js", goals[2].Title)
	assert.NotEmpty(t, goals[2].ID)
}

func TestAIAssessmentGenerated(t *testing.T) {
	generator := &mockGenerator{responses: []string{"```json\n" + `{"questions":[{"question":"What is a goroutine?","options":["a","b","c","d"],"answer":"a","skill":"Go"}]}` + "\n```"}}
	svc := newSkillsService(newMockStudentRepo(testStudent()), generator)

	resp, err := svc.AIAssessment(context.Background(), "s1")
	require.NoError(t, err)

	assert.True(t, resp.Generated)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "What is a goroutine?", resp.Questions[0].Question)
	assert.Equal(t, 1, generator.calls)
	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], models.BranchComputerScience)
	assert.Contains(t, generator.prompts[0], "Python")
}

func TestAIAssessmentFallsBackOnGeneratorError(t *testing.T) {
	generator := &mockGenerator{err: errors.New("upstream unavailable")}
	svc := newSkillsService(newMockStudentRepo(testStudent()), generator)

	resp, err := svc.AIAssessment(context.Background(), "s1")
	require.NoError(t, err)

	assert.False(t, resp.Generated)
	assert.Len(t, resp.Questions, 5)
}

func TestAIAssessmentFallsBackOnBadJSON(t *testing.T) {
	generator := &mockGenerator{responses: []string{"here are your questions: 1) ..."}}
	svc := newSkillsService(newMockStudentRepo(testStudent()), generator)

	resp, err := svc.AIAssessment(context.Background(), "s1")
	require.NoError(t, err)

	assert.False(t, resp.Generated)
	assert.NotEmpty(t, resp.Questions)
}

func TestAIAssessmentWithoutGenerator(t *testing.T) {
	svc := newSkillsService(newMockStudentRepo(testStudent()), nil)

	resp, err := svc.AIAssessment(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Len(t, resp.Questions, 5)
}

func TestPathsProgress(t *testing.T) {
	svc := newSkillsService(newMockStudentRepo(testStudent()), nil)

	require.NoError(t, svc.StartPath(context.Background(), "s1", models.PathRequest{PathID: 2}))
	require.NoError(t, svc.CompleteStep(context.Background(), "s1", models.PathStepRequest{PathID: 2, Step: 1}))
	require.NoError(t, svc.CompleteStep(context.Background(), "s1", models.PathStepRequest{PathID: 2, Step: 2}))

	views, err := svc.PathsProgress(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].Path.ID)
	assert.Equal(t, []int{1, 2}, views[0].CompletedSteps)
	assert.Equal(t, 5, views[0].TotalSteps)
}
