package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/models"
)

func timelineFixture() *models.Profile {
	return &models.Profile{
		CurrentSemester: 3,
		TimelineGoals: []models.SemesterGoals{
			{Semester: 1, Goals: []models.Goal{
				{ID: "g1", Title: "Learn C fundamentals", Completed: true},
				{ID: "g2", Title: "Join a coding club", Completed: true},
			}},
			{Semester: 3, Goals: []models.Goal{
				{ID: "g3", Title: "Build first web project", Completed: false},
				{ID: "g4", Title: "Start DSA practice", Completed: true},
			}},
			{Semester: 5, Goals: []models.Goal{
				{ID: "g5", Title: "Apply for internships", Completed: false},
			}},
		},
	}
}

func TestComputeGoalProgress(t *testing.T) {
	p := timelineFixture()

	got := ComputeGoalProgress(p)

	assert.Equal(t, 5, got.TotalGoals)
	assert.Equal(t, 3, got.CompletedGoals)
	assert.InDelta(t, 60.0, got.ProgressPercentage, 1e-9)

	require.Len(t, got.CurrentSemesterGoals, 2)
	assert.Equal(t, "g3", got.CurrentSemesterGoals[0].ID)
	assert.Equal(t, "g4", got.CurrentSemesterGoals[1].ID)

	require.Len(t, got.AllGoals, got.TotalGoals)
	for i := 1; i < len(got.AllGoals); i++ {
		assert.LessOrEqual(t, got.AllGoals[i-1].Semester, got.AllGoals[i].Semester)
	}
	assert.LessOrEqual(t, got.CompletedGoals, got.TotalGoals)
}

func TestComputeGoalProgressEmptyTimeline(t *testing.T) {
	got := ComputeGoalProgress(&models.Profile{CurrentSemester: 1})

	assert.Zero(t, got.TotalGoals)
	assert.Zero(t, got.CompletedGoals)
	assert.Zero(t, got.ProgressPercentage)
	assert.NotNil(t, got.CurrentSemesterGoals)
	assert.NotNil(t, got.AllGoals)
}

func TestComputeGoalProgressNoGoalsForCurrentSemester(t *testing.T) {
	p := timelineFixture()
	p.CurrentSemester = 7

	got := ComputeGoalProgress(p)

	assert.Empty(t, got.CurrentSemesterGoals)
	assert.Equal(t, 5, got.TotalGoals)
}

func TestCompletionPercentageEmptyProfile(t *testing.T) {
	// Only the email check passes: 1 of 14 rounds to 7.
	assert.Equal(t, 7, CompletionPercentage("a@b.edu", &models.Profile{}))
	assert.Equal(t, 0, CompletionPercentage("", &models.Profile{}))
}

func TestCompletionPercentageFullProfile(t *testing.T) {
	p := &models.Profile{
		Name:  "Asha Verma",
		Phone: "9876500001",
		College: models.College{
			Name:       "Rajiv Gandhi Institute of Technology",
			Tier:       models.TierTwo,
			University: "Mumbai University",
		},
		Branch:            models.BranchComputerScience,
		CurrentYear:       2,
		CurrentSemester:   3,
		TwelfthPercentage: 88.4,
		Interests:         []models.Interest{{Category: "Technology", Score: 8}},
		CareerGoals:       []string{models.GoalMNCJob},
		Skills:            []models.Skill{{Name: "Python", Level: models.LevelBeginner}},
		Projects:          []models.Project{{Title: "Portfolio site"}},
	}

	assert.Equal(t, 100, CompletionPercentage("asha@college.edu", p))

	p.Projects = nil
	p.Interests = nil
	// 12 of 14 rounds to 86.
	assert.Equal(t, 86, CompletionPercentage("asha@college.edu", p))
}
