package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

func newStudentService(repo *mockStudentRepo) *StudentService {
	return NewStudentService(StudentServiceParams{Repo: repo, Now: fixedNow})
}

func TestDashboard(t *testing.T) {
	svc := newStudentService(newMockStudentRepo(testStudent()))

	dashboard, err := svc.Dashboard(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", dashboard.Student.Name)
	assert.Equal(t, 2, dashboard.Progress.TotalGoals)
	assert.Equal(t, 1, dashboard.Progress.CompletedGoals)
	assert.InDelta(t, 50.0, dashboard.Progress.ProgressPercentage, 1e-9)
	assert.Len(t, dashboard.Progress.CurrentSemesterGoals, 2)
	// Only the three most recent recommendations surface.
	assert.Len(t, dashboard.RecentRecommendations, 3)
}

func TestDashboardNotFound(t *testing.T) {
	svc := newStudentService(newMockStudentRepo())

	_, err := svc.Dashboard(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUpdateCGPA(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	result, err := svc.UpdateCGPA(context.Background(), "s1", models.CGPAUpdateRequest{
		Semester: 1,
		GPA:      8.5,
		Subjects: []models.Subject{
			{Name: "Maths I", Grade: "A", Credits: 4},
			{Name: "Physics", Grade: "B+", Credits: 3},
		},
	})
	require.NoError(t, err)
	// (9*4 + 8*3) / 7
	assert.InDelta(t, 8.571428, result.CurrentCGPA, 1e-6)
	assert.Equal(t, result.CurrentCGPA, repo.records["s1"].Profile.CGPA.Current)
}

func TestUpdateCGPARejectsUnknownGrade(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	_, err := svc.UpdateCGPA(context.Background(), "s1", models.CGPAUpdateRequest{
		Semester: 1,
		Subjects: []models.Subject{{Name: "Workshop", Grade: "E", Credits: 2}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.saved)
}

func TestUpdateCGPARejectsSemesterOutOfRange(t *testing.T) {
	svc := newStudentService(newMockStudentRepo(testStudent()))

	_, err := svc.UpdateCGPA(context.Background(), "s1", models.CGPAUpdateRequest{
		Semester: 9,
		Subjects: []models.Subject{{Name: "Maths", Grade: "A", Credits: 4}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportCGPACSV(t *testing.T) {
	student := testStudent()
	student.Profile.CGPA.SemesterWise = []models.SemesterRecord{
		{Semester: 1, GPA: 8.5, Subjects: []models.Subject{{Name: "Maths I", Grade: "A", Credits: 4}}},
	}
	svc := newStudentService(newMockStudentRepo(student))

	payload, filename, err := svc.ExportCGPACSV(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "cgpa-history.csv", filename)

	content := string(payload)
	assert.True(t, strings.HasPrefix(content, "Semester,GPA,Subject,Grade,Credits"))
	assert.Contains(t, content, "1,8.50,Maths I,A,4.0")
}

func TestSetTimelineGoalsAssignsIDs(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	err := svc.SetTimelineGoals(context.Background(), "s1", models.TimelineGoalsRequest{
		Semester: 5,
		Goals:    []models.Goal{{Title: "Apply for internships"}},
	})
	require.NoError(t, err)

	stored := repo.records["s1"]
	require.Len(t, stored.Profile.TimelineGoals, 2)
	assert.NotEmpty(t, stored.Profile.TimelineGoals[1].Goals[0].ID)
}

func TestSetTimelineGoalsReplacesSemester(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	err := svc.SetTimelineGoals(context.Background(), "s1", models.TimelineGoalsRequest{
		Semester: 3,
		Goals:    []models.Goal{{ID: "g9", Title: "Only goal now"}},
	})
	require.NoError(t, err)

	stored := repo.records["s1"]
	require.Len(t, stored.Profile.TimelineGoals, 1)
	require.Len(t, stored.Profile.TimelineGoals[0].Goals, 1)
	assert.Equal(t, "g9", stored.Profile.TimelineGoals[0].Goals[0].ID)
}

func TestToggleGoal(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	require.NoError(t, svc.ToggleGoal(context.Background(), "s1", 3, "g1", true))
	assert.True(t, repo.records["s1"].Profile.TimelineGoals[0].Goals[0].Completed)

	err := svc.ToggleGoal(context.Background(), "s1", 3, "missing", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	err = svc.ToggleGoal(context.Background(), "s1", 0, "g1", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSetWeeklyFocus(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	err := svc.SetWeeklyFocus(context.Background(), "s1", models.WeeklyFocusRequest{
		CurrentWeek: 12,
		Tasks:       []models.Task{{Title: "Revise DBMS notes", Category: "Academic"}},
	})
	require.NoError(t, err)

	stored := repo.records["s1"]
	assert.Equal(t, 12, stored.Profile.WeeklyFocus.CurrentWeek)
	require.Len(t, stored.Profile.WeeklyFocus.Tasks, 1)
	assert.NotEmpty(t, stored.Profile.WeeklyFocus.Tasks[0].ID)
}

func TestToggleTask(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	require.NoError(t, svc.ToggleTask(context.Background(), "s1", "t1", true))
	assert.True(t, repo.records["s1"].Profile.WeeklyFocus.Tasks[0].Completed)

	err := svc.ToggleTask(context.Background(), "s1", "ghost", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestInitializeSampleData(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newStudentService(repo)

	require.NoError(t, svc.InitializeSampleData(context.Background(), "s1"))

	stored := repo.records["s1"]
	require.Len(t, stored.Profile.TimelineGoals, 1)
	assert.Equal(t, 3, stored.Profile.TimelineGoals[0].Semester)
	assert.Len(t, stored.Profile.TimelineGoals[0].Goals, 3)
	assert.Len(t, stored.Profile.WeeklyFocus.Tasks, 3)
	assert.Len(t, stored.Profile.AIRecommendations, 3)
	for _, goal := range stored.Profile.TimelineGoals[0].Goals {
		assert.NotEmpty(t, goal.ID)
		require.NotNil(t, goal.DueDate)
		assert.True(t, goal.DueDate.After(fixedNow()))
	}
}

func TestOpportunities(t *testing.T) {
	student := testStudent()
	svc := newStudentService(newMockStudentRepo(student))

	listings, err := svc.Opportunities(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, listings, 3)

	student.Profile.Branch = models.BranchCivil
	listings, err = svc.Opportunities(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Microsoft Learn Student Ambassador", listings[0].Title)
}
