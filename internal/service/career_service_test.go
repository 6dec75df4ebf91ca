package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

func newCareerService(repo *mockStudentRepo) *CareerService {
	return NewCareerService(CareerServiceParams{Repo: repo, Now: fixedNow})
}

func TestUpdateResume(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	svc := newCareerService(repo)

	err := svc.UpdateResume(context.Background(), "s1", models.ResumeUpdateRequest{
		Summary: "Second-year CS student focused on backend systems.",
		Experience: []models.Experience{
			{Title: "Backend Intern", Company: "Acme Labs", Duration: "Summer 2025"},
		},
		Certifications: []models.Certification{
			{Name: "AWS Cloud Practitioner", Issuer: "Amazon"},
		},
	})
	require.NoError(t, err)

	stored := repo.records["s1"]
	assert.Equal(t, "Second-year CS student focused on backend systems.", stored.Profile.Resume.Summary)
	require.Len(t, stored.Profile.Resume.Experience, 1)
	assert.Equal(t, "Backend Intern", stored.Profile.Resume.Experience[0].Title)
	require.Len(t, stored.Profile.Resume.Certifications, 1)
}

func TestExportResumePDF(t *testing.T) {
	student := testStudent()
	student.Profile.Resume.Summary = "Aspiring engineer."
	student.Profile.CGPA.Current = 8.2
	svc := newCareerService(newMockStudentRepo(student))

	payload, filename, err := svc.ExportResumePDF(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", filename)
	assert.NotEmpty(t, payload)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestMockInterviewTechnicalFilter(t *testing.T) {
	svc := newCareerService(newMockStudentRepo(testStudent()))

	resp, err := svc.MockInterview(context.Background(), "s1", "", "")
	require.NoError(t, err)

	assert.Equal(t, "technical", resp.Type)
	assert.Equal(t, "general", resp.Company)
	// Programming and Algorithms always qualify; Data Structures matches a
	// held skill; Database and Web Development do not.
	categories := map[string]bool{}
	for _, q := range resp.Questions {
		categories[q.Category] = true
		assert.NotEmpty(t, q.FollowUps)
	}
	assert.True(t, categories["Programming"])
	assert.True(t, categories["Algorithms"])
	assert.True(t, categories["Data Structures"])
	assert.False(t, categories["Database"])
	assert.False(t, categories["Web Development"])

	assert.Equal(t, models.BranchComputerScience, resp.StudentContext.Branch)
	assert.Equal(t, []string{"Data Structures", "Python"}, resp.StudentContext.Skills)
}

func TestMockInterviewHR(t *testing.T) {
	svc := newCareerService(newMockStudentRepo(testStudent()))

	resp, err := svc.MockInterview(context.Background(), "s1", "hr", "TCS")
	require.NoError(t, err)

	assert.Equal(t, "hr", resp.Type)
	assert.Equal(t, "TCS", resp.Company)
	assert.Len(t, resp.Questions, mockInterviewQuestions)
	for _, q := range resp.Questions {
		assert.NotEmpty(t, q.Tips)
	}
}

func TestReviewInterview(t *testing.T) {
	svc := NewCareerService(CareerServiceParams{
		Repo:  newMockStudentRepo(testStudent()),
		Now:   fixedNow,
		Score: func() int { return 85 },
	})

	feedback, err := svc.ReviewInterview(context.Background(), "s1", models.InterviewFeedbackRequest{
		Type:    "technical",
		Answers: []string{"A binary search halves the range each step."},
	})
	require.NoError(t, err)

	assert.Equal(t, 85, feedback.OverallScore)
	assert.NotEmpty(t, feedback.Strengths)
	assert.NotEmpty(t, feedback.AreasForImprovement)
	assert.NotEmpty(t, feedback.Recommendations)
}

func TestReviewInterviewScoreBand(t *testing.T) {
	svc := newCareerService(newMockStudentRepo(testStudent()))

	for i := 0; i < 20; i++ {
		feedback, err := svc.ReviewInterview(context.Background(), "s1", models.InterviewFeedbackRequest{
			Type:    "hr",
			Answers: []string{"I want to grow as an engineer."},
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, feedback.OverallScore, 70)
		assert.LessOrEqual(t, feedback.OverallScore, 100)
	}
}

func TestReviewInterviewRejectsEmptyAnswers(t *testing.T) {
	svc := newCareerService(newMockStudentRepo(testStudent()))

	_, err := svc.ReviewInterview(context.Background(), "s1", models.InterviewFeedbackRequest{Type: "technical"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCompanies(t *testing.T) {
	svc := newCareerService(newMockStudentRepo())

	companies := svc.Companies(context.Background())
	require.Len(t, companies, 3)
	names := []string{companies[0].Name, companies[1].Name, companies[2].Name}
	assert.Contains(t, names, "TCS")
	assert.Contains(t, names, "Amazon")
}
