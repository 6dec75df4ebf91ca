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

func newCommunityService(repo *mockStudentRepo) *CommunityService {
	return NewCommunityService(CommunityServiceParams{Repo: repo, Now: fixedNow})
}

func secondStudent() *models.StudentRecord {
	record := testStudent()
	record.ID = "s2"
	record.Email = "ravi@college.edu"
	record.Profile.Name = "Ravi Kumar"
	record.Profile.CurrentYear = 3
	record.Profile.Connections = nil
	return record
}

func TestCohortSplit(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	repo.cohort = []models.CohortEntry{
		{ID: "s2", Name: "Ravi Kumar", CurrentYear: 3},
		{ID: "s3", Name: "Priya Nair", CurrentYear: 2},
		{ID: "s4", Name: "Dev Patel", CurrentYear: 1},
		{ID: "s5", Name: "Meera Iyer", CurrentYear: 4},
	}
	svc := newCommunityService(repo)

	cohort, err := svc.Cohort(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, 4, cohort.TotalStudents)
	require.Len(t, cohort.Seniors, 2)
	require.Len(t, cohort.Peers, 1)
	require.Len(t, cohort.Juniors, 1)
	assert.Equal(t, "Priya Nair", cohort.Peers[0].Name)
}

func TestCohortCapsEachGroup(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	for i := 0; i < 25; i++ {
		repo.cohort = append(repo.cohort, models.CohortEntry{ID: "peer", CurrentYear: 2})
	}
	svc := newCommunityService(repo)

	cohort, err := svc.Cohort(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, 25, cohort.TotalStudents)
	assert.Len(t, cohort.Peers, models.CohortSliceMax)
}

func TestConnectMirrorsInverseRelation(t *testing.T) {
	repo := newMockStudentRepo(testStudent(), secondStudent())
	svc := newCommunityService(repo)

	err := svc.Connect(context.Background(), "s1", models.ConnectRequest{
		StudentID: "s2",
		Type:      models.RelationMentor,
	})
	require.NoError(t, err)

	caller := repo.records["s1"]
	require.Len(t, caller.Profile.Connections, 1)
	assert.Equal(t, "s2", caller.Profile.Connections[0].StudentID)
	assert.Equal(t, models.RelationMentor, caller.Profile.Connections[0].Type)
	assert.Equal(t, models.ConnectionPending, caller.Profile.Connections[0].Status)

	target := repo.records["s2"]
	require.Len(t, target.Profile.Connections, 1)
	assert.Equal(t, "s1", target.Profile.Connections[0].StudentID)
	assert.Equal(t, models.RelationMentee, target.Profile.Connections[0].Type)
	assert.Equal(t, models.ConnectionPending, target.Profile.Connections[0].Status)
}

func TestConnectRejectsSelfAndDuplicates(t *testing.T) {
	repo := newMockStudentRepo(testStudent(), secondStudent())
	svc := newCommunityService(repo)

	err := svc.Connect(context.Background(), "s1", models.ConnectRequest{StudentID: "s1", Type: models.RelationPeer})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	require.NoError(t, svc.Connect(context.Background(), "s1", models.ConnectRequest{StudentID: "s2", Type: models.RelationPeer}))

	err = svc.Connect(context.Background(), "s1", models.ConnectRequest{StudentID: "s2", Type: models.RelationPeer})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestConnectTargetNotFound(t *testing.T) {
	svc := newCommunityService(newMockStudentRepo(testStudent()))

	err := svc.Connect(context.Background(), "s1", models.ConnectRequest{StudentID: "ghost", Type: models.RelationPeer})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDecideConnectionPropagates(t *testing.T) {
	repo := newMockStudentRepo(testStudent(), secondStudent())
	svc := newCommunityService(repo)

	require.NoError(t, svc.Connect(context.Background(), "s2", models.ConnectRequest{StudentID: "s1", Type: models.RelationMentee}))
	connectionID := repo.records["s1"].Profile.Connections[0].ID

	err := svc.DecideConnection(context.Background(), "s1", connectionID, models.ConnectionDecisionRequest{Status: models.ConnectionAccepted})
	require.NoError(t, err)

	assert.Equal(t, models.ConnectionAccepted, repo.records["s1"].Profile.Connections[0].Status)
	assert.Equal(t, models.ConnectionAccepted, repo.records["s2"].Profile.Connections[0].Status)
}

func TestDecideConnectionUnknownID(t *testing.T) {
	svc := newCommunityService(newMockStudentRepo(testStudent()))

	err := svc.DecideConnection(context.Background(), "s1", "nope", models.ConnectionDecisionRequest{Status: models.ConnectionAccepted})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDecideConnectionSurvivesMissingCounterpart(t *testing.T) {
	student := testStudent()
	student.Profile.Connections = []models.Connection{
		{ID: "c1", StudentID: "gone", Type: models.RelationPeer, Status: models.ConnectionPending},
	}
	repo := newMockStudentRepo(student)
	svc := newCommunityService(repo)

	err := svc.DecideConnection(context.Background(), "s1", "c1", models.ConnectionDecisionRequest{Status: models.ConnectionRejected})
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionRejected, repo.records["s1"].Profile.Connections[0].Status)
}

func TestConnectionsGrouping(t *testing.T) {
	student := testStudent()
	student.Profile.Connections = []models.Connection{
		{ID: "c1", StudentID: "a", Type: models.RelationMentor, Status: models.ConnectionAccepted},
		{ID: "c2", StudentID: "b", Type: models.RelationMentee, Status: models.ConnectionAccepted},
		{ID: "c3", StudentID: "c", Type: models.RelationPeer, Status: models.ConnectionAccepted},
		{ID: "c4", StudentID: "d", Type: models.RelationPeer, Status: models.ConnectionPending},
		{ID: "c5", StudentID: "e", Type: models.RelationPeer, Status: models.ConnectionRejected},
	}
	svc := newCommunityService(newMockStudentRepo(student))

	connections, err := svc.Connections(context.Background(), "s1")
	require.NoError(t, err)

	assert.Len(t, connections.Mentors, 1)
	assert.Len(t, connections.Mentees, 1)
	assert.Len(t, connections.Peers, 1)
	require.Len(t, connections.Pending, 1)
	assert.Equal(t, "c4", connections.Pending[0].ID)
}

func TestForums(t *testing.T) {
	svc := newCommunityService(newMockStudentRepo(testStudent()))

	forums, err := svc.Forums(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "Rajiv Gandhi Institute of Technology", forums.College)
	assert.NotEmpty(t, forums.Topics)
	assert.NotEmpty(t, forums.Categories)
}

func TestEventsSplit(t *testing.T) {
	svc := newCommunityService(newMockStudentRepo(testStudent()))

	events, err := svc.Events(context.Background(), "s1")
	require.NoError(t, err)

	assert.Len(t, events.Events, len(events.Upcoming)+len(events.Past))
	for _, event := range events.Upcoming {
		assert.True(t, event.Date.After(fixedNow()))
	}
	for _, event := range events.Past {
		assert.False(t, event.Date.After(fixedNow()))
	}
}

func TestCohortListError(t *testing.T) {
	repo := newMockStudentRepo(testStudent())
	repo.cohortErr = errors.New("db down")
	svc := newCommunityService(repo)

	_, err := svc.Cohort(context.Background(), "s1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
