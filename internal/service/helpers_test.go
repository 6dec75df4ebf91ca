package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/noah-isme/engineering-compass-api/internal/llm"
	"github.com/noah-isme/engineering-compass-api/internal/models"
)

// mockStudentRepo backs every service test with an in-memory record set.
type mockStudentRepo struct {
	records     map[string]*models.StudentRecord
	cohort      []models.CohortEntry
	findErr     error
	saveErr     error
	createErr   error
	cohortErr   error
	saved       []string
	createdOnce bool
}

func newMockStudentRepo(records ...*models.StudentRecord) *mockStudentRepo {
	repo := &mockStudentRepo{records: map[string]*models.StudentRecord{}}
	for _, record := range records {
		repo.records[record.ID] = record
	}
	return repo
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.StudentRecord, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	record, ok := m.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *record
	return &clone, nil
}

func (m *mockStudentRepo) FindByEmail(ctx context.Context, email string) (*models.StudentRecord, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, record := range m.records {
		if record.Email == email {
			clone := *record
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, record := range m.records {
		if record.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, record *models.StudentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createdOnce = true
	record.Version = 1
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *mockStudentRepo) Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	record.Version++
	record.UpdatedAt = updatedAt
	clone := *record
	m.records[record.ID] = &clone
	m.saved = append(m.saved, record.ID)
	return nil
}

func (m *mockStudentRepo) ListCohortByCollege(ctx context.Context, collegeName, excludeID string) ([]models.CohortEntry, error) {
	if m.cohortErr != nil {
		return nil, m.cohortErr
	}
	return m.cohort, nil
}

// mockGenerator scripts text-generation answers.
type mockGenerator struct {
	responses []string
	err       error
	prompts   []string
	calls     int
}

func (m *mockGenerator) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	m.calls++
	if len(messages) > 0 {
		m.prompts = append(m.prompts, messages[len(messages)-1].Content)
	}
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) == 0 {
		return "", nil
	}
	response := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return response, nil
}

func testStudent() *models.StudentRecord {
	return &models.StudentRecord{
		ID:           "s1",
		Email:        "asha@college.edu",
		PasswordHash: "hash",
		Version:      1,
		Profile: models.Profile{
			Name:            "Asha Verma",
			College:         models.College{Name: "Rajiv Gandhi Institute of Technology", Tier: models.TierTwo, University: "Mumbai University"},
			Branch:          models.BranchComputerScience,
			AdmissionYear:   2023,
			CurrentYear:     2,
			CurrentSemester: 3,
			CareerGoals:     []string{models.GoalMNCJob},
			Skills: []models.Skill{
				{Name: "Data Structures", Level: models.LevelBeginner},
				{Name: "Python", Level: models.LevelIntermediate},
			},
			TimelineGoals: []models.SemesterGoals{
				{Semester: 3, Goals: []models.Goal{
					{ID: "g1", Title: "Build first web project", Completed: false},
					{ID: "g2", Title: "Start DSA practice", Completed: true},
				}},
			},
			WeeklyFocus: models.WeeklyFocus{CurrentWeek: 1, Tasks: []models.Task{
				{ID: "t1", Title: "Solve 10 Array Problems", Category: "Coding"},
			}},
			AIRecommendations: []models.Recommendation{
				{Type: "Skill", Title: "Learn React.js", Priority: models.PriorityHigh},
				{Type: "Project", Title: "Build a Portfolio Website", Priority: models.PriorityMedium},
				{Type: "Course", Title: "Data Structures & Algorithms", Priority: models.PriorityHigh},
				{Type: "Skill", Title: "Learn SQL", Priority: models.PriorityLow},
			},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
}
