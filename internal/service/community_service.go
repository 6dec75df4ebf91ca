package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/engineering-compass-api/internal/catalog"
	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

type communityStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.StudentRecord, error)
	Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error
	ListCohortByCollege(ctx context.Context, collegeName, excludeID string) ([]models.CohortEntry, error)
}

// CommunityService provides mentorship and campus community use cases.
type CommunityService struct {
	repo      communityStudentRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// CommunityServiceParams bundles CommunityService dependencies.
type CommunityServiceParams struct {
	Repo      communityStudentRepository
	Cache     *CacheService
	Validator *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewCommunityService constructs a CommunityService instance.
func NewCommunityService(p CommunityServiceParams) *CommunityService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	if p.Now == nil {
		p.Now = func() time.Time { return time.Now().UTC() }
	}
	return &CommunityService{
		repo:      p.Repo,
		cache:     p.Cache,
		validator: p.Validator,
		logger:    p.Logger,
		now:       p.Now,
	}
}

// Cohort splits the same-college student body by year relative to the
// caller, for mentorship discovery.
type Cohort struct {
	Seniors       []models.CohortEntry `json:"seniors"`
	Peers         []models.CohortEntry `json:"peers"`
	Juniors       []models.CohortEntry `json:"juniors"`
	TotalStudents int                  `json:"totalStudents"`
}

// Cohort lists fellow students at the same college, split into seniors,
// peers and juniors, each capped at ten entries.
func (s *CommunityService) Cohort(ctx context.Context, studentID string) (*Cohort, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListCohortByCollege(ctx, record.Profile.College.Name, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list cohort")
	}

	cohort := &Cohort{
		Seniors:       []models.CohortEntry{},
		Peers:         []models.CohortEntry{},
		Juniors:       []models.CohortEntry{},
		TotalStudents: len(entries),
	}
	for _, entry := range entries {
		switch {
		case entry.CurrentYear > record.Profile.CurrentYear:
			cohort.Seniors = appendCapped(cohort.Seniors, entry)
		case entry.CurrentYear == record.Profile.CurrentYear:
			cohort.Peers = appendCapped(cohort.Peers, entry)
		default:
			cohort.Juniors = appendCapped(cohort.Juniors, entry)
		}
	}
	return cohort, nil
}

func appendCapped(entries []models.CohortEntry, entry models.CohortEntry) []models.CohortEntry {
	if len(entries) >= models.CohortSliceMax {
		return entries
	}
	return append(entries, entry)
}

// Connect sends a connection request: a Pending entry on the caller's
// record and a mirrored inverse-typed Pending entry on the target's. The
// two saves are independent, there is no cross-record transaction.
func (s *CommunityService) Connect(ctx context.Context, studentID string, req models.ConnectRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid connect payload")
	}
	if req.StudentID == studentID {
		return appErrors.Clone(appErrors.ErrValidation, "cannot connect to yourself")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	target, err := s.repo.FindByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "target student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch target student")
	}

	for _, conn := range record.Profile.Connections {
		if conn.StudentID == req.StudentID {
			return appErrors.Clone(appErrors.ErrConflict, "connection request already sent")
		}
	}

	record.Profile.Connections = append(record.Profile.Connections, models.Connection{
		ID:        uuid.NewString(),
		StudentID: req.StudentID,
		Type:      req.Type,
		Status:    models.ConnectionPending,
	})
	target.Profile.Connections = append(target.Profile.Connections, models.Connection{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Type:      inverseRelation(req.Type),
		Status:    models.ConnectionPending,
	})

	if err := s.save(ctx, record); err != nil {
		return err
	}
	return s.save(ctx, target)
}

func inverseRelation(relation string) string {
	switch relation {
	case models.RelationMentor:
		return models.RelationMentee
	case models.RelationMentee:
		return models.RelationMentor
	default:
		return models.RelationPeer
	}
}

// DecideConnection accepts or rejects a pending request and propagates the
// new status to the counterpart record when it is reachable.
func (s *CommunityService) DecideConnection(ctx context.Context, studentID, connectionID string, req models.ConnectionDecisionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid decision payload")
	}

	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return err
	}

	var counterpartID string
	found := false
	for i := range record.Profile.Connections {
		if record.Profile.Connections[i].ID == connectionID {
			record.Profile.Connections[i].Status = req.Status
			counterpartID = record.Profile.Connections[i].StudentID
			found = true
			break
		}
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "connection not found")
	}

	if err := s.save(ctx, record); err != nil {
		return err
	}

	counterpart, err := s.repo.FindByID(ctx, counterpartID)
	if err != nil {
		s.logger.Warn("connection counterpart unavailable",
			zap.String("student_id", counterpartID), zap.Error(err))
		return nil
	}
	for i := range counterpart.Profile.Connections {
		if counterpart.Profile.Connections[i].StudentID == studentID {
			counterpart.Profile.Connections[i].Status = req.Status
			if err := s.save(ctx, counterpart); err != nil {
				s.logger.Warn("connection status propagation failed",
					zap.String("student_id", counterpartID), zap.Error(err))
			}
			break
		}
	}
	return nil
}

// Connections groups the caller's connections by accepted relation plus
// everything still pending.
type Connections struct {
	Mentors []models.Connection `json:"mentors"`
	Mentees []models.Connection `json:"mentees"`
	Peers   []models.Connection `json:"peers"`
	Pending []models.Connection `json:"pending"`
}

// Connections lists the caller's connections grouped by relation and state.
func (s *CommunityService) Connections(ctx context.Context, studentID string) (*Connections, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := &Connections{
		Mentors: []models.Connection{},
		Mentees: []models.Connection{},
		Peers:   []models.Connection{},
		Pending: []models.Connection{},
	}
	for _, conn := range record.Profile.Connections {
		if conn.Status == models.ConnectionPending {
			result.Pending = append(result.Pending, conn)
			continue
		}
		if conn.Status != models.ConnectionAccepted {
			continue
		}
		switch conn.Type {
		case models.RelationMentor:
			result.Mentors = append(result.Mentors, conn)
		case models.RelationMentee:
			result.Mentees = append(result.Mentees, conn)
		case models.RelationPeer:
			result.Peers = append(result.Peers, conn)
		}
	}
	return result, nil
}

// Forums is the campus forum listing scoped to the caller's college.
type Forums struct {
	College    string               `json:"college"`
	Topics     []catalog.ForumTopic `json:"topics"`
	Categories []string             `json:"categories"`
}

// Forums returns the forum listing for the caller's college.
func (s *CommunityService) Forums(ctx context.Context, studentID string) (*Forums, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &Forums{
		College:    record.Profile.College.Name,
		Topics:     catalog.ForumTopics(),
		Categories: catalog.ForumCategories,
	}, nil
}

// Events is the campus event listing split into upcoming and past.
type Events struct {
	College  string          `json:"college"`
	Events   []catalog.Event `json:"events"`
	Upcoming []catalog.Event `json:"upcoming"`
	Past     []catalog.Event `json:"past"`
}

// Events returns the event listing for the caller's college.
func (s *CommunityService) Events(ctx context.Context, studentID string) (*Events, error) {
	record, err := s.fetch(ctx, studentID)
	if err != nil {
		return nil, err
	}

	all := catalog.Events()
	result := &Events{
		College:  record.Profile.College.Name,
		Events:   all,
		Upcoming: []catalog.Event{},
		Past:     []catalog.Event{},
	}
	now := s.now()
	for _, event := range all {
		if event.Date.After(now) {
			result.Upcoming = append(result.Upcoming, event)
		} else {
			result.Past = append(result.Past, event)
		}
	}
	return result, nil
}

func (s *CommunityService) fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	record, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return record, nil
}

func (s *CommunityService) save(ctx context.Context, record *models.StudentRecord) error {
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
