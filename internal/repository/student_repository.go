package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

// StudentRepository provides database access for student records. The profile
// document lives in a single JSONB column and is always read and written
// whole; cohort queries project scalar fields out of it with JSONB operators.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, email, password_hash, document, version, created_at, updated_at`

// FindByID returns a student record by identifier.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.StudentRecord, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE id = $1 LIMIT 1`
	var record models.StudentRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}
	return &record, nil
}

// FindByEmail returns a student record by email address.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.StudentRecord, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE email = $1 LIMIT 1`
	var record models.StudentRecord
	if err := r.db.GetContext(ctx, &record, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by email: %w", err)
	}
	return &record, nil
}

// ExistsByEmail reports whether a student with the email is registered.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check student email: %w", err)
	}
	return exists, nil
}

// Create inserts a new student record at version 1.
func (r *StudentRepository) Create(ctx context.Context, record *models.StudentRecord) error {
	const query = `INSERT INTO students (id, email, password_hash, document, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)`
	if _, err := r.db.ExecContext(ctx, query, record.ID, record.Email, record.PasswordHash, record.Profile, record.CreatedAt); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	record.Version = 1
	return nil
}

// Save writes the full profile document back, guarded by the version read at
// load time. A concurrent writer bumps the version first and this update
// matches zero rows, which surfaces as ErrStaleDocument.
func (r *StudentRepository) Save(ctx context.Context, record *models.StudentRecord, updatedAt time.Time) error {
	const query = `UPDATE students SET document = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4`
	result, err := r.db.ExecContext(ctx, query, record.ID, record.Profile, updatedAt, record.Version)
	if err != nil {
		return fmt.Errorf("save student: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("save student rows affected: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrStaleDocument
	}
	record.Version++
	record.UpdatedAt = updatedAt
	return nil
}

// UpdatePassword updates the stored password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	const query = `UPDATE students SET password_hash = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, passwordHash, updatedAt); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListCohortByCollege returns lightweight projections of every other student
// at the same college, for mentorship listings.
func (r *StudentRepository) ListCohortByCollege(ctx context.Context, collegeName, excludeID string) ([]models.CohortEntry, error) {
	const query = `SELECT id,
		document->>'name' AS name,
		document->>'branch' AS branch,
		COALESCE((document->>'currentYear')::int, 0) AS current_year,
		COALESCE((document->>'currentSemester')::int, 0) AS current_semester,
		COALESCE(jsonb_array_length(document->'skills'), 0) AS skill_count,
		COALESCE(jsonb_array_length(document->'projects'), 0) AS project_count
		FROM students
		WHERE document->'college'->>'name' = $1 AND id <> $2
		ORDER BY document->>'name'`
	entries := []models.CohortEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, collegeName, excludeID); err != nil {
		return nil, fmt.Errorf("list cohort by college: %w", err)
	}
	return entries, nil
}
