package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/engineering-compass-api/internal/models"
	appErrors "github.com/noah-isme/engineering-compass-api/pkg/errors"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func profileJSON(t *testing.T, p models.Profile) []byte {
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return raw
}

func TestFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	doc := profileJSON(t, models.Profile{Name: "Asha", Branch: models.BranchComputerScience})
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "document", "version", "created_at", "updated_at"}).
		AddRow("s1", "asha@college.edu", "hash", doc, 3, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, document, version, created_at, updated_at FROM students WHERE id = $1 LIMIT 1")).
		WithArgs("s1").
		WillReturnRows(rows)

	record, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "asha@college.edu", record.Email)
	assert.Equal(t, "Asha", record.Profile.Name)
	assert.Equal(t, 3, record.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM students WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)")).
		WithArgs("asha@college.edu").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "asha@college.edu")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnResult(sqlmock.NewResult(1, 1))

	record := &models.StudentRecord{
		ID:           "s1",
		Email:        "asha@college.edu",
		PasswordHash: "hash",
		Profile:      models.Profile{Name: "Asha"},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), record))
	assert.Equal(t, 1, record.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBumpsVersion(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET document").WillReturnResult(sqlmock.NewResult(0, 1))

	record := &models.StudentRecord{ID: "s1", Version: 4}
	require.NoError(t, repo.Save(context.Background(), record, time.Now()))
	assert.Equal(t, 5, record.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveStaleVersion(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET document").WillReturnResult(sqlmock.NewResult(0, 0))

	record := &models.StudentRecord{ID: "s1", Version: 4}
	err := repo.Save(context.Background(), record, time.Now())
	assert.ErrorIs(t, err, appErrors.ErrStaleDocument)
	assert.Equal(t, 4, record.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCohortByCollege(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "branch", "current_year", "current_semester", "skill_count", "project_count"}).
		AddRow("s2", "Ravi", models.BranchComputerScience, 3, 5, 4, 2).
		AddRow("s3", "Sneha", models.BranchInformationTech, 2, 3, 1, 0)
	mock.ExpectQuery("SELECT id,(.+)FROM students(.+)college").
		WithArgs("Rajiv Gandhi Institute of Technology", "s1").
		WillReturnRows(rows)

	entries, err := repo.ListCohortByCollege(context.Background(), "Rajiv Gandhi Institute of Technology", "s1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ravi", entries[0].Name)
	assert.Equal(t, 4, entries[0].SkillCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
