// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/roster/internal/models"
	"github.com/desertthunder/roster/internal/repositories"
	"github.com/desertthunder/roster/internal/shared"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// NewTestRepository opens a SQLite file in a temp dir and returns an initialized repository.
// The database is closed when the test ends.
func NewTestRepository(t *testing.T) (*sql.DB, *repositories.StudentRepository) {
	t.Helper()

	db, err := shared.NewDatabase(filepath.Join(t.TempDir(), "roster_test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := repositories.NewStudentRepository(db, shared.NewLogger(io.Discard))
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("failed to initialize repository: %v", err)
	}
	return db, repo
}

// MustAddStudent builds, validates and persists a student, failing the test on any error.
func MustAddStudent(t *testing.T, repo *repositories.StudentRepository, name, registration, course string, grades ...float64) *models.Student {
	t.Helper()

	s, err := models.NewStudent(name, registration, course, grades)
	if err != nil {
		t.Fatalf("failed to build student: %v", err)
	}
	if _, err := repo.Add(context.Background(), s); err != nil {
		t.Fatalf("failed to add student: %v", err)
	}
	return s
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// ErrStoreDown is returned by every [FailingStore] method.
var ErrStoreDown = errors.New("store down")

// FailingStore is a test double for [models.Repository] whose every call fails.
type FailingStore struct{}

func (FailingStore) Add(context.Context, *models.Student) (int64, error) {
	return 0, ErrStoreDown
}

func (FailingStore) Get(context.Context, int64) (*models.Student, error) {
	return nil, ErrStoreDown
}

func (FailingStore) GetAll(context.Context) ([]*models.Student, error) {
	return []*models.Student{}, ErrStoreDown
}

func (FailingStore) Update(context.Context, *models.Student) (bool, error) {
	return false, ErrStoreDown
}

func (FailingStore) Delete(context.Context, int64) (bool, error) {
	return false, ErrStoreDown
}
