package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/roster/internal/models"
	"github.com/desertthunder/roster/internal/shared"
)

var _ models.Repository = (*StudentRepository)(nil)

// StudentRepository persists [models.Student] records in the students table.
type StudentRepository struct {
	db     *sql.DB
	logger *log.Logger
}

// NewStudentRepository creates a new [StudentRepository] with the given database connection.
//
// A nil logger defaults to [shared.NewLogger] on stderr.
func NewStudentRepository(db *sql.DB, logger *log.Logger) *StudentRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &StudentRepository{db: db, logger: shared.WithLogger(logger, "component", "students")}
}

// Initialize creates the students table if it does not exist. Safe to call on every startup.
func (r *StudentRepository) Initialize(ctx context.Context) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, createStudentsTable)
		return err
	})
	if err != nil {
		r.logger.Error("failed to create students table", "error", err)
		return storeError("initialize", err)
	}
	return nil
}

// Add inserts a new student and returns the identity assigned by the database.
//
// The ID is also set on s. A registration number already in use yields [shared.ErrDuplicateRegistration].
func (r *StudentRepository) Add(ctx context.Context, s *models.Student) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, insertStudent, s.Name, s.Registration, s.Course, EncodeGrades(s.Grades))
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		r.logger.Error("failed to add student", "registration", s.Registration, "error", err)
		return 0, storeError("add student", err)
	}

	s.ID = id
	r.logger.Debug("student added", "id", id)
	return id, nil
}

// Get retrieves a student by ID, returning [shared.ErrStudentNotFound] when no row matches.
func (r *StudentRepository) Get(ctx context.Context, id int64) (*models.Student, error) {
	var student *models.Student
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		student, err = scanStudent(tx.QueryRowContext(ctx, selectStudent, id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", shared.ErrStudentNotFound, id)
	}
	if err != nil {
		r.logger.Error("failed to get student", "id", id, "error", err)
		return nil, storeError("get student", err)
	}
	return student, nil
}

// GetAll retrieves every student ordered by ID. An empty table yields an empty, non-nil slice.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, selectAllStudents)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			student, err := scanStudent(rows)
			if err != nil {
				return err
			}
			students = append(students, student)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to list students", "error", err)
		return []*models.Student{}, storeError("list students", err)
	}
	return students, nil
}

// Update replaces every field of the row matching s.ID.
//
// Returns [shared.ErrMissingID] when s has no identity and false when no row matched.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) (bool, error) {
	if !s.HasID() {
		r.logger.Warn("refusing to update student without identity", "registration", s.Registration)
		return false, shared.ErrMissingID
	}
	if err := s.Validate(); err != nil {
		return false, err
	}

	var affected int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateStudent, s.Name, s.Registration, s.Course, EncodeGrades(s.Grades), s.ID)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Error("failed to update student", "id", s.ID, "error", err)
		return false, storeError("update student", err)
	}
	return affected > 0, nil
}

// Delete removes the row matching id and reports whether a row was removed.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteStudent, id)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Error("failed to delete student", "id", id, "error", err)
		return false, storeError("delete student", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		student models.Student
		grades  string
	)

	if err := row.Scan(&student.ID, &student.Name, &student.Registration, &student.Course, &grades); err != nil {
		return nil, err
	}

	decoded, err := DecodeGrades(grades)
	if err != nil {
		return nil, err
	}
	student.Grades = decoded

	return &student, nil
}
