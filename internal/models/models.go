package models

import "context"

// Repository defines data access for [Student] records.
// Implementations handle database interactions; the CLI, shell and TUI depend only on this interface.
type Repository interface {
	// Add inserts a new student and returns its identity
	Add(ctx context.Context, s *Student) (int64, error)
	// Get retrieves a student by identity
	Get(ctx context.Context, id int64) (*Student, error)
	// GetAll retrieves every student
	GetAll(ctx context.Context) ([]*Student, error)
	// Update replaces all fields of an existing student
	Update(ctx context.Context, s *Student) (bool, error)
	// Delete removes a student by identity
	Delete(ctx context.Context, id int64) (bool, error)
}
