package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/roster/internal/shared"
	"github.com/mattn/go-sqlite3"
)

// withTx acquires a dedicated connection, runs fn inside a transaction and releases the connection.
//
// The transaction commits when fn returns nil and rolls back otherwise; the connection is
// returned to the pool on every path, including a panic inside fn.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err was caused by a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}

// storeError wraps err so it matches [shared.ErrStore], and [shared.ErrDuplicateRegistration] for unique violations.
func storeError(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, shared.ErrStore, shared.ErrDuplicateRegistration)
	}
	return fmt.Errorf("%s: %w: %v", op, shared.ErrStore, err)
}
