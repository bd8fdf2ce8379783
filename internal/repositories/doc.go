// Package repositories implements SQLite persistence for student records.
//
// [StudentRepository] executes a fixed set of parameterized statements (see sql.go) against a
// single students table. Every operation runs on its own connection inside its own transaction:
// the connection is acquired, one statement executes, the transaction commits on success or rolls
// back on error, and the connection is released on every path.
//
// Grades are stored as a comma-separated text column; [EncodeGrades] and [DecodeGrades] own that
// round trip.
//
// Store failures are logged at the repository boundary and returned wrapped in [shared.ErrStore]
// so callers can tell a broken database apart from a missing record.
package repositories
