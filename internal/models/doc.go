// Package models defines the student record and its validation rules.
//
// A [Student] is a plain value: it carries no database handle and performs no I/O.
// Construction through [NewStudent] validates every field and reports all violations at once
// as a [*ValidationError], so callers can show the user everything that needs fixing in one pass.
//
// Field limits:
//   - Name: 3 to 100 characters
//   - Registration: at most 7 characters
//   - Course: 3 to 50 characters
//   - Grades: 1 to 4 values, each within [0, 10]
//
// The ID is zero until the record has been persisted by a repository.
package models
