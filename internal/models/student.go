package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field limits for a [Student].
const (
	NameMinLen         = 3
	NameMaxLen         = 100
	RegistrationMaxLen = 7
	CourseMinLen       = 3
	CourseMaxLen       = 50
	GradesMin          = 1
	GradesMax          = 4
	GradeMinValue      = 0.0
	GradeMaxValue      = 10.0
)

// Field names reported in a [FieldError].
const (
	FieldName         = "name"
	FieldRegistration = "registration"
	FieldCourse       = "course"
	FieldGrades       = "grades"
)

// Student is a single student record.
type Student struct {
	ID           int64     `json:"id,omitempty"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	Course       string    `json:"course"`
	Grades       []float64 `json:"grades"`
}

// FieldError describes one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every [FieldError] found while validating a [Student].
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field has at least one violation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// NewStudent builds a validated [Student] without an ID.
//
// The grades slice is copied. On failure the returned error is a [*ValidationError].
func NewStudent(name, registration, course string, grades []float64) (*Student, error) {
	s := &Student{
		Name:         name,
		Registration: registration,
		Course:       course,
		Grades:       append([]float64(nil), grades...),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every field and returns a [*ValidationError] listing all violations, or nil.
func (s *Student) Validate() error {
	verr := &ValidationError{}

	if n := utf8.RuneCountInString(s.Name); n < NameMinLen || n > NameMaxLen {
		verr.add(FieldName, "must be between %d and %d characters (got %d)", NameMinLen, NameMaxLen, n)
	}

	if n := utf8.RuneCountInString(s.Registration); n > RegistrationMaxLen {
		verr.add(FieldRegistration, "must not exceed %d characters (got %d)", RegistrationMaxLen, n)
	}

	if n := utf8.RuneCountInString(s.Course); n < CourseMinLen || n > CourseMaxLen {
		verr.add(FieldCourse, "must be between %d and %d characters (got %d)", CourseMinLen, CourseMaxLen, n)
	}

	if n := len(s.Grades); n < GradesMin || n > GradesMax {
		verr.add(FieldGrades, "must have between %d and %d values (got %d)", GradesMin, GradesMax, n)
	} else {
		for _, g := range s.Grades {
			if math.IsNaN(g) || g < GradeMinValue || g > GradeMaxValue {
				verr.add(FieldGrades, "each value must be between %g and %g", GradeMinValue, GradeMaxValue)
				break
			}
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// HasID reports whether the record has been assigned an identity by a store.
func (s *Student) HasID() bool {
	return s.ID > 0
}

// Average returns the arithmetic mean of the grades, or 0 when there are none.
func (s *Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range s.Grades {
		sum += g
	}
	return sum / float64(len(s.Grades))
}

// ParseGrades parses a comma-separated list of grades as typed by a user, e.g. "7.5, 8".
//
// Blank input yields an empty slice. Range checks are left to [Student.Validate].
func ParseGrades(text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []float64{}, nil
	}

	parts := strings.Split(text, ",")
	grades := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		g, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid grade %q: not a number", p)
		}
		grades = append(grades, g)
	}
	return grades, nil
}
