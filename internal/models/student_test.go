package models

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStudent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tc := []struct {
			name         string
			studentName  string
			registration string
			course       string
			grades       []float64
		}{
			{"typical", "Ana Silva", "1234567", "Computer Science", []float64{7.5, 8.0}},
			{"minimum lengths", "Ana", "", "Art", []float64{0}},
			{"maximum lengths", strings.Repeat("a", 100), "ABCDEFG", strings.Repeat("c", 50), []float64{10, 10, 10, 10}},
			{"grade bounds", "Bruno Costa", "7654321", "Physics", []float64{0, 10}},
			{"multibyte name counts characters", "Zoë", "1", "Música", []float64{5}},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				s, err := NewStudent(tt.studentName, tt.registration, tt.course, tt.grades)
				if err != nil {
					t.Fatalf("expected valid student, got %v", err)
				}
				if s.HasID() {
					t.Error("new student should not have an ID")
				}
				if diff := cmp.Diff(tt.grades, s.Grades); diff != "" {
					t.Errorf("grades mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tc := []struct {
			name         string
			studentName  string
			registration string
			course       string
			grades       []float64
			wantFields   []string
		}{
			{"short name", "Al", "1", "Math", []float64{5}, []string{FieldName}},
			{"long name", strings.Repeat("n", 101), "1", "Math", []float64{5}, []string{FieldName}},
			{"long registration", "Ana Silva", "12345678", "Math", []float64{5}, []string{FieldRegistration}},
			{"short course", "Ana Silva", "1", "CS", []float64{5}, []string{FieldCourse}},
			{"long course", "Ana Silva", "1", strings.Repeat("c", 51), []float64{5}, []string{FieldCourse}},
			{"no grades", "Ana Silva", "1", "Math", nil, []string{FieldGrades}},
			{"too many grades", "Ana Silva", "1", "Math", []float64{1, 2, 3, 4, 5}, []string{FieldGrades}},
			{"negative grade", "Ana Silva", "1", "Math", []float64{-0.5}, []string{FieldGrades}},
			{"grade above ten", "Ana Silva", "1", "Math", []float64{7, 10.01}, []string{FieldGrades}},
			{"NaN grade", "Ana Silva", "1", "Math", []float64{math.NaN()}, []string{FieldGrades}},
			{"infinite grade", "Ana Silva", "1", "Math", []float64{math.Inf(1)}, []string{FieldGrades}},
			{"too many grades with one out of range", "Ana Silva", "1", "Math", []float64{1, 2, 3, 4, 11}, []string{FieldGrades}},
			{
				"every field",
				"A", "123456789", "C", []float64{},
				[]string{FieldName, FieldRegistration, FieldCourse, FieldGrades},
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				s, err := NewStudent(tt.studentName, tt.registration, tt.course, tt.grades)
				if err == nil {
					t.Fatalf("expected validation error, got student %+v", s)
				}

				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}

				for _, field := range tt.wantFields {
					if !verr.Has(field) {
						t.Errorf("expected error for field %q, got %v", field, verr)
					}
				}
				if len(verr.Fields) != len(tt.wantFields) {
					t.Errorf("expected %d field errors, got %d: %v", len(tt.wantFields), len(verr.Fields), verr)
				}
			})
		}
	})

	t.Run("grade range message", func(t *testing.T) {
		_, err := NewStudent("Ana Silva", "1", "Math", []float64{7, 11})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		want := []FieldError{{Field: FieldGrades, Message: "each value must be between 0 and 10"}}
		if diff := cmp.Diff(want, verr.Fields); diff != "" {
			t.Errorf("field errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("copies grades", func(t *testing.T) {
		grades := []float64{5, 6}
		s, err := NewStudent("Ana Silva", "1", "Math", grades)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		grades[0] = 99
		if s.Grades[0] != 5 {
			t.Errorf("expected student grades to be independent of input slice, got %v", s.Grades)
		}
	})
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{Fields: []FieldError{
		{Field: FieldName, Message: "too short"},
		{Field: FieldGrades, Message: "out of range"},
	}}

	msg := verr.Error()
	if !strings.Contains(msg, "name: too short") || !strings.Contains(msg, "grades: out of range") {
		t.Errorf("expected every field in message, got %q", msg)
	}
	if verr.Has(FieldCourse) {
		t.Error("did not expect course error")
	}
}

func TestStudentAverage(t *testing.T) {
	s := &Student{Grades: []float64{6, 7, 8}}
	if got := s.Average(); got != 7 {
		t.Errorf("expected average 7, got %v", got)
	}

	empty := &Student{}
	if got := empty.Average(); got != 0 {
		t.Errorf("expected average 0 for no grades, got %v", got)
	}
}

func TestParseGrades(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{name: "single", input: "7", want: []float64{7}},
		{name: "several with spaces", input: " 7.5, 8 ,9.25 ", want: []float64{7.5, 8, 9.25}},
		{name: "blank", input: "   ", want: []float64{}},
		{name: "not a number", input: "7,abc", wantErr: true},
		{name: "empty entry", input: "7,,8", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGrades(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGrades(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseGrades(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
