// package formatter renders student records for the terminal (bordered tables and detail blocks)
package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/roster/internal/models"
)

// TableHeaders are the column titles of [StudentTable].
var TableHeaders = []string{"ID", "Name", "Registration", "Course", "Grades"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// FormatGrades renders grades as a bracketed list, e.g. "[7.5, 8]".
func FormatGrades(grades []float64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = strconv.FormatFloat(g, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StudentRow converts a student into the cell values of one table row.
func StudentRow(s *models.Student) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.Name,
		s.Registration,
		s.Course,
		FormatGrades(s.Grades),
	}
}

// StudentTable renders students as a bordered grid with a header row.
func StudentTable(students []*models.Student) string {
	rows := make([][]string, len(students))
	for i, s := range students {
		rows[i] = StudentRow(s)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(TableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.Render()
}

// StudentDetail renders one student as labelled lines, the way the update flow shows current values.
func StudentDetail(s *models.Student) string {
	var buf bytes.Buffer
	if s.HasID() {
		buf.WriteString(fmt.Sprintf("  ID: %d\n", s.ID))
	}
	buf.WriteString(fmt.Sprintf("  Name: %s\n", s.Name))
	buf.WriteString(fmt.Sprintf("  Registration: %s\n", s.Registration))
	buf.WriteString(fmt.Sprintf("  Course: %s\n", s.Course))
	buf.WriteString(fmt.Sprintf("  Grades: %s\n", FormatGrades(s.Grades)))
	buf.WriteString(fmt.Sprintf("  Average: %.2f\n", s.Average()))
	return buf.String()
}

// ValidationMessages renders each field error of a [models.ValidationError] as "- field: message".
func ValidationMessages(verr *models.ValidationError) string {
	var buf bytes.Buffer
	for _, f := range verr.Fields {
		buf.WriteString(fmt.Sprintf("- %s: %s\n", f.Field, f.Message))
	}
	return buf.String()
}
