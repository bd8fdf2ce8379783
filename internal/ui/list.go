package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/roster/internal/formatter"
	"github.com/desertthunder/roster/internal/models"
)

var _ list.Item = studentItem{}

// studentItem wraps [models.Student] to implement [list.Item].
type studentItem struct {
	student *models.Student
}

func (i studentItem) FilterValue() string { return i.student.Name + " " + i.student.Registration }
func (i studentItem) Title() string       { return i.student.Name }
func (i studentItem) Description() string {
	return fmt.Sprintf("#%d • %s • %s • %s", i.student.ID, i.student.Registration, i.student.Course, formatter.FormatGrades(i.student.Grades))
}
