package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/roster/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgStudentsLoaded MsgKind = iota
	MsgStudentDeleted
)

type studentsLoaded struct {
	students []*models.Student
	err      error
}

type studentDeleted struct {
	id      int64
	deleted bool
	err     error
}

// studentsLoadedMsg is the constructor for [MsgStudentsLoaded]
func studentsLoadedMsg(students []*models.Student, err error) Msg {
	return Msg{kind: MsgStudentsLoaded, data: studentsLoaded{students, err}}
}

// studentDeletedMsg is the constructor for [MsgStudentDeleted]
func studentDeletedMsg(id int64, deleted bool, err error) Msg {
	return Msg{kind: MsgStudentDeleted, data: studentDeleted{id, deleted, err}}
}
