package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/roster/internal/formatter"
	"github.com/desertthunder/roster/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	DetailView
	ConfirmView
)

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	store       models.Repository
	width       int
	height      int
	studentList list.Model
	students    []*models.Student
	selected    *models.Student
	status      string
	err         error
	help        help.Model
	keys        keyMap
}

// NewModel creates a new TUI model backed by store.
func NewModel(ctx context.Context, store models.Repository) *Model {
	studentList := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	studentList.Title = "Students"

	return &Model{
		ctx:         ctx,
		view:        ListView,
		store:       store,
		width:       84,
		height:      28,
		studentList: studentList,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init initializes the TUI by loading every student.
func (m *Model) Init() tea.Cmd {
	return m.loadStudents()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.studentList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		}

	case Msg:
		switch msg.kind {
		case MsgStudentsLoaded:
			data := msg.data.(studentsLoaded)
			if data.err != nil {
				m.err = data.err
				return m, nil
			}
			m.err = nil
			m.students = data.students
			items := make([]list.Item, len(data.students))
			for i, s := range data.students {
				items[i] = studentItem{student: s}
			}
			return m, m.studentList.SetItems(items)

		case MsgStudentDeleted:
			data := msg.data.(studentDeleted)
			switch {
			case data.err != nil:
				m.status = styles.err.Render(fmt.Sprintf("Failed to delete student ID %d: %v", data.id, data.err))
			case !data.deleted:
				m.status = styles.warn.Render(fmt.Sprintf("Student ID %d was already removed", data.id))
			default:
				m.status = styles.ok.Render(fmt.Sprintf("✓ Student ID %d deleted", data.id))
			}
			m.selected = nil
			m.view = ListView
			return m, m.loadStudents()
		}
	}

	var cmd tea.Cmd
	if m.view == ListView {
		m.studentList, cmd = m.studentList.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit", m.err))
	}

	switch m.view {
	case ListView:
		return m.renderList()
	case DetailView:
		return m.renderDetail()
	case ConfirmView:
		return m.renderConfirm()
	default:
		return ""
	}
}

// Selected returns the student currently shown in the detail or confirm view.
func (m *Model) Selected() *models.Student {
	return m.selected
}

// CurrentView returns the active [ViewState].
func (m *Model) CurrentView() ViewState {
	return m.view
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.studentList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.studentList, cmd = m.studentList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.reload):
		m.status = ""
		return m, m.loadStudents()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case m.err != nil:
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if s := m.current(); s != nil {
			m.selected = s
			m.view = DetailView
		}
		return m, nil
	case key.Matches(msg, m.keys.del):
		if s := m.current(); s != nil {
			m.selected = s
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.studentList, cmd = m.studentList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selected = nil
		m.view = ListView
	case key.Matches(msg, m.keys.del):
		m.view = ConfirmView
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		return m, m.deleteStudent(m.selected.ID)
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.quit):
		m.status = "Deletion cancelled."
		m.selected = nil
		m.view = ListView
	}
	return m, nil
}

// current returns the student under the list cursor, or nil for an empty list.
func (m *Model) current() *models.Student {
	if item, ok := m.studentList.SelectedItem().(studentItem); ok {
		return item.student
	}
	return nil
}

func (m *Model) loadStudents() tea.Cmd {
	return func() tea.Msg {
		students, err := m.store.GetAll(m.ctx)
		return studentsLoadedMsg(students, err)
	}
}

func (m *Model) deleteStudent(id int64) tea.Cmd {
	return func() tea.Msg {
		deleted, err := m.store.Delete(m.ctx, id)
		return studentDeletedMsg(id, deleted, err)
	}
}

func (m *Model) renderList() string {
	helpView := m.help.View(m.keys)

	body := m.studentList.View()
	if len(m.students) == 0 {
		body = styles.title.Render("Students") + "\n" + styles.muted.Render("No students registered.")
	}
	if m.status != "" {
		body = fmt.Sprintf("%s\n%s", body, m.status)
	}
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}

func (m *Model) renderDetail() string {
	title := styles.title.Render(m.selected.Name)
	helpKeys := []key.Binding{m.keys.back, m.keys.del, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, formatter.StudentDetail(m.selected), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Delete '%s' (ID: %d)?", m.selected.Name, m.selected.ID))
	info := styles.warn.Render("This cannot be undone.")

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
