package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	th "github.com/desertthunder/roster/internal/testing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes cmd and feeds the resulting message back into the model.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if _, ok := msg.(Msg); !ok {
		t.Fatalf("expected ui.Msg, got %T", msg)
	}
	m.Update(msg)
}

func TestModel(t *testing.T) {
	ctx := context.Background()

	t.Run("Init loads students", func(t *testing.T) {
		_, repo := th.NewTestRepository(t)
		th.MustAddStudent(t, repo, "Ana Silva", "1234567", "Computer Science", 7.5, 8)
		th.MustAddStudent(t, repo, "Bruno Costa", "7654321", "Physics", 9)

		m := NewModel(ctx, repo)
		drain(t, m, m.Init())

		if len(m.students) != 2 {
			t.Fatalf("expected 2 students, got %d", len(m.students))
		}
		view := m.View()
		if !strings.Contains(view, "Ana Silva") || !strings.Contains(view, "Bruno Costa") {
			t.Errorf("expected both students in view, got:\n%s", view)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		_, repo := th.NewTestRepository(t)
		m := NewModel(ctx, repo)
		drain(t, m, m.Init())

		if !strings.Contains(m.View(), "No students registered.") {
			t.Errorf("expected empty message, got:\n%s", m.View())
		}

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.CurrentView() != ListView {
			t.Error("enter on an empty list should stay on the list view")
		}
	})

	t.Run("help toggles full key list", func(t *testing.T) {
		_, repo := th.NewTestRepository(t)
		m := NewModel(ctx, repo)
		drain(t, m, m.Init())

		view := m.View()
		if !strings.Contains(view, "more keys") {
			t.Errorf("expected short help in list view, got:\n%s", view)
		}
		if strings.Contains(view, "back") {
			t.Errorf("expected short help to omit detail bindings, got:\n%s", view)
		}

		_, cmd := m.Update(runes("?"))
		if cmd != nil {
			t.Error("expected no command when toggling help")
		}
		if !strings.Contains(m.View(), "back") {
			t.Errorf("expected full help after ?, got:\n%s", m.View())
		}

		m.Update(runes("?"))
		if strings.Contains(m.View(), "back") {
			t.Errorf("expected short help after second ?, got:\n%s", m.View())
		}
	})

	t.Run("detail view", func(t *testing.T) {
		_, repo := th.NewTestRepository(t)
		th.MustAddStudent(t, repo, "Ana Silva", "1234567", "Computer Science", 7.5, 8)

		m := NewModel(ctx, repo)
		drain(t, m, m.Init())

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.CurrentView() != DetailView {
			t.Fatalf("expected detail view, got %v", m.CurrentView())
		}
		if m.Selected() == nil || m.Selected().Name != "Ana Silva" {
			t.Fatalf("expected Ana Silva selected, got %+v", m.Selected())
		}
		if !strings.Contains(m.View(), "Grades: [7.5, 8]") {
			t.Errorf("expected grades in detail view, got:\n%s", m.View())
		}

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if m.CurrentView() != ListView {
			t.Errorf("expected esc to return to list, got %v", m.CurrentView())
		}
	})

	t.Run("delete confirmed", func(t *testing.T) {
		_, repo := th.NewTestRepository(t)
		s := th.MustAddStudent(t, repo, "Ana Silva", "1234567", "Computer Science", 7.5)

		m := NewModel(ctx, repo)
		drain(t, m, m.Init())

		m.Update(runes("d"))
		if m.CurrentView() != ConfirmView {
			t.Fatalf("expected confirm view, got %v", m.CurrentView())
		}
		if !strings.Contains(m.View(), "Delete 'Ana Silva'") {
			t.Errorf("expected confirmation prompt, got:\n%s", m.View())
		}

		_, cmd := m.Update(runes("y"))
		msg := cmd()
		_, reload := m.Update(msg)
		drain(t, m, reload)

		if m.CurrentView() != ListView {
			t.Errorf("expected list view after delete, got %v", m.CurrentView())
		}
		if len(m.students) != 0 {
			t.Errorf("expected empty list after delete, got %d", len(m.students))
		}
		if !strings.Contains(m.status, "deleted") {
			t.Errorf("expected deletion status, got %q", m.status)
		}
		if _, err := repo.Get(ctx, s.ID); err == nil {
			t.Error("expected student to be removed from the store")
		}
	})

	t.Run("delete cancelled", func(t *testing.T) {
		_, repo := th.NewTestRepository(t)
		s := th.MustAddStudent(t, repo, "Ana Silva", "1234567", "Computer Science", 7.5)

		m := NewModel(ctx, repo)
		drain(t, m, m.Init())

		m.Update(runes("d"))
		_, cmd := m.Update(runes("n"))
		if cmd != nil {
			t.Error("expected no command when cancelling")
		}
		if m.CurrentView() != ListView {
			t.Errorf("expected list view after cancel, got %v", m.CurrentView())
		}
		if _, err := repo.Get(ctx, s.ID); err != nil {
			t.Errorf("expected student to remain, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		m := NewModel(ctx, th.FailingStore{})
		drain(t, m, m.Init())

		if !strings.Contains(m.View(), "store down") {
			t.Errorf("expected error in view, got:\n%s", m.View())
		}

		_, cmd := m.Update(runes("q"))
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected q to quit")
		}
	})

	t.Run("failed delete reports status", func(t *testing.T) {
		m := NewModel(ctx, th.FailingStore{})
		m.Update(studentDeletedMsg(3, false, errors.New("store down")))

		if !strings.Contains(m.status, "Failed to delete student ID 3") {
			t.Errorf("expected failure status, got %q", m.status)
		}
	})
}
