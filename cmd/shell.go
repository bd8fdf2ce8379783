package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/roster/internal/formatter"
	"github.com/desertthunder/roster/internal/models"
	"github.com/desertthunder/roster/internal/shared"
	"github.com/urfave/cli/v3"
)

// errInputClosed ends the menu loop when input reaches EOF.
var errInputClosed = errors.New("input closed")

// Shell runs the interactive menu until the user exits or input ends.
func (r *Runner) Shell(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	logger := shared.WithLogger(r.logger, "session", shared.SessionID())
	return NewMenu(store, r.input, r.output, logger).Run(ctx)
}

// Menu is the line-oriented interactive shell: it prompts for input, calls the repository and
// prints results. No store or validation failure ends the loop.
type Menu struct {
	store  models.Repository
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// NewMenu creates a [Menu] reading answers from in and writing prompts to out.
func NewMenu(store models.Repository, in io.Reader, out io.Writer, logger *log.Logger) *Menu {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Menu{store: store, in: bufio.NewScanner(in), out: out, logger: logger}
}

// Run shows the menu in a loop. It returns nil when the user exits or input is exhausted.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Debug("shell session started")
	defer m.logger.Debug("shell session ended")

	for {
		m.showMenu()

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return nil
		}

		switch strings.ToLower(choice) {
		case "a":
			err = m.register(ctx)
		case "b":
			m.list(ctx)
		case "c":
			err = m.update(ctx)
		case "d":
			err = m.remove(ctx)
		case "e":
			m.printf("Exiting. Goodbye!\n")
			return nil
		default:
			m.printf("Invalid option. Please try again.\n")
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}

		if _, err := m.prompt("\nPress Enter to continue..."); err != nil {
			return nil
		}
	}
}

func (m *Menu) showMenu() {
	m.printf("\n--- Student Records ---\n")
	m.printf("a) Register student\n")
	m.printf("b) List students\n")
	m.printf("c) Update student\n")
	m.printf("d) Delete student\n")
	m.printf("e) Exit\n")
	m.printf("-----------------------\n")
}

func (m *Menu) register(ctx context.Context) error {
	m.printf("\n--- Register Student ---\n")

	name, err := m.prompt("Name: ")
	if err != nil {
		return err
	}
	registration, err := m.prompt(fmt.Sprintf("Registration (up to %d characters): ", models.RegistrationMaxLen))
	if err != nil {
		return err
	}
	course, err := m.prompt("Course: ")
	if err != nil {
		return err
	}
	grades, err := m.promptGrades("Grades (comma separated): ")
	if err != nil {
		return err
	}

	student, err := models.NewStudent(name, registration, course, grades)
	if err != nil {
		m.printValidation("registering", err)
		return nil
	}

	id, err := m.store.Add(ctx, student)
	switch {
	case errors.Is(err, shared.ErrDuplicateRegistration):
		m.printf("Failed to register student: registration %s is already in use.\n", student.Registration)
	case err != nil:
		m.printf("Failed to register student.\n")
	default:
		m.printf("Student '%s' registered successfully! ID: %d\n", student.Name, id)
	}
	return nil
}

func (m *Menu) list(ctx context.Context) {
	m.printf("\n--- Registered Students ---\n")

	students, err := m.store.GetAll(ctx)
	if err != nil {
		m.printf("Could not load students. Please try again.\n")
		return
	}
	if len(students) == 0 {
		m.printf("No students registered.\n")
		return
	}
	m.printf("%s\n", formatter.StudentTable(students))
}

func (m *Menu) update(ctx context.Context) error {
	m.printf("\n--- Update Student ---\n")

	id, err := m.promptID("ID of the student to update: ")
	if err != nil {
		return err
	}

	existing, ok := m.lookup(ctx, id)
	if !ok {
		return nil
	}

	m.printf("\nCurrent data:\n%s", formatter.StudentDetail(existing))
	m.printf("\nEnter new values (leave blank to keep the current value):\n")

	updated := *existing
	if updated.Name, err = m.promptDefault("New name", existing.Name); err != nil {
		return err
	}
	if updated.Registration, err = m.promptDefault("New registration", existing.Registration); err != nil {
		return err
	}
	if updated.Course, err = m.promptDefault("New course", existing.Course); err != nil {
		return err
	}
	grades, err := m.promptGrades(fmt.Sprintf("New grades (%s): ", formatter.FormatGrades(existing.Grades)))
	if err != nil {
		return err
	}
	if len(grades) > 0 {
		updated.Grades = grades
	}

	if err := updated.Validate(); err != nil {
		m.printValidation("updating", err)
		return nil
	}

	changed, err := m.store.Update(ctx, &updated)
	switch {
	case errors.Is(err, shared.ErrDuplicateRegistration):
		m.printf("Failed to update student ID %d: registration %s is already in use.\n", id, updated.Registration)
	case err != nil || !changed:
		m.printf("Failed to update student ID %d.\n", id)
	default:
		m.printf("Student ID %d updated successfully!\n", id)
	}
	return nil
}

func (m *Menu) remove(ctx context.Context) error {
	m.printf("\n--- Delete Student ---\n")

	id, err := m.promptID("ID of the student to delete: ")
	if err != nil {
		return err
	}

	student, ok := m.lookup(ctx, id)
	if !ok {
		return nil
	}

	answer, err := m.prompt(fmt.Sprintf("Are you sure you want to delete '%s' (ID: %d)? (y/N): ", student.Name, id))
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		m.printf("Deletion cancelled.\n")
		return nil
	}

	deleted, err := m.store.Delete(ctx, id)
	if err != nil || !deleted {
		m.printf("Failed to delete student ID %d. It may have already been removed.\n", id)
		return nil
	}
	m.printf("Student ID %d deleted.\n", id)
	return nil
}

// lookup fetches a student and prints the reason when it cannot.
func (m *Menu) lookup(ctx context.Context, id int64) (*models.Student, bool) {
	student, err := m.store.Get(ctx, id)
	switch {
	case errors.Is(err, shared.ErrStudentNotFound):
		m.printf("Student with ID %d not found.\n", id)
		return nil, false
	case err != nil:
		m.printf("Could not load student ID %d. Please try again.\n", id)
		return nil, false
	}
	return student, true
}

func (m *Menu) printValidation(action string, err error) {
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		m.printf("\nUnexpected error while %s student: %v\n", action, err)
		return
	}
	m.printf("\nValidation errors while %s student:\n%s", action, formatter.ValidationMessages(verr))
}

// prompt writes msg and returns the next trimmed input line.
func (m *Menu) prompt(msg string) (string, error) {
	m.printf("%s", msg)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			m.logger.Error("failed to read input", "error", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptDefault prompts with the current value shown and returns it unchanged on blank input.
func (m *Menu) promptDefault(label, current string) (string, error) {
	answer, err := m.prompt(fmt.Sprintf("%s (%s): ", label, current))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// promptID re-prompts until the input parses as an integer.
func (m *Menu) promptID(msg string) (int64, error) {
	for {
		answer, err := m.prompt(msg)
		if err != nil {
			return 0, err
		}
		id, err := strconv.ParseInt(answer, 10, 64)
		if err == nil {
			return id, nil
		}
		m.printf("Invalid input. Please enter a whole number.\n")
	}
}

// promptGrades re-prompts until the input parses as a comma-separated list of numbers.
func (m *Menu) promptGrades(msg string) ([]float64, error) {
	for {
		answer, err := m.prompt(msg)
		if err != nil {
			return nil, err
		}
		grades, err := models.ParseGrades(answer)
		if err == nil {
			return grades, nil
		}
		m.printf("Invalid input: %v. Please enter numbers separated by commas.\n", err)
	}
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
