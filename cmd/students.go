package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/roster/internal/formatter"
	"github.com/desertthunder/roster/internal/models"
	"github.com/desertthunder/roster/internal/shared"
	"github.com/urfave/cli/v3"
)

// StudentsAdd validates the flag values and registers a new student.
func (r *Runner) StudentsAdd(ctx context.Context, cmd *cli.Command) error {
	grades, err := models.ParseGrades(cmd.String("grades"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	student, err := models.NewStudent(
		strings.TrimSpace(cmd.String("name")),
		strings.TrimSpace(cmd.String("registration")),
		strings.TrimSpace(cmd.String("course")),
		grades,
	)
	if err != nil {
		return r.reportValidation(err)
	}

	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	id, err := store.Add(ctx, student)
	if err != nil {
		return fmt.Errorf("failed to register student: %w", err)
	}

	r.logger.Info("student registered", "id", id)
	r.writePlain("✓ Student '%s' registered with ID %d\n", student.Name, id)
	return nil
}

// StudentsList prints every student as a table or JSON.
func (r *Runner) StudentsList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	students, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list students: %w", err)
	}

	if cmd.Bool("json") || cmd.Bool("pretty") {
		return r.writeJSON(students, cmd.Bool("pretty"))
	}

	if len(students) == 0 {
		return r.writePlain("No students registered.\n")
	}

	return r.writePlain("%s\n", formatter.StudentTable(students))
}

// StudentsShow prints the details of one student.
func (r *Runner) StudentsShow(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	student, err := store.Get(ctx, int64(cmd.Int("id")))
	if err != nil {
		return err
	}

	r.writePlainHeader(student.Name)
	return r.writePlain("%s", formatter.StudentDetail(student))
}

// StudentsUpdate overlays the given flags on an existing student and saves it.
func (r *Runner) StudentsUpdate(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	id := int64(cmd.Int("id"))
	existing, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	updated := *existing
	if cmd.IsSet("name") {
		updated.Name = strings.TrimSpace(cmd.String("name"))
	}
	if cmd.IsSet("registration") {
		updated.Registration = strings.TrimSpace(cmd.String("registration"))
	}
	if cmd.IsSet("course") {
		updated.Course = strings.TrimSpace(cmd.String("course"))
	}
	if cmd.IsSet("grades") {
		grades, err := models.ParseGrades(cmd.String("grades"))
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
		}
		updated.Grades = grades
	}

	if err := updated.Validate(); err != nil {
		return r.reportValidation(err)
	}

	ok, err := store.Update(ctx, &updated)
	if err != nil {
		return fmt.Errorf("failed to update student %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", shared.ErrStudentNotFound, id)
	}

	r.logger.Info("student updated", "id", id)
	r.writePlain("✓ Student ID %d updated\n", id)
	return nil
}

// StudentsDelete removes a student after confirmation, unless --yes is given.
func (r *Runner) StudentsDelete(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}

	id := int64(cmd.Int("id"))
	student, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	if !cmd.Bool("yes") {
		r.writePlain("Delete student '%s' (ID: %d)? (y/N): ", student.Name, id)
		answer, _ := bufio.NewReader(r.input).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			r.writePlain("Deletion cancelled.\n")
			return nil
		}
	}

	ok, err := store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete student %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", shared.ErrStudentNotFound, id)
	}

	r.logger.Info("student deleted", "id", id)
	r.writePlain("✓ Student ID %d deleted\n", id)
	return nil
}

// reportValidation prints every field error and returns an [shared.ErrInvalidInput] error.
func (r *Runner) reportValidation(err error) error {
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	r.writePlain("Validation errors:\n%s", formatter.ValidationMessages(verr))
	return fmt.Errorf("%w: %d invalid field(s)", shared.ErrInvalidInput, len(verr.Fields))
}
