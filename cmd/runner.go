package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/roster/internal/models"
	"github.com/desertthunder/roster/internal/repositories"
	"github.com/desertthunder/roster/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	store      models.Repository
	db         *sql.DB
	logger     *log.Logger
	output     io.Writer
	input      io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A non-nil Store is used as-is and never closed by the Runner; otherwise the database named by
// the config is opened on first use.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Store      models.Repository
	Logger     *log.Logger
	Output     io.Writer
	Input      io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		store:      opts.Store,
		logger:     opts.Logger,
		output:     opts.Output,
		input:      opts.Input,
	}
}

// SetLogger replaces the logger used by the runner and any repository it opens afterwards.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// configure resolves the config file and global flag overrides before any command runs.
func (r *Runner) configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	r.configPath = cmd.String("config")

	config, err := shared.ResolveConfig(r.configPath)
	if err != nil {
		return ctx, err
	}

	if path := cmd.String("db"); path != "" {
		config.Database.Path = path
	}
	if level := cmd.String("log-level"); level != "" {
		config.Logging.Level = level
	}

	lvl, err := shared.ParseLevel(config.Logging.Level)
	if err != nil {
		return ctx, fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	shared.SetLogLevel(r.logger, lvl)

	r.config = config
	return ctx, nil
}

// openStore returns the configured [models.Repository], opening and initializing the database on first use.
func (r *Runner) openStore(ctx context.Context) (models.Repository, error) {
	if r.store != nil {
		return r.store, nil
	}

	r.logger.Debug("opening database", "path", r.config.Database.Path)

	db, err := shared.OpenConfigured(r.config.Database)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	repo := repositories.NewStudentRepository(db, r.logger)
	if err := repo.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	r.db = db
	r.store = repo
	return repo, nil
}

// close releases the database opened by [Runner.openStore], if any.
func (r *Runner) close(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return nil
	}

	err := r.db.Close()
	r.db = nil
	r.store = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, studentsCommand, shellCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
