// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// newApp builds the root command with global flags and all subcommands registered on r.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "roster",
		Usage:   "Manage student records in a local SQLite database",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
				Sources: cli.EnvVars("ROSTER_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to the SQLite database file (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error (overrides config)",
			},
		},
		Before:   r.configure,
		After:    r.close,
		Commands: r.register(),
	}
}

// setupCommand handles first-run setup of the config file and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the config file if missing and initialize the database",
		Action: r.Setup,
	}
}

// studentsCommand handles non-interactive student record operations
func studentsCommand(r *Runner) *cli.Command {
	idFlag := func() cli.Flag {
		return &cli.IntFlag{
			Name:     "id",
			Usage:    "Student ID",
			Required: true,
		}
	}

	return &cli.Command{
		Name:    "students",
		Aliases: []string{"student", "s"},
		Usage:   "Student record operations",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Register a new student",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Full name (3-100 characters)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "registration",
						Aliases:  []string{"r"},
						Usage:    "Registration number (up to 7 characters)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "course",
						Usage:    "Course name (3-50 characters)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "grades",
						Aliases:  []string{"g"},
						Usage:    "Comma-separated grades between 0 and 10, e.g. \"7.5,8\"",
						Required: true,
					},
				},
				Action: r.StudentsAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all students",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.StudentsList,
			},
			{
				Name:   "show",
				Usage:  "Show a single student",
				Flags:  []cli.Flag{idFlag()},
				Action: r.StudentsShow,
			},
			{
				Name:  "update",
				Usage: "Update fields of an existing student; omitted fields keep their value",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "New full name",
					},
					&cli.StringFlag{
						Name:    "registration",
						Aliases: []string{"r"},
						Usage:   "New registration number",
					},
					&cli.StringFlag{
						Name:  "course",
						Usage: "New course name",
					},
					&cli.StringFlag{
						Name:    "grades",
						Aliases: []string{"g"},
						Usage:   "New comma-separated grades",
					},
				},
				Action: r.StudentsUpdate,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a student",
				Flags: []cli.Flag{
					idFlag(),
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.StudentsDelete,
			},
		},
	}
}

// shellCommand returns the interactive menu command.
func shellCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Aliases: []string{"menu"},
		Usage:   "Interactive menu for registering, listing, updating and deleting students",
		Action:  r.Shell,
	}
}

// tuiCommand returns the full-screen student browser command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Browse and delete students in a full-screen terminal UI",
		Action:  r.TUI,
	}
}
