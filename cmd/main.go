package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/roster/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	if err := shared.LoadEnvFile(); err != nil {
		logger.Warn("ignoring env file", "error", err)
	}

	runner := NewRunner(RunnerOpts{Logger: logger})
	app := newApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrInvalidInput) {
			logger.Error(err)
			os.Exit(2)
		}
		logger.Fatalf("application error: %v", err)
	}
}
