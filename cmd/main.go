package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.WithLogger(shared.NewLogger(nil), "run", shared.GenerateID())

	if err := shared.LoadEnv(".env"); err != nil {
		logger.Warn("ignoring env file", "error", err)
	}

	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		switch {
		case models.IsValidationError(err), errors.Is(err, shared.ErrNotFound):
			os.Exit(1)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}

// newApp builds the root command around r.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "mediarights",
		Usage:    "Track content, distributors and the licenses between them",
		Version:  "0.1.0",
		Flags:    globalFlags(),
		Before:   r.before,
		After:    r.after,
		Commands: r.register(),
	}
}
