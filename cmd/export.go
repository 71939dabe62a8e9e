package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/tasks"
	"github.com/urfave/cli/v3"
)

// exportCommand writes a snapshot of the whole catalog
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export every table plus a manifest into a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory (default: mediarights_export_{epoch})",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (text, json, csv)",
				Value:   string(formatter.FormatJSON),
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent table workers",
			},
		},
		Action: r.Export,
	}
}

// Export runs a catalog export and logs progress as it arrives.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return err
	}

	prog := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range prog {
			r.logger.Info(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := tasks.NewCatalogEngine(catalog).Export(ctx, prog, tasks.ExportOpts{
		Format:     format,
		OutputDir:  cmd.String("dir"),
		NumWorkers: cmd.Int("workers"),
	})
	close(prog)
	<-done
	if err != nil {
		return err
	}

	styles := formatter.Styles()
	for _, table := range result.Tables {
		if table.Success {
			r.writePlain("%s %s (%d records)\n", styles.Success("✓"), table.File, table.Records)
		} else {
			r.writePlain("%s %s: %s\n", styles.Failure("✗"), table.Table, table.ErrorMessage)
		}
	}
	r.writePlain("Manifest: %s\n", result.ManifestPath)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d tables failed to export", result.Failed, len(result.Tables))
	}
	return nil
}
