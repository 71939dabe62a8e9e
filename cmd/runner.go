package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/repositories"
	"github.com/desertthunder/mediarights/internal/services"
	"github.com/desertthunder/mediarights/internal/shared"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The database is opened on first use so commands that never touch storage stay cheap.
type Runner struct {
	config  *shared.Config
	logger  *log.Logger
	output  io.Writer
	db      *sqlx.DB
	ownsDB  bool
	catalog *services.Catalog
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config // Loaded from --config when nil
	Logger *log.Logger
	Output io.Writer
	DB     *sqlx.DB // Opened from Config when nil; a provided DB is never closed by the Runner
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		db:     opts.DB,
	}
	if r.db != nil {
		r.catalog = services.NewCatalog(repositories.NewStore(r.db), r.logger)
	}
	return r
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, contentCommand, distributorCommand, licenseCommand, exportCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// before loads configuration and applies the log level ahead of any command action.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.config == nil {
		config, err := loadConfig(cmd.String("config"))
		if err != nil {
			return ctx, err
		}
		r.config = config
	}
	r.config.ApplyEnv()

	if path := cmd.String("log-file"); path != "" {
		r.config.Log.File = path
	}
	if r.config.Log.File != "" {
		logger, err := shared.NewFileLogger(r.config.Log.File)
		if err != nil {
			return ctx, err
		}
		r.logger = logger
	}

	level := r.config.LogLevel()
	if cmd.Bool("debug") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	r.logger.Debug("configuration loaded", "database", r.config.Database.Path, "level", level)
	return ctx, nil
}

// after releases the database when the Runner opened it.
func (r *Runner) after(ctx context.Context, cmd *cli.Command) error {
	return r.close()
}

func (r *Runner) close() error {
	if r.db == nil || !r.ownsDB {
		return nil
	}
	err := r.db.Close()
	r.db, r.catalog, r.ownsDB = nil, nil, false
	return err
}

// open opens the database on first use, applies migrations and builds the service catalog.
func (r *Runner) open() (*services.Catalog, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}
	if r.config == nil {
		r.config = shared.DefaultConfig()
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrDatabase, err)
	}
	shared.ConfigureDatabase(db, r.config.Database)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db, r.ownsDB = db, true
	r.catalog = services.NewCatalog(repositories.NewStore(db), r.logger)
	return r.catalog, nil
}

// loadConfig reads path when it exists and falls back to defaults otherwise.
func loadConfig(path string) (*shared.Config, error) {
	if path == "" {
		return shared.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return shared.DefaultConfig(), nil
	}
	return shared.LoadConfig(path)
}

// reject prints a validation failure as "Could not <verb> <entity>: <message>" and returns err unchanged.
func (r *Runner) reject(verb, entity string, err error) error {
	if models.IsValidationError(err) {
		var ve *models.ValidationError
		errors.As(err, &ve)
		r.writePlain("%s\n", formatter.Styles().Failure(fmt.Sprintf("Could not %s %s: %s", verb, entity, ve.Message)))
		return err
	}
	return fmt.Errorf("failed to %s %s: %w", verb, entity, err)
}

// notFound prints the missing-record message and returns a wrapped [shared.ErrNotFound].
func (r *Runner) notFound(entity string, id int64) error {
	r.writePlain("%s\n", formatter.Styles().Warning(fmt.Sprintf("No %s found with id %d.", entity, id)))
	return fmt.Errorf("%w: %s %d", shared.ErrNotFound, entity, id)
}

// export writes records in the format selected by --json/--csv, to --output when set.
func export[T formatter.Record](r *Runner, cmd *cli.Command, title string, records []T, columns []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	data, err := formatter.Export(format, title, records, columns)
	if err != nil {
		return err
	}
	if format == formatter.FormatJSON {
		data = append(data, '\n')
	}

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(data, path); err != nil {
			return err
		}
		r.logger.Info("export written", "path", path, "records", len(records), "format", format)
		return r.writePlain("%s\n", formatter.Styles().Success(fmt.Sprintf("Wrote %d records to %s", len(records), path)))
	}

	return r.writeBytes(data)
}

// show writes a single record as JSON with --json or as a field listing.
func show(r *Runner, cmd *cli.Command, record formatter.Record, columns []string) error {
	if cmd.Bool("json") {
		return r.writeJSON(record, true)
	}
	return r.writeBytes(formatter.ExportRecord(record, columns))
}

func outputFormat(cmd *cli.Command) (formatter.Format, error) {
	asJSON, asCSV := cmd.Bool("json"), cmd.Bool("csv")
	switch {
	case asJSON && asCSV:
		return "", fmt.Errorf("%w: cannot specify both --json and --csv", shared.ErrInvalidArgument)
	case asJSON:
		return formatter.FormatJSON, nil
	case asCSV:
		return formatter.FormatCSV, nil
	default:
		return formatter.ParseFormat(cmd.String("format"))
	}
}

// parseID reads the positional id argument.
func parseID(cmd *cli.Command) (int64, error) {
	raw := strings.TrimSpace(cmd.StringArg("id"))
	if raw == "" {
		return 0, fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", shared.ErrInvalidArgument, raw)
	}
	return id, nil
}

// optionalFlag returns the trimmed flag value when the flag was given, so "" clears a field on update.
func optionalFlag(cmd *cli.Command, name string, current *string) *string {
	if !cmd.IsSet(name) {
		return current
	}
	return shared.OptionalString(cmd.String(name))
}

// verbatimFlag is like optionalFlag but keeps the value untrimmed. Only an empty value is absent.
func verbatimFlag(cmd *cli.Command, name string, current *string) *string {
	if !cmd.IsSet(name) {
		return current
	}
	if v := cmd.String(name); v != "" {
		return &v
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := formatter.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
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
