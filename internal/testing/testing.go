// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/shared"
	"github.com/jmoiron/sqlx"
)

// MustOpenDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test ends.
func MustOpenDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// BufferedLogger returns a debug-level logger writing to the returned buffer
func BufferedLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)
	logger.SetLevel(log.DebugLevel)
	return logger, &buf
}

// Dune returns a fully populated content fixture without an ID
func Dune() models.Content {
	return models.Content{
		Title:       "Dune",
		Genre:       models.Ptr("Science Fiction"),
		ContentType: models.Ptr("Movie"),
		ReleaseYear: models.Ptr(2021),
		Notes:       models.Ptr("Part one"),
	}
}

// StreamerX returns a distributor fixture without an ID
func StreamerX() models.Distributor {
	return models.Distributor{
		Name:         "Streamer X",
		ContactEmail: models.Ptr("rights@streamerx.tv"),
		Region:       models.Ptr("EU"),
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails once maxWrites writes have gone through
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
