package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/shared"
	tu "github.com/desertthunder/mediarights/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	output := &bytes.Buffer{}
	logger, _ := tu.BufferedLogger()
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: logger,
		Output: output,
		DB:     tu.MustOpenDB(t),
	})
	return runner, output
}

func run(r *Runner, args ...string) error {
	return newApp(r).Run(context.Background(), append([]string{"mediarights"}, args...))
}

func mustRun(t *testing.T, r *Runner, out *bytes.Buffer, args ...string) string {
	t.Helper()
	out.Reset()
	require.NoError(t, run(r, args...))
	return out.String()
}

func seedCatalog(t *testing.T, r *Runner, out *bytes.Buffer) {
	t.Helper()
	mustRun(t, r, out, "content", "add", "--title", "Dune", "--genre", "Sci-Fi", "--type", "Movie", "--year", "2021")
	mustRun(t, r, out, "distributor", "add", "--name", "Streamer X", "--email", "x@y.com", "--region", "EU")
}

func TestContentCommands(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, out := newTestRunner(t)

		got := mustRun(t, r, out, "content", "add", "--title", "Dune", "--genre", "Sci-Fi", "--year", "2021")
		assert.Contains(t, got, "Added content 1: Dune [Sci-Fi] (2021)")
	})

	t.Run("add rejects blank title", func(t *testing.T) {
		r, out := newTestRunner(t)

		err := run(r, "content", "add", "--title", "   ")
		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, out.String(), "Could not add content: Title is required for content.")
	})

	t.Run("add requires title flag", func(t *testing.T) {
		r, _ := newTestRunner(t)
		assert.Error(t, run(r, "content", "add", "--genre", "Drama"))
	})

	t.Run("get", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		got := mustRun(t, r, out, "content", "get", "1")
		assert.Contains(t, got, "Dune")
		assert.Contains(t, got, "Movie")

		got = mustRun(t, r, out, "content", "get", "--json", "1")
		var content models.Content
		require.NoError(t, json.Unmarshal([]byte(got), &content))
		assert.Equal(t, "Dune", content.Title)
		assert.Equal(t, 2021, *content.ReleaseYear)
	})

	t.Run("get missing", func(t *testing.T) {
		r, out := newTestRunner(t)

		err := run(r, "content", "get", "5")
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Contains(t, out.String(), "No content found with id 5.")
	})

	t.Run("get bad id", func(t *testing.T) {
		r, _ := newTestRunner(t)

		assert.ErrorIs(t, run(r, "content", "get", "abc"), shared.ErrInvalidArgument)
		assert.ErrorIs(t, run(r, "content", "get"), shared.ErrMissingArgument)
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		got := mustRun(t, r, out, "content", "update", "--title", "Dune: Part One", "--genre", "", "1")
		assert.Contains(t, got, "Updated content 1: Dune: Part One (2021)")

		content, err := r.catalog.Contents.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, content.Genre)
		assert.Equal(t, "Movie", *content.ContentType)
	})

	t.Run("update missing", func(t *testing.T) {
		r, out := newTestRunner(t)

		err := run(r, "content", "update", "--title", "Ghost", "9")
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Contains(t, out.String(), "No content found with id 9.")
	})

	t.Run("delete", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		assert.Contains(t, mustRun(t, r, out, "content", "delete", "1"), "Deleted content 1")

		out.Reset()
		assert.ErrorIs(t, run(r, "content", "delete", "1"), shared.ErrNotFound)
		assert.Contains(t, out.String(), "No content found with id 1.")
	})

	t.Run("list", func(t *testing.T) {
		r, out := newTestRunner(t)

		assert.Contains(t, mustRun(t, r, out, "content", "list"), "No records.")

		seedCatalog(t, r, out)
		mustRun(t, r, out, "content", "add", "--title", "Arrival")

		got := mustRun(t, r, out, "content", "list")
		assert.Contains(t, got, "Content (2)")
		assert.Contains(t, got, "1: Dune [Sci-Fi] (2021)")
		assert.Contains(t, got, "2: Arrival")

		got = mustRun(t, r, out, "content", "list", "--csv")
		assert.Contains(t, got, "id,title,genre,content_type,release_year,notes\n")
		assert.Contains(t, got, "1,Dune,Sci-Fi,Movie,2021,\n")

		assert.ErrorIs(t, run(r, "content", "list", "--json", "--csv"), shared.ErrInvalidArgument)
	})

	t.Run("list to file", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)
		path := filepath.Join(t.TempDir(), "content.json")

		got := mustRun(t, r, out, "content", "list", "--format", "json", "--output", path)
		assert.Contains(t, got, "Wrote 1 records to "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var contents []models.Content
		require.NoError(t, json.Unmarshal(data, &contents))
		assert.Len(t, contents, 1)
	})
}

func TestDistributorCommands(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, out := newTestRunner(t)

		got := mustRun(t, r, out, "distributor", "add", "--name", "Streamer X", "--email", "x@y.com", "--region", "EU")
		assert.Contains(t, got, "Added distributor 1: Streamer X <x@y.com> [EU]")
	})

	t.Run("add rejects bad email", func(t *testing.T) {
		r, out := newTestRunner(t)

		err := run(r, "distributor", "add", "--name", "A", "--email", "nobody")
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, out.String(), "Could not add distributor: Contact email must contain '@' if provided.")
	})

	t.Run("update and delete", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		out.Reset()
		err := run(r, "dist", "update", "--email", "broken", "1")
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, out.String(), "Could not update distributor:")

		got := mustRun(t, r, out, "dist", "update", "--region", "US", "1")
		assert.Contains(t, got, "Updated distributor 1: Streamer X <x@y.com> [US]")

		assert.Contains(t, mustRun(t, r, out, "dist", "rm", "1"), "Deleted distributor 1")

		out.Reset()
		assert.ErrorIs(t, run(r, "dist", "get", "1"), shared.ErrNotFound)
		assert.Contains(t, out.String(), "No distributor found with id 1.")
	})

	t.Run("list json", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		var distributors []models.Distributor
		require.NoError(t, json.Unmarshal([]byte(mustRun(t, r, out, "distributor", "list", "--json")), &distributors))
		require.Len(t, distributors, 1)
		assert.Equal(t, "Streamer X", distributors[0].Name)
	})
}

func TestLicenseCommands(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		got := mustRun(t, r, out, "license", "add", "--content-id", "1", "--distributor-id", "1", "--terms", "exclusive")
		assert.Contains(t, got, "Added License 1: Content 1 -> Distributor 1")

		out.Reset()
		err := run(r, "license", "add", "--content-id", "999", "--distributor-id", "1")
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, out.String(), "Could not add license: No content found with id 999.")

		var licenses []models.LicenseXref
		require.NoError(t, json.Unmarshal([]byte(mustRun(t, r, out, "license", "list", "--json")), &licenses))
		require.Len(t, licenses, 1)
		assert.Equal(t, int64(1), licenses[0].ContentID)
		assert.Equal(t, "exclusive", *licenses[0].Terms)
	})

	t.Run("add rejects non-positive ids", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)

		out.Reset()
		err := run(r, "license", "add", "--content-id", "0", "--distributor-id", "1")
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, out.String(), "Content id and distributor id must be positive integers.")
	})

	t.Run("list filters", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)
		mustRun(t, r, out, "content", "add", "--title", "Arrival")
		mustRun(t, r, out, "license", "add", "--content-id", "1", "--distributor-id", "1", "--terms", "exclusive")
		mustRun(t, r, out, "license", "add", "--content-id", "2", "--distributor-id", "1", "--start", "2024-01-01")

		got := mustRun(t, r, out, "license", "list", "--content-id", "1", "--csv")
		assert.Contains(t, got, "id,content_id,distributor_id,start_date,end_date,terms\n")
		assert.Contains(t, got, "1,1,1,,,exclusive\n")
		assert.NotContains(t, got, "2024-01-01")

		got = mustRun(t, r, out, "license", "list", "--distributor-id", "1")
		assert.Contains(t, got, "Licenses (2)")

		assert.ErrorIs(t, run(r, "license", "list", "--content-id", "1", "--distributor-id", "1"), shared.ErrInvalidArgument)
	})

	t.Run("update re-checks references", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)
		mustRun(t, r, out, "license", "add", "--content-id", "1", "--distributor-id", "1", "--terms", "exclusive")

		out.Reset()
		err := run(r, "license", "update", "--distributor-id", "42", "1")
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, out.String(), "Could not update license: No distributor found with id 42.")

		license, err := r.catalog.Licenses.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), license.DistributorID)

		mustRun(t, r, out, "license", "update", "--end", "2030-12-31", "1")
		license, err = r.catalog.Licenses.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "2030-12-31", *license.EndDate)
		assert.Equal(t, "exclusive", *license.Terms)
	})

	t.Run("delete", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)
		mustRun(t, r, out, "license", "add", "--content-id", "1", "--distributor-id", "1")

		assert.Contains(t, mustRun(t, r, out, "license", "delete", "1"), "Deleted license 1")

		out.Reset()
		assert.ErrorIs(t, run(r, "license", "get", "1"), shared.ErrNotFound)
		assert.Contains(t, out.String(), "No license found with id 1.")
	})
}

func TestSetupCommands(t *testing.T) {
	t.Run("setup database creates config and schema", func(t *testing.T) {
		dir := t.TempDir()
		wd := tu.MustGetwd(t)
		tu.MustChdir(t, dir)
		t.Cleanup(func() { tu.MustChdir(t, wd) })
		t.Setenv(shared.EnvDatabasePath, "")

		output := &bytes.Buffer{}
		logger, _ := tu.BufferedLogger()
		r := NewRunner(RunnerOpts{Logger: logger, Output: output})

		require.NoError(t, run(r, "setup", "database"))

		tu.AssertFileExists(t, filepath.Join(dir, "config.toml"))
		tu.AssertFileExists(t, filepath.Join(dir, "mediarights.db"))
		assert.Contains(t, output.String(), "Database ready at ./mediarights.db")
		assert.Nil(t, r.db, "database should be closed after the command")
	})

	t.Run("rollback", func(t *testing.T) {
		r, out := newTestRunner(t)

		assert.Contains(t, mustRun(t, r, out, "setup", "rollback"), "Rolled back latest migration")

		var count int
		require.NoError(t, r.db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'content'"))
		assert.Zero(t, count)
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("exports every table", func(t *testing.T) {
		r, out := newTestRunner(t)
		seedCatalog(t, r, out)
		dir := filepath.Join(t.TempDir(), "snapshot")

		got := mustRun(t, r, out, "export", "--dir", dir, "--format", "csv")

		for _, name := range []string{"content.csv", "distributors.csv", "licenses.csv", "export_manifest.json"} {
			tu.AssertFileExists(t, filepath.Join(dir, name))
		}
		assert.Contains(t, got, "(1 records)")
		assert.Contains(t, got, "Manifest: "+filepath.Join(dir, "export_manifest.json"))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		r, _ := newTestRunner(t)
		assert.ErrorIs(t, run(r, "export", "--format", "xml"), shared.ErrInvalidArgument)
	})
}

func TestLogFileFlag(t *testing.T) {
	r, out := newTestRunner(t)
	path := filepath.Join(t.TempDir(), "run.log")

	mustRun(t, r, out, "--debug", "--log-file", path, "content", "add", "--title", "Dune")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "configuration loaded")
}
