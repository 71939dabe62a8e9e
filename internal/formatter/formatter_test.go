package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/shared"
	tu "github.com/desertthunder/mediarights/internal/testing"
)

func fixtures() []models.Content {
	dune := tu.Dune().WithID(1)
	return []models.Content{dune, {ID: 2, Title: "Arrival, the film"}}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToText", func(t *testing.T) {
		output := string(ExportToText("Content", fixtures()))

		if !strings.Contains(output, "Content (2)") {
			t.Errorf("text missing heading, got: %s", output)
		}
		if !strings.Contains(output, "1: Dune [Science Fiction] (2021)\n") {
			t.Errorf("text missing first record, got: %s", output)
		}
		if !strings.Contains(output, "2: Arrival, the film\n") {
			t.Errorf("text missing second record, got: %s", output)
		}
	})

	t.Run("ExportToText with no records", func(t *testing.T) {
		output := string(ExportToText("Licenses", []models.LicenseXref{}))

		if !strings.Contains(output, "Licenses (0)") {
			t.Errorf("text missing heading, got: %s", output)
		}
		if !strings.Contains(output, "No records.") {
			t.Errorf("expected empty notice, got: %s", output)
		}
	})

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(fixtures(), ContentColumns)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}

		if len(rows) != 3 {
			t.Fatalf("expected header and 2 rows, got %d", len(rows))
		}
		if strings.Join(rows[0], ",") != "id,title,genre,content_type,release_year,notes" {
			t.Errorf("unexpected header: %v", rows[0])
		}
		if rows[1][1] != "Dune" || rows[1][4] != "2021" {
			t.Errorf("unexpected first row: %v", rows[1])
		}
		if rows[2][1] != "Arrival, the film" {
			t.Errorf("comma in title not preserved: %v", rows[2])
		}
		if rows[2][2] != "" || rows[2][5] != "" {
			t.Errorf("absent values should be empty cells: %v", rows[2])
		}
	})

	t.Run("ExportToCSV licenses", func(t *testing.T) {
		licenses := []models.LicenseXref{{ID: 1, ContentID: 1, DistributorID: 2, Terms: models.Ptr("exclusive")}}

		data, err := ExportToCSV(licenses, LicenseColumns)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		if !strings.Contains(string(data), "1,1,2,,,exclusive") {
			t.Errorf("unexpected license row, got: %s", data)
		}
	})

	t.Run("Export JSON", func(t *testing.T) {
		data, err := Export(FormatJSON, "Content", fixtures(), ContentColumns)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		var decoded []map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded) != 2 {
			t.Fatalf("expected 2 records, got %d", len(decoded))
		}

		restored, err := models.ContentFromMap(decoded[0])
		if err != nil {
			t.Fatalf("failed to rebuild content: %v", err)
		}
		if restored.Title != "Dune" || *restored.ReleaseYear != 2021 {
			t.Errorf("unexpected record: %+v", restored)
		}
	})

	t.Run("ExportRecord", func(t *testing.T) {
		d := models.Distributor{ID: 3, Name: "Streamer X", Region: models.Ptr("EU")}
		output := string(ExportRecord(d, DistributorColumns))

		for _, want := range []string{"id", "Streamer X", "region         EU"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in output, got: %s", want, output)
			}
		}
		if !strings.Contains(output, "contact_email  -") {
			t.Errorf("absent value should render as '-', got: %s", output)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{" csv ", FormatCSV},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("yaml"); !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.csv")

		if err := WriteExport([]byte("id\n"), path); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		tu.AssertFileExists(t, path)
		data, _ := os.ReadFile(path)
		if string(data) != "id\n" {
			t.Errorf("unexpected file contents: %q", data)
		}
	})

	t.Run("requires a path", func(t *testing.T) {
		if err := WriteExport(nil, ""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestPalette(t *testing.T) {
	p := Styles()
	for _, render := range []func(string) string{p.Title, p.Success, p.Failure, p.Warning, p.Help} {
		if !strings.Contains(render("hello"), "hello") {
			t.Error("styled text should contain the input")
		}
	}
}
