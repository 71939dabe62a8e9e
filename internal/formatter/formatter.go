// package formatter renders records as plain text, JSON or CSV for the command line
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/mediarights/internal/shared"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat resolves a user supplied format name. Empty input is [FormatText].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want text, json or csv)", shared.ErrInvalidArgument, s)
	}
}

// Record is a stored entity that can describe itself on one line and as a field map.
type Record interface {
	fmt.Stringer
	ToMap() map[string]any
}

// Column orders for CSV exports, keyed like the records' field maps
var (
	ContentColumns     = []string{"id", "title", "genre", "content_type", "release_year", "notes"}
	DistributorColumns = []string{"id", "name", "contact_email", "region"}
	LicenseColumns     = []string{"id", "content_id", "distributor_id", "start_date", "end_date", "terms"}
)

// Export encodes records in format. columns is only used by [FormatCSV].
func Export[T Record](format Format, title string, records []T, columns []string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(records, true)
	case FormatCSV:
		return ExportToCSV(records, columns)
	default:
		return ExportToText(title, records), nil
	}
}

// ExportToText writes a styled heading followed by one line per record
func ExportToText[T Record](title string, records []T) []byte {
	var buf bytes.Buffer

	if title != "" {
		buf.WriteString(styles.Title(fmt.Sprintf("%s (%d)", title, len(records))))
		buf.WriteString("\n")
	}

	if len(records) == 0 {
		buf.WriteString(styles.Help("No records."))
		buf.WriteString("\n")
		return buf.Bytes()
	}

	for _, record := range records {
		buf.WriteString(record.String())
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// ExportToCSV writes a header row of columns and one row per record.
//
// Absent optional values become empty cells.
func ExportToCSV[T Record](records []T, columns []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range records {
		fields := record.ToMap()
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = cell(fields[column])
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportRecord renders a single record as an indented field listing
func ExportRecord(r Record, columns []string) []byte {
	var buf bytes.Buffer
	fields := r.ToMap()

	width := 0
	for _, column := range columns {
		width = max(width, len(column))
	}

	for _, column := range columns {
		value := cell(fields[column])
		if value == "" {
			value = styles.Help("-")
		}
		fmt.Fprintf(&buf, "%-*s  %s\n", width, column, value)
	}
	return buf.Bytes()
}

// MarshalJSON encodes data, indenting with two spaces when pretty is set.
func MarshalJSON(data any, pretty bool) ([]byte, error) {
	var out []byte
	var err error

	if pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return out, nil
}

// WriteExport writes data to path, creating or truncating the file.
func WriteExport(data []byte, path string) error {
	if path == "" {
		return fmt.Errorf("%w: output path", shared.ErrMissingArgument)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
