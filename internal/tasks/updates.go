package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ExportTable Phase = iota
	TableExported
	TableFailed
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case ExportTable:
		return "export_table"
	case TableExported:
		return "table_exported"
	case TableFailed:
		return "table_failed"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func exportTableUpdate(step, total int, table string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportTable,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exporting %s...", table),
	}
}

func tableExportedUpdate(step, total int, res TableExportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   TableExported,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exported %d %s records to %s", res.Records, res.Table, res.File),
	}
}

func tableFailedUpdate(step, total int, res TableExportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   TableFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to export %s: %v", res.Table, res.Error),
	}
}

func writeManifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: "Writing manifest " + path,
	}
}
