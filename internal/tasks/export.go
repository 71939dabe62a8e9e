package tasks

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/desertthunder/mediarights/internal/formatter"
	"github.com/desertthunder/mediarights/internal/models"
	"github.com/desertthunder/mediarights/internal/services"
	"github.com/desertthunder/mediarights/internal/shared"
)

// ManifestName is the file written alongside every catalog export
const ManifestName = "export_manifest.json"

// ExportOpts contains configuration for a catalog export.
type ExportOpts struct {
	Format     formatter.Format // Export format: text, json or csv (default: json)
	OutputDir  string           // Output directory (default: mediarights_export_{epoch})
	NumWorkers int              // Concurrent table workers (default: one per table)
}

// ExportResult summarizes a catalog export and is also the manifest content.
type ExportResult struct {
	OutputDirectory string              `json:"output_directory"`
	Format          formatter.Format    `json:"format"`
	ExportedAt      time.Time           `json:"exported_at"`
	Successful      int                 `json:"successful"`
	Failed          int                 `json:"failed"`
	Tables          []TableExportResult `json:"tables"`
	ManifestPath    string              `json:"-"`
}

// TableExportResult describes the export of one table.
type TableExportResult struct {
	Table        string `json:"table"`
	Records      int    `json:"records"`
	File         string `json:"file,omitempty"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
	Error        error  `json:"-"`

	order int
}

// tableJob fetches and encodes one table.
type tableJob struct {
	order  int
	table  string
	encode func(ctx context.Context, format formatter.Format) ([]byte, int, error)
}

// CatalogEngine runs operations spanning every entity service.
type CatalogEngine struct {
	catalog *services.Catalog
}

// NewCatalogEngine creates a CatalogEngine over catalog
func NewCatalogEngine(catalog *services.Catalog) *CatalogEngine {
	return &CatalogEngine{catalog: catalog}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *CatalogEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Export writes every table to opts.OutputDir in opts.Format, then writes the manifest.
//
// Tables that fail are recorded in the result; the returned error is reserved for problems with the
// output directory or manifest.
func (e *CatalogEngine) Export(ctx context.Context, prog chan<- ProgressUpdate, opts ExportOpts) (*ExportResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrInvalidArgument)
	}

	if opts.Format == "" {
		opts.Format = formatter.FormatJSON
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("mediarights_export_%d", time.Now().Unix())
	}

	jobs := e.jobs()
	if opts.NumWorkers <= 0 || opts.NumWorkers > len(jobs) {
		opts.NumWorkers = len(jobs)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ExportResult{
		OutputDirectory: opts.OutputDir,
		Format:          opts.Format,
		ExportedAt:      time.Now().UTC(),
		Tables:          make([]TableExportResult, 0, len(jobs)),
	}

	queue := make(chan tableJob, len(jobs))
	results := make(chan TableExportResult, len(jobs))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, queue, results, opts)
	}

	for i, job := range jobs {
		e.sendProgress(prog, exportTableUpdate(i+1, len(jobs), job.table))
		queue <- job
	}
	close(queue)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Tables = append(result.Tables, res)

		if res.Success {
			result.Successful++
			e.sendProgress(prog, tableExportedUpdate(completed, len(jobs), res))
		} else {
			result.Failed++
			e.sendProgress(prog, tableFailedUpdate(completed, len(jobs), res))
		}
	}

	slices.SortFunc(result.Tables, func(a, b TableExportResult) int { return cmp.Compare(a.order, b.order) })

	manifestPath := filepath.Join(opts.OutputDir, ManifestName)
	e.sendProgress(prog, writeManifestUpdate(manifestPath))

	manifest, err := formatter.MarshalJSON(result, true)
	if err != nil {
		return result, fmt.Errorf("export completed but failed to encode manifest: %w", err)
	}
	if err := formatter.WriteExport(manifest, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}

	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker exports tables from the jobs channel until it closes or ctx is done.
func (e *CatalogEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan tableJob,
	results chan<- TableExportResult,
	opts ExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		res := TableExportResult{Table: job.table, order: job.order}

		if err := ctx.Err(); err != nil {
			res.Error = err
			res.ErrorMessage = err.Error()
			results <- res
			continue
		}

		data, count, err := job.encode(ctx, opts.Format)
		if err == nil {
			path := filepath.Join(opts.OutputDir, job.table+"."+extension(opts.Format))
			if err = formatter.WriteExport(data, path); err == nil {
				res.File = path
			}
		}

		res.Records = count
		res.Success = err == nil
		if err != nil {
			res.Error = err
			res.ErrorMessage = err.Error()
		}
		results <- res
	}
}

func (e *CatalogEngine) jobs() []tableJob {
	return []tableJob{
		newTableJob(0, "content", "Content", formatter.ContentColumns, e.catalog.Contents.List),
		newTableJob(1, "distributors", "Distributors", formatter.DistributorColumns, e.catalog.Distributors.List),
		newTableJob(2, "licenses", "Licenses", formatter.LicenseColumns, e.catalog.Licenses.List),
	}
}

func newTableJob[T formatter.Record](
	order int,
	table, title string,
	columns []string,
	list func(context.Context) ([]T, error),
) tableJob {
	return tableJob{
		order: order,
		table: table,
		encode: func(ctx context.Context, format formatter.Format) ([]byte, int, error) {
			records, err := list(ctx)
			if err != nil {
				return nil, 0, fmt.Errorf("failed to list %s: %w", table, err)
			}

			data, err := formatter.Export(format, title, records, columns)
			if err != nil {
				return nil, 0, err
			}
			return data, len(records), nil
		},
	}
}

func extension(format formatter.Format) string {
	switch format {
	case formatter.FormatCSV:
		return "csv"
	case formatter.FormatText:
		return "txt"
	default:
		return "json"
	}
}

var (
	_ formatter.Record = models.Content{}
	_ formatter.Record = models.Distributor{}
	_ formatter.Record = models.LicenseXref{}
)
