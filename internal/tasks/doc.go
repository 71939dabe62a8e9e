// Package tasks runs long catalog operations with non-blocking progress reporting.
//
// # Catalog Export
//
// [CatalogEngine.Export] writes a snapshot of every table (content, distributors, licenses) into one
// directory. Each table is a job handed to a small worker pool; a failing table does not stop the others.
// A manifest (export_manifest.json) summarizing the files and record counts is written last.
//
// # Progress Reporting
//
// Operations accept an optional send-only channel of [ProgressUpdate]. Sends use select with default so a
// slow or absent reader never blocks the export.
package tasks
