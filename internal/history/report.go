package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// ReportWriter emits the optional per-run CSV report: one row per processed
// file regardless of outcome. Unlike the rename log it is overwritten each
// run and is never used for undo.
type ReportWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// OpenReport creates (truncating) the report file and writes the header row.
func OpenReport(path string) (*ReportWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open report %s: %w", path, err)
	}

	r := &ReportWriter{path: path, f: f, w: csv.NewWriter(f)}
	if err := r.writeRow("old_path", "new_path", "mode", "status"); err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// Path returns the report file location, for the end-of-run summary.
func (r *ReportWriter) Path() string { return r.path }

// Write appends one row. newPath may be empty when no target was computed
// (e.g. the file vanished before processing).
func (r *ReportWriter) Write(oldPath, newPath, mode, status string) error {
	return r.writeRow(oldPath, newPath, mode, status)
}

func (r *ReportWriter) writeRow(fields ...string) error {
	if err := r.w.Write(fields); err != nil {
		return fmt.Errorf("write report row: %w", err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// Close flushes and closes the report file.
func (r *ReportWriter) Close() error {
	r.w.Flush()
	return r.f.Close()
}
