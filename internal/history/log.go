// Package history owns all persistence related to rename history: the
// append-only rename log, the optional per-run report, and the undo engine
// that replays the log backwards.
//
// The log format is append-only CSV to keep undo simple, auditable, and
// resilient to partial failures.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// logAction is the action column value for rename rows; undo ignores
// anything else.
const logAction = "rename"

// LogWriter is the append-only CSV writer for rename operations. It holds
// an exclusive lock for the run's duration so two concurrent runs cannot
// interleave rows, and every write is flushed to disk before returning so a
// crash mid-batch cannot lose completed renames.
type LogWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
	lock *flock.Flock
}

// OpenLog opens (creating if needed) the rename log in append mode and
// takes the run lock. Callers must Close when the run ends.
func OpenLog(path string) (*LogWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock rename log %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("rename log %s is in use by another scanstamp run", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open rename log %s: %w", path, err)
	}

	return &LogWriter{path: path, f: f, w: csv.NewWriter(f), lock: lock}, nil
}

// Path returns the log file location, for the end-of-run summary.
func (l *LogWriter) Path() string { return l.path }

// WriteRename records one completed rename. The row is flushed and synced
// before control returns to the orchestrator: durability over throughput.
func (l *LogWriter) WriteRename(oldPath, newPath string) error {
	ts := time.Now().Format("2006-01-02T15:04:05")
	if err := l.w.Write([]string{ts, logAction, oldPath, newPath}); err != nil {
		return fmt.Errorf("write rename log row: %w", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("flush rename log: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("sync rename log: %w", err)
	}
	return nil
}

// Close flushes, closes the file, and releases the run lock.
func (l *LogWriter) Close() error {
	l.w.Flush()
	err := l.f.Close()
	if unlockErr := l.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}
