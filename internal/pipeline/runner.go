// Package pipeline orchestrates file discovery, per-file rename decisions,
// and batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/scanstamp/internal/config"
	"github.com/backmassage/scanstamp/internal/discover"
	"github.com/backmassage/scanstamp/internal/history"
	"github.com/backmassage/scanstamp/internal/naming"
	"github.com/backmassage/scanstamp/internal/term"
)

// Per-file statuses recorded in the report CSV. The summary buckets map
// onto these in stats.go.
const (
	statusRenamed        = "renamed"
	statusRenamedDry     = "renamed:dry-run"
	statusExists         = "exists"
	statusFailed         = "failed"
	statusSkipped        = "skipped"
	statusSkippedNotFile = "skipped:not-a-file"
	statusSkippedUser    = "skipped:user"
)

// batch carries the shared state of one run so per-file helpers don't drag
// six parameters each.
type batch struct {
	cfg    *config.Config
	con    term.Console
	collab Collaborators
	log    *history.LogWriter
	report *history.ReportWriter
	stats  RunStats
}

// Run is the top-level batch entry point. It acquires the rename log and
// optional report, discovers files, processes each sequentially, and always
// prints the summary block. A failure on a single file never aborts the
// batch; only the inability to open the log or report does.
func Run(ctx context.Context, cfg *config.Config, con term.Console, collab Collaborators) (RunStats, error) {
	b := &batch{cfg: cfg, con: con, collab: collab}

	logWriter, err := history.OpenLog(cfg.LogPath)
	if err != nil {
		return b.stats, err
	}
	defer logWriter.Close()
	b.log = logWriter

	if cfg.ReportPath != "" {
		reportWriter, err := history.OpenReport(cfg.ReportPath)
		if err != nil {
			return b.stats, err
		}
		defer reportWriter.Close()
		b.report = reportWriter
	}

	files := discover.Files(cfg.Paths, cfg.Recursive, cfg.Include, cfg.Exclude)
	b.stats.Total = len(files)

	logBatchHeader(b)

	for i, path := range files {
		b.stats.Current = i + 1

		if ctx.Err() != nil {
			con.Warn("Interrupted")
			break
		}

		b.stats.count(processFile(ctx, b, path))
	}

	printSummary(b)
	return b.stats, nil
}

// processFile handles one file: validate → date → title → target → collision
// → confirm → rename. Returns the status recorded in the report.
func processFile(ctx context.Context, b *batch, path string) string {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		report(b, path, "", statusSkippedNotFile)
		return statusSkippedNotFile
	}

	oldName := filepath.Base(path)

	// Date-only mode exists to stamp undated files; dated ones pass through.
	if b.cfg.Mode == config.ModeDateOnly && naming.IsDatedFilename(oldName) {
		b.con.Print("Already dated, skipping: %s", oldName)
		report(b, path, "", statusSkipped)
		return statusSkipped
	}

	// Extraction feeds both the smart title and document-date detection, so
	// run it at most once per file.
	var excerpt string
	if b.cfg.Mode == config.ModeSmartTitle || b.cfg.PreferDocDate {
		excerpt = b.collab.Extract(ctx, path, b.cfg.ExcerptMode, b.cfg.MaxChars, b.cfg.OCR).Excerpt
	}

	datePrefix, err := naming.ChooseDatePrefix(path, b.cfg.Date, b.cfg.UseMtime)
	if err != nil {
		b.con.Error("FAILED: %s (%v)", path, err)
		report(b, path, "", statusFailed)
		return statusFailed
	}
	if b.cfg.Date == "" && b.cfg.PreferDocDate {
		if docDate, ok := naming.FindDocDate(excerpt); ok {
			datePrefix = docDate
		}
	}
	if b.cfg.KeepDate && b.cfg.Mode == config.ModeSmartTitle && naming.IsDatedFilename(oldName) {
		datePrefix = oldName[:8]
	}

	var title string
	if b.cfg.Mode == config.ModeSmartTitle {
		title = smartTitle(ctx, b, path, excerpt)
	} else {
		title = naming.ExistingTitle(path)
	}

	finalTitle := naming.SanitizeTitle(title, b.cfg.Mode != config.ModeKeepTitle)
	ext := filepath.Ext(path)
	newName := naming.BuildTargetName(datePrefix, finalTitle, ext)
	newPath := filepath.Join(filepath.Dir(path), newName)

	if newPath == path {
		report(b, path, newPath, statusSkipped)
		return statusSkipped
	}

	if _, err := os.Lstat(newPath); err == nil {
		if !b.cfg.Suffix {
			b.con.Warn("Exists, skipping: %s", newName)
			report(b, path, newPath, statusExists)
			return statusExists
		}
		newPath = nextFreeName(path, datePrefix, finalTitle, ext)
		newName = filepath.Base(newPath)
	}

	if b.cfg.DryRun {
		b.con.Print("DRY RUN: %s -> %s", oldName, newName)
		report(b, path, newPath, statusRenamedDry)
		return statusRenamedDry
	}

	if !b.cfg.Yes {
		if !b.con.Confirm("Rename?\n  %s\n-> %s\n[y/N]: ", oldName, newName) {
			report(b, path, newPath, statusSkippedUser)
			return statusSkippedUser
		}
	}

	if err := os.Rename(path, newPath); err != nil {
		b.con.Error("FAILED: %s (%v)", path, err)
		report(b, path, newPath, statusFailed)
		return statusFailed
	}

	b.con.Success("Renamed: %s -> %s", oldName, newName)
	if err := b.log.WriteRename(path, newPath); err != nil {
		// The rename itself succeeded; losing the log row costs undo
		// coverage for this one file, not the batch.
		b.con.Warn("Could not record rename in log: %v", err)
	}
	report(b, path, newPath, statusRenamed)
	return statusRenamed
}

// nextFreeName appends " (2)", " (3)", ... to the title until the candidate
// does not exist. The existence recheck guards each candidate in turn.
func nextFreeName(path, datePrefix, title, ext string) string {
	dir := filepath.Dir(path)
	for i := 2; ; i++ {
		candidate := filepath.Join(dir, naming.BuildTargetName(datePrefix, fmt.Sprintf("%s (%d)", title, i), ext))
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
	}
}

func report(b *batch, oldPath, newPath, status string) {
	if b.report == nil {
		return
	}
	if err := b.report.Write(oldPath, newPath, string(b.cfg.Mode), status); err != nil {
		b.con.Warn("Could not write report row: %v", err)
	}
}

func logBatchHeader(b *batch) {
	b.con.Info("Run %s", uuid.NewString())
	b.con.Info("Found %d files", b.stats.Total)
	b.con.Info("Mode: %s", b.cfg.Mode)
	if b.cfg.DryRun {
		b.con.Info("Dry run: no files will be renamed")
	}
}

// printSummary emits the fixed summary block. It runs even when the batch
// was interrupted so partial runs still account for what they touched.
func printSummary(b *batch) {
	b.con.Print("")
	b.con.Print("Summary")
	b.con.Print("Renamed: %d", b.stats.Renamed)
	b.con.Print("Skipped: %d", b.stats.Skipped)
	b.con.Print("Exists:  %d", b.stats.Exists)
	b.con.Print("Failed:  %d", b.stats.Failed)
	b.con.Print("Log:     %s", b.cfg.LogPath)
	if b.cfg.ReportPath != "" {
		b.con.Print("Report:  %s", b.cfg.ReportPath)
	}
}
