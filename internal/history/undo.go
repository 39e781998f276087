package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/scanstamp/internal/term"
)

// ErrLogNotFound is returned when the undo log does not exist; there is
// nothing to undo and the invocation fails hard.
var ErrLogNotFound = errors.New("undo log not found")

// UndoOptions carries the safety flags for an undo run.
type UndoOptions struct {
	DryRun bool
	Yes    bool
}

// renamePair is one logged (old, new) rename.
type renamePair struct {
	oldPath string
	newPath string
}

// Undo reverses the renames recorded in the log at logPath, last rename
// first. Each pair is independent: a skip or failure on one never blocks
// the rest. Malformed rows and non-rename actions are ignored.
func Undo(logPath string, opts UndoOptions, con term.Console) error {
	pairs, err := readLog(logPath)
	if err != nil {
		return err
	}

	// Reverse order matters: a chain of renames on related files must
	// unwind from the most recent entry to avoid clobbering.
	for i := len(pairs) - 1; i >= 0; i-- {
		undoOne(pairs[i], opts, con)
	}
	return nil
}

// readLog parses the rename log, keeping only well-formed rename rows.
func readLog(logPath string) ([]renamePair, error) {
	f, err := os.Open(logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogNotFound, logPath)
		}
		return nil, fmt.Errorf("open undo log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var pairs []renamePair
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed rows are a resilience case, not an error.
			continue
		}
		if len(row) != 4 || row[1] != logAction {
			continue
		}
		pairs = append(pairs, renamePair{oldPath: row[2], newPath: row[3]})
	}
	return pairs, nil
}

// undoOne reverses a single logged rename, honoring the conflict guard and
// confirmation semantics.
func undoOne(p renamePair, opts UndoOptions, con term.Console) {
	// The file may have moved or been deleted since; skip, don't fail.
	if _, err := os.Lstat(p.newPath); err != nil {
		con.Warn("Missing, skipping undo: %s", p.newPath)
		return
	}

	// Never overwrite unrelated data that now occupies the original name.
	if _, err := os.Lstat(p.oldPath); err == nil {
		con.Warn("Conflict, skipping undo: %s", p.oldPath)
		return
	}

	if opts.DryRun {
		con.Print("DRY RUN UNDO: %s -> %s", p.newPath, p.oldPath)
		return
	}

	if !opts.Yes {
		if !con.Confirm("Undo rename?\n  %s\n-> %s\n[y/N]: ", p.newPath, p.oldPath) {
			con.Print("Skipping undo: %s", p.newPath)
			return
		}
	}

	if err := os.Rename(p.newPath, p.oldPath); err != nil {
		con.Error("Undo failed: %s (%v)", p.newPath, err)
		return
	}
	con.Success("Undone: %s -> %s", p.newPath, p.oldPath)
}
