package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/backmassage/scanstamp/internal/history"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand("test")
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestExecute_ModeFlagConflict(t *testing.T) {
	err := execute(t, "--date-only", "--redate", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one mode flag")
}

func TestExecute_InvalidDate(t *testing.T) {
	err := execute(t, "--date", "2025", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "YYYYMMDD")
}

func TestExecute_KeepDateRequiresSmartTitle(t *testing.T) {
	err := execute(t, "--keep-date", "--redate", t.TempDir())
	require.Error(t, err)
}

func TestExecute_UndoMissingLog(t *testing.T) {
	err := execute(t, "--undo", filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, history.ErrLogNotFound)
}

func TestExecute_ConfigFileMissing(t *testing.T) {
	err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), t.TempDir())
	require.Error(t, err)
}

func TestExecute_DryRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))
	logPath := filepath.Join(t.TempDir(), "log.csv")

	err := execute(t, dir,
		"--dry-run", "--yes", "--no-llm",
		"--date", "20250101",
		"--log", logPath,
		"--color", "never")
	require.NoError(t, err)

	// Dry run must leave the tree untouched but still create the log.
	_, err = os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(logPath)
	require.NoError(t, err)
}

func TestExecute_RenameAndUndoEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))
	logPath := filepath.Join(t.TempDir(), "log.csv")

	err := execute(t, dir,
		"--yes", "--no-llm",
		"--date", "20250101",
		"--log", logPath,
		"--color", "never")
	require.NoError(t, err)

	renamed := filepath.Join(dir, "20250101 - Scan.txt")
	_, err = os.Stat(renamed)
	require.NoError(t, err)

	err = execute(t, "--undo", logPath, "--yes", "--color", "never")
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}
