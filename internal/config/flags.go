package config

// This file registers CLI flags on the cobra command and resolves the
// mutually-exclusive mode flags. Mode flags are captured as plain bools and
// resolved after parsing so Config defaults hold unless a flag is set.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ModeFlags captures the mutually-exclusive mode selector flags.
// [ResolveMode] turns them into a single Mode.
type ModeFlags struct {
	DateOnly  bool
	Redate    bool
	KeepTitle bool
}

// RegisterFlags wires all rename flags into cmd, backed by cfg fields.
// The returned ModeFlags must be passed to [ResolveMode] after parsing.
func RegisterFlags(cmd *cobra.Command, cfg *Config) *ModeFlags {
	modes := &ModeFlags{}
	fl := cmd.Flags()

	// Mode selection.
	fl.BoolVar(&modes.DateOnly, "date-only", false, "Prepend date only; leave the existing filename intact")
	fl.BoolVar(&modes.Redate, "redate", false, "Replace an existing date prefix with a new one")
	fl.BoolVar(&modes.KeepTitle, "keep-title", false, "Keep the current title but add a date prefix")
	fl.BoolVar(&cfg.KeepDate, "keep-date", false, "Keep the existing date prefix in smart-title mode")

	// Safety and UX.
	fl.BoolVar(&cfg.Confirm, "confirm", false, "Prompt for confirmation before each rename")
	fl.BoolVarP(&cfg.Yes, "yes", "y", false, "Skip all confirmation prompts")
	fl.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview renames without making changes")
	fl.StringVar(&cfg.UndoLog, "undo", "", "Undo renames using the given log file")
	fl.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Path for the undo/rename log file")
	fl.StringVar(&cfg.ReportPath, "report", "", "Write a per-run CSV report to this path")

	// Traversal.
	fl.BoolVarP(&cfg.Recursive, "recursive", "r", false, "Recurse into subdirectories")
	fl.StringArrayVar(&cfg.Include, "include", nil, "Only process files matching these patterns (repeatable)")
	fl.StringArrayVar(&cfg.Exclude, "exclude", nil, "Skip files matching these patterns (repeatable)")

	// Date selection.
	fl.StringVar(&cfg.Date, "date", "", "Use this date (YYYYMMDD) instead of auto-detecting")
	fl.BoolVar(&cfg.UseMtime, "use-mtime", false, "Use file modification time for the date")
	fl.BoolVar(&cfg.PreferDocDate, "prefer-doc-date", false, "Prefer a date found inside the document content")

	// Extraction and naming.
	fl.IntVar(&cfg.MaxChars, "chars", cfg.MaxChars, "Max characters to extract for title generation")
	fl.StringVar((*string)(&cfg.ExcerptMode), "excerpt-mode", string(cfg.ExcerptMode),
		"Excerpt strategy: firstline | headings | firstparas | raw")
	fl.BoolVar(&cfg.OCR, "ocr", false, "Use OCR to extract text from image-based documents")

	// Collision handling.
	fl.BoolVar(&cfg.Suffix, "suffix", false, "Append a numeric suffix to avoid filename collisions")

	// Privacy and LLM control.
	fl.BoolVar(&cfg.NoLLM, "no-llm", false, "Disable LLM title generation entirely")
	fl.BoolVar(&cfg.LocalOnly, "local-only", false, "Never send document content to remote APIs")

	// Display.
	fl.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode),
		"Color output: auto | always | never")

	return modes
}

// ResolveMode enforces that at most one mode flag is set and returns the
// active mode; no flag means smart-title.
func (m *ModeFlags) ResolveMode() (Mode, error) {
	var active []string
	if m.DateOnly {
		active = append(active, "--date-only")
	}
	if m.Redate {
		active = append(active, "--redate")
	}
	if m.KeepTitle {
		active = append(active, "--keep-title")
	}
	if len(active) > 1 {
		return "", fmt.Errorf("exactly one mode flag may be set; received: %s",
			strings.Join(active, ", "))
	}

	switch {
	case m.DateOnly:
		return ModeDateOnly, nil
	case m.Redate:
		return ModeRedate, nil
	case m.KeepTitle:
		return ModeKeepTitle, nil
	default:
		return ModeSmartTitle, nil
	}
}
