// Package config holds runtime configuration: defaults, CLI flag
// registration, the optional YAML defaults file, and validation.
package config

import (
	"errors"
	"fmt"
	"regexp"
)

// --- Enum types for validated string fields ---

// Mode selects the rename strategy. Exactly one mode is active per run.
type Mode string

const (
	ModeSmartTitle Mode = "smart-title" // Derive title from content/LLM (default).
	ModeDateOnly   Mode = "date-only"   // Prefix only; skip already-dated files.
	ModeRedate     Mode = "redate"      // Replace an existing date prefix, keep title.
	ModeKeepTitle  Mode = "keep-title"  // Add/replace prefix, keep title verbatim.
)

// ExcerptMode is the strategy used to build a text excerpt for title
// generation.
type ExcerptMode string

const (
	ExcerptFirstLine  ExcerptMode = "firstline"  // First non-empty line.
	ExcerptHeadings   ExcerptMode = "headings"   // Markdown headings; first paragraphs otherwise.
	ExcerptFirstParas ExcerptMode = "firstparas" // First paragraph block (default).
	ExcerptRaw        ExcerptMode = "raw"        // Full text, bounded by the char budget.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultLogName is the rename log written in the invocation directory
// unless --log overrides it.
const DefaultLogName = ".scanstamp-log.csv"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML defaults file, and then mutated by CLI
// flags before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (positional args; empty means current directory).
	Paths []string

	// Mode selection.
	Mode     Mode
	KeepDate bool // Reuse an existing date prefix in smart-title mode.

	// Safety. Confirm is accepted for explicitness only: prompting is
	// already the default whenever Yes is unset.
	Confirm bool
	Yes     bool
	DryRun  bool

	// Artifacts.
	UndoLog    string // Non-empty switches the run into undo mode.
	LogPath    string // Default: ".scanstamp-log.csv".
	ReportPath string // Optional per-run CSV report.

	// Traversal.
	Recursive bool
	Include   []string
	Exclude   []string

	// Date selection.
	Date          string // Explicit YYYYMMDD override.
	UseMtime      bool
	PreferDocDate bool

	// Extraction.
	MaxChars    int // Default: 1200.
	ExcerptMode ExcerptMode
	OCR         bool

	// Collision handling.
	Suffix bool

	// Privacy and LLM control.
	NoLLM     bool
	LocalOnly bool

	// Display.
	ColorMode ColorMode
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the defaults file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		Mode:        ModeSmartTitle,
		LogPath:     DefaultLogName,
		MaxChars:    1200,
		ExcerptMode: ExcerptFirstParas,
		ColorMode:   ColorAuto,
	}
}

var reEightDigits = regexp.MustCompile(`^\d{8}$`)

// Validate checks enum fields and cross-flag constraints. A failure here is
// a usage error: the run aborts before any file is touched.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSmartTitle, ModeDateOnly, ModeRedate, ModeKeepTitle:
		// valid
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}

	switch c.ExcerptMode {
	case ExcerptFirstLine, ExcerptHeadings, ExcerptFirstParas, ExcerptRaw:
		// valid
	default:
		return fmt.Errorf("invalid excerpt mode %q (use firstline, headings, firstparas, or raw)", c.ExcerptMode)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use auto, always, or never)", c.ColorMode)
	}

	if c.Date != "" && !reEightDigits.MatchString(c.Date) {
		return fmt.Errorf("--date must be YYYYMMDD (got %q)", c.Date)
	}

	if c.KeepDate && c.Mode != ModeSmartTitle {
		return errors.New("--keep-date applies only to smart-title mode")
	}

	if c.MaxChars <= 0 {
		return fmt.Errorf("--chars must be positive (got %d)", c.MaxChars)
	}

	if c.LogPath == "" {
		return errors.New("log path must not be empty")
	}

	return nil
}
