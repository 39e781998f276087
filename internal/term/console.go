// Package term provides the console sink used by the pipeline and the undo
// engine: leveled, optionally colored output plus confirmation prompts.
//
// The sink is an interface so batch behavior can be tested without
// capturing process-wide output.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/scanstamp/internal/config"
)

// Console is the output sink injected into the orchestrator and undo
// engine. Print emits a plain report line; the leveled methods add color
// when enabled; Confirm prompts and returns true only on an explicit yes.
type Console interface {
	Print(format string, args ...any)
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Confirm(format string, args ...any) bool
}

// Terminal is the real Console backed by stdout/stderr and stdin.
type Terminal struct {
	out     io.Writer
	errOut  io.Writer
	in      *bufio.Reader
	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// New builds a Terminal wired to the process streams. mode resolves against
// TTY detection, NO_COLOR, and TERM the same way for every subcommand.
func New(mode config.ColorMode) *Terminal {
	color.NoColor = !colorsEnabled(mode)
	return &Terminal{
		out:     os.Stdout,
		errOut:  os.Stderr,
		in:      bufio.NewReader(os.Stdin),
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
	}
}

// colorsEnabled resolves the configured color mode against the environment
// (https://no-color.org).
func colorsEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// Print writes a plain, uncolored report line to stdout.
func (t *Terminal) Print(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Info writes an informational line to stdout.
func (t *Terminal) Info(format string, args ...any) {
	t.info.Fprintf(t.out, format+"\n", args...)
}

// Success writes a success line (completed rename, undo) to stdout.
func (t *Terminal) Success(format string, args ...any) {
	t.success.Fprintf(t.out, format+"\n", args...)
}

// Warn writes a warning line (skip, conflict) to stdout.
func (t *Terminal) Warn(format string, args ...any) {
	t.warn.Fprintf(t.out, format+"\n", args...)
}

// Error writes a failure line to stderr.
func (t *Terminal) Error(format string, args ...any) {
	t.fail.Fprintf(t.errOut, format+"\n", args...)
}

// Confirm prints the prompt and reads one line from stdin. Only an explicit
// "y" or "yes" (case-insensitive, surrounding whitespace ignored) counts as
// approval; empty or ambiguous input means no.
func (t *Terminal) Confirm(format string, args ...any) bool {
	fmt.Fprintf(t.out, format, args...)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
