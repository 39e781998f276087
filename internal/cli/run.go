package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/scanstamp/internal/config"
	"github.com/backmassage/scanstamp/internal/history"
	"github.com/backmassage/scanstamp/internal/pipeline"
	"github.com/backmassage/scanstamp/internal/term"
)

// runRename finalizes the configuration and dispatches to undo mode or the
// rename pipeline. Per-file failures are accounted in the summary, not
// surfaced as a process error; only usage errors and a missing undo log
// produce a nonzero exit.
func runRename(cmd *cobra.Command, cfg *config.Config, modes *config.ModeFlags, configPath string, args []string) error {
	if configPath != "" {
		fc, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		fc.Apply(cfg, cmd.Flags().Changed)
	}

	mode, err := modes.ResolveMode()
	if err != nil {
		return err
	}
	cfg.Mode = mode

	// --yes always overrides confirmation prompting.
	if cfg.Yes {
		cfg.Confirm = false
	}

	cfg.Paths = args
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	con := term.New(cfg.ColorMode)

	if cfg.UndoLog != "" {
		return history.Undo(cfg.UndoLog, history.UndoOptions{DryRun: cfg.DryRun, Yes: cfg.Yes}, con)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = pipeline.Run(ctx, cfg, con, pipeline.DefaultCollaborators())
	return err
}
