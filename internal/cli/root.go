// Package cli builds the cobra command tree and translates parsed flags
// into a validated runtime configuration.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/scanstamp/internal/config"
	"github.com/backmassage/scanstamp/internal/diagnose"
	"github.com/backmassage/scanstamp/internal/llm"
	"github.com/backmassage/scanstamp/internal/term"
)

// NewRootCommand builds the scanstamp root command. version is injected at
// build time.
func NewRootCommand(version string) *cobra.Command {
	cfg := config.DefaultConfig()
	var modes *config.ModeFlags
	var configPath string

	cmd := &cobra.Command{
		Use:   "scanstamp [flags] [paths...]",
		Short: "Rename scanned documents with a date prefix and a readable title",
		Long: `Scanstamp renames scanned documents and exports into the form
"YYYYMMDD - Title.ext". Titles come from the document content (optionally
via an LLM backend); every rename is appended to a CSV log so a batch can
be undone later with --undo.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, &cfg, modes, configPath, args)
		},
	}

	modes = config.RegisterFlags(cmd, &cfg)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML defaults file (flags take precedence)")

	cmd.AddCommand(newDiagnoseCommand())

	return cmd
}

func newDiagnoseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Report availability of optional external tools and title backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			diagnose.Run(term.New(config.ColorAuto), llm.DefaultChain())
		},
	}
}
