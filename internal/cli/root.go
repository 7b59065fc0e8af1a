package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	NoColor    bool
}

// NewRootCommand creates the root command for the stagetest CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stagetest",
		Short: "Stage conformance runner for a compiler under test",
		Long: `Run staged conformance fixtures against an external compiler.

Each suite has a valid and an invalid fixture directory. The compiler
must exit 0 for every valid fixture and 1 for every invalid one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to stagetest.yaml (default: $STAGETEST_CONFIG, then beside the executable)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}
