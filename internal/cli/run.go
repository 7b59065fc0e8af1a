package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/stagetest/internal/config"
	"github.com/roach88/stagetest/internal/report"
	"github.com/roach88/stagetest/internal/runner"
	"github.com/roach88/stagetest/internal/suite"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Root      string
	KeepGoing bool

	// RunIDGenerator allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDGenerator runner.RunIDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <suite-id> [<suite-id> ...]",
		Short: "Run fixture suites against the compiler",
		Long: `Run the valid and invalid fixtures of each suite against the compiler.

For suite S the fixtures are every entry of input/stage_S/valid (expected
exit code 0) and input/stage_S/invalid (expected exit code 1), relative to
the runner root. The runner root is the directory holding stagetest.yaml.

The compiler is started once per fixture, from its code directory, with the
fixture path as its last argument.

Exit codes:
  0 - Run completed (individual fixture failures do not change this)
  2 - Infrastructure error (bad config, missing fixture directory, compiler
      could not be started)

Examples:
  stagetest run 1
  stagetest run 1 2 3 --keep-going
  stagetest run --config ./stagetest.yaml 4`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "runner root directory (overrides the config file location)")
	cmd.Flags().BoolVar(&opts.KeepGoing, "keep-going", false, "continue with remaining suites after an infrastructure error")

	return cmd
}

func runSuites(opts *RunOptions, ids []string, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, report.UsageMessage)
		return nil
	}

	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})

	runIDs := opts.RunIDGenerator
	if runIDs == nil {
		runIDs = runner.UUIDv7Generator{}
	}
	logger := slog.New(handler).With("run_id", runIDs.Generate())

	cfg, err := config.Locate(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Root != "" {
		root, err := filepath.Abs(opts.Root)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid root directory", err)
		}
		cfg.Root = root
	}
	logger.Debug("config resolved",
		"root", cfg.Root,
		"compiler", cfg.Compiler,
		"code_dir", cfg.CodeDirPath(),
		"input_dir", cfg.InputDirPath(),
	)

	executor := runner.NewExecutor(cfg.Compiler, cfg.CodeDirPath())
	executor.Stdin = cmd.InOrStdin()
	executor.Stdout = out
	executor.Stderr = cmd.ErrOrStderr()

	console := report.NewConsole(out, cfg.Root, !opts.NoColor && !color.NoColor)

	r := runner.New(suite.NewResolver(cfg.InputDirPath()), executor, console, logger)
	r.KeepGoing = opts.KeepGoing

	// Setup signal handling so Ctrl-C stops the running compiler
	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Debug("run starting", "suites", ids, "keep_going", opts.KeepGoing)
	if err := r.Run(ctx, ids); err != nil {
		return WrapExitError(ExitCommandError, "test run aborted", err)
	}
	logger.Debug("run finished", "suites", len(ids))
	return nil
}
