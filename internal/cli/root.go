// Package cli wires the pyveil commands: obfuscation and analysis of single
// sources, and privacy/utility experiment sweeps over completion benchmarks.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Execute runs the root command. Errors are printed with a hint when one is
// known; the caller decides the exit code.
func Execute(ctx context.Context) error {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Red, Reset, err)
		if hint := ErrorHint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "%sHint:%s %s\n", Gray, Reset, hint)
		}
		return err
	}
	return nil
}

// NewRootCmd builds the pyveil command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pyveil",
		Short:         "Privacy-preserving obfuscation of Python prompts for code completion",
		Long:          banner() + "\n\nDeterministically rename identifiers and strip prose from Python source\nbefore it leaves your machine, then measure what the obfuscation cost in\ncompletion quality.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default ./pyveil.yaml)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output on stderr")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	cmd.AddCommand(
		newObfuscateCmd(),
		newDeobfuscateCmd(),
		newIdentifiersCmd(),
		newValidateCmd(),
		newAnalyzeCmd(),
		newExperimentCmd(),
		newVersionCmd(),
	)
	return cmd
}

// newLogger builds the stderr logger the commands share. Quiet mode keeps
// errors only; verbose enables debug output.
func newLogger(cmd *cobra.Command) *zap.Logger {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if quiet {
		level = zapcore.ErrorLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionFull())
		},
	}
}
