package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/gqlfmt/log"
	"go.jacobcolvin.com/gqlfmt/profile"
	"go.jacobcolvin.com/gqlfmt/version"
)

func newRootCmd() *cobra.Command {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()
	profiler := profileCfg.NewProfiler()

	rootCmd := &cobra.Command{
		Use:           "gqlfmt",
		Short:         "Format GraphQL documents",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Prefer a machine-readable default when stderr isn't a
			// terminal, unless the user explicitly picked a format.
			if !cmd.Flags().Changed(logCfg.Flags.Format) && !term.IsTerminal(int(os.Stderr.Fd())) {
				logCfg.Format = string(log.FormatLogfmt)
			}

			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := rootCmd.PersistentFlags().MarkHidden(profileCfg.Flags.CPUProfile); err == nil {
		for _, name := range []string{
			profileCfg.Flags.HeapProfile, profileCfg.Flags.AllocsProfile,
			profileCfg.Flags.GoroutineProfile, profileCfg.Flags.ThreadcreateProfile,
			profileCfg.Flags.BlockProfile, profileCfg.Flags.MutexProfile,
			profileCfg.Flags.MemProfileRate, profileCfg.Flags.BlockProfileRate,
			profileCfg.Flags.MutexProfileFraction,
		} {
			_ = rootCmd.PersistentFlags().MarkHidden(name)
		}
	}

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register log completions: %v\n", err)
	}

	if err := profileCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register profile completions: %v\n", err)
	}

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
