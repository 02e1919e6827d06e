// Package main is the entry point for the padvi editor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/padvi/internal/app"
	"github.com/dshills/padvi/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "padvi [file]",
		Short: "A small modal text editor",
		Long: `padvi edits one file with vi-style Normal, Insert and Command modes.

Settings are read from config.toml (or config.yaml) in the user
configuration directory, then from PADVI_* environment variables, then
from the flags below.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			opts.Watch = !noWatch
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default <user config dir>/padvi/config.toml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file path")
	flags.BoolVar(&opts.NoAutoIndent, "no-auto-indent", false, "disable auto-indent")
	flags.BoolVar(&opts.Strict, "strict", false, "report unknown commands instead of quitting")
	flags.BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes")
	cmd.SetVersionTemplate("padvi {{.Version}}\n")
	return cmd
}

func run(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := application.SetBackend(term); err != nil {
		return err
	}

	stop := application.HandleSignals()
	defer stop()

	return application.Run()
}
