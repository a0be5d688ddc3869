package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seedtray/logwatch"
)

func newRootCommand() *cobra.Command {
	defaults := logwatch.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "logwatch [flags] WORD [WORD...]",
		Short: "Follow log files and print the lines containing any of the given words",
		Long: "logwatch scans the given paths for files matching a filename pattern,\n" +
			"follows each one as it grows and prints every appended line that matches\n" +
			"any of the given words, grouped by originating file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args, afero.NewOsFs())
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	rootCmd.Flags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringArrayP("path", "p", defaults.Paths, "file or directory to watch (repeatable)")
	rootCmd.Flags().StringP("fname", "f", defaults.FnamePattern, "regex matched against file base names")
	rootCmd.Flags().IntP("interval", "i", defaults.IntervalSeconds, "seconds between discovery cycles")
	rootCmd.Flags().BoolP("from-end", "e", false, "start reading pre-existing files at their end")
	rootCmd.Flags().String("log-level", defaults.Logger.Level, "log level (debug|info|warn|error)")
	rootCmd.Flags().String("log-format", defaults.Logger.Format, "log format (text|json|logfmt)")

	return rootCmd
}

// resolveConfig layers flag values over the config file over the defaults.
// Only flags the user actually set override the file.
func resolveConfig(cmd *cobra.Command, args []string, fsys afero.Fs) (logwatch.Config, error) {
	flags := cmd.Flags()
	cfg := logwatch.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		cfg, err = logwatch.LoadConfig(fsys, path)
		if err != nil {
			return cfg, err
		}
	}
	if flags.Changed("path") {
		cfg.Paths, _ = flags.GetStringArray("path")
	}
	if flags.Changed("fname") {
		cfg.FnamePattern, _ = flags.GetString("fname")
	}
	if flags.Changed("interval") {
		cfg.IntervalSeconds, _ = flags.GetInt("interval")
	}
	if flags.Changed("from-end") {
		cfg.FromEnd, _ = flags.GetBool("from-end")
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logger.Format, _ = flags.GetString("log-format")
	}
	if len(args) > 0 {
		cfg.Words = args
		cfg.LinePattern = ""
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg logwatch.Config) error {
	fnameRe, lineRe, err := cfg.Compile()
	if err != nil {
		return err
	}

	logger := logwatch.SetupLogger(cfg.Logger)
	watcher := logwatch.New(cfg.Paths, fnameRe, lineRe, logwatch.Options{
		Logger:   logger,
		Interval: time.Duration(cfg.IntervalSeconds) * time.Second,
		FromEnd:  cfg.FromEnd,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching",
		"paths", fmt.Sprintf("%v", cfg.Paths),
		"fname", cfg.FnamePattern,
		"line", lineRe.String(),
		"interval", cfg.IntervalSeconds,
		"from_end", cfg.FromEnd,
	)
	watcher.Run(ctx)
	logger.Info("interrupted, exiting")
	return nil
}
