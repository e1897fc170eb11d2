package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-sylleval/internal/config"
	"github.com/jamesainslie/go-sylleval/labels"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage renders the diagnostic printed before exiting.
func errorMessage(err error) string {
	if labels.IsLoadError(err) {
		return "Error loading inputs: " + err.Error()
	}
	return "Error: " + err.Error()
}

type rootFlags struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	root := &cobra.Command{
		Use:           "sylleval",
		Short:         "Score syllable decompositions against verified ground truth",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("labels", config.DefaultLabelsPath, "Labels file name")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.StringVar(&rf.configFile, "config", "", "Config file (default: sylleval.yaml in . or ./config)")
	pf.StringVar(&rf.envFile, "env-file", ".env", "Environment file loaded if present")

	root.AddCommand(newScoreCmd(&rf), newTableCmd(&rf))
	return root
}

// setup resolves configuration, builds a logger and loads the label set.
func setup(cmd *cobra.Command, rf *rootFlags) (config.Config, *slog.Logger, *labels.Set, error) {
	opts := config.DefaultOptions()
	opts.ConfigFile = rf.configFile
	opts.EnvFile = rf.envFile

	cfg, err := config.Load(cmd.Flags(), opts)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))

	set, err := labels.LoadFile(cfg.Labels)
	if err != nil {
		return cfg, logger, nil, err
	}
	logger.Info("loaded label set", "path", cfg.Labels, "entries", set.Len(), "words", set.Index())

	return cfg, logger, set, nil
}
