package cmd

import (
	"fmt"
	"os"

	"marvel-metadata/core/config"
	"marvel-metadata/core/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "marvel-metadata",
	Short: "Decode Marvel comic metadata and build reading lists",
	Long: `marvel-metadata decodes the packed __data.json payloads exported by the
comic metadata mirror into issue records, and matches reading lists against them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable timestamps for CLI users
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
}

// runtime is the configuration and logger shared by one command invocation.
type runtime struct {
	cfg   *config.Config
	log   *zap.Logger
	runID string
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	runID := uuid.NewString()
	return &runtime{cfg: cfg, log: logger.WithRunID(l, runID), runID: runID}, nil
}

func (r *runtime) close() {
	_ = r.log.Sync()
}
