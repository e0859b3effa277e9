// cmd/starmart/cli/root.go

// Package cli provides the command-line interface for starmart.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meridian-data/starmart/pkg/config"
)

var (
	salesFlag     string
	studentsFlag  string
	outputFlag    string
	refDateFlag   string
	logLevelFlag  string
	logFormatFlag string
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starmart",
		Short: "starmart - CSV to star-schema ETL with data quality validation",
		Long: `starmart cleans raw sales inventory and student information CSVs,
builds dimensional star schemas with run-assigned surrogate keys, scores
data quality, and exports everything as CSV, JSON, and optionally a
PostgreSQL warehouse load.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&salesFlag, "sales", "", "path to the sales inventory CSV")
	rootCmd.PersistentFlags().StringVar(&studentsFlag, "students", "", "path to the student information CSV")
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", "", "output directory for exported files")
	rootCmd.PersistentFlags().StringVar(&refDateFlag, "reference-date", "", "reference date for enrollment tenure (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format (json|console)")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newLoadCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig builds the run configuration from the environment, then applies
// any command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if salesFlag != "" {
		cfg.SalesPath = salesFlag
	}
	if studentsFlag != "" {
		cfg.StudentsPath = studentsFlag
	}
	if outputFlag != "" {
		cfg.OutputDir = outputFlag
	}
	if refDateFlag != "" {
		parsed, err := time.Parse("2006-01-02", refDateFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --reference-date %q: %w", refDateFlag, err)
		}
		cfg.ReferenceDate = parsed
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if logFormatFlag != "" {
		cfg.LogFormat = logFormatFlag
	}

	return cfg, nil
}

// buildLogger constructs the process logger and installs it globally.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
