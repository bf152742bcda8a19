package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentx-labs/skillcheck/internal/branding"
	"github.com/agentx-labs/skillcheck/internal/buildinfo"
	"github.com/agentx-labs/skillcheck/internal/config"
	"github.com/agentx-labs/skillcheck/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var build buildinfo.Info

// Global flags.
var (
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string
	noColor    bool
)

// settings is resolved in PersistentPreRunE before any command runs.
var settings = config.Default()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` checks skill trees during a migration: it reports skill directories
that are symlinks, verifies that imported skills carry every file of their
source snapshot, and validates the accompanying JSON metadata.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+branding.ConfigFile()+" in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
		errorColor.DisableColor()
	}

	// version must work even with a broken config file.
	if cmd.Name() == "version" {
		return nil
	}

	s, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := s.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	if err := logger.SetLogLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if logFormat != "text" && logFormat != "json" {
		return fmt.Errorf("invalid log format %q: want text or json", logFormat)
	}
	logger.SetLogFormat(logFormat)

	log := logger.L.WithField("command", cmd.Name())
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))

	if s.ConfigFile != "" {
		log.WithField("file", s.ConfigFile).Debug("loaded config")
	}
	settings = s
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	build = buildinfo.New(version, commit, date)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
