// Package cli implements the cashin command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/config"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/output"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// BuildInfo describes the binary being run.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var (
	// Global flags
	homeDir      string
	outputFormat string
	language     string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
	catalog   *i18n.Catalog
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cashin",
	Short: "Track fiat cash-in providers of wallet transactions",
	Long: `Cashin keeps track of which fiat exchange provider funded each transaction
of a wallet, and renders transaction counterparties for review.

State is restored at startup and saved after every change.

Example:
  cashin providers set Moonpay=https://example.com/moonpay.png
  cashin tx providers 0x88df...944b=Moonpay
  cashin tx assign 0x1234...abcd --currency cUSD
  cashin feed`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		cleanup(cmd)
	},
}

// SetBuildInfo sets the version reported by --version.
func SetBuildInfo(info BuildInfo) {
	rootCmd.Version = formatVersion(info)
}

// formatVersion renders build info, substituting placeholders for missing fields.
func formatVersion(info BuildInfo) string {
	version, commit, date := info.Version, info.Commit, info.Date
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// Execute runs the root command.
func Execute() error {
	enrichHelp(rootCmd)

	err := rootCmd.Execute()
	if err != nil {
		// PersistentPostRun does not run when a command fails.
		cleanup(nil)
		formatErr(err)
		return err
	}
	return nil
}

// formatErr prints err to stderr in the active output format.
func formatErr(err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	_ = output.FormatError(os.Stderr, err, format)
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return cashinerr.ExitCode(err)
}

// initGlobals initializes global configuration, logger, formatter and catalog.
func initGlobals() error {
	// Determine home directory
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	// Load or create config
	var err error
	cfg, err = config.Load(config.Path(home))
	switch {
	case err == nil:
	case os.IsNotExist(err):
		cfg = config.Defaults()
		cfg.Home = home
	default:
		return err
	}

	// Apply environment variable overrides
	config.ApplyEnvironment(cfg)

	// Override with command-line flags
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		cfg.Output.DefaultFormat = outputFormat
	}
	if language != "" {
		cfg.Locale.Language = language
	}

	// Initialize logger
	logger, err = config.NewLogger(config.ParseLogLevel(cfg.GetLoggingLevel()), cfg.GetLoggingFile())
	if err != nil {
		// Use null logger if we can't create the file
		logger = config.NullLogger()
	}

	// Initialize formatter
	explicitFormat := output.ParseFormat(cfg.GetOutputFormat())
	formatter = output.NewFormatter(output.DetectFormat(os.Stdout, explicitFormat))

	// Initialize translations
	catalog, err = i18n.NewCatalog(cfg.GetLanguage())
	if err != nil {
		return err
	}
	if file := cfg.GetCatalogFile(); file != "" {
		if err := catalog.LoadOverrides(file); err != nil {
			return err
		}
	}
	logger.Debug("language %s, storage %s at %s", catalog.Tag(), cfg.GetStorageBackend(), cfg.GetStoragePath())

	return nil
}

// cleanup saves pending state and releases resources.
func cleanup(cmd *cobra.Command) {
	if err := closeState(cmd); err != nil {
		if logger != nil {
			logger.Error("closing state: %v", err)
		}
		_ = output.FormatError(os.Stderr, err, output.FormatText)
	}
	if logger != nil {
		_ = logger.Close()
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.Version = formatVersion(BuildInfo{})
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "cashin data directory (default: ~/.cashin)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "language for labels, e.g. en-US or es-419")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
