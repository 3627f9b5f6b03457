package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/config"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/output"
	"github.com/mrz1836/cashin/internal/persist"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify cashin configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.cashin/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  cashin config init
  cashin config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the effective configuration, including environment overrides.

Example:
  cashin config show
  cashin config show -o json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configPathCmd prints the configuration file path.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outln(cmd.OutOrStdout(), config.Path(cfg.GetHome()))
		return nil
	},
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its key.

Keys use dot notation, for example storage.backend or locale.language.

Examples:
  cashin config get storage.backend
  cashin config get output.default_format`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its key.
The configuration file will be updated immediately.

Examples:
  cashin config set storage.backend leveldb
  cashin config set locale.language es-419
  cashin config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

// configKey reads and writes one configuration value.
type configKey struct {
	get func(*config.Config) string
	set func(*config.Config, string) error
}

// configKeys lists every key accepted by config get and config set.
//
//nolint:gochecknoglobals // Fixed table of configuration keys
var configKeys = map[string]configKey{
	"home": {
		get: func(c *config.Config) string { return c.Home },
		set: func(c *config.Config, v string) error { c.Home = v; return nil },
	},
	"storage.backend": {
		get: func(c *config.Config) string { return c.Storage.Backend },
		set: func(c *config.Config, v string) error {
			v = strings.ToLower(v)
			if err := oneOf(v, persist.BackendFile, persist.BackendLevelDB); err != nil {
				return err
			}
			c.Storage.Backend = v
			return nil
		},
	},
	"storage.path": {
		get: func(c *config.Config) string { return c.Storage.Path },
		set: func(c *config.Config, v string) error { c.Storage.Path = v; return nil },
	},
	"storage.flush_interval": {
		get: func(c *config.Config) string { return c.Storage.FlushInterval },
		set: func(c *config.Config, v string) error {
			if d, err := time.ParseDuration(v); err != nil || d < 0 {
				return cashinerr.WithDetails(cashinerr.ErrInvalidInput, map[string]string{
					"value": v, "valid": "a non-negative duration such as 500ms or 2s",
				})
			}
			c.Storage.FlushInterval = v
			return nil
		},
	},
	"locale.language": {
		get: func(c *config.Config) string { return c.Locale.Language },
		set: func(c *config.Config, v string) error { c.Locale.Language = v; return nil },
	},
	"locale.catalog_file": {
		get: func(c *config.Config) string { return c.Locale.CatalogFile },
		set: func(c *config.Config, v string) error { c.Locale.CatalogFile = v; return nil },
	},
	"output.default_format": {
		get: func(c *config.Config) string { return c.Output.DefaultFormat },
		set: func(c *config.Config, v string) error {
			if err := oneOf(v, "text", "json", "auto"); err != nil {
				return err
			}
			c.Output.DefaultFormat = v
			return nil
		},
	},
	"output.color": {
		get: func(c *config.Config) string { return c.Output.Color },
		set: func(c *config.Config, v string) error {
			if err := oneOf(v, output.ColorAuto, output.ColorAlways, output.ColorNever); err != nil {
				return err
			}
			c.Output.Color = v
			return nil
		},
	},
	"output.verbose": {
		get: func(c *config.Config) string { return strconv.FormatBool(c.Output.Verbose) },
		set: func(c *config.Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return cashinerr.WithDetails(cashinerr.ErrInvalidInput, map[string]string{
					"value": v, "valid": "true or false",
				})
			}
			c.Output.Verbose = b
			return nil
		},
	},
	"logging.level": {
		get: func(c *config.Config) string { return c.Logging.Level },
		set: func(c *config.Config, v string) error {
			if err := oneOf(v, "off", "error", "debug"); err != nil {
				return err
			}
			c.Logging.Level = v
			return nil
		},
	},
	"logging.file": {
		get: func(c *config.Config) string { return c.Logging.File },
		set: func(c *config.Config, v string) error { c.Logging.File = v; return nil },
	},
}

// oneOf returns ErrInvalidInput unless value is one of valid.
func oneOf(value string, valid ...string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return cashinerr.WithDetails(cashinerr.ErrInvalidInput, map[string]string{
		"value": value,
		"valid": strings.Join(valid, ", "),
	})
}

// configKeyNames returns the accepted keys, sorted.
func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for name := range configKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupConfigKey returns the accessor of key or ErrUnknownConfigKey with a suggestion.
func lookupConfigKey(key string) (configKey, error) {
	if k, ok := configKeys[key]; ok {
		return k, nil
	}
	err := cashinerr.WithDetails(cashinerr.ErrUnknownConfigKey, map[string]string{"key": key})
	if hint := didYouMean(key, configKeyNames()); hint != "" {
		return configKey{}, cashinerr.WithSuggestion(err, hint)
	}
	return configKey{}, cashinerr.WithSuggestion(err, "valid keys: "+strings.Join(configKeyNames(), ", "))
}

// getConfigValue retrieves a value from the config using dot notation.
func getConfigValue(c *config.Config, key string) (string, error) {
	k, err := lookupConfigKey(key)
	if err != nil {
		return "", err
	}
	return k.get(c), nil
}

// setConfigValue sets a value in the config using dot notation.
func setConfigValue(c *config.Config, key, value string) error {
	k, err := lookupConfigKey(key)
	if err != nil {
		return err
	}
	return k.set(c, strings.TrimSpace(value))
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.GetHome())

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return cashinerr.WithSuggestion(
			cashinerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	output.Successf(w, "Configuration initialized at %s", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - storage.backend: State backend (file/leveldb)")
	outln(w, "  - locale.language: Label language (e.g. en-US, es-419)")
	outln(w, "  - output.default_format: Output format (text/json)")
	outln(w, "  - logging.level: Log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if isJSON() {
		return displayConfigJSON(w)
	}
	return displayConfigText(w)
}

func displayConfigText(w io.Writer) error {
	outln(w, "Configuration:")
	table := output.NewTable("KEY", "VALUE")
	table.SetNoHeader(true)
	for _, name := range configKeyNames() {
		table.AddRow("  "+name, configKeys[name].get(cfg))
	}
	if err := table.Render(w); err != nil {
		return err
	}
	out(w, "\nSupported languages: %s\n", supportedLanguages())
	return nil
}

func displayConfigJSON(w io.Writer) error {
	values := make(map[string]string, len(configKeys))
	for name, k := range configKeys {
		values[name] = k.get(cfg)
	}
	return writeJSON(w, values)
}

func supportedLanguages() string {
	tags := make([]string, 0, len(i18n.Supported))
	for _, t := range i18n.Supported {
		tags = append(tags, t.String())
	}
	return strings.Join(tags, ", ")
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := getConfigValue(cfg, args[0])
	if err != nil {
		return err
	}
	outln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	configPath := config.Path(cfg.GetHome())
	currentCfg, err := config.Load(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		currentCfg = config.Defaults()
		currentCfg.Home = cfg.Home
	}

	if err := setConfigValue(currentCfg, key, value); err != nil {
		return err
	}

	if err := config.Save(currentCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// The running logger follows a new level for the rest of this command.
	if key == "logging.level" && logger != nil {
		logger.SetLevel(config.ParseLogLevel(currentCfg.Logging.Level))
	}

	return output.FormatSuccess(cmd.OutOrStdout(), fmt.Sprintf("Set %s = %s", key, value), currentFormat())
}
