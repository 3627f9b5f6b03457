// Package config provides configuration management for cashin.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Storage StorageConfig `yaml:"storage"`
	Locale  LocaleConfig  `yaml:"locale"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig defines where persisted state lives.
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	Path          string `yaml:"path"`
	FlushInterval string `yaml:"flush_interval"`
}

// LocaleConfig defines translation settings.
type LocaleConfig struct {
	Language    string `yaml:"language"`
	CatalogFile string `yaml:"catalog_file,omitempty"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, cashinerr.WithDetails(cashinerr.ErrConfigInvalid, map[string]string{
			"path":   path,
			"reason": err.Error(),
		})
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the cashin home directory path with ~ expanded.
func (c *Config) GetHome() string {
	return ExpandHome(c.Home)
}

// GetStorageBackend returns the persistence backend name.
func (c *Config) GetStorageBackend() string {
	return c.Storage.Backend
}

// GetStoragePath returns the persisted state location.
// A relative path is resolved against the home directory.
func (c *Config) GetStoragePath() string {
	p := ExpandHome(c.Storage.Path)
	if p == "" {
		p = "state.json"
		if strings.EqualFold(c.Storage.Backend, "leveldb") {
			p = "state.db"
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.GetHome(), p)
	}
	return p
}

// GetFlushInterval returns the minimum time between two state writes.
// Invalid or negative values disable throttling.
func (c *Config) GetFlushInterval() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.Storage.FlushInterval))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// GetLanguage returns the configured language tag.
func (c *Config) GetLanguage() string {
	return c.Locale.Language
}

// GetCatalogFile returns the optional translation override file.
func (c *Config) GetCatalogFile() string {
	return ExpandHome(c.Locale.CatalogFile)
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default cashin home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cashin"
	}
	return filepath.Join(home, ".cashin")
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
