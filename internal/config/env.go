package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome           = "CASHIN_HOME"
	EnvLocale         = "CASHIN_LOCALE"
	EnvStorageBackend = "CASHIN_STORAGE_BACKEND"
	EnvOutputFormat   = "CASHIN_OUTPUT_FORMAT"
	EnvVerbose        = "CASHIN_VERBOSE"
	EnvLogLevel       = "CASHIN_LOG_LEVEL"
	EnvNoColor        = "NO_COLOR"
	EnvLang           = "LANG"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	switch {
	case os.Getenv(EnvLocale) != "":
		cfg.Locale.Language = os.Getenv(EnvLocale)
	case cfg.Locale.Language == "":
		cfg.Locale.Language = LanguageFromPOSIX(os.Getenv(EnvLang))
	}

	if v := os.Getenv(EnvStorageBackend); v != "" {
		cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	// NO_COLOR disables colored output
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}
}

// LanguageFromPOSIX converts a POSIX locale such as "es_MX.UTF-8" to a BCP 47 tag ("es-MX").
// The C and POSIX locales map to an empty string.
func LanguageFromPOSIX(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
