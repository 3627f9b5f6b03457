package config

// DefaultFlushInterval is the default minimum time between two state writes.
const DefaultFlushInterval = "1s"

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.cashin",
		Storage: StorageConfig{
			Backend:       "file",
			Path:          "state.json",
			FlushInterval: DefaultFlushInterval,
		},
		Locale: LocaleConfig{
			Language: "", // follow LANG
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.cashin/cashin.log",
		},
	}
}
