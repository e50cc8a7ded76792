package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Configuration holds the program parameters.
type Configuration struct {
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig controls the CSV report written on exit. An empty File
// disables it.
type ExportConfig struct {
	File      string `mapstructure:"file"`
	Delimiter string `mapstructure:"delimiter"`
}

// Comma returns the delimiter as a rune. Only meaningful after Validate.
func (e ExportConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(e.Delimiter)
	return r
}

// NewDefaultConfiguration returns the settings used when nothing overrides them.
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Log: LogConfig{
			Level:  "warn",
			Format: "json",
		},
		Export: ExportConfig{
			File:      "",
			Delimiter: ";",
		},
	}
}

// Load reads configuration from environment, file and defaults, in that
// order of precedence. A missing file is not an error unless path was given.
func Load(path string) (*Configuration, error) {
	v := viper.New()

	def := NewDefaultConfiguration()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("export.file", def.Export.File)
	v.SetDefault("export.delimiter", def.Export.Delimiter)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("examreg")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("EXAMREG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects an unknown log format and a multi-character delimiter.
func (c *Configuration) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q", c.Log.Format)
	}
	if utf8.RuneCountInString(c.Export.Delimiter) != 1 {
		return fmt.Errorf("config: export.delimiter must be a single character, got %q", c.Export.Delimiter)
	}
	return nil
}
