package fplog

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration: whether/how to log to the
// console, and whether/how to log to a rotated file. Grounded on
// lawnchairsociety-OpenTowerMUD's internal/logger.Config — this repo
// drops the server-only fields (nothing here needs a "logging:" wrapper
// key since fplog has no other YAML-configured siblings) but keeps the
// same field set, defaults, and override precedence (YAML file, then
// environment variables).
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig returns the configuration LoadConfig starts from before
// applying the YAML file and environment overrides: console logging
// only, text format, INFO level.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/fifteen.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads a YAML file at configPath over DefaultConfig and
// applies FPLOG_* environment variable overrides. A missing or
// unparseable file is not an error: the defaults (plus any environment
// overrides) are used silently, matching the teacher's "best effort"
// config loading for a tool that works fine with zero configuration.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			var loaded Config
			if err := yaml.Unmarshal(data, &loaded); err == nil {
				mergeConfig(&config, loaded)
			}
		}
	}

	if level := os.Getenv("FPLOG_LEVEL"); level != "" {
		config.Level = level
	}
	if format := os.Getenv("FPLOG_CONSOLE_FORMAT"); format != "" {
		config.ConsoleFormat = format
	}
	if enabled := os.Getenv("FPLOG_FILE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.FileEnabled = b
		}
	}
	if path := os.Getenv("FPLOG_FILE_PATH"); path != "" {
		config.FilePath = path
	}

	return config, nil
}

func mergeConfig(dst *Config, loaded Config) {
	if loaded.Level != "" {
		dst.Level = loaded.Level
	}
	if loaded.ConsoleFormat != "" {
		dst.ConsoleFormat = loaded.ConsoleFormat
	}
	dst.ConsoleEnabled = loaded.ConsoleEnabled || dst.ConsoleEnabled
	dst.FileEnabled = loaded.FileEnabled || dst.FileEnabled
	if loaded.FilePath != "" {
		dst.FilePath = loaded.FilePath
	}
	if loaded.FileFormat != "" {
		dst.FileFormat = loaded.FileFormat
	}
	if loaded.FileMaxSizeMB > 0 {
		dst.FileMaxSizeMB = loaded.FileMaxSizeMB
	}
	if loaded.FileMaxBackups > 0 {
		dst.FileMaxBackups = loaded.FileMaxBackups
	}
	if loaded.FileMaxAgeDays > 0 {
		dst.FileMaxAgeDays = loaded.FileMaxAgeDays
	}
}
