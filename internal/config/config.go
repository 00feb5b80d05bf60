// Package config loads codewiki configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// OllamaConfig configures the generation service.
type OllamaConfig struct {
	Host  string `yaml:"host" mapstructure:"host"`
	Model string `yaml:"model" mapstructure:"model"`
}

// AnalysisConfig bounds the walk and the prompt.
type AnalysisConfig struct {
	MaxFileSize         int64    `yaml:"max_file_size" mapstructure:"max_file_size"`                 // skip files larger than this many bytes
	MaxPromptLength     int      `yaml:"max_prompt_length" mapstructure:"max_prompt_length"`         // truncate prompts beyond this
	MaxSummaryFiles     int      `yaml:"max_summary_files" mapstructure:"max_summary_files"`         // files listed in the digest
	MaxSummaryFunctions int      `yaml:"max_summary_functions" mapstructure:"max_summary_functions"` // function names per digest file
	Ignore              []string `yaml:"ignore" mapstructure:"ignore"`                               // extra glob patterns to skip
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "text" or "json"
}

// Config is the top-level configuration.
type Config struct {
	Ollama   OllamaConfig   `yaml:"ollama" mapstructure:"ollama"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Ollama: OllamaConfig{
			Host:  "http://127.0.0.1:11434",
			Model: "qwen2.5-coder:7b",
		},
		Analysis: AnalysisConfig{
			MaxFileSize:         1_000_000,
			MaxPromptLength:     7500,
			MaxSummaryFiles:     10,
			MaxSummaryFunctions: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from path, or from .codewiki.yaml in the working
// directory when path is empty. A missing file is not an error; defaults and
// CODEWIKI_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ollama.host", def.Ollama.Host)
	v.SetDefault("ollama.model", def.Ollama.Model)
	v.SetDefault("analysis.max_file_size", def.Analysis.MaxFileSize)
	v.SetDefault("analysis.max_prompt_length", def.Analysis.MaxPromptLength)
	v.SetDefault("analysis.max_summary_files", def.Analysis.MaxSummaryFiles)
	v.SetDefault("analysis.max_summary_functions", def.Analysis.MaxSummaryFunctions)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".codewiki")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CODEWIKI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The implicit search file is optional; an explicit --config that
	// cannot be read is fatal.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
