package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all configuration for the langrank CLI.
type Config struct {
	Input      string        `mapstructure:"input"`
	Labels     []string      `mapstructure:"labels"`
	Partitions int           `mapstructure:"partitions"`
	Strategies []string      `mapstructure:"strategies"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// defaultLabels is the candidate catalog used when none is configured.
var defaultLabels = []string{
	"JavaScript", "Java", "PHP", "Python", "C#", "C++", "Ruby", "CSS",
	"Objective-C", "Perl", "Scala", "Haskell", "MATLAB", "Clojure", "Groovy",
}

// Load loads the configuration from the given path. If configPath is
// empty, it looks for langrank.yaml in the config/ directory or the
// working directory. Environment variables with LANGRANK_ prefix override
// config file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("input", "")
	v.SetDefault("labels", defaultLabels)
	v.SetDefault("partitions", runtime.NumCPU())
	v.SetDefault("strategies", []string{"naive", "index", "reduce"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("langrank")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("LANGRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
