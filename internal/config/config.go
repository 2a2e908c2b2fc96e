// Package config resolves runtime configuration for the validate-rules tool.
// The skill registry itself is static; config covers only ambient knobs.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the validate-rules runtime configuration.
type Config struct {
	Root    string `mapstructure:"root"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
	Format  string `mapstructure:"format"`
}

// Load resolves configuration from defaults, environment, and bound flags.
// rootPath, when non-empty, overrides the resolved root.
func Load(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix("VALIDATE_RULES")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		cfg.Root = rootPath
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Format != "console" && cfg.Format != "json" {
		return fmt.Errorf("invalid format: %s. Must be 'console' or 'json'", cfg.Format)
	}
	if cfg.Quiet && cfg.Verbose {
		return fmt.Errorf("quiet and verbose are mutually exclusive")
	}
	return nil
}
