// Package config provides Viper-based configuration loading for the
// inventory demo.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// PlayerConfig holds the starting attributes for the demo player.
type PlayerConfig struct {
	// Name is the default player name when none is given on the command line.
	Name string `mapstructure:"name"`
	// MaxHealth is the health ceiling; health is clamped to [0, MaxHealth].
	MaxHealth int `mapstructure:"max_health"`
	// BaseAttack is the attack total with no weapon equipped.
	BaseAttack int `mapstructure:"base_attack"`
	// BaseDefense is the defense total with no armor equipped.
	BaseDefense int `mapstructure:"base_defense"`
}

// ContentConfig holds paths to static game content.
type ContentConfig struct {
	// ItemsDir is the directory of item definition YAML files.
	ItemsDir string `mapstructure:"items_dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Player  PlayerConfig  `mapstructure:"player"`
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validatePlayer(c.Player); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "player.name must not be empty")
	}
	if p.MaxHealth < 1 {
		errs = append(errs, fmt.Sprintf("player.max_health must be >= 1, got %d", p.MaxHealth))
	}
	if p.BaseAttack < 0 {
		errs = append(errs, fmt.Sprintf("player.base_attack must be >= 0, got %d", p.BaseAttack))
	}
	if p.BaseDefense < 0 {
		errs = append(errs, fmt.Sprintf("player.base_defense must be >= 0, got %d", p.BaseDefense))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.ItemsDir == "" {
		return errors.New("content.items_dir must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ADVENTURE_ prefix
	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("player.name", "Hero")
	v.SetDefault("player.max_health", 100)
	v.SetDefault("player.base_attack", 5)
	v.SetDefault("player.base_defense", 2)

	v.SetDefault("content.items_dir", "content/items")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
