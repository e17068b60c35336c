// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/ratelimit"
	"github.com/mark3labs/rigwizard/internal/store"
	"github.com/mark3labs/rigwizard/internal/submit"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RateLimit configures the submission limiter.
type RateLimit struct {
	MaxRequests int           `mapstructure:"max_requests" yaml:"max_requests"`
	Window      time.Duration `mapstructure:"window" yaml:"window"`
}

// Config holds all configuration values for rigwizard.
type Config struct {
	Profile     string        `mapstructure:"profile" yaml:"profile"`
	DataDir     string        `mapstructure:"data_dir" yaml:"data_dir"`
	Store       string        `mapstructure:"store" yaml:"store"`
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`
	SubmitDelay time.Duration `mapstructure:"submit_delay" yaml:"submit_delay"`
	RateLimit   RateLimit     `mapstructure:"rate_limit" yaml:"rate_limit"`
	HooksFile   string        `mapstructure:"hooks_file" yaml:"hooks_file"`
	LogLevel    string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string        `mapstructure:"log_file" yaml:"log_file"`
}

// envKeys are the keys bound to RIGWIZARD_* variables.
var envKeys = []string{
	"profile",
	"data_dir",
	"store",
	"endpoint",
	"submit_delay",
	"rate_limit.max_requests",
	"rate_limit.window",
	"hooks_file",
	"log_level",
	"log_file",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("rigwizard")

	v.SetDefault("profile", "default")
	v.SetDefault("data_dir", ".rigwizard")
	v.SetDefault("store", string(store.KindFile))
	v.SetDefault("endpoint", string(submit.KindSimulated))
	v.SetDefault("submit_delay", submit.DefaultDelay)
	v.SetDefault("rate_limit.max_requests", ratelimit.DefaultMaxRequests)
	v.SetDefault("rate_limit.window", ratelimit.DefaultWindow)
	v.SetDefault("hooks_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with RIGWIZARD_ prefix
	v.SetEnvPrefix("RIGWIZARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		env := "RIGWIZARD_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration Load produces with no files or env set.
func Default() *Config {
	return &Config{
		Profile:     "default",
		DataDir:     ".rigwizard",
		Store:       string(store.KindFile),
		Endpoint:    string(submit.KindSimulated),
		SubmitDelay: submit.DefaultDelay,
		RateLimit: RateLimit{
			MaxRequests: ratelimit.DefaultMaxRequests,
			Window:      ratelimit.DefaultWindow,
		},
		LogLevel: "info",
	}
}

// Validate checks that the configured values name known backends and sane
// limits.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Profile) == "" {
		return fmt.Errorf("profile is required")
	}
	if !slices.Contains(store.Kinds, store.Kind(c.Store)) {
		return fmt.Errorf("unknown store %q", c.Store)
	}
	switch submit.Kind(c.Endpoint) {
	case submit.KindSimulated, submit.KindHook, submit.KindNATS:
	default:
		return fmt.Errorf("unknown endpoint %q", c.Endpoint)
	}
	if c.RateLimit.MaxRequests < 1 {
		return fmt.Errorf("rate_limit.max_requests must be at least 1")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	if c.SubmitDelay < 0 {
		return fmt.Errorf("submit_delay must not be negative")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NeedsNATS reports whether the store or the endpoint runs on JetStream.
func (c *Config) NeedsNATS() bool {
	return store.Kind(c.Store) == store.KindNATS || submit.Kind(c.Endpoint) == submit.KindNATS
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/rigwizard/rigwizard.yml or $XDG_CONFIG_HOME/rigwizard/rigwizard.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rigwizard", "rigwizard.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rigwizard", "rigwizard.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./rigwizard.yml in the current working directory.
func ProjectPath() string {
	return "rigwizard.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
