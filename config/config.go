/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/suparena/nodeconf"
	"github.com/suparena/nodeconf/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load. They override the YAML file.
const (
	EnvRootName  = "NODECONF_ROOT_NAME"
	EnvWatch     = "NODECONF_WATCH"
	EnvLogLevel  = "NODECONF_LOG_LEVEL"
	EnvLogFormat = "NODECONF_LOG_FORMAT"
)

// Log formats understood by Logger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings used to build a Store and its logger.
type Config struct {
	RootName  string `yaml:"root_name"`
	Watch     bool   `yaml:"watch"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		RootName:  nodeconf.DefaultRootName,
		LogLevel:  "info",
		LogFormat: FormatText,
	}
}

// Load builds a Config from defaults, the YAML file at path, the given .env
// files and finally the process environment. An empty path or a missing file
// is skipped. Variables already present in the environment win over .env files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvRootName); ok {
		c.RootName = v
	}
	if v, ok := os.LookupEnv(EnvWatch); ok {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewValidationError(EnvWatch, fmt.Sprintf("not a boolean: %q", v))
		}
		c.Watch = watch
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.RootName == "" {
		return errors.NewValidationError("root_name", "root name is required")
	}
	if err := nodeconf.ValidateName(c.RootName); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return errors.NewValidationError("log_format", fmt.Sprintf("unknown format %q", c.LogFormat))
	}
	return nil
}

// Level parses LogLevel as a slog level name such as "debug" or "warn".
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.NewValidationError("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	return level, nil
}

// Logger returns a logger writing to w in the configured format and level.
// Invalid settings fall back to text at info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.ToLower(c.LogFormat) == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Options converts the configuration into Store options, logging to w.
func (c Config) Options(w io.Writer) []nodeconf.Option {
	return []nodeconf.Option{
		nodeconf.WithRootName(c.RootName),
		nodeconf.WithWatch(c.Watch),
		nodeconf.WithLogger(c.Logger(w)),
	}
}

// Save writes c to path as YAML.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
