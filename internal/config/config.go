// Package config resolves runtime settings from defaults, an optional YAML
// file, and the environment. Command-line flags are applied on top by the
// caller, which then calls Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quiztime/internal/quiz"
)

// ErrInvalidConfig is matched by every validation and parse failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings a session runs with.
type Config struct {
	// DBPath is the SQLite file for recorded results. Empty selects
	// store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// Record enables result recording.
	Record bool `yaml:"record"`

	// Color enables styled terminal output.
	Color bool `yaml:"color"`

	// TUI reads input through an interactive line editor.
	TUI bool `yaml:"tui"`

	// RetryPrompt is "strict" or "lenient".
	RetryPrompt string `yaml:"retry_prompt"`

	// MaxAttempts bounds re-prompts for one question (0 = unlimited).
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Record:      true,
		Color:       true,
		RetryPrompt: string(quiz.RetryStrict),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/quiztime/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "quiztime", "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path, and the
// process environment. An empty path reads DefaultPath if it exists; an
// explicit path must exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Parse(data, &cfg); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a single YAML document into cfg. Keys not present in the
// file keep their current values; unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: parse config: %v", ErrInvalidConfig, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("%w: parse config: multiple YAML documents are not supported", ErrInvalidConfig)
		}
		return fmt.Errorf("%w: parse config: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyEnv overlays QUIZTIME_* variables read through lookup. NO_COLOR, when
// set to anything, turns color off regardless of QUIZTIME_COLOR.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("QUIZTIME_DB"); ok && v != "" {
		cfg.DBPath = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"QUIZTIME_RECORD", &cfg.Record},
		{"QUIZTIME_COLOR", &cfg.Color},
		{"QUIZTIME_TUI", &cfg.TUI},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, b.key, v)
		}
		*b.dst = parsed
	}

	if _, ok := lookup("NO_COLOR"); ok {
		cfg.Color = false
	}

	if v, ok := lookup("QUIZTIME_RETRY_PROMPT"); ok && v != "" {
		cfg.RetryPrompt = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup("QUIZTIME_MAX_ATTEMPTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: QUIZTIME_MAX_ATTEMPTS=%q is not an integer", ErrInvalidConfig, v)
		}
		cfg.MaxAttempts = n
	}
	return nil
}
