package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file searched for from the working directory upwards.
const ConfigFileName = "tsi.yml"

const (
	defaultPrompt      = "> "
	defaultHistorySize = 100
)

var ErrConfigNotFound = errors.New("tsi.yml not found")

// ColorMode selects when terminal output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Apply sets the process-wide color switch. Auto keeps the terminal
// detection done by fatih/color.
func (m ColorMode) Apply() {
	switch m {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}
}

// Config represents the parsed contents of tsi.yml merged over defaults.
type Config struct {
	Path        string
	Debug       bool
	KeepGoing   bool
	Color       ColorMode
	Prompt      string
	HistorySize int
}

// DefaultConfig returns the settings used when no tsi.yml exists.
func DefaultConfig() *Config {
	return &Config{
		Color:       ColorAuto,
		Prompt:      defaultPrompt,
		HistorySize: defaultHistorySize,
	}
}

// Options derives session options from the config.
func (c *Config) Options() Options {
	return Options{Debug: c.Debug, KeepGoing: c.KeepGoing}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Debug       *bool   `yaml:"debug"`
	KeepGoing   *bool   `yaml:"keep_going"`
	Color       *string `yaml:"color"`
	Prompt      *string `yaml:"prompt"`
	HistorySize *int    `yaml:"history_size"`
}

// LoadConfig parses a config file from disk. An empty file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()
	return decodeConfig(file, absPath)
}

func decodeConfig(r io.Reader, path string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := raw.toConfig(path)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if cf.Debug != nil {
		cfg.Debug = *cf.Debug
	}
	if cf.KeepGoing != nil {
		cfg.KeepGoing = *cf.KeepGoing
	}
	if cf.Color != nil {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(*cf.Color)))
	}
	if cf.Prompt != nil {
		cfg.Prompt = *cf.Prompt
	}
	if cf.HistorySize != nil {
		cfg.HistorySize = *cf.HistorySize
	}
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	if !c.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}
	if c.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must be a non-empty string")
	}
	if c.HistorySize < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("history_size must not be negative (got %d)", c.HistorySize))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindConfig walks from start towards the filesystem root looking for
// tsi.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// LoadConfigFrom discovers and loads tsi.yml starting at start, falling back
// to the defaults when none exists.
func LoadConfigFrom(start string) (*Config, error) {
	path, err := FindConfig(start)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}
