// Package config loads .nadia.yaml, the optional project configuration
// file that sets a default locale, the display modes to run, and the
// result-cache location, grounded on funxy.yaml's loader in the ext
// package (LoadConfig/ParseConfig/FindConfig/validate/setDefaults).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Locale names a message-catalog language.
type Locale string

const (
	PT Locale = "pt"
	EN Locale = "en"
)

// Config is the top-level .nadia.yaml configuration.
type Config struct {
	// Locale selects the diagnostic message language. Defaults to "pt".
	Locale Locale `yaml:"locale,omitempty"`

	// Fitch enables Fitch-style LaTeX output. Defaults to true.
	Fitch *bool `yaml:"fitch,omitempty"`

	// Gentzen enables Gentzen-tree LaTeX output. Defaults to false.
	Gentzen *bool `yaml:"gentzen,omitempty"`

	// CachePath is where the result cache's sqlite database lives.
	// Defaults to "nadia/results.db" under os.UserCacheDir(), or to
	// ".nadia-cache/results.db" when that directory is unknown. CLI-only: the core
	// Check entry point never touches this field.
	CachePath string `yaml:"cache_path,omitempty"`
}

// FitchEnabled reports c.Fitch, defaulting to true when unset.
func (c *Config) FitchEnabled() bool {
	return c.Fitch == nil || *c.Fitch
}

// GentzenEnabled reports c.Gentzen, defaulting to false when unset.
func (c *Config) GentzenEnabled() bool {
	return c.Gentzen != nil && *c.Gentzen
}

// Default returns the zero-configuration defaults: pt locale, Fitch on,
// Gentzen off, and the standard user cache directory.
func Default() *Config {
	return &Config{
		Locale:    PT,
		CachePath: defaultCachePath(),
	}
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".nadia-cache/results.db"
	}
	return filepath.Join(dir, "nadia", "results.db")
}

// Load reads and parses a .nadia.yaml file, filling unset fields from
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses .nadia.yaml content from bytes. path is used only in error
// messages.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(path string) error {
	switch c.Locale {
	case PT, EN:
	default:
		return fmt.Errorf("%s: locale must be %q or %q, got %q", path, PT, EN, c.Locale)
	}
	return nil
}

// Find searches for .nadia.yaml starting from dir and walking up to
// parent directories, the way Git locates .gitignore. It also honors
// $NADIA_CONFIG as an override that short-circuits the search. Returns
// an empty path and nil error when nothing is found, so callers fall
// back to Default.
func Find(dir string) (string, error) {
	if override := os.Getenv("NADIA_CONFIG"); override != "" {
		return override, nil
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ".nadia.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve finds and loads the nearest .nadia.yaml from dir, or returns
// Default if none exists.
func Resolve(dir string) (*Config, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
