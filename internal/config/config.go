// Package config handles the XDG configuration directory, the config file,
// and session file paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// FileName is the configuration filename inside the config directory.
	FileName = "config.yaml"

	// SessionFile is the stored session filename.
	SessionFile = "session.json"

	// DefaultBaseURL is the task API endpoint used when no config file exists.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeoutSeconds is the per-request timeout default.
	DefaultTimeoutSeconds = 5
)

// File is the on-disk configuration schema.
type File struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the task API base endpoint.
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// Debug enables debug logging to stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// merges config.yaml over the defaults if the file exists.
// If configDir is empty, uses XDG_CONFIG_HOME/taskman or $HOME/.config/taskman.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:     dir,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeoutSeconds * time.Second,
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(f.TimeoutSeconds) * time.Second
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the stored session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// WriteDefault writes a commented default config.yaml, for first-time setup.
func (c *Config) WriteDefault() error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	content := fmt.Sprintf(`# taskman configuration
base_url: %s
timeout_seconds: %d
`, DefaultBaseURL, DefaultTimeoutSeconds)
	return os.WriteFile(filepath.Join(c.Dir, FileName), []byte(content), 0644)
}
