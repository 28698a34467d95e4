// Package config handles the XDG configuration directory and its files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"taskpad/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "taskpad"

	// DirEnv overrides the configuration directory.
	DirEnv = "TASKPAD_CONFIG_DIR"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultListen is the HTTP listen address used by serve.
	DefaultListen = "127.0.0.1:8080"
)

// Settings are the user-editable values read from config.yaml.
type Settings struct {
	// Sort is the initial sort key of the active list.
	Sort string `yaml:"sort"`

	// DateLayout is the Go time layout used to print dates in text output.
	DateLayout string `yaml:"date_layout"`

	// Listen is the address the HTTP API binds to.
	Listen string `yaml:"listen"`

	Import ImportSettings `yaml:"import"`
}

// ImportSettings configures the Google Tasks importer.
type ImportSettings struct {
	// List is the Google Tasks list to import. Empty means the default list.
	List string `yaml:"list"`

	// Priority is given to imported tasks, which carry none of their own.
	Priority int `yaml:"priority"`
}

// ViewState is presentation state that outlives a single command.
type ViewState struct {
	SortKey task.SortKey
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings Settings

	// View is shared by every copy of a Config made during a session.
	View *ViewState
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		Sort:       string(task.DefaultSortKey),
		DateLayout: task.DateLayout,
		Listen:     DefaultListen,
	}
}

// New creates a Config for configDir with default settings.
// If configDir is empty, uses DefaultConfigDir.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	settings := DefaultSettings()
	return &Config{
		Dir:      dir,
		Settings: settings,
		View:     &ViewState{SortKey: task.SortKeyOrDefault(settings.Sort)},
	}
}

// Load creates a Config for configDir and applies config.yaml if present.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	data, err := os.ReadFile(cfg.SettingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	if err := yaml.Unmarshal(data, &cfg.Settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	if err := cfg.Settings.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	cfg.View.SortKey = task.SortKeyOrDefault(cfg.Settings.Sort)
	return cfg, nil
}

func (s *Settings) validate() error {
	if s.Sort == "" {
		s.Sort = string(task.DefaultSortKey)
	}
	if _, err := task.ParseSortKey(s.Sort); err != nil {
		return err
	}
	if s.DateLayout == "" {
		s.DateLayout = task.DateLayout
	}
	if s.Listen == "" {
		s.Listen = DefaultListen
	}
	if s.Import.Priority < task.MinPriority || s.Import.Priority > task.MaxPriority {
		return fmt.Errorf("import.priority must be between %d and %d", task.MinPriority, task.MaxPriority)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses TASKPAD_CONFIG_DIR, then XDG_CONFIG_HOME, then $HOME/.config.
func DefaultConfigDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient reports whether the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken reports whether the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// SortKey returns the session sort key.
func (c *Config) SortKey() task.SortKey {
	if c.View == nil {
		return task.SortKeyOrDefault(c.Settings.Sort)
	}
	return c.View.SortKey
}

// SetSortKey changes the session sort key for every copy of c.
func (c *Config) SetSortKey(k task.SortKey) {
	if c.View == nil {
		c.View = &ViewState{}
	}
	c.View.SortKey = k
}

// Clone returns a shallow copy of c that shares its ViewState.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
