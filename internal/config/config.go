package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wpmcp/internal/logging"
	"wpmcp/internal/validation"
	"wpmcp/internal/wordpress"
	"wpmcp/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "wpmcp" // application name used for config directory

// Environment variables that override the config file.
const (
	EnvSiteURL             = "WORDPRESS_URL"
	EnvUsername            = "WORDPRESS_USERNAME"
	EnvApplicationPassword = "APPLICATION_PASSWORD"
)

// PasswordStore looks up an application password for a username.
// credentials.Manager satisfies it.
type PasswordStore interface {
	Get(username string) (string, error)
}

// Source records where the application password came from.
type Source string

const (
	SourceNone    Source = ""
	SourceFile    Source = "config file"
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
)

// Config holds the settings for one WordPress site.
type Config struct {
	SiteURL             string        `yaml:"site_url"`
	Username            string        `yaml:"username"`
	ApplicationPassword string        `yaml:"application_password,omitempty"`
	RequestTimeout      time.Duration `yaml:"request_timeout,omitempty"` // zero means no client timeout
	Version             string        `yaml:"version"`                   // Track config version
	InitTime            int64         `yaml:"init_time"`                 // Unix timestamp of first setup

	// PasswordSource is set by Resolve and never persisted.
	PasswordSource Source `yaml:"-"`
	filePassword   string
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, APP_NAME)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config paths", "path", configPath)
	return configPath, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		logging.Debug("Config found at primary path", "path", primary)
		return primary, true
	}

	// Return primary path for new config
	return primary, false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Version:  "1.0",
		InitTime: 0, // Will be set during first save
	}
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.filePassword = cfg.ApplicationPassword

	return &cfg, nil
}

// Resolve builds the runtime configuration. Values are layered in order:
// the config file at path (the standard location when path is empty; a
// missing file yields defaults), then the WORDPRESS_URL, WORDPRESS_USERNAME
// and APPLICATION_PASSWORD environment variables, then store for the
// password if it is still empty. store may be nil.
//
// Missing values are not an error here; see Missing.
func Resolve(path string, store PasswordStore) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path, _ = FindConfigFile()
	}

	var cfg *Config
	if _, err := os.Stat(path); err == nil {
		cfg, err = LoadFrom(path)
		if err != nil {
			return nil, err
		}
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %w", err)
	} else {
		d := DefaultConfig()
		cfg = &d
	}

	if cfg.ApplicationPassword != "" {
		cfg.PasswordSource = SourceFile
	}

	if v := os.Getenv(EnvSiteURL); v != "" {
		cfg.SiteURL = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvApplicationPassword); v != "" {
		cfg.ApplicationPassword = v
		cfg.PasswordSource = SourceEnv
	}

	if cfg.ApplicationPassword == "" && cfg.Username != "" && store != nil {
		password, err := store.Get(cfg.Username)
		if err != nil {
			logging.Debug("No application password in keyring", "username", cfg.Username, "error", err)
		} else {
			cfg.ApplicationPassword = password
			cfg.PasswordSource = SourceKeyring
		}
	}

	return cfg, nil
}

// Credentials returns the values the WordPress client authenticates with.
func (c *Config) Credentials() wordpress.Credentials {
	return wordpress.Credentials{
		BaseURL:  c.SiteURL,
		Username: c.Username,
		Password: c.ApplicationPassword,
	}
}

// Missing lists the required settings that are empty, by environment
// variable name.
func (c *Config) Missing() []string {
	var missing []string
	if strings.TrimSpace(c.SiteURL) == "" {
		missing = append(missing, EnvSiteURL)
	}
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, EnvUsername)
	}
	if c.ApplicationPassword == "" {
		missing = append(missing, EnvApplicationPassword)
	}
	return missing
}

// Validate reports every problem with the settings at once.
func (c *Config) Validate() error {
	var errs []error
	for _, key := range c.Missing() {
		errs = append(errs, fmt.Errorf("%s is not set", key))
	}
	if c.SiteURL != "" {
		if err := validation.ValidateSiteURL(c.SiteURL); err != nil {
			errs = append(errs, err)
		}
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative"))
	}
	return errors.Join(errs...)
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	configPath, _ := FindConfigFile()
	return c.SaveTo(configPath)
}

// SaveTo writes the config to a specific path. A password that came from
// the environment or the keyring is never written to disk.
func (c *Config) SaveTo(path string) error {
	// Set init time if this is the first save
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	out := *c
	if c.PasswordSource != SourceFile && c.PasswordSource != SourceNone {
		out.ApplicationPassword = c.filePassword
	}

	if err := fileops.EnsureDirectoryExists(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Restrictive permissions (600): the file may hold the application password
	if err := fileops.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// CreateNewConfig initializes a new configuration for a site and saves it
// to path (the standard location when empty).
func CreateNewConfig(path, siteURL, username string) (*Config, error) {
	if err := validation.ValidateSiteURL(siteURL); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	cfg := DefaultConfig()
	cfg.SiteURL = strings.TrimRight(siteURL, "/")
	cfg.Username = username

	if path == "" {
		path, _ = FindConfigFile()
	}
	if err := cfg.SaveTo(path); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	logging.Info("Configuration created successfully", "path", path, "site_url", cfg.SiteURL)
	return &cfg, nil
}

// MaskedPassword returns the password with all but the last four
// characters hidden, for display.
func (c *Config) MaskedPassword() string {
	p := strings.ReplaceAll(c.ApplicationPassword, " ", "")
	if p == "" {
		return ""
	}
	if len(p) <= 4 {
		return strings.Repeat("*", len(p))
	}
	return strings.Repeat("*", len(p)-4) + p[len(p)-4:]
}
