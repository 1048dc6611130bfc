// Package config loads milkledger settings. Values are layered: built-in
// defaults, then the YAML config file, then a .env file, then the process
// environment.
package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "milkledger"

// AI providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config holds every setting milkledger reads at startup.
type Config struct {
	// Database is the Badger directory. Empty means the XDG data directory.
	Database string `yaml:"database"`

	// Color is auto, always or never.
	Color string `yaml:"color"`

	AI       AIConfig       `yaml:"ai"`
	WhatsApp WhatsAppConfig `yaml:"whatsapp"`
}

// AIConfig holds settings for the summary text-generation service.
type AIConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Enabled reports whether an API key is available.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// WhatsAppConfig contains credentials for sending the share text through the
// WhatsApp Cloud API.
type WhatsAppConfig struct {
	AccessToken   string `yaml:"token"`
	PhoneNumberID string `yaml:"phone_number_id"`
	To            string `yaml:"to"`
	BaseURL       string `yaml:"base_url"`
	APIVersion    string `yaml:"api_version"`
}

// Enabled reports whether direct sending is configured.
func (c WhatsAppConfig) Enabled() bool {
	return c.AccessToken != "" && c.PhoneNumberID != "" && c.To != ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color: "auto",
		AI: AIConfig{
			Provider: ProviderGemini,
			Timeout:  30 * time.Second,
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:    "https://graph.facebook.com",
			APIVersion: "v20.0",
		},
	}
}

// DefaultPath returns the config file location under the XDG base directories.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultDatabasePath returns the database location under the XDG base directories.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// DatabasePath returns the configured database directory or the default.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	return DefaultDatabasePath()
}

// Validate checks values that would otherwise fail late, mid-command.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return errors.NewUserErrorWithField("ai.provider", c.AI.Provider,
			"Unknown AI provider",
			"Use 'gemini' or 'anthropic'")
	}

	if c.AI.Timeout <= 0 {
		return errors.NewUserErrorWithField("ai.timeout", c.AI.Timeout.String(),
			"AI timeout must be positive",
			"Use a duration like 30s or 1m")
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return errors.NewUserErrorWithField("color", c.Color,
			"Unknown color mode",
			"Use auto, always or never")
	}

	if err := validate.BaseURL(c.AI.BaseURL); err != nil {
		return err
	}
	if err := validate.BaseURL(c.WhatsApp.BaseURL); err != nil {
		return err
	}
	if c.WhatsApp.To != "" {
		if err := validate.PhoneNumber("whatsapp.to", c.WhatsApp.To); err != nil {
			return err
		}
	}

	return nil
}

// Masked returns the configuration as a map with secrets hidden, for display.
func (c *Config) Masked() map[string]any {
	return logging.MaskMap(map[string]any{
		"database": c.DatabasePath(),
		"color":    c.Color,
		"ai": map[string]any{
			"provider": c.AI.Provider,
			"model":    c.AI.Model,
			"api_key":  c.AI.APIKey,
			"base_url": c.AI.BaseURL,
			"timeout":  c.AI.Timeout.String(),
		},
		"whatsapp": map[string]any{
			"token":           c.WhatsApp.AccessToken,
			"phone_number_id": c.WhatsApp.PhoneNumberID,
			"to":              c.WhatsApp.To,
			"base_url":        c.WhatsApp.BaseURL,
			"api_version":     c.WhatsApp.APIVersion,
		},
	})
}
