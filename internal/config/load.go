package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/logging"
)

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// ConfigFile overrides the YAML config path. Empty uses DefaultPath.
	ConfigFile string
	// EnvFile overrides the .env path. Empty uses ./.env if present.
	EnvFile string
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges a YAML file into the config. A missing default file is
// not an error; a missing explicit file is.
func (c *Config) loadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return errors.NewUserErrorWithField("config", path,
			"Cannot read config file",
			"Check the path passed with --config")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.NewUserErrorWithField("config", path,
			"Invalid config file",
			fmt.Sprintf("Fix the YAML syntax: %v", err))
	}

	logging.DebugLog("loaded config file", "path", path)
	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		// A missing .env is normal.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.NewUserErrorWithField("env", path,
			"Cannot load env file",
			"Check the path and KEY=value syntax")
	}
	return nil
}

// loadFromEnv applies environment variable overrides.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("MILKLEDGER_DATABASE"); v != "" {
		c.Database = v
	}
	if v := os.Getenv("MILKLEDGER_COLOR"); v != "" {
		c.Color = strings.ToLower(v)
	}

	// AI configuration
	if v := os.Getenv("MILKLEDGER_AI_PROVIDER"); v != "" {
		c.AI.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("MILKLEDGER_AI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("MILKLEDGER_AI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	if v := os.Getenv("MILKLEDGER_AI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.AI.Timeout = d
		} else {
			logging.Warn("ignoring invalid MILKLEDGER_AI_TIMEOUT", "value", v)
		}
	}
	if c.AI.Provider == ProviderAnthropic {
		if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
			c.AI.APIKey = v
		}
	} else {
		if v := firstEnv("GEMINI_API_KEY", "API_KEY"); v != "" {
			c.AI.APIKey = v
		}
	}

	// WhatsApp configuration
	if v := os.Getenv("WHATSAPP_TOKEN"); v != "" {
		c.WhatsApp.AccessToken = v
	}
	if v := os.Getenv("WHATSAPP_PHONE_NUMBER_ID"); v != "" {
		c.WhatsApp.PhoneNumberID = v
	}
	if v := os.Getenv("WHATSAPP_TO"); v != "" {
		c.WhatsApp.To = v
	}
	if v := os.Getenv("WHATSAPP_BASE_URL"); v != "" {
		c.WhatsApp.BaseURL = v
	}
	if v := os.Getenv("WHATSAPP_API_VERSION"); v != "" {
		c.WhatsApp.APIVersion = v
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
