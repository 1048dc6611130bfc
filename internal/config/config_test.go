package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"MILKLEDGER_DATABASE", "MILKLEDGER_COLOR",
	"MILKLEDGER_AI_PROVIDER", "MILKLEDGER_AI_MODEL", "MILKLEDGER_AI_BASE_URL", "MILKLEDGER_AI_TIMEOUT",
	"GEMINI_API_KEY", "API_KEY", "ANTHROPIC_API_KEY",
	"WHATSAPP_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_TO", "WHATSAPP_BASE_URL", "WHATSAPP_API_VERSION",
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func emptySources(t *testing.T) LoadOptions {
	return LoadOptions{
		ConfigFile: writeFile(t, "config.yaml", ""),
		EnvFile:    writeFile(t, "empty.env", ""),
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.WhatsApp.Enabled())
	assert.Equal(t, "https://graph.facebook.com", cfg.WhatsApp.BaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultDatabasePath(), cfg.DatabasePath())
	assert.Contains(t, cfg.DatabasePath(), AppName)

	cfg.Database = "/tmp/milk"
	assert.Equal(t, "/tmp/milk", cfg.DatabasePath())
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
database: /data/milk
color: never
ai:
  provider: anthropic
  model: claude-test
  api_key: from-file
  timeout: 45s
whatsapp:
  token: wa-token
  phone_number_id: "12345"
  to: "919876543210"
`)

	cfg, err := Load(LoadOptions{ConfigFile: path, EnvFile: writeFile(t, "empty.env", "")})
	require.NoError(t, err)

	assert.Equal(t, "/data/milk", cfg.Database)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, ProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, "claude-test", cfg.AI.Model)
	assert.Equal(t, "from-file", cfg.AI.APIKey)
	assert.Equal(t, 45*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.WhatsApp.Enabled())
	assert.Equal(t, "v20.0", cfg.WhatsApp.APIVersion, "defaults survive a partial file")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "ai:\n  api_key: from-file\n")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("MILKLEDGER_AI_TIMEOUT", "5s")
	t.Setenv("MILKLEDGER_DATABASE", "/env/db")

	cfg, err := Load(LoadOptions{ConfigFile: path, EnvFile: writeFile(t, "empty.env", "")})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "/env/db", cfg.DatabasePath())
}

func TestLoadAPIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "plain-key")

	cfg, err := Load(emptySources(t))
	require.NoError(t, err)
	assert.Equal(t, "plain-key", cfg.AI.APIKey)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadAnthropicKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("MILKLEDGER_AI_PROVIDER", "Anthropic")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("ANTHROPIC_API_KEY", "anthropic-key")

	cfg, err := Load(emptySources(t))
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, "anthropic-key", cfg.AI.APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "WHATSAPP_TOKEN=tok\nWHATSAPP_PHONE_NUMBER_ID=42\nWHATSAPP_TO=919876543210\n")
	t.Cleanup(func() {
		os.Unsetenv("WHATSAPP_TOKEN")
		os.Unsetenv("WHATSAPP_PHONE_NUMBER_ID")
		os.Unsetenv("WHATSAPP_TO")
	})
	// godotenv never overrides variables that are already set, even to "".
	os.Unsetenv("WHATSAPP_TOKEN")
	os.Unsetenv("WHATSAPP_PHONE_NUMBER_ID")
	os.Unsetenv("WHATSAPP_TO")

	cfg, err := Load(LoadOptions{ConfigFile: writeFile(t, "config.yaml", ""), EnvFile: envFile})
	require.NoError(t, err)
	assert.True(t, cfg.WhatsApp.Enabled())
	assert.Equal(t, "42", cfg.WhatsApp.PhoneNumberID)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("bad_yaml", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: writeFile(t, "bad.yaml", "ai: [unclosed")})
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("missing_env_file", func(t *testing.T) {
		_, err := Load(LoadOptions{
			ConfigFile: writeFile(t, "config.yaml", ""),
			EnvFile:    filepath.Join(t.TempDir(), "nope.env"),
		})
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"provider", func(c *Config) { c.AI.Provider = "openai" }},
		{"timeout", func(c *Config) { c.AI.Timeout = 0 }},
		{"color", func(c *Config) { c.Color = "rainbow" }},
		{"ai_base_url", func(c *Config) { c.AI.BaseURL = "http://example.com" }},
		{"phone", func(c *Config) { c.WhatsApp.To = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsUserError(err))
		})
	}
}

func TestMasked(t *testing.T) {
	cfg := Default()
	cfg.AI.APIKey = "AIzaSyExampleKey9876"
	cfg.WhatsApp.AccessToken = "EAAGtokenvalue1234"
	cfg.WhatsApp.To = "919876543210"

	m := cfg.Masked()
	ai := m["ai"].(map[string]any)
	wa := m["whatsapp"].(map[string]any)

	assert.Equal(t, "********9876", ai["api_key"])
	assert.Equal(t, "********1234", wa["token"])
	assert.Equal(t, "919876543210", wa["to"])
	assert.Equal(t, ProviderGemini, ai["provider"])
}
