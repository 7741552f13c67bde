package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Storage: StorageConfig{DataPath: "/some/path"},
		Invite: InviteConfig{
			PublicURL:  "http://localhost:3000",
			SlugLength: 10,
		},
		Mail: MailConfig{SenderEmail: "noreply@example.com", RatePerSecond: 5},
	}
}

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // registers restore
		os.Unsetenv(key)  //nolint:errcheck // Test setup
	}
}

// noEnvFile keeps Load from picking up a .env in the working directory.
func noEnvFile(t *testing.T) string {
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"WARN", true}, // case insensitive
		{"trace", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_SlugLength(t *testing.T) {
	tests := []struct {
		length int
		valid  bool
	}{
		{5, false},
		{6, true},
		{10, true},
		{32, true},
		{33, false},
		{0, false},
	}

	for _, tt := range tests {
		cfg := validConfig()
		cfg.Invite.SlugLength = tt.length

		err := cfg.Validate()
		if tt.valid {
			assert.NoError(t, err, "length %d", tt.length)
		} else {
			assert.Error(t, err, "length %d", tt.length)
		}
	}
}

func TestValidate_PublicURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"http://localhost:3000", true},
		{"https://askyourcrush.example", true},
		{"ftp://askyourcrush.example", false},
		{"askyourcrush.example", false},
		{"", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			cfg := validConfig()
			cfg.Invite.PublicURL = tt.url

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Mail(t *testing.T) {
	cfg := validConfig()
	cfg.Mail.APIKey = "xkeysib-123"
	cfg.Mail.SenderEmail = "not-an-address"
	assert.Error(t, cfg.Validate())

	// Sender address is irrelevant while delivery is disabled.
	cfg.Mail.APIKey = ""
	assert.NoError(t, cfg.Validate())

	cfg.Mail.RatePerSecond = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DataPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data path")
}

func TestExpandDataPath_EmptyUsesDefault(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.expandDataPath())

	homeDir, _ := os.UserHomeDir() //nolint:errcheck // Test setup
	assert.Equal(t, filepath.Join(homeDir, "AskYourCrush"), cfg.Storage.DataPath)
	assert.Equal(t, filepath.Join(homeDir, "AskYourCrush", "invites.db"), cfg.Storage.DatabasePath())
}

func TestExpandDataPath_TildeExpansion(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{DataPath: "~/my-data"}}

	require.NoError(t, cfg.expandDataPath())

	homeDir, _ := os.UserHomeDir() //nolint:errcheck // Test setup
	assert.Equal(t, filepath.Join(homeDir, "my-data"), cfg.Storage.DataPath)
}

func TestExpandDataPath_RelativePath(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{DataPath: "relative/path"}}

	require.NoError(t, cfg.expandDataPath())

	assert.True(t, filepath.IsAbs(cfg.Storage.DataPath))
	assert.Contains(t, cfg.Storage.DataPath, "relative/path")
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t,
		"ENV", "LOG_LEVEL", "DATA_PATH", "SERVER_PORT", "PUBLIC_URL", "SLUG_LENGTH",
		"CORS_ALLOWED_ORIGINS", "BREVO_API_KEY", "BREVO_BASE_URL", "MAIL_SENDER_EMAIL",
		"MAIL_SENDER_NAME", "MAIL_TIMEOUT", "MAIL_RATE_PER_SECOND",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_ENABLED",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	)

	cfg, err := Load([]string{noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "http://localhost:3000", cfg.Invite.PublicURL)
	assert.Equal(t, 10, cfg.Invite.SlugLength)

	assert.False(t, cfg.Mail.DeliveryEnabled())
	assert.Equal(t, "https://api.brevo.com/v3", cfg.Mail.BaseURL)
	assert.Equal(t, "noreply@example.com", cfg.Mail.SenderEmail)
	assert.Equal(t, "Ask Your Crush", cfg.Mail.SenderName)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.InDelta(t, 5.0, cfg.Mail.RatePerSecond, 0.001)

	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PUBLIC_URL", "https://askyourcrush.example/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("BREVO_API_KEY", "xkeysib-123")
	t.Setenv("MAIL_RATE_PER_SECOND", "2.5")
	t.Setenv("OTEL_ENABLED", "false")

	cfg, err := Load([]string{noEnvFile(t), "-port", "7070", "-slug-length", "12"})
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port, "flag beats env")
	assert.Equal(t, "warn", cfg.Logger.Level, "env beats default")
	assert.Equal(t, 12, cfg.Invite.SlugLength)
	assert.Equal(t, "https://askyourcrush.example", cfg.Invite.PublicURL, "trailing slash trimmed")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Mail.DeliveryEnabled())
	assert.InDelta(t, 2.5, cfg.Mail.RatePerSecond, 0.001)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad timeout", func(t *testing.T) {
		_, err := Load([]string{noEnvFile(t), "-read-timeout", "soon"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server_read_timeout")
	})

	t.Run("bad mail timeout", func(t *testing.T) {
		t.Setenv("MAIL_TIMEOUT", "ten seconds")
		_, err := Load([]string{noEnvFile(t)})
		assert.Error(t, err)
	})

	t.Run("slug too short", func(t *testing.T) {
		_, err := Load([]string{noEnvFile(t), "-slug-length", "4"})
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := Load([]string{"-no-such-flag"})
		assert.Error(t, err)
	})
}

func TestInviteConfig_Links(t *testing.T) {
	c := InviteConfig{PublicURL: "https://askyourcrush.example"}

	assert.Equal(t, "https://askyourcrush.example/invite/aB3dE5gH7j", c.InviteURL("aB3dE5gH7j"))
	assert.Equal(t, "https://askyourcrush.example/invite/aB3dE5gH7j/result", c.ResultURL("aB3dE5gH7j"))
}

func TestGetConfigValue_Precedence(t *testing.T) {
	assert.Equal(t, "flag-value", getConfigValue("flag-value", "TEST_ENV_KEY", "default-value"))

	t.Setenv("TEST_ENV_KEY", "env-value")
	assert.Equal(t, "env-value", getConfigValue("", "TEST_ENV_KEY", "default-value"))

	assert.Equal(t, "default-value", getConfigValue("", "NONEXISTENT_KEY", "default-value"))
}

func TestGetIntConfigValue(t *testing.T) {
	assert.Equal(t, 12, getIntConfigValue("12", "UNUSED_KEY", 10))
	assert.Equal(t, 10, getIntConfigValue("twelve", "UNUSED_KEY", 10))
	assert.Equal(t, 10, getIntConfigValue("", "UNUSED_KEY", 10))
}

func TestLoadEnvFile_ValidFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	content := `# Test env file
ENV=staging
LOG_LEVEL=debug
DATA_PATH=/test/path
# Comment line
QUOTED_VALUE="some value"
SINGLE_QUOTED='another value'
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	unsetEnv(t, "ENV", "LOG_LEVEL", "DATA_PATH", "QUOTED_VALUE", "SINGLE_QUOTED")

	require.NoError(t, loadEnvFile(envFile))

	assert.Equal(t, "staging", os.Getenv("ENV"))
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "/test/path", os.Getenv("DATA_PATH"))
	assert.Equal(t, "some value", os.Getenv("QUOTED_VALUE"))
	assert.Equal(t, "another value", os.Getenv("SINGLE_QUOTED"))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	content := `VALID_KEY=valid_value
INVALID LINE WITHOUT EQUALS
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))
	unsetEnv(t, "VALID_KEY")

	err := loadEnvFile(envFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	assert.Error(t, loadEnvFile("/nonexistent/file/.env"))
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	t.Setenv("TEST_VAR", "original-value")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(`TEST_VAR=new-value`), 0o644))

	require.NoError(t, loadEnvFile(envFile))

	assert.Equal(t, "original-value", os.Getenv("TEST_VAR"))
}

func TestLoadEnvFile_FeedsLoad(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SLUG_LENGTH=16\nMAIL_SENDER_NAME='Cupid'\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	unsetEnv(t, "SLUG_LENGTH", "MAIL_SENDER_NAME")

	cfg, err := Load([]string{"-env-file", envFile})
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Invite.SlugLength)
	assert.Equal(t, "Cupid", cfg.Mail.SenderName)
}
