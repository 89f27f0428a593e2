package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "DB_NAME", "MIGRATIONS_DIR", "TURSO_PRIMARY_URL", "CLOCK_ENABLED", "ALLOWED_ORIGINS")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "scoreline.db", cfg.DBName)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.True(t, cfg.Clock.Enabled)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("CLOCK_ENABLED", "false")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "C123", cfg.Slack.ChannelID)
	assert.False(t, cfg.Clock.Enabled)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_TursoNeedsToken(t *testing.T) {
	t.Setenv("TURSO_PRIMARY_URL", "libsql://scores.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}
