package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"FOOD_APP_NAME":                os.Getenv("FOOD_APP_NAME"),
		"FOOD_APP_ENV":                 os.Getenv("FOOD_APP_ENV"),
		"FOOD_APP_PORT":                os.Getenv("FOOD_APP_PORT"),
		"FOOD_LOG_LEVEL":               os.Getenv("FOOD_LOG_LEVEL"),
		"FOOD_TRACKER_ENABLED":         os.Getenv("FOOD_TRACKER_ENABLED"),
		"FOOD_TRACKER_BASE_URL":        os.Getenv("FOOD_TRACKER_BASE_URL"),
		"FOOD_TRACKER_PHONE":           os.Getenv("FOOD_TRACKER_PHONE"),
		"FOOD_TRACKER_POLL_INTERVAL":   os.Getenv("FOOD_TRACKER_POLL_INTERVAL"),
		"FOOD_HTTP_CORS_ALLOW_ORIGINS": os.Getenv("FOOD_HTTP_CORS_ALLOW_ORIGINS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fooddelivery-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Tracker.PollInterval)
		assert.Equal(t, 5*time.Second, cfg.Tracker.FetchTimeout)
		assert.False(t, cfg.Tracker.Enabled)
	})

	t.Run("loads values from environment variables with FOOD prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOOD_APP_NAME", "test-app")
		os.Setenv("FOOD_APP_PORT", "9000")
		os.Setenv("FOOD_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("tracker requires base url and phone when enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOOD_TRACKER_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tracker.base_url")
	})

	t.Run("tracker accepts a full configuration", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOOD_TRACKER_ENABLED", "true")
		os.Setenv("FOOD_TRACKER_BASE_URL", "http://orders.local")
		os.Setenv("FOOD_TRACKER_PHONE", "+998901234567")
		os.Setenv("FOOD_TRACKER_POLL_INTERVAL", "30s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.True(t, cfg.Tracker.Enabled)
		assert.Equal(t, "http://orders.local", cfg.Tracker.BaseURL)
		assert.Equal(t, "+998901234567", cfg.Tracker.Phone)
		assert.Equal(t, 30*time.Second, cfg.Tracker.PollInterval)
	})

	t.Run("tracker rejects sub-second poll intervals", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOOD_TRACKER_ENABLED", "true")
		os.Setenv("FOOD_TRACKER_BASE_URL", "http://orders.local")
		os.Setenv("FOOD_TRACKER_PHONE", "+998901234567")
		os.Setenv("FOOD_TRACKER_POLL_INTERVAL", "100ms")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "poll_interval")
	})

	t.Run("production rejects wildcard CORS origins", func(t *testing.T) {
		clearEnv()
		os.Setenv("FOOD_APP_ENV", "production")
		os.Setenv("FOOD_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})
}
