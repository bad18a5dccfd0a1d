package main

import (
	"os"
	"testing"
	"time"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "client-secret")
	t.Setenv("REFRESH_TOKEN", "refresh-token")
}

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		env, err := LoadEnv()
		require.NoError(t, err)

		assert.Equal(t, appspotify.Credentials{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RefreshToken: "refresh-token",
		}, env.Credentials())
		assert.Equal(t, "1323", env.Port)
		assert.Equal(t, "json", env.LogFormat)
		assert.Equal(t, "info", env.LogLevel)
		assert.Equal(t, 5*time.Second, env.UpstreamTimeout)
		assert.Equal(t, "https://accounts.spotify.com/api/token", env.SpotifyTokenURL)
		assert.Equal(t, "https://api.spotify.com/v1/", env.SpotifyAPIURL)
		assert.False(t, env.TracingEnabled)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "8080")
		t.Setenv("UPSTREAM_TIMEOUT", "2s")
		t.Setenv("TRACING_ENABLED", "true")

		env, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "8080", env.Port)
		assert.Equal(t, 2*time.Second, env.UpstreamTimeout)
		assert.True(t, env.TracingEnabled)
	})

	t.Run("missing refresh token", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REFRESH_TOKEN", "")
		require.NoError(t, os.Unsetenv("REFRESH_TOKEN"))

		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("empty client secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CLIENT_SECRET", "")

		_, err := LoadEnv()
		assert.ErrorIs(t, err, appspotify.ErrInvalidCredentials)
	})

	t.Run("non positive timeout", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("UPSTREAM_TIMEOUT", "0s")

		_, err := LoadEnv()
		assert.Error(t, err)
	})
}
