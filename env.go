package main

import (
	"fmt"
	"time"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	ClientID     string `env:"CLIENT_ID" env-required:"true"`
	ClientSecret string `env:"CLIENT_SECRET" env-required:"true"`
	RefreshToken string `env:"REFRESH_TOKEN" env-required:"true"`

	SpotifyTokenURL string        `env:"SPOTIFY_TOKEN_URL" env-default:"https://accounts.spotify.com/api/token"`
	SpotifyAPIURL   string        `env:"SPOTIFY_API_URL" env-default:"https://api.spotify.com/v1/"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"5s"`

	Port string `env:"PORT" env-default:"1323"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

	TracingEnabled  bool   `env:"TRACING_ENABLED" env-default:"false"`
	TracingEndpoint string `env:"TRACING_ENDPOINT" env-default:"tempo:4318"`
}

// LoadEnv reads the configuration once, optionally seeded from a .env file.
func LoadEnv() (*Env, error) {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, err
	}

	// cleanenv accepts variables that are set but empty.
	if err := env.Credentials().Validate(); err != nil {
		return nil, err
	}
	if env.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", env.UpstreamTimeout)
	}

	return &env, nil
}

func (e *Env) Credentials() appspotify.Credentials {
	return appspotify.Credentials{
		ClientID:     e.ClientID,
		ClientSecret: e.ClientSecret,
		RefreshToken: e.RefreshToken,
	}
}
