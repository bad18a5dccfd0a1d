package spotify

import (
	"net/http"
	"strings"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultTokenURL   = spotifyauth.TokenURL
	DefaultAPIBaseURL = "https://api.spotify.com/v1/"

	// Vendor bodies are kept for diagnostics only, so they are capped.
	maxBodySize = 1 << 20
)

type SpotifyClientConfig struct {
	tokenURL   string
	apiBaseURL string
	httpClient *http.Client
	tracer     trace.Tracer
}

func NewSpotifyClientConfig(
	tokenURL string,
	apiBaseURL string,
	httpClient *http.Client,
	tracer trace.Tracer,
) *SpotifyClientConfig {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIBaseURL
	}
	if !strings.HasSuffix(apiBaseURL, "/") {
		apiBaseURL += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SpotifyClientConfig{
		tokenURL:   tokenURL,
		apiBaseURL: apiBaseURL,
		httpClient: httpClient,
		tracer:     tracer,
	}
}
