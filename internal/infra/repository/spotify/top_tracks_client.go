package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrMissingItems     = errors.New("response has no items field")
)

type TopTracksClient struct {
	tracer trace.Tracer
	config *SpotifyClientConfig
}

func NewTopTracksClient(config *SpotifyClientConfig) *TopTracksClient {
	return &TopTracksClient{
		tracer: config.tracer,
		config: config,
	}
}

func (client *TopTracksClient) TopTracks(ctx context.Context, token appspotify.AccessToken) ([]spotifyLib.FullTrack, error) {
	ctx, span := client.tracer.Start(ctx, "TopTracksClient.TopTracks")
	defer span.End()

	tracks, err := client.topTracks(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "top tracks request failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("items", len(tracks)))

	return tracks, nil
}

func (client *TopTracksClient) topTracks(ctx context.Context, token appspotify.AccessToken) ([]spotifyLib.FullTrack, error) {
	recorder := newResponseRecorder(client.config.httpClient.Transport)

	httpClient := recorder.client(client.config.httpClient)
	httpClient.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Token, TokenType: "Bearer"}),
		Base:   recorder,
	}

	apiClient := spotifyLib.New(httpClient, spotifyLib.WithBaseURL(client.config.apiBaseURL))

	page, err := apiClient.CurrentUsersTopTracks(ctx)
	if err != nil {
		// zmb3 only keeps the decoded message of an error response, the raw
		// body comes from the recorder.
		if recorder.statusCode != 0 && !isSuccess(recorder.statusCode) {
			err = fmt.Errorf("%w: %d: %w", ErrUnexpectedStatus, recorder.statusCode, err)
		}

		return nil, &appspotify.UpstreamError{
			StatusCode: recorder.statusCode,
			Body:       string(recorder.body),
			Err:        err,
		}
	}
	if page == nil || page.Tracks == nil {
		return nil, &appspotify.UpstreamError{
			StatusCode: recorder.statusCode,
			Body:       string(recorder.body),
			Err:        ErrMissingItems,
		}
	}

	return page.Tracks, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
