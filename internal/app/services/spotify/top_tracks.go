package spotify

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TopTracks exchanges the configured refresh token for a fresh access token,
// then fetches the account's top tracks and projects at most MaxTopTracks of them.
func (s TopTracksService) TopTracks(ctx context.Context) ([]TrackSummary, error) {
	ctx, span := s.tracer.Start(ctx, "TopTracksService.TopTracks")
	defer span.End()

	token, err := s.tokenExchanger.Exchange(ctx, s.credentials)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token exchange failed")

		if isTimeout(err) {
			cause := err
			var authErr *AuthError
			if errors.As(err, &authErr) {
				cause = authErr.Err
			}

			return nil, fmt.Errorf("s.tokenExchanger.Exchange: %w", &UpstreamError{Err: cause})
		}
		if !errors.Is(err, ErrAuth) {
			err = &AuthError{Err: err}
		}

		return nil, fmt.Errorf("s.tokenExchanger.Exchange: %w", err)
	}

	tracks, err := s.topTracksClient.TopTracks(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "top tracks request failed")

		if !errors.Is(err, ErrUpstream) {
			err = &UpstreamError{Err: err}
		}

		return nil, fmt.Errorf("s.topTracksClient.TopTracks: %w", err)
	}

	if len(tracks) > MaxTopTracks {
		tracks = tracks[:MaxTopTracks]
	}

	summaries := make([]TrackSummary, 0, len(tracks))
	for _, track := range tracks {
		summaries = append(summaries, Summarize(track))
	}

	span.SetAttributes(attribute.Int("tracks", len(summaries)))

	return summaries, nil
}
