package spotify

import (
	"context"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
)

type TopTracksService interface {
	TopTracks(ctx context.Context) ([]appspotify.TrackSummary, error)
}
