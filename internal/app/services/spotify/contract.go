package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

type TokenExchanger interface {
	Exchange(ctx context.Context, credentials Credentials) (AccessToken, error)
}

type TopTracksClient interface {
	TopTracks(ctx context.Context, token AccessToken) ([]spotifyLib.FullTrack, error)
}
