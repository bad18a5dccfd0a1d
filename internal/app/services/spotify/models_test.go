package spotify_test

import (
	"testing"

	"github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	"github.com/stretchr/testify/assert"
	spotifyLib "github.com/zmb3/spotify/v2"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		track    spotifyLib.FullTrack
		expected spotify.TrackSummary
	}{
		{
			name: "joins artists",
			track: spotifyLib.FullTrack{
				SimpleTrack: spotifyLib.SimpleTrack{
					Name:         "Fancy",
					Artists:      []spotifyLib.SimpleArtist{{Name: "A"}, {Name: "B"}},
					ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/track/1"},
				},
			},
			expected: spotify.TrackSummary{
				Artist:  "A, B",
				SongURL: "https://open.spotify.com/track/1",
				Title:   "Fancy",
			},
		},
		{
			name: "single artist",
			track: spotifyLib.FullTrack{
				SimpleTrack: spotifyLib.SimpleTrack{
					Name:         "Next Level",
					Artists:      []spotifyLib.SimpleArtist{{Name: "aespa"}},
					ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/track/2"},
				},
			},
			expected: spotify.TrackSummary{
				Artist:  "aespa",
				SongURL: "https://open.spotify.com/track/2",
				Title:   "Next Level",
			},
		},
		{
			name: "no artists and no urls",
			track: spotifyLib.FullTrack{
				SimpleTrack: spotifyLib.SimpleTrack{Name: "Untitled"},
			},
			expected: spotify.TrackSummary{Title: "Untitled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, spotify.Summarize(tt.track))
		})
	}
}

func TestSummarize_WellFormedTracksAreValid(t *testing.T) {
	for _, track := range newTracks(20) {
		summary := spotify.Summarize(track)
		assert.True(t, summary.Valid(), "summary %+v should be valid", summary)
	}
}

func TestTrackSummary_Valid(t *testing.T) {
	tests := []struct {
		name    string
		summary spotify.TrackSummary
		valid   bool
	}{
		{"valid", spotify.TrackSummary{Title: "x", SongURL: "https://open.spotify.com/track/1"}, true},
		{"empty title", spotify.TrackSummary{SongURL: "https://open.spotify.com/track/1"}, false},
		{"empty url", spotify.TrackSummary{Title: "x"}, false},
		{"relative url", spotify.TrackSummary{Title: "x", SongURL: "/track/1"}, false},
		{"other scheme", spotify.TrackSummary{Title: "x", SongURL: "spotify:track:1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.summary.Valid())
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, testCredentials.Validate())

	missing := []spotify.Credentials{
		{ClientSecret: "s", RefreshToken: "r"},
		{ClientID: "c", RefreshToken: "r"},
		{ClientID: "c", ClientSecret: "s"},
	}
	for _, c := range missing {
		assert.ErrorIs(t, c.Validate(), spotify.ErrInvalidCredentials)
	}
}
