package spotify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// MaxTopTracks is the number of tracks kept from the vendor response.
const MaxTopTracks = 10

// Credentials identify the single Spotify account whose top tracks are served.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

func (c Credentials) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("%w: client id is empty", ErrInvalidCredentials)
	case c.ClientSecret == "":
		return fmt.Errorf("%w: client secret is empty", ErrInvalidCredentials)
	case c.RefreshToken == "":
		return fmt.Errorf("%w: refresh token is empty", ErrInvalidCredentials)
	}

	return nil
}

type AccessToken struct {
	Token  string
	Expiry time.Time
}

type TrackSummary struct {
	Artist  string `json:"artist"`
	SongURL string `json:"songUrl"`
	Title   string `json:"title"`
}

// Summarize projects a vendor track into the shape served to clients.
func Summarize(track spotifyLib.FullTrack) TrackSummary {
	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	return TrackSummary{
		Artist:  strings.Join(artists, ", "),
		SongURL: track.ExternalURLs["spotify"],
		Title:   track.Name,
	}
}

// Valid reports whether the summary has a title and an absolute http(s) song URL.
func (s TrackSummary) Valid() bool {
	if s.Title == "" {
		return false
	}

	u, err := url.Parse(s.SongURL)
	if err != nil {
		return false
	}

	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
