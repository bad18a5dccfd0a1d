package spotify

import (
	"errors"
	"net/http"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type TopTracksResponse struct {
	Tracks []appspotify.TrackSummary `json:"tracks"`
}

func (h *SpotifyHandler) TopTracks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SpotifyHandler.TopTracks")
	defer span.End()

	tracks, err := h.topTracksService.TopTracks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		status, message := errorResponse(err)
		h.errorLogger(err).WithField("status", status).Error("Failed to fetch top tracks")

		c.JSON(status, gin.H{"error": message})
		return
	}

	if tracks == nil {
		tracks = []appspotify.TrackSummary{}
	}

	c.JSON(http.StatusOK, TopTracksResponse{Tracks: tracks})
}

// errorResponse maps a service error to a status code and a message that is
// safe to send to clients. Vendor bodies stay in the logs.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, appspotify.ErrUpstream):
		return http.StatusBadGateway, "spotify upstream error"
	case errors.Is(err, appspotify.ErrAuth):
		return http.StatusUnauthorized, "spotify authentication failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (h *SpotifyHandler) errorLogger(err error) logrus.FieldLogger {
	logger := h.logger.WithError(err)

	var authErr *appspotify.AuthError
	var upstreamErr *appspotify.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		logger = logger.WithFields(logrus.Fields{
			"vendor_status": upstreamErr.StatusCode,
			"vendor_body":   upstreamErr.Body,
		})
	case errors.As(err, &authErr):
		logger = logger.WithFields(logrus.Fields{
			"vendor_status": authErr.StatusCode,
			"vendor_body":   authErr.Body,
		})
	}

	return logger
}
