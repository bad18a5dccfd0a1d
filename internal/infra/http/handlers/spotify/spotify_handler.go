package spotify

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type SpotifyHandler struct {
	tracer           trace.Tracer
	logger           logrus.FieldLogger
	topTracksService TopTracksService
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	topTracksService TopTracksService,
) *SpotifyHandler {
	return &SpotifyHandler{
		tracer:           tracer,
		logger:           logger,
		topTracksService: topTracksService,
	}
}
