package main

import (
	"net/http"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	server "github.com/angristan/spotify-top-tracks/internal/infra/http"
	spotifyhandler "github.com/angristan/spotify-top-tracks/internal/infra/http/handlers/spotify"
	spotifyrepo "github.com/angristan/spotify-top-tracks/internal/infra/repository/spotify"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

func newServer(env *Env, logger logrus.FieldLogger, tracer trace.Tracer) (*server.Server, error) {
	httpClient := &http.Client{
		Timeout:   env.UpstreamTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	clientConfig := spotifyrepo.NewSpotifyClientConfig(
		env.SpotifyTokenURL,
		env.SpotifyAPIURL,
		httpClient,
		tracer,
	)

	topTracksService := appspotify.New(
		tracer,
		spotifyrepo.NewTokenExchanger(clientConfig),
		spotifyrepo.NewTopTracksClient(clientConfig),
		env.Credentials(),
	)

	spotifyHandler := spotifyhandler.New(tracer, logger, topTracksService)

	return server.New(server.NewConfig(env.Port, env.UpstreamTimeout, false), logger, spotifyHandler)
}
