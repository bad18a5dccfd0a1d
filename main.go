package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

func main() {
	env, err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	logger := logrus.StandardLogger()
	if err := configureLogger(logger, env.LogFormat, env.LogLevel); err != nil {
		logger.WithError(err).Fatal("Failed to configure logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := setupTracing(ctx, env)
	if err != nil {
		logger.WithError(err).Fatal("Failed to setup tracing")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(ctx); err != nil {
			logger.WithError(err).Error("Failed to flush traces")
		}
	}()

	srv, err := newServer(env, logger, otel.Tracer(serviceName))
	if err != nil {
		logger.WithError(err).Fatal("Failed to create server")
	}

	logger.WithField("addr", srv.Addr).Info("Starting server")

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Error("Server stopped unexpectedly")
		return
	}

	logger.Info("Server stopped")
}
