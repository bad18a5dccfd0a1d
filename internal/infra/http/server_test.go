package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	server "github.com/angristan/spotify-top-tracks/internal/infra/http"
	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	calls int
}

func (h *stubHandler) TopTracks(c *gin.Context) {
	h.calls++
	c.JSON(http.StatusOK, gin.H{"tracks": []string{}})
}

func TestServer_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger, hook := logtest.NewNullLogger()
	h := &stubHandler{}

	srv, err := server.New(server.NewConfig("1323", 5*time.Second, false), logger, h)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1323", srv.Addr)
	assert.Equal(t, 15*time.Second, srv.WriteTimeout)

	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{http.MethodGet, "/api/top-tracks", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
		{http.MethodPost, "/api/top-tracks", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			srv.Handler.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}

	assert.Equal(t, 1, h.calls)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Request handled", entry.Message)
}

func TestServer_InvalidPort(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	_, err := server.New(server.NewConfig("not-a-port", 5*time.Second, true), logger, &stubHandler{})
	assert.Error(t, err)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger, _ := logtest.NewNullLogger()
	srv, err := server.New(server.NewConfig("0", 5*time.Second, true), logger, &stubHandler{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_WriteTimeoutCoversUpstreamCalls(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	tests := []struct {
		upstreamTimeout time.Duration
		expected        time.Duration
	}{
		{time.Second, 15 * time.Second},
		{5 * time.Second, 15 * time.Second},
		{10 * time.Second, 25 * time.Second},
		{30 * time.Second, 65 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.upstreamTimeout.String(), func(t *testing.T) {
			srv, err := server.New(server.NewConfig("1323", tt.upstreamTimeout, true), logger, &stubHandler{})
			require.NoError(t, err)

			assert.Equal(t, tt.expected, srv.WriteTimeout)
			assert.Greater(t, srv.WriteTimeout, 2*tt.upstreamTimeout)
		})
	}
}
