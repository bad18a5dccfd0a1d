package spotify

import (
	"go.opentelemetry.io/otel/trace"
)

type TopTracksService struct {
	tracer          trace.Tracer
	tokenExchanger  TokenExchanger
	topTracksClient TopTracksClient
	credentials     Credentials
}

func New(
	tracer trace.Tracer,
	tokenExchanger TokenExchanger,
	topTracksClient TopTracksClient,
	credentials Credentials,
) TopTracksService {
	return TopTracksService{
		tracer:          tracer,
		tokenExchanger:  tokenExchanger,
		topTracksClient: topTracksClient,
		credentials:     credentials,
	}
}
