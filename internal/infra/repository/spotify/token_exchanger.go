package spotify

import (
	"context"
	"errors"

	appspotify "github.com/angristan/spotify-top-tracks/internal/app/services/spotify"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

type TokenExchanger struct {
	tracer trace.Tracer
	config *SpotifyClientConfig
}

func NewTokenExchanger(config *SpotifyClientConfig) *TokenExchanger {
	return &TokenExchanger{
		tracer: config.tracer,
		config: config,
	}
}

// Exchange trades the refresh token for a new access token. Nothing is
// cached: every call hits the token endpoint.
func (e *TokenExchanger) Exchange(ctx context.Context, credentials appspotify.Credentials) (appspotify.AccessToken, error) {
	ctx, span := e.tracer.Start(ctx, "TokenExchanger.Exchange")
	defer span.End()

	if err := credentials.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return appspotify.AccessToken{}, &appspotify.AuthError{Err: err}
	}

	oauthConfig := oauth2.Config{
		ClientID:     credentials.ClientID,
		ClientSecret: credentials.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  e.config.tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	recorder := newResponseRecorder(e.config.httpClient.Transport)
	ctx = context.WithValue(ctx, oauth2.HTTPClient, recorder.client(e.config.httpClient))

	token, err := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: credentials.RefreshToken}).Token()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token exchange failed")

		// A 2xx answer that oauth2 could not use comes back as a plain error,
		// so the recorded response is the fallback.
		authErr := &appspotify.AuthError{
			StatusCode: recorder.statusCode,
			Body:       string(recorder.body),
			Err:        err,
		}

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			authErr.Body = truncateBody(retrieveErr.Body)
			if retrieveErr.Response != nil {
				authErr.StatusCode = retrieveErr.Response.StatusCode
			}
		}
		if authErr.StatusCode != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", authErr.StatusCode))
		}

		return appspotify.AccessToken{}, authErr
	}

	span.AddEvent("Access token issued")

	return appspotify.AccessToken{
		Token:  token.AccessToken,
		Expiry: token.Expiry,
	}, nil
}

func truncateBody(body []byte) string {
	if len(body) > maxBodySize {
		body = body[:maxBodySize]
	}

	return string(body)
}
