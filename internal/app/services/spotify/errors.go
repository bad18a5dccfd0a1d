package spotify

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrInvalidCredentials = errors.New("invalid spotify credentials")
	ErrAuth               = errors.New("spotify authentication failed")
	ErrUpstream           = errors.New("spotify upstream error")
)

// AuthError is returned when the refresh token could not be exchanged for an
// access token. StatusCode and Body are set when the token endpoint answered.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", ErrAuth, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %v", ErrAuth, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// Timeout reports whether the exchange failed because a deadline was hit.
func (e *AuthError) Timeout() bool { return isTimeout(e.Err) }

// UpstreamError is returned when the top tracks resource call failed or
// answered with a payload that could not be used.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", ErrUpstream, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %v", ErrUpstream, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
