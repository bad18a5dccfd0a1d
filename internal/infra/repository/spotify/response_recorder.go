package spotify

import (
	"bytes"
	"io"
	"net/http"
)

// responseRecorder keeps the status and a copy of the body of the last
// response it saw, so vendor failures can be reported even when the library
// consuming the response only returns a parse error. One recorder per call.
type responseRecorder struct {
	base       http.RoundTripper
	statusCode int
	body       []byte
}

func newResponseRecorder(base http.RoundTripper) *responseRecorder {
	if base == nil {
		base = http.DefaultTransport
	}

	return &responseRecorder{base: base}
}

func (r *responseRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	r.statusCode = resp.StatusCode
	r.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, nil
}

// client returns a copy of httpClient whose transport goes through the
// recorder. Timeout and other settings are preserved.
func (r *responseRecorder) client(httpClient *http.Client) *http.Client {
	recorded := *httpClient
	recorded.Transport = r

	return &recorded
}
