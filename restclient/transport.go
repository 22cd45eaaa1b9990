package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/orbitalabs/restkit/util"
	"github.com/orbitalabs/restkit/version"
)

// Transport executes one assembled request and returns the response
// envelope. Implementations must return a *Error (possibly alongside the
// received envelope) for any failure, including non-2xx statuses.
type Transport interface {
	RoundTrip(ctx context.Context, cfg RequestConfig) (*Response, error)
}

// Response is the envelope of one upstream call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// HTTPTransport dispatches requests through net/http. Connection pooling,
// TLS, and redirects stay with the underlying client; this layer only
// assembles the request and classifies the result.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport over a fresh clone of the default
// net/http transport. Per-call timeouts are enforced through the context,
// so the underlying client carries none of its own.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}
}

// NewHTTPTransportFromClient wraps an existing *http.Client.
func NewHTTPTransportFromClient(c *http.Client) *HTTPTransport {
	return &HTTPTransport{client: c}
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *HTTPTransport) Unwrap() *http.Client {
	return t.client
}

// RoundTrip executes one HTTP call described by cfg.
func (t *HTTPTransport) RoundTrip(ctx context.Context, cfg RequestConfig) (*Response, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	httpReq, err := t.buildRequest(ctx, cfg)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := Classify(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the assembled configuration.
// The URL is extended with the encoded query string but otherwise passed
// through verbatim.
func (t *HTTPTransport) buildRequest(ctx context.Context, cfg RequestConfig) (*http.Request, error) {
	body, err := encodeBody(cfg.Body)
	if err != nil {
		return nil, &Error{Message: "encode request body: " + err.Error(), Err: err}
	}

	url := cfg.URL
	if len(cfg.Query) > 0 {
		params := make(map[string]any, len(cfg.Query))
		for k, v := range cfg.Query {
			params[k] = v
		}
		url = util.BuildURL(url, params)
	}

	httpReq, err := http.NewRequestWithContext(ctx, cfg.Method, url, body)
	if err != nil {
		return nil, &Error{Message: "create request: " + err.Error(), Err: err}
	}

	for k, v := range cfg.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader. Readers, byte slices,
// and strings pass through; anything else is JSON-encoded.
func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, nil
	case []byte:
		return bytes.NewReader(v), nil
	case string:
		return strings.NewReader(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
