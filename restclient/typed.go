package restclient

import (
	"context"
	"fmt"
	"net/http"
)

// Result wraps a typed call result. Body is always the decoded response
// body; Status and Headers are populated only when the call was made with
// ModeFull.
type Result[T any] struct {
	// Body is the decoded response body.
	Body T
	// Status is the HTTP status code (ModeFull only).
	Status int
	// Headers are the response headers (ModeFull only).
	Headers map[string]string
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, url string, opts *RequestOptions) (*Result[T], error) {
	return exchange[T](ctx, c, http.MethodGet, url, nil, opts)
}

// Post performs a POST request with a JSON body and decodes the response into type T.
func Post[T any](ctx context.Context, c *Client, url string, body any, opts *RequestOptions) (*Result[T], error) {
	return exchange[T](ctx, c, http.MethodPost, url, body, opts)
}

// Put performs a PUT request with a JSON body and decodes the response into type T.
func Put[T any](ctx context.Context, c *Client, url string, body any, opts *RequestOptions) (*Result[T], error) {
	return exchange[T](ctx, c, http.MethodPut, url, body, opts)
}

// Patch performs a PATCH request with a JSON body and decodes the response into type T.
func Patch[T any](ctx context.Context, c *Client, url string, body any, opts *RequestOptions) (*Result[T], error) {
	return exchange[T](ctx, c, http.MethodPatch, url, body, opts)
}

// Delete performs a DELETE request and decodes the JSON response into type T.
func Delete[T any](ctx context.Context, c *Client, url string, opts *RequestOptions) (*Result[T], error) {
	return exchange[T](ctx, c, http.MethodDelete, url, nil, opts)
}

// exchange executes a typed request and decodes the JSON response according
// to the requested response mode.
func exchange[T any](ctx context.Context, c *Client, method, url string, body any, opts *RequestOptions) (*Result[T], error) {
	resp, err := c.do(ctx, method, url, body, opts)
	if err != nil {
		return nil, err
	}

	var decoded T
	if len(resp.Body) > 0 {
		if err := resp.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("restclient: decode response: %w", err)
		}
	}

	result := &Result[T]{Body: decoded}
	if opts != nil && opts.Mode == ModeFull {
		result.Status = resp.StatusCode
		result.Headers = resp.Headers
	}
	return result, nil
}
