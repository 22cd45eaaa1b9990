package restclient

import "time"

// RequestConfig is the assembled, transport-ready description of one call.
// It is built fresh per call and never reused. When handed to
// Policy.ApplyAuth it carries no method, URL, or body yet; those are
// attached immediately before dispatch.
type RequestConfig struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Timeout time.Duration
	Body    any
}

// WithHeader returns a copy of the configuration with the header set. The
// receiver is left untouched; policies use this to decorate a configuration
// without mutating shared state.
func (c RequestConfig) WithHeader(key, value string) RequestConfig {
	headers := make(map[string]string, len(c.Headers)+1)
	for k, v := range c.Headers {
		headers[k] = v
	}
	headers[key] = value
	c.Headers = headers
	return c
}
