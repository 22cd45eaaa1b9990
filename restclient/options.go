package restclient

import "time"

// ResponseMode selects what typed calls hand back to the caller.
type ResponseMode int

const (
	// ModeBody returns only the decoded response body. This is the default.
	ModeBody ResponseMode = iota
	// ModeFull returns the decoded body together with status and headers.
	ModeFull
)

// RequestContext is an optional bag of call-scoped values. It is constructed
// fresh per call by the caller and never persisted.
type RequestContext struct {
	// Token is a bearer token attached by the default policy. When empty,
	// the policy falls back to its token provider, if any.
	Token string
	// Scopes are the OAuth scopes requested for this call.
	Scopes []string
	// RequestID identifies the call for tracing. Generated when empty.
	RequestID string
	// Values carries arbitrary extension keys for custom policies.
	Values map[string]any
}

// RequestOptions are per-call parameters. The pipeline never mutates them.
type RequestOptions struct {
	// Query parameters; primitive values are coerced to their string form.
	Query map[string]any
	// Headers override the merged defaults on key collision.
	Headers map[string]string
	// Timeout overrides the client default for this call.
	Timeout time.Duration
	// Context carries call-scoped auth/tracing values.
	Context *RequestContext
	// Mode selects body-only or full-envelope results from typed calls.
	Mode ResponseMode
}

// contextOf returns the embedded RequestContext, which may be nil.
func (o *RequestOptions) contextOf() *RequestContext {
	if o == nil {
		return nil
	}
	return o.Context
}
