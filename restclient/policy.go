package restclient

import "context"

// Policy supplies the three decisions the request pipeline delegates:
// default headers, auth attachment, and error translation. Policies are
// strategy objects passed to New; swapping policies requires no subclassing
// or client changes.
type Policy interface {
	// DefaultHeaders returns the headers applied to every outgoing request,
	// as a fresh map on every call. Per-call headers override these on key
	// collision. Implementations must not mutate shared state.
	DefaultHeaders() map[string]string

	// ApplyAuth decorates the assembled configuration with credentials. The
	// configuration carries no method, URL, or body yet. rc is the optional
	// call context and may be nil. refresh is true when the pipeline is
	// retrying after an unauthorized response; implementations should then
	// force a credential refresh rather than reuse a cached token.
	//
	// ApplyAuth must not mutate cfg in place: it returns the input
	// unchanged when it has nothing to add, or a decorated copy (see
	// RequestConfig.WithHeader) when it does.
	ApplyAuth(ctx context.Context, cfg RequestConfig, rc *RequestContext, refresh bool) (RequestConfig, error)

	// MapError translates a failure captured during the auth step or the
	// transport call into the error surfaced to callers. It is the only
	// place allowed to decide the final error shape, and it must always
	// return a non-nil error: a nil return is a contract violation, which
	// the pipeline replaces with an internal invariant error.
	MapError(err error) error
}
