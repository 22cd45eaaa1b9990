// Package restclient provides a thin, policy-driven abstraction over an HTTP
// client for calling upstream REST APIs: shared header defaults, pluggable
// authentication, centralized error translation, and typed JSON helpers.
//
// The Client owns the invariant request pipeline; the three policy decisions
// (default headers, auth attachment, error translation) are delegated to a
// Policy supplied at construction:
//
//	client, err := restclient.New(restclient.Config{
//	    Name:    "billing",
//	    Timeout: 10 * time.Second,
//	}, restclient.WithTokenProvider(tokens))
//
//	resp, err := client.Get(ctx, "https://api.example.com/invoices", nil)
//
// Typed helpers decode JSON bodies, returning either the body alone
// (default) or the full envelope depending on RequestOptions.Mode:
//
//	inv, err := restclient.Get[Invoice](ctx, client, url, nil)
//
// Every transport or auth failure is funneled through Policy.MapError, which
// must return a translated non-nil error; nothing in this package raises a
// transport-derived error any other way. An optional bounded retry re-runs
// the full pipeline once per remaining budget when the upstream answers 401,
// signalling the policy to refresh credentials.
package restclient
