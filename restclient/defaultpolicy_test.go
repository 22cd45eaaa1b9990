package restclient

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	apperrors "github.com/orbitalabs/restkit/errors"
	"github.com/orbitalabs/restkit/token"
)

func TestDefaultPolicy_DefaultHeaders_FreshMap(t *testing.T) {
	p := NewDefaultPolicy(nil)
	h1 := p.DefaultHeaders()
	h2 := p.DefaultHeaders()

	if h1["Accept"] != "application/json" || h1["Content-Type"] != "application/json" {
		t.Errorf("unexpected defaults: %v", h1)
	}
	h1["Accept"] = "text/html"
	if h2["Accept"] != "application/json" {
		t.Error("DefaultHeaders must return a fresh map on every call")
	}
}

func TestDefaultPolicy_ApplyAuth_NoToken_Identity(t *testing.T) {
	p := NewDefaultPolicy(nil)
	cfg := RequestConfig{Headers: map[string]string{"Accept": "application/json"}}

	got, err := p.ApplyAuth(context.Background(), cfg, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No token means no copy: the returned config shares the input's header map.
	if reflect.ValueOf(got.Headers).Pointer() != reflect.ValueOf(cfg.Headers).Pointer() {
		t.Error("expected the identical header map back")
	}
}

func TestDefaultPolicy_ApplyAuth_ContextToken(t *testing.T) {
	p := NewDefaultPolicy(nil)
	cfg := RequestConfig{Headers: map[string]string{"Accept": "application/json", "X-Tenant": "acme"}}
	rc := &RequestContext{Token: "ctx-token"}

	got, err := p.ApplyAuth(context.Background(), cfg, rc, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Headers["Authorization"] != "Bearer ctx-token" {
		t.Errorf("got %q", got.Headers["Authorization"])
	}
	if got.Headers["Accept"] != "application/json" || got.Headers["X-Tenant"] != "acme" {
		t.Errorf("existing headers must be preserved: %v", got.Headers)
	}
	if _, ok := cfg.Headers["Authorization"]; ok {
		t.Error("input configuration must not be mutated")
	}
}

type fakeProvider struct {
	tokens    []string
	calls     int
	refreshes int
}

func (f *fakeProvider) Token(_ context.Context) (string, error) {
	tok := f.tokens[f.calls]
	if f.calls < len(f.tokens)-1 {
		f.calls++
	}
	return tok, nil
}

func (f *fakeProvider) ForceRefresh(_ context.Context) error {
	f.refreshes++
	return nil
}

var _ token.Provider = (*fakeProvider)(nil)

func TestDefaultPolicy_ApplyAuth_ProviderFallback(t *testing.T) {
	tp := &fakeProvider{tokens: []string{"provider-token"}}
	p := NewDefaultPolicy(tp)

	got, err := p.ApplyAuth(context.Background(), RequestConfig{}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Headers["Authorization"] != "Bearer provider-token" {
		t.Errorf("got %q", got.Headers["Authorization"])
	}
	if tp.refreshes != 0 {
		t.Errorf("no refresh expected, got %d", tp.refreshes)
	}
}

func TestDefaultPolicy_ApplyAuth_RefreshSignal(t *testing.T) {
	tp := &fakeProvider{tokens: []string{"fresh-token"}}
	p := NewDefaultPolicy(tp)

	if _, err := p.ApplyAuth(context.Background(), RequestConfig{}, nil, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp.refreshes != 1 {
		t.Errorf("expected ForceRefresh on retry, got %d refreshes", tp.refreshes)
	}
}

func TestDefaultPolicy_ApplyAuth_ContextTokenWins(t *testing.T) {
	tp := &fakeProvider{tokens: []string{"provider-token"}}
	p := NewDefaultPolicy(tp)
	rc := &RequestContext{Token: "ctx-token"}

	got, err := p.ApplyAuth(context.Background(), RequestConfig{}, rc, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Headers["Authorization"] != "Bearer ctx-token" {
		t.Errorf("context token must win, got %q", got.Headers["Authorization"])
	}
}

func TestDefaultPolicy_MapError_UpstreamBody(t *testing.T) {
	p := NewDefaultPolicy(nil)
	terr := Classify(http.StatusConflict, []byte(`{"message":"already exists","code":"DUPLICATE","details":{"id":"42"}}`))

	mapped := p.MapError(terr)
	appErr, ok := apperrors.As(mapped)
	if !ok {
		t.Fatalf("expected AppError, got %T", mapped)
	}
	if appErr.HTTPStatus != http.StatusConflict {
		t.Errorf("status = %d", appErr.HTTPStatus)
	}
	if appErr.Code != "DUPLICATE" {
		t.Errorf("code = %s", appErr.Code)
	}
	if appErr.Message != "already exists" {
		t.Errorf("message = %q", appErr.Message)
	}
	if appErr.Details["id"] != "42" {
		t.Errorf("details = %v", appErr.Details)
	}
}

func TestDefaultPolicy_MapError_NoResponse(t *testing.T) {
	p := NewDefaultPolicy(nil)
	cause := errors.New("connection refused")

	mapped := p.MapError(NewConnectionError(cause))
	appErr, ok := apperrors.As(mapped)
	if !ok {
		t.Fatalf("expected AppError, got %T", mapped)
	}
	if appErr.HTTPStatus != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", appErr.HTTPStatus)
	}
	if appErr.Code != apperrors.ErrCodeUpstreamUnknown {
		t.Errorf("expected sentinel code, got %s", appErr.Code)
	}
	if appErr.Message != "connection refused" {
		t.Errorf("message = %q", appErr.Message)
	}
	if !errors.Is(mapped, cause) {
		t.Error("cause must be preserved in the chain")
	}
}

func TestDefaultPolicy_MapError_StatusWithoutBody(t *testing.T) {
	p := NewDefaultPolicy(nil)
	mapped := p.MapError(Classify(http.StatusServiceUnavailable, nil))
	appErr, ok := apperrors.As(mapped)
	if !ok {
		t.Fatalf("expected AppError, got %T", mapped)
	}
	if appErr.HTTPStatus != http.StatusServiceUnavailable {
		t.Errorf("status = %d", appErr.HTTPStatus)
	}
	if appErr.Code != apperrors.ErrCodeUpstreamUnknown {
		t.Errorf("expected sentinel code, got %s", appErr.Code)
	}
	if appErr.Message != http.StatusText(http.StatusServiceUnavailable) {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestDefaultPolicy_MapError_PassesThroughAppErrors(t *testing.T) {
	p := NewDefaultPolicy(nil)
	in := apperrors.Unauthorized("")
	if mapped := p.MapError(in); mapped != error(in) {
		t.Errorf("expected the AppError back, got %v", mapped)
	}
}

func TestDefaultPolicy_MapError_NeverNil(t *testing.T) {
	p := NewDefaultPolicy(nil)
	inputs := []error{
		Classify(http.StatusNotFound, []byte(`not json`)),
		NewTimeoutError(errors.New("deadline")),
		errors.New("plain"),
	}
	for _, in := range inputs {
		if p.MapError(in) == nil {
			t.Errorf("MapError returned nil for %v", in)
		}
	}
}
