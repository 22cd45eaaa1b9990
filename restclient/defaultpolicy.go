package restclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/orbitalabs/restkit/errors"
	"github.com/orbitalabs/restkit/token"
	"github.com/orbitalabs/restkit/util"
)

// UpstreamErrorBody is the structured failure payload many REST APIs return.
// It is decoded only during error mapping and never stored.
type UpstreamErrorBody struct {
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

// DefaultPolicy is the ready-to-use policy set: JSON headers, bearer-token
// auth, and translation of upstream failures into application errors.
type DefaultPolicy struct {
	// Tokens optionally supplies bearer tokens when the request context
	// carries none. A context token always wins.
	Tokens token.Provider
}

var _ Policy = (*DefaultPolicy)(nil)

// NewDefaultPolicy creates the default policy. tokens may be nil.
func NewDefaultPolicy(tokens token.Provider) *DefaultPolicy {
	return &DefaultPolicy{Tokens: tokens}
}

// DefaultHeaders returns the JSON content negotiation headers, fresh on
// every call.
func (p *DefaultPolicy) DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
}

// ApplyAuth attaches an Authorization header when a bearer token is
// available. With no token the configuration is returned unchanged: the
// identical value, sharing its header map, so the no-op is allocation free.
func (p *DefaultPolicy) ApplyAuth(ctx context.Context, cfg RequestConfig, rc *RequestContext, refresh bool) (RequestConfig, error) {
	tok := ""
	if rc != nil {
		tok = rc.Token
	}
	if tok == "" && p.Tokens != nil {
		if refresh {
			if err := p.Tokens.ForceRefresh(ctx); err != nil {
				return cfg, err
			}
		}
		fetched, err := p.Tokens.Token(ctx)
		if err != nil {
			return cfg, err
		}
		tok = fetched
	}
	if tok == "" {
		return cfg, nil
	}
	return cfg.WithHeader("Authorization", "Bearer "+tok), nil
}

// MapError translates any captured failure into an *errors.AppError. The
// upstream status and error body are passed through when present; failures
// without an HTTP response map to 502 with the sentinel code.
func (p *DefaultPolicy) MapError(err error) error {
	var terr *Error
	if errors.As(err, &terr) {
		if terr.StatusCode > 0 {
			var body UpstreamErrorBody
			if len(terr.Body) > 0 {
				_ = json.Unmarshal(terr.Body, &body)
			}
			message := util.Coalesce(body.Message, terr.Message)
			return apperrors.Upstream(terr.StatusCode, apperrors.ErrorCode(body.Code), message, body.Details).WithCause(err)
		}
		return apperrors.Upstream(http.StatusBadGateway, apperrors.ErrCodeUpstreamUnknown, terr.Message, nil).WithCause(err)
	}

	// Auth hooks and token providers already produce application errors.
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	return apperrors.Upstream(http.StatusBadGateway, apperrors.ErrCodeUpstreamUnknown, err.Error(), nil).WithCause(err)
}
