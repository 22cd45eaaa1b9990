package restclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/orbitalabs/restkit/errors"
	"github.com/orbitalabs/restkit/logger"
	"github.com/orbitalabs/restkit/token"
	"github.com/orbitalabs/restkit/util"
)

const tracerName = "github.com/orbitalabs/restkit/restclient"

// Client is the request template. It owns the invariant pipeline and
// delegates header defaults, auth, and error translation to its Policy.
type Client struct {
	config    Config
	transport Transport
	policy    Policy
	log       *logger.Logger
	tracer    trace.Tracer
	metrics   *requestMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default net/http transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithPolicy replaces the default policy.
func WithPolicy(p Policy) Option {
	return func(c *Client) { c.policy = p }
}

// WithTokenProvider keeps the default policy but sources bearer tokens from
// tp when the request context carries none.
func WithTokenProvider(tp token.Provider) Option {
	return func(c *Client) { c.policy = NewDefaultPolicy(tp) }
}

// WithLogger replaces the default logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log.WithComponent("restclient") }
}

// New creates a Client with the given configuration. Without options it
// uses the net/http transport and the DefaultPolicy with no token provider.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:    cfg,
		transport: NewHTTPTransport(),
		policy:    NewDefaultPolicy(nil),
		log:       logger.NewDefault(cfg.Name).WithComponent("restclient"),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics = newRequestMetrics(cfg.Name)

	return c, nil
}

// Name returns the client name.
func (c *Client) Name() string {
	return c.config.Name
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Get performs a GET request and returns the response envelope.
func (c *Client) Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, nil, opts)
}

// Post performs a POST request with the given body.
func (c *Client) Post(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, body, opts)
}

// Put performs a PUT request with the given body.
func (c *Client) Put(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPut, url, body, opts)
}

// Patch performs a PATCH request with the given body.
func (c *Client) Patch(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPatch, url, body, opts)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, nil, opts)
}

// do is the single shared routine behind every verb method.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, opts *RequestOptions) (*Response, error) {
	if err := util.ValidateNonEmpty("url", rawURL); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &RequestOptions{}
	}

	requestID := ""
	if rc := opts.Context; rc != nil {
		requestID = rc.RequestID
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return c.attempt(ctx, method, c.resolveURL(rawURL), body, opts, requestID, c.config.UnauthorizedRetries, false)
}

// attempt runs the pipeline once: assemble, authenticate, dispatch. On an
// unauthorized response with budget remaining it re-runs itself with the
// refresh signal set; every other failure terminates through mapError.
func (c *Client) attempt(ctx context.Context, method, url string, body any, opts *RequestOptions, requestID string, budget int, refresh bool) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "restclient "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
			attribute.String("restclient.name", c.config.Name),
		),
	)
	defer span.End()

	cfg := c.baseConfig(opts, requestID)

	cfg, err := c.policy.ApplyAuth(ctx, cfg, opts.contextOf(), refresh)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "auth failed")
		c.log.WithError(err).Error("auth hook failed",
			logger.Fields(logger.FieldMethod, method, logger.FieldURL, url, logger.FieldRequestID, requestID))
		return nil, c.mapError(err)
	}

	cfg.Method = method
	cfg.URL = url
	cfg.Body = body

	start := time.Now()
	resp, err := c.transport.RoundTrip(ctx, cfg)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.metrics.record(ctx, method, status, err != nil, elapsed)

	if err != nil {
		if IsUnauthorized(err) && budget > 0 {
			span.AddEvent("unauthorized, retrying with refreshed credentials")
			c.log.Warn("unauthorized response, retrying",
				logger.Fields(logger.FieldMethod, method, logger.FieldURL, url,
					logger.FieldRequestID, requestID, logger.FieldAttempt, c.config.UnauthorizedRetries-budget+1))
			return c.attempt(ctx, method, url, body, opts, requestID, budget-1, true)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.WithError(err).Error("request failed",
			logger.Fields(logger.FieldMethod, method, logger.FieldURL, url,
				logger.FieldStatus, status, logger.FieldRequestID, requestID,
				logger.FieldDuration, elapsed.Milliseconds()))
		return resp, c.mapError(err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.log.Debug("request completed",
		logger.Fields(logger.FieldMethod, method, logger.FieldURL, url,
			logger.FieldStatus, resp.StatusCode, logger.FieldRequestID, requestID,
			logger.FieldDuration, elapsed.Milliseconds()))
	return resp, nil
}

// baseConfig assembles the pre-auth configuration: policy defaults first,
// client-level headers next, per-call headers last (per-call wins), query
// params coerced to strings, and the resolved timeout.
func (c *Client) baseConfig(opts *RequestOptions, requestID string) RequestConfig {
	headers := c.policy.DefaultHeaders()
	if headers == nil {
		headers = make(map[string]string)
	}
	for k, v := range c.config.Headers {
		headers[k] = v
	}
	headers["X-Request-Id"] = requestID
	for k, v := range opts.Headers {
		headers[k] = v
	}

	var query map[string]string
	if len(opts.Query) > 0 {
		query = make(map[string]string, len(opts.Query))
		for k, v := range opts.Query {
			query[k] = util.CoerceString(v)
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.config.Timeout
	}

	return RequestConfig{
		Headers: headers,
		Query:   query,
		Timeout: timeout,
	}
}

// mapError funnels a captured failure through the policy and enforces the
// termination contract: the mapper must not return nil.
func (c *Client) mapError(err error) error {
	mapped := c.policy.MapError(err)
	if mapped == nil {
		c.log.WithError(err).Error("error policy returned no error")
		return apperrors.Internal("error policy returned no error").WithCause(err)
	}
	return mapped
}

// resolveURL prepends the configured base URL to relative request URLs.
func (c *Client) resolveURL(rawURL string) string {
	if c.config.BaseURL == "" || strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(rawURL, "/")
}
