package restclient

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// requestMetrics instruments the pipeline via the OpenTelemetry metric API.
// When the host installs no meter provider these are no-ops.
type requestMetrics struct {
	client   string
	requests metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

func newRequestMetrics(clientName string) *requestMetrics {
	meter := otel.Meter(tracerName)

	requests, _ := meter.Int64Counter("restclient.requests",
		metric.WithDescription("Outbound requests dispatched"))
	failures, _ := meter.Int64Counter("restclient.failures",
		metric.WithDescription("Outbound requests that failed"))
	duration, _ := meter.Float64Histogram("restclient.duration",
		metric.WithDescription("Outbound request duration"),
		metric.WithUnit("ms"))

	return &requestMetrics{
		client:   clientName,
		requests: requests,
		failures: failures,
		duration: duration,
	}
}

func (m *requestMetrics) record(ctx context.Context, method string, status int, failed bool, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("client", m.client),
		attribute.String("method", method),
		attribute.Int("status", status),
	)
	m.requests.Add(ctx, 1, attrs)
	if failed {
		m.failures.Add(ctx, 1, attrs)
	}
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}
