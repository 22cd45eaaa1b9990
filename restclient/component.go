package restclient

import (
	"context"

	"github.com/orbitalabs/restkit/component"
)

// Component wraps a Client with lifecycle management for hosts that manage
// their infrastructure through component start/stop hooks. The client is
// created lazily in Start().
type Component struct {
	client *Client
	config Config
	opts   []Option
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new client component.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name != "" {
		return c.config.Name
	}
	return "restclient"
}

// Start builds the client.
func (c *Component) Start(_ context.Context) error {
	client, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

// Stop releases idle transport connections.
func (c *Component) Stop(_ context.Context) error {
	if c.client != nil {
		if t, ok := c.client.transport.(*HTTPTransport); ok {
			t.Unwrap().CloseIdleConnections()
		}
	}
	return nil
}

// Health reports whether the client has been started.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.client == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for startup summaries.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "rest-client",
		Details: c.config.BaseURL,
	}
}

// Client returns the underlying client. Must be called after Start().
func (c *Component) Client() *Client {
	return c.client
}
