package restclient

import (
	"context"
	"testing"

	"github.com/orbitalabs/restkit/component"
	"github.com/orbitalabs/restkit/logger"
)

func TestComponent_Lifecycle(t *testing.T) {
	ctx := context.Background()
	comp := NewComponent(Config{Name: "billing"}, WithLogger(logger.Nop()))

	if h := comp.Health(ctx); h.Status != component.StatusUnhealthy {
		t.Errorf("pre-start status = %s", h.Status)
	}
	if comp.Client() != nil {
		t.Error("client must not exist before Start")
	}

	if err := comp.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if comp.Client() == nil {
		t.Fatal("Start must create the client")
	}
	if h := comp.Health(ctx); h.Status != component.StatusHealthy {
		t.Errorf("post-start status = %s", h.Status)
	}

	if err := comp.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestComponent_StartRejectsInvalidConfig(t *testing.T) {
	comp := NewComponent(Config{BaseURL: "not a url"})
	if err := comp.Start(context.Background()); err == nil {
		t.Error("expected a validation error")
	}
}

func TestComponent_Describe(t *testing.T) {
	comp := NewComponent(Config{Name: "billing", BaseURL: "https://billing.internal"})
	desc := comp.Describe()
	if desc.Name != "billing" || desc.Type != "rest-client" {
		t.Errorf("description = %+v", desc)
	}
	if desc.Details != "https://billing.internal" {
		t.Errorf("details = %q", desc.Details)
	}
}
