package observability

import (
	"context"
	"testing"

	"github.com/tw-event-radar/radar/internal/config"
	"github.com/tw-event-radar/radar/internal/logging"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), config.TracingConfig{}, "radar", "test", logging.NewSilentLogger())
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
