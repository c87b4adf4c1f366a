package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/cup-tournament/internal/config"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "cup-tournament",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitTracing(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
}

func TestInitTracing_EnabledWithoutDSNStaysOff(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, ServiceName: "cup-tournament"}

	shutdown, err := InitTracing(cfg, nil)
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
}
