package httpapi

import (
	"context"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	handlerTracer = otel.Tracer("cup-tournament/internal/interfaces/httpapi")
	noopSpan      = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for handler entry points only. Helpers and middleware
// share the otelhttp request span, and requests without one (health probes) stay
// untraced.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !isHandlerSpan(name) || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}

	var opts []trace.SpanStartOption
	if rc := chi.RouteContext(ctx); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			opts = append(opts, trace.WithAttributes(attribute.String("http.route", pattern)))
		}
	}
	return handlerTracer.Start(ctx, name, opts...)
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix) && len(name) > len(handlerSpanPrefix)
}
