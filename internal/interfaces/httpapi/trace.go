package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("fpl-live/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// viewAttr tags a handler span with the polled view it serves.
func viewAttr(view string) attribute.KeyValue {
	return attribute.String("fpl.view", view)
}

// startSpan opens a child span for handlers and stream operations. Requests
// that otelhttp filtered out carry no parent and get the no-op span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !tracedSpanName(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func tracedSpanName(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.") || strings.HasPrefix(name, "httpapi.StreamHub.")
}
