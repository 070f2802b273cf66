package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("fpl-live/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan opens a child span; service calls made outside a traced
// poll cycle or request are not traced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startCycleSpan opens the root span of one poll cycle.
func startCycleSpan(ctx context.Context, poller, cycleID string) (context.Context, trace.Span) {
	return usecaseTracer.Start(ctx, "usecase.Poller."+poller,
		trace.WithNewRoot(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("fpl.poller", poller),
			attribute.String("fpl.cycle_id", cycleID),
		),
	)
}

// endCycleSpan marks a skipped cycle with its error class.
func endCycleSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("fpl.error_class", errorClass(err)))
		span.SetStatus(codes.Error, errorClass(err))
	}
	span.End()
}
