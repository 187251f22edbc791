package tracing

import (
	"fmt"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	honeycomb "github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("hamzfitness-backend")

// EndSpanWithErrCheck ends the span, recording the error on it if set.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// HoneycombSetup uses the honeycomb distro to set up the OpenTelemetry SDK,
// and instruments the redis client with a tracing hook.
// The returned function shuts the tracing down.
func HoneycombSetup(enabled bool, serviceName string, rdb *redis.Client) (func(), error) {
	if !enabled {
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	rdb.AddHook(redisotel.NewTracingHook())

	return otelShutdown, nil
}
