package trace

import (
	"context"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "signupdesk"

// Options configures the exporter.
type Options struct {
	Endpoint    string // host:port of an OTLP/HTTP collector; empty disables export
	ServiceName string
}

// Recorder records UI interactions as spans. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewRecorder creates a recorder exporting over OTLP/HTTP when an endpoint is
// set, and a no-op recorder otherwise.
func NewRecorder(ctx context.Context, opts Options) (*Recorder, error) {
	if opts.Endpoint == "" {
		return &Recorder{tracer: noop.NewTracerProvider().Tracer(DefaultServiceName)}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(opts.Endpoint),
		otlptracehttp.WithInsecure(), // Collectors are expected on localhost
	)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewRecorderFromProvider(provider), nil
}

// NewRecorderFromProvider wraps an existing SDK provider (tests use a span recorder).
func NewRecorderFromProvider(provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("signupdesk/ui"),
	}
}

// Record emits a zero-length span named name. Attribute keys are placed in
// the signupdesk.* namespace.
func (r *Recorder) Record(ctx context.Context, name string, attrs map[string]string) {
	if r == nil || r.tracer == nil {
		return
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		kvs = append(kvs, attribute.String("signupdesk."+k, attrs[k]))
	}
	_, span := r.tracer.Start(ctx, name, oteltrace.WithAttributes(kvs...))
	span.End()
}

// Shutdown flushes pending spans and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
