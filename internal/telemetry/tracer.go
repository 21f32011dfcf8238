package telemetry

import (
	"context"
	"io"

	"github.com/gruntwork-io/notecards/internal/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	noneExporterType     = "none"
	consoleExporterType  = "console"
	otlpHTTPExporterType = "otlpHttp"
	httpExporterType     = "http"
)

// Tracer opens spans around function execution.
type Tracer struct {
	trace.Tracer
	provider     *sdktrace.TracerProvider
	spanExporter sdktrace.SpanExporter
}

// NewTracer configures trace collection. It returns nil when no exporter is configured.
func NewTracer(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Tracer, error) {
	spanExporter, err := NewTraceExporter(ctx, writer, opts)
	if err != nil {
		return nil, err
	}

	if spanExporter == nil {
		return nil, nil
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	return &Tracer{
		Tracer:       provider.Tracer(appName),
		provider:     provider,
		spanExporter: spanExporter,
	}, nil
}

// NewTraceExporter creates the span exporter named by opts.TraceExporter.
func NewTraceExporter(ctx context.Context, writer io.Writer, opts *Options) (sdktrace.SpanExporter, error) {
	switch opts.TraceExporter {
	case "", noneExporterType:
		return nil, nil
	case consoleExporterType:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(writer))
		if err != nil {
			return nil, errors.New(err)
		}

		return exp, nil
	case httpExporterType:
		if opts.TraceExporterHTTPEndpoint == "" {
			return nil, errors.New(&ErrMissingEndpoint{Exporter: httpExporterType, Setting: "NOTECARDS_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"})
		}

		config := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.TraceExporterHTTPEndpoint)}
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpHTTPExporterType:
		var config []otlptracehttp.Option
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	}

	return nil, errors.New(&ErrUnknownExporter{Kind: "trace", Name: opts.TraceExporter})
}

// Trace runs fn inside a span named name. Errors returned by fn are recorded on the span.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tracer == nil || tracer.provider == nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(mapToAttributes(attrs)...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func newResource(appName, appVersion string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(appName),
			semconv.ServiceVersion(appVersion),
		),
	)
	if err != nil {
		return nil, errors.New(err)
	}

	return res, nil
}
