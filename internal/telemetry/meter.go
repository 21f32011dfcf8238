package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/gruntwork-io/notecards/internal/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const metricReadInterval = time.Second

// Meter records durations and counters.
type Meter struct {
	metric.Meter
	provider *sdkmetric.MeterProvider
	exporter sdkmetric.Exporter
}

// NewMeter configures metrics collection. It returns nil when no exporter is configured.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := NewMetricsExporter(ctx, writer, opts)
	if err != nil {
		return nil, err
	}

	if exporter == nil {
		return nil, nil
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricReadInterval))),
	)

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
		exporter: exporter,
	}, nil
}

// NewMetricsExporter creates the exporter named by opts.MetricExporter.
func NewMetricsExporter(ctx context.Context, writer io.Writer, opts *Options) (sdkmetric.Exporter, error) {
	switch opts.MetricExporter {
	case "", noneExporterType:
		return nil, nil
	case consoleExporterType:
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(writer))
		if err != nil {
			return nil, errors.New(err)
		}

		return exp, nil
	case otlpHTTPExporterType:
		var config []otlpmetrichttp.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	}

	return nil, errors.New(&ErrUnknownExporter{Kind: "metric", Name: opts.MetricExporter})
}

// Time runs fn and records its duration in milliseconds as `<name>_duration`.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.provider == nil {
		return fn(ctx)
	}

	histogram, err := meter.Int64Histogram(CleanMetricName(name+"_duration"), metric.WithUnit("ms"))
	if err != nil {
		return errors.New(err)
	}

	start := time.Now()
	err = fn(ctx)

	histogram.Record(ctx, time.Since(start).Milliseconds(), metric.WithAttributes(mapToAttributes(attrs)...))

	return err
}

// Count adds value to the `<name>_count` counter.
func (meter *Meter) Count(ctx context.Context, name string, value int64) {
	if meter == nil || meter.provider == nil || value == 0 {
		return
	}

	counter, err := meter.Int64Counter(CleanMetricName(name + "_count"))
	if err != nil {
		return
	}

	counter.Add(ctx, value)
}
