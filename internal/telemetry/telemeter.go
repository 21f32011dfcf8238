// Package telemetry collects traces and metrics from function execution.
package telemetry

import (
	"context"
	"io"

	"github.com/gruntwork-io/notecards/internal/errors"
)

// Telemeter bundles the tracer and meter used by the whole process.
type Telemeter struct {
	*Tracer
	*Meter
}

// NewTelemeter initializes the telemetry collectors. Exporters that are disabled leave their half nil.
func NewTelemeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Telemeter, error) {
	if opts == nil {
		opts = &Options{}
	}

	tracer, err := NewTracer(ctx, appName, appVersion, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	meter, err := NewMeter(ctx, appName, appVersion, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	return &Telemeter{
		Tracer: tracer,
		Meter:  meter,
	}, nil
}

// Shutdown flushes and stops the providers.
func (tlm *Telemeter) Shutdown(ctx context.Context) error {
	var errs *errors.MultiError

	if tlm.Tracer != nil && tlm.Tracer.provider != nil {
		errs = errs.Append(tlm.Tracer.provider.Shutdown(ctx))
		tlm.Tracer.provider = nil
	}

	if tlm.Meter != nil && tlm.Meter.provider != nil {
		errs = errs.Append(tlm.Meter.provider.Shutdown(ctx))
		tlm.Meter.provider = nil
	}

	return errs.ErrorOrNil()
}

// Collect wraps fn with a span and a duration metric.
func (tlm *Telemeter) Collect(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	return tlm.Trace(ctx, name, attrs, func(ctx context.Context) error {
		return tlm.Time(ctx, name, attrs, fn)
	})
}
