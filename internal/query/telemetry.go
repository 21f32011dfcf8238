package query

import (
	"context"

	"github.com/gruntwork-io/notecards/internal/telemetry"
)

// Telemetry operation names.
const (
	TelemetryOpQueryParse   = "query_parse"
	TelemetryOpQueryCompile = "query_compile"
)

// AttrQuery is the telemetry attribute holding the query text.
const AttrQuery = "query.text"

// TraceQueryParse wraps parsing a query with telemetry.
func TraceQueryParse(ctx context.Context, query string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpQueryParse, map[string]any{
		AttrQuery: query,
	}, fn)
}

// TraceQueryCompile wraps compiling a parsed query with telemetry.
func TraceQueryCompile(ctx context.Context, query string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpQueryCompile, map[string]any{
		AttrQuery: query,
	}, fn)
}
