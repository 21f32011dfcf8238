package search

import (
	"context"

	"github.com/gruntwork-io/notecards/internal/telemetry"
)

// Telemetry operation and counter names.
const (
	TelemetryOpSearchPass = "search_pass"

	CounterPassCanceled   = "search_pass_canceled"
	CounterBatchCommitted = "search_batch_committed"
)

// Telemetry attribute keys.
const (
	AttrPassID        = "search.pass_id"
	AttrGeneration    = "search.generation"
	AttrDocumentCount = "search.document_count"
	AttrQuery         = "search.query"
)

// TraceSearchPass wraps one search pass with telemetry.
func TraceSearchPass(ctx context.Context, pass *Pass, req Request, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpSearchPass, map[string]any{
		AttrPassID:        pass.ID,
		AttrGeneration:    pass.Generation,
		AttrDocumentCount: len(req.Documents),
		AttrQuery:         req.Filter.String(),
	}, fn)
}

// CountPassCanceled counts an abandoned pass.
func CountPassCanceled(ctx context.Context) {
	telemetry.Count(ctx, CounterPassCanceled, 1)
}

// CountBatchCommitted counts a committed batch.
func CountBatchCommitted(ctx context.Context) {
	telemetry.Count(ctx, CounterBatchCommitted, 1)
}
