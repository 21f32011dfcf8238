package telemetry

import "context"

const (
	telemeterContextKey ctxKey = iota
)

type ctxKey byte

// ContextWithTelemeter returns a copy of ctx carrying the telemeter.
func ContextWithTelemeter(ctx context.Context, tlm *Telemeter) context.Context {
	return context.WithValue(ctx, telemeterContextKey, tlm)
}

// TelemeterFromContext returns the telemeter carried by ctx, or a no-op one.
func TelemeterFromContext(ctx context.Context) *Telemeter {
	if val, ok := ctx.Value(telemeterContextKey).(*Telemeter); ok && val != nil {
		return val
	}

	return new(Telemeter)
}

// Count adds value to the named counter of the telemeter carried by ctx.
func Count(ctx context.Context, name string, value int64) {
	TelemeterFromContext(ctx).Count(ctx, name, value)
}
