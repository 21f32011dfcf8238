package vault

import (
	"context"

	"github.com/gruntwork-io/notecards/internal/telemetry"
)

const (
	TelemetryOpVaultList = "vault_list"

	AttrVaultRoot = "vault.root"
)

// TraceVaultList wraps a vault walk with telemetry.
func TraceVaultList(ctx context.Context, root string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpVaultList, map[string]any{
		AttrVaultRoot: root,
	}, fn)
}
