package telemetry

import "fmt"

// ErrMissingEndpoint is returned when an exporter needs an endpoint that was not configured.
type ErrMissingEndpoint struct {
	Exporter string
	Setting  string
}

func (e *ErrMissingEndpoint) Error() string {
	return fmt.Sprintf("exporter %s requires %s to be set", e.Exporter, e.Setting)
}

// ErrUnknownExporter is returned for an unsupported exporter name.
type ErrUnknownExporter struct {
	Kind string
	Name string
}

func (e *ErrUnknownExporter) Error() string {
	return fmt.Sprintf("unknown %s exporter %q", e.Kind, e.Name)
}
