package telemetry

// Options configures the exporters.
type Options struct {
	// TraceExporter is one of none, console, otlpHttp, http.
	TraceExporter string
	// TraceExporterHTTPEndpoint is required by the http trace exporter.
	TraceExporterHTTPEndpoint string
	// TraceExporterInsecureEndpoint disables TLS for OTLP trace exporters.
	TraceExporterInsecureEndpoint bool

	// MetricExporter is one of none, console, otlpHttp.
	MetricExporter string
	// MetricExporterInsecureEndpoint disables TLS for the OTLP metric exporter.
	MetricExporterInsecureEndpoint bool
}
