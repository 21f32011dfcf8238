package telemetry

import (
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

var (
	metricNameCleanPattern     = regexp.MustCompile(`[^A-Za-z0-9_.]`)
	multipleUnderscoresPattern = regexp.MustCompile(`_+`)
)

// mapToAttributes converts an attribute map to otel key/values.
func mapToAttributes(data map[string]any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(data))

	for k, v := range data {
		switch val := v.(type) {
		case string:
			attrs = append(attrs, attribute.String(k, val))
		case int:
			attrs = append(attrs, attribute.Int(k, val))
		case int64:
			attrs = append(attrs, attribute.Int64(k, val))
		case uint64:
			attrs = append(attrs, attribute.Int64(k, int64(val))) //nolint:gosec
		case float64:
			attrs = append(attrs, attribute.Float64(k, val))
		case bool:
			attrs = append(attrs, attribute.Bool(k, val))
		default:
			attrs = append(attrs, attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}

	return attrs
}

// CleanMetricName replaces characters that are invalid in metric names.
func CleanMetricName(metricName string) string {
	cleaned := metricNameCleanPattern.ReplaceAllString(metricName, "_")
	cleaned = multipleUnderscoresPattern.ReplaceAllString(cleaned, "_")

	return strings.Trim(cleaned, "_")
}
