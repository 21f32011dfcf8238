package flags

import "strings"

// EnvPrefix is prepended to the environment variable of every flag.
const EnvPrefix = "NOTECARDS"

// Prefix is a sequence of name parts joined into flag names and environment variables.
type Prefix []string

// Append returns the prefix extended with val.
func (prefix Prefix) Append(val string) Prefix {
	return append(append(Prefix{}, prefix...), val)
}

// EnvVar returns the environment variable of the flag name, e.g. NOTECARDS_PAGE_SIZE for page-size.
func (prefix Prefix) EnvVar(name string) string {
	name = strings.Join(append(append([]string{EnvPrefix}, prefix...), name), "_")

	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// EnvVars maps EnvVar over names.
func (prefix Prefix) EnvVars(names ...string) []string {
	envVars := make([]string, len(names))

	for i := range names {
		envVars[i] = prefix.EnvVar(names[i])
	}

	return envVars
}
