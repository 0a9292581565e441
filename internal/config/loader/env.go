package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader collects configuration overrides from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "REGECT_")
	mapping map[string]string // Env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default variable mapping.
// The prefix should include the trailing underscore (e.g., "REGECT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, defaultEnvMapping(prefix))
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		lookup:  os.LookupEnv,
	}
}

// WithLookup replaces the environment lookup function, for tests.
func (l *EnvLoader) WithLookup(lookup func(string) (string, bool)) *EnvLoader {
	l.lookup = lookup
	return l
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "ENGINE":      "pattern.engine",
		prefix + "IGNORE_CASE": "pattern.case_insensitive",
		prefix + "THEME":       "theme.name",
		prefix + "LOG_LEVEL":   "logging.level",
		prefix + "LOG_FILE":    "logging.file",
	}
}

// Load returns the set variables keyed by config path.
// Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() map[string]string {
	out := make(map[string]string)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			out[path] = val
		}
	}
	return out
}

// ParseBool parses an environment boolean, accepting yes/no and on/off
// in addition to the forms strconv understands.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off", "":
		return false, nil
	}
	return strconv.ParseBool(s)
}
