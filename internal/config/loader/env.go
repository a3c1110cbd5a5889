package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "TWINE_")
	mapping map[string]string // Env var -> config path
	skip    map[string]bool   // Prefixed vars that are not settings
	text    map[string]bool   // Config paths whose values are never converted
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "TWINE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		skip:    map[string]bool{prefix + "CONFIG": true},
		text:    defaultTextPaths(),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the short aliases for common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "ENCODING":     "text.encoding",
		prefix + "CHARSET":      "text.charset",
		prefix + "MAX_CAPACITY": "text.maxCapacity",
		prefix + "GROWTH":       "text.growth",
		prefix + "LOG_LEVEL":    "logging.level",
		prefix + "LOG_FORMAT":   "logging.format",
	}
}

// defaultTextPaths lists the string settings. Charset labels such as "866"
// look numeric but must reach the config as strings.
func defaultTextPaths() map[string]bool {
	return map[string]bool{
		"text.encoding":  true,
		"text.charset":   true,
		"text.growth":    true,
		"logging.level":  true,
		"logging.format": true,
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	// First, load explicitly mapped variables
	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			SetByPath(config, path, l.value(path, val))
		}
	}

	// Then, scan for additional prefixed variables not in mapping
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped || l.skip[name] {
			continue
		}

		// Convert TWINE_TEXT_MAX_CAPACITY to text.maxCapacity
		path := l.envToPath(name)
		SetByPath(config, path, l.value(path, value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// AddTextPath marks a config path as a string setting whose values are
// stored as given.
func (l *EnvLoader) AddTextPath(path string) {
	if l.text == nil {
		l.text = make(map[string]bool)
	}
	l.text[path] = true
}

func (l *EnvLoader) value(path, raw string) any {
	if l.text[path] {
		return raw
	}
	return parseValue(raw)
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// envToPath converts TWINE_TEXT_MAX_CAPACITY to text.maxCapacity: the first
// part names the section, the rest form a camelCase setting name.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue converts booleans and integers; everything else stays a string.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
