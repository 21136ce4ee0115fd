package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the prefix of the Atlas CLI environment overrides.
const DefaultEnvPrefix = "MONGODB_ATLAS_"

// Loader loads raw configuration keys from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	envFilter func(key string) bool
	filePath  string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithEnvFilter restricts environment overrides to keys accepted by fn.
// The key passed to fn is the lower-cased variable name without the prefix.
func WithEnvFilter(fn func(key string) bool) Option {
	return func(l *Loader) {
		l.envFilter = fn
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads the configuration file (if set) and then environment
// overrides. Later sources override earlier ones.
func (l *Loader) Load() error {
	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.LoadEnv(); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	return nil
}

// LoadFile loads configuration from a TOML file.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if err := l.k.Load(file.Provider(path), TOMLParser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	return nil
}

// LoadEnv loads environment overrides.
// MONGODB_ATLAS_TELEMETRY_ENABLED=false sets the key telemetry_enabled.
// Underscores are kept, so only top-level keys can be overridden.
func (l *Loader) LoadEnv() error {
	transform := func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
		if l.envFilter != nil && !l.envFilter(key) {
			// koanf skips variables mapped to an empty key.
			return ""
		}
		return key
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	return nil
}

// Exists reports whether key is set by any loaded source.
func (l *Loader) Exists(key string) bool {
	return l.k.Exists(key)
}

// Get returns a value from the configuration by key.
func (l *Loader) Get(key string) any {
	return l.k.Get(key)
}

// Raw returns the configuration as a nested map.
func (l *Loader) Raw() map[string]any {
	return l.k.Raw()
}

// Keys returns all flattened configuration keys.
func (l *Loader) Keys() []string {
	return l.k.Keys()
}
