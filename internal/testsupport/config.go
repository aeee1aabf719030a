package testsupport

import (
	"path/filepath"
	"testing"

	"subdesk/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Host.UILanguage = "English"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithProviders sets the installed provider IDs.
func WithProviders(ids ...string) ConfigOption {
	return func(c *config.Config) {
		c.Host.InstalledProviders = append([]string(nil), ids...)
	}
}

// WithSubtitlePaths sets the raw comma-separated folder string.
func WithSubtitlePaths(paths string) ConfigOption {
	return func(c *config.Config) {
		c.Host.SubtitlePaths = paths
	}
}

// WithUILanguage sets the UI language name.
func WithUILanguage(name string) ConfigOption {
	return func(c *config.Config) {
		c.Host.UILanguage = name
	}
}
