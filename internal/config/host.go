package config

import (
	"os"

	"subdesk/internal/language"
)

// HostEnvironment exposes the [host] section to the settings service.
type HostEnvironment struct {
	host    Host
	catalog *language.Catalog
	getenv  func(string) string
}

// HostEnvironment returns the host view of the configuration. The catalog
// decides which locale languages are recognised.
func (c *Config) HostEnvironment(catalog *language.Catalog) *HostEnvironment {
	if catalog == nil {
		catalog = language.NewCatalog()
	}
	return &HostEnvironment{host: c.Host, catalog: catalog, getenv: os.Getenv}
}

// InstalledProviderNames returns the configured provider IDs in order.
func (h *HostEnvironment) InstalledProviderNames() []string {
	return append([]string(nil), h.host.InstalledProviders...)
}

// ConfiguredFolderPaths returns the raw comma-separated folder string.
func (h *HostEnvironment) ConfiguredFolderPaths() string {
	return h.host.SubtitlePaths
}

// CurrentUILanguageName returns the configured UI language, or the language of
// the first locale variable that is set (LC_ALL, LC_MESSAGES, LANG).
func (h *HostEnvironment) CurrentUILanguageName() string {
	if h.host.UILanguage != "" {
		return h.host.UILanguage
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := h.getenv(key); value != "" {
			return h.catalog.UILanguageName(value)
		}
	}
	return language.FallbackUILanguage
}
