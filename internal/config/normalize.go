package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment overrides applied after the file is decoded.
const (
	EnvUILanguage    = "SUBDESK_UI_LANGUAGE"
	EnvSubtitlePaths = "SUBDESK_SUBTITLE_PATHS"
	EnvProviders     = "SUBDESK_PROVIDERS"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeHost()
	c.normalizeProbe()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeHost() {
	if value, ok := os.LookupEnv(EnvSubtitlePaths); ok && strings.TrimSpace(value) != "" {
		c.Host.SubtitlePaths = value
	}
	if value, ok := os.LookupEnv(EnvUILanguage); ok && strings.TrimSpace(value) != "" {
		c.Host.UILanguage = value
	}
	if value, ok := os.LookupEnv(EnvProviders); ok && strings.TrimSpace(value) != "" {
		c.Host.InstalledProviders = strings.Split(value, ",")
	}

	// Folder entries are validated later, one by one, so the raw string is
	// kept verbatim apart from the empty case.
	if strings.TrimSpace(c.Host.SubtitlePaths) == "" {
		c.Host.SubtitlePaths = defaultSubtitlePaths
	}
	c.Host.UILanguage = strings.TrimSpace(c.Host.UILanguage)

	providers := make([]string, 0, len(c.Host.InstalledProviders))
	seen := make(map[string]struct{}, len(c.Host.InstalledProviders))
	for _, name := range c.Host.InstalledProviders {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		providers = append(providers, name)
	}
	c.Host.InstalledProviders = providers
}

func (c *Config) normalizeProbe() {
	if c.Probe.TimeoutMS == 0 {
		c.Probe.TimeoutMS = defaultProbeTimeoutMS
	}
	if len(c.Probe.Ports) == 0 {
		c.Probe.Ports = append([]int(nil), defaultProbePorts...)
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
