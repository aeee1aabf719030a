package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"subdesk/internal/config"
	"subdesk/internal/language"
)

func clearHostEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvUILanguage, config.EnvSubtitlePaths, config.EnvProviders} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	clearHostEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "subdesk", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.StateDir != filepath.Join(tempHome, ".local", "share", "subdesk") {
		t.Fatalf("unexpected state dir: %q", cfg.Paths.StateDir)
	}
	if cfg.Host.SubtitlePaths != "./" {
		t.Fatalf("expected default subtitle paths, got %q", cfg.Host.SubtitlePaths)
	}
	if cfg.ProbeTimeout() != 300*time.Millisecond {
		t.Fatalf("unexpected probe timeout %s", cfg.ProbeTimeout())
	}
	if len(cfg.Probe.Ports) != 2 || cfg.Probe.Ports[0] != 445 {
		t.Fatalf("unexpected probe ports %v", cfg.Probe.Ports)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.SettingsDBPath() != filepath.Join(cfg.Paths.StateDir, "settings.db") {
		t.Fatalf("unexpected db path %q", cfg.SettingsDBPath())
	}
}

func TestLoadCustomConfig(t *testing.T) {
	clearHostEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "subdesk.toml")

	payload := map[string]any{
		"paths": map[string]any{
			"state_dir": filepath.Join(dir, "state"),
			"log_dir":   filepath.Join(dir, "logs"),
		},
		"host": map[string]any{
			"installed_providers": []string{" OpenSubtitles ", "Podnapisi", "OpenSubtitles", ""},
			"subtitle_paths":      `.\Subs, C:\Subtitles`,
			"ui_language":         " German ",
		},
		"probe":   map[string]any{"timeout_ms": 750},
		"logging": map[string]any{"format": "JSON", "level": "DEBUG"},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	want := []string{"OpenSubtitles", "Podnapisi"}
	if strings.Join(cfg.Host.InstalledProviders, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected providers %v", cfg.Host.InstalledProviders)
	}
	if cfg.Host.SubtitlePaths != `.\Subs, C:\Subtitles` {
		t.Fatalf("subtitle paths must be kept verbatim, got %q", cfg.Host.SubtitlePaths)
	}
	if cfg.Host.UILanguage != "German" {
		t.Fatalf("unexpected ui language %q", cfg.Host.UILanguage)
	}
	if cfg.ProbeTimeout() != 750*time.Millisecond {
		t.Fatalf("unexpected probe timeout %s", cfg.ProbeTimeout())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvSubtitlePaths, `\\nas\subs, ./`)
	t.Setenv(config.EnvUILanguage, "French")
	t.Setenv(config.EnvProviders, "A, B,A")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Host.SubtitlePaths != `\\nas\subs, ./` {
		t.Fatalf("unexpected subtitle paths %q", cfg.Host.SubtitlePaths)
	}
	if cfg.Host.UILanguage != "French" {
		t.Fatalf("unexpected ui language %q", cfg.Host.UILanguage)
	}
	if strings.Join(cfg.Host.InstalledProviders, ",") != "A,B" {
		t.Fatalf("unexpected providers %v", cfg.Host.InstalledProviders)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero probe timeout", func(c *config.Config) { c.Probe.TimeoutMS = -1 }},
		{"huge probe timeout", func(c *config.Config) { c.Probe.TimeoutMS = 60000 }},
		{"bad port", func(c *config.Config) { c.Probe.Ports = []int{70000} }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "chatty" }},
		{"missing state dir", func(c *config.Config) { c.Paths.StateDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	clearHostEnv(t)
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if len(cfg.Host.InstalledProviders) == 0 {
		t.Fatal("expected sample to list providers")
	}
	if !strings.Contains(cfg.Host.SubtitlePaths, `\\nas\media\subtitles`) {
		t.Fatalf("unexpected sample subtitle paths %q", cfg.Host.SubtitlePaths)
	}
}

func TestHostEnvironment(t *testing.T) {
	cfg := config.Default()
	cfg.Host.InstalledProviders = []string{"OpenSubtitles"}
	host := cfg.HostEnvironment(language.NewCatalog())

	if got := host.InstalledProviderNames(); len(got) != 1 || got[0] != "OpenSubtitles" {
		t.Fatalf("unexpected providers %v", got)
	}
	if host.ConfiguredFolderPaths() != "./" {
		t.Fatalf("unexpected folder paths %q", host.ConfiguredFolderPaths())
	}

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := host.CurrentUILanguageName(); got != "German" {
		t.Fatalf("expected German from LANG, got %q", got)
	}

	t.Setenv("LANG", "")
	if got := host.CurrentUILanguageName(); got != "English" {
		t.Fatalf("expected English fallback, got %q", got)
	}

	cfg.Host.UILanguage = "French"
	if got := cfg.HostEnvironment(nil).CurrentUILanguageName(); got != "French" {
		t.Fatalf("expected configured ui language, got %q", got)
	}
}

func TestExpandPathHandlesTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/subdesk")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "subdesk") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
