package subsettings

import (
	"context"
	"errors"
	"os"
	"strings"

	"subdesk/internal/health"
	"subdesk/internal/language"
	"subdesk/internal/settings"
)

type memStore struct {
	providers []settings.Provider
	languages []settings.Language
	folders   []settings.Folder
	groups    []settings.Group
	general   settings.General
	saves     int
	loadErr   error
	saveErr   error
}

func newMemStore() *memStore {
	return &memStore{general: settings.DefaultGeneral()}
}

func (m *memStore) LoadProviders(context.Context) ([]settings.Provider, error) {
	return append([]settings.Provider(nil), m.providers...), m.loadErr
}

func (m *memStore) SaveProviders(_ context.Context, p []settings.Provider) error {
	m.saves++
	m.providers = append([]settings.Provider(nil), p...)
	return nil
}

func (m *memStore) LoadLanguages(context.Context) ([]settings.Language, error) {
	return append([]settings.Language(nil), m.languages...), m.loadErr
}

func (m *memStore) SaveLanguages(_ context.Context, l []settings.Language) error {
	m.saves++
	m.languages = append([]settings.Language(nil), l...)
	return nil
}

func (m *memStore) LoadFolders(context.Context) ([]settings.Folder, error) {
	return append([]settings.Folder(nil), m.folders...), m.loadErr
}

func (m *memStore) SaveFolders(_ context.Context, f []settings.Folder) error {
	m.saves++
	m.folders = append([]settings.Folder(nil), f...)
	return nil
}

func (m *memStore) LoadGroups(context.Context) ([]settings.Group, error) {
	return append([]settings.Group(nil), m.groups...), m.loadErr
}

func (m *memStore) LoadGeneral(context.Context) (settings.General, error) {
	return m.general, m.loadErr
}

func (m *memStore) SaveGroupSettings(_ context.Context, general settings.General, groups []settings.Group) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.general = general
	m.groups = append([]settings.Group(nil), groups...)
	return nil
}

type fakeHost struct {
	providers []string
	folders   string
	ui        string
}

func (h *fakeHost) InstalledProviderNames() []string { return h.providers }
func (h *fakeHost) ConfiguredFolderPaths() string    { return h.folders }
func (h *fakeHost) CurrentUILanguageName() string    { return h.ui }

type fakeCatalog []language.Entry

func (c fakeCatalog) SupportedLanguages() []language.Entry {
	return append([]language.Entry(nil), c...)
}

var testCatalog = fakeCatalog{
	{Code: "en", Name: "English"},
	{Code: "de", Name: "German"},
	{Code: "fr", Name: "French"},
}

type fakeProbe struct {
	hosts   map[string]bool
	volumes map[string]bool
	calls   int
}

func (p *fakeProbe) IsHostReachable(_ context.Context, host string) bool {
	p.calls++
	return p.hosts[host]
}

func (p *fakeProbe) IsVolumeReady(volume string) bool { return p.volumes[volume] }

// fakeFS keys directories without their trailing separator.
type fakeFS struct {
	dirs     map[string]bool
	readOnly map[string]bool
}

func trimSep(p string) string { return strings.TrimRight(p, `\/`) }

func (f fakeFS) DirExists(path string) bool { return f.dirs[trimSep(path)] }

func (f fakeFS) TryWrite(dir string) error {
	if !f.dirs[trimSep(dir)] {
		return os.ErrNotExist
	}
	if f.readOnly[trimSep(dir)] {
		return os.ErrPermission
	}
	return nil
}

var errStoreDown = errors.New("store down")

func newTestService(store *memStore, host *fakeHost, probe *fakeProbe, fs health.FS) *Service {
	if probe == nil {
		probe = &fakeProbe{}
	}
	if fs == nil {
		fs = fakeFS{}
	}
	classifier := health.NewClassifier(probe, health.WithFS(fs))
	return NewService(store, host, testCatalog, WithClassifier(classifier))
}
