package subsettings

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"subdesk/internal/health"
	"subdesk/internal/language"
	"subdesk/internal/logging"
	"subdesk/internal/settings"
)

// Store persists settings lists.
type Store interface {
	LoadProviders(ctx context.Context) ([]settings.Provider, error)
	SaveProviders(ctx context.Context, providers []settings.Provider) error
	LoadLanguages(ctx context.Context) ([]settings.Language, error)
	SaveLanguages(ctx context.Context, languages []settings.Language) error
	LoadFolders(ctx context.Context) ([]settings.Folder, error)
	SaveFolders(ctx context.Context, folders []settings.Folder) error
	LoadGroups(ctx context.Context) ([]settings.Group, error)
	LoadGeneral(ctx context.Context) (settings.General, error)
	// SaveGroupSettings stores the general settings and the persisted
	// groups together.
	SaveGroupSettings(ctx context.Context, general settings.General, groups []settings.Group) error
}

// Host describes what the running host offers.
type Host interface {
	InstalledProviderNames() []string
	ConfiguredFolderPaths() string
	CurrentUILanguageName() string
}

// Catalog lists supported subtitle languages in a stable order.
type Catalog interface {
	SupportedLanguages() []language.Entry
}

// Service exposes reconciled settings. It is safe for concurrent use.
type Service struct {
	store      Store
	host       Host
	catalog    Catalog
	classifier *health.Classifier
	logger     *slog.Logger

	mu            sync.Mutex
	folders       []settings.Folder
	foldersLoaded bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClassifier sets the folder health classifier.
func WithClassifier(c *health.Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

// NewService wires a Service. Without WithClassifier, folders are classified
// with the system network probe.
func NewService(store Store, host Host, catalog Catalog, opts ...Option) *Service {
	s := &Service{
		store:   store,
		host:    host,
		catalog: catalog,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "subsettings")
	if s.classifier == nil {
		s.classifier = health.NewClassifier(nil, health.WithLogger(s.logger))
	}
	return s
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logging.WithContext(ctx, s.logger)
}

// installedProviders returns the host provider names in order without duplicates.
func (s *Service) installedProviders() []string {
	names := s.host.InstalledProviderNames()
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// unmatched returns the selection keys missing from matched, sorted.
func unmatched(selection, matched map[string]bool) []string {
	var out []string
	for key := range selection {
		if !matched[key] {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}

// SyncResult holds the lists written by Sync.
type SyncResult struct {
	Providers []settings.Provider `json:"providers"`
	Languages []settings.Language `json:"languages"`
	Folders   []settings.Folder   `json:"folders"`
}

// Sync reconciles and persists providers, languages, and folders.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	var result SyncResult
	var err error
	if result.Providers, err = s.SyncProviders(ctx); err != nil {
		return SyncResult{}, err
	}
	if result.Languages, err = s.SyncLanguages(ctx); err != nil {
		return SyncResult{}, err
	}
	if result.Folders, err = s.SyncFolders(ctx); err != nil {
		return SyncResult{}, err
	}
	s.log(ctx).Info("settings synced",
		logging.Int("providers", len(result.Providers)),
		logging.Int("languages", len(result.Languages)),
		logging.Int("folders", len(result.Folders)),
	)
	return result, nil
}
