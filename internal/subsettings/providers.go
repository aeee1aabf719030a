package subsettings

import (
	"context"
	"fmt"

	"subdesk/internal/logging"
	"subdesk/internal/reconcile"
	"subdesk/internal/settings"
)

func providerID(p settings.Provider) string { return p.ID }

func newProvider(id string) settings.Provider {
	return settings.Provider{ID: id, Title: id, Enabled: true}
}

// ReconcileProviders merges the persisted providers with the installed ones.
// Providers that are no longer installed are dropped; newly installed ones
// are appended enabled.
func (s *Service) ReconcileProviders(ctx context.Context) ([]settings.Provider, error) {
	persisted, err := s.store.LoadProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile providers: %w", err)
	}
	installed := s.installedProviders()
	if dropped := reconcile.Dropped(persisted, installed, providerID); len(dropped) > 0 {
		s.log(ctx).Debug("providers no longer installed", logging.Strings("providers", dropped))
	}
	return reconcile.Merge(persisted, installed, providerID, newProvider), nil
}

// PersistProviders saves providers as the authoritative list.
func (s *Service) PersistProviders(ctx context.Context, providers []settings.Provider) error {
	if err := s.store.SaveProviders(ctx, providers); err != nil {
		return fmt.Errorf("persist providers: %w", err)
	}
	return nil
}

// SyncProviders reconciles and persists the provider list.
func (s *Service) SyncProviders(ctx context.Context) ([]settings.Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	providers, err := s.ReconcileProviders(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.PersistProviders(ctx, providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// EnabledProviders returns the reconciled providers that are enabled.
func (s *Service) EnabledProviders(ctx context.Context) ([]settings.Provider, error) {
	providers, err := s.ReconcileProviders(ctx)
	if err != nil {
		return nil, err
	}
	out := providers[:0]
	for _, p := range providers {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProvidersWithEnabled returns copies of the reconciled providers with the
// enabled flag forced to enabled.
func (s *Service) ProvidersWithEnabled(ctx context.Context, enabled bool) ([]settings.Provider, error) {
	providers, err := s.ReconcileProviders(ctx)
	if err != nil {
		return nil, err
	}
	return withEnabled(providers, enabled), nil
}

func withEnabled(providers []settings.Provider, enabled bool) []settings.Provider {
	out := make([]settings.Provider, len(providers))
	for i, p := range providers {
		p.Enabled = enabled
		out[i] = p
	}
	return out
}

// SetProviderSelection sets the enabled flag of the providers named in
// selection and persists the reconciled list. It returns the IDs in selection
// that are not installed.
func (s *Service) SetProviderSelection(ctx context.Context, selection map[string]bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	providers, err := s.ReconcileProviders(ctx)
	if err != nil {
		return nil, err
	}
	matched := make(map[string]bool, len(selection))
	for i := range providers {
		if enabled, ok := selection[providers[i].ID]; ok {
			providers[i].Enabled = enabled
			matched[providers[i].ID] = true
		}
	}
	if err := s.PersistProviders(ctx, providers); err != nil {
		return nil, err
	}
	return unmatched(selection, matched), nil
}
