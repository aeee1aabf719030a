package subsettings

import (
	"context"
	"errors"
	"fmt"

	"subdesk/internal/policy"
	"subdesk/internal/searchtype"
	"subdesk/internal/settings"
)

// Titles of the two built-in groups that precede persisted groups.
const (
	AllProvidersTitle        = "All providers"
	AllEnabledProvidersTitle = "All enabled providers"

	builtinGroupCount = 2
)

// ErrUnknownGroup is returned when a group title matches no group.
var ErrUnknownGroup = errors.New("unknown provider group")

// ProviderGroups returns the built-in groups followed by the persisted ones,
// with the movies and TV-shows defaults guaranteed. "All providers" lists
// every reconciled provider enabled; "All enabled providers" lists the
// reconciled providers as configured.
func (s *Service) ProviderGroups(ctx context.Context) ([]settings.Group, error) {
	providers, err := s.ReconcileProviders(ctx)
	if err != nil {
		return nil, err
	}
	general, err := s.store.LoadGeneral(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider groups: %w", err)
	}
	persisted, err := s.store.LoadGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider groups: %w", err)
	}

	groups := make([]settings.Group, 0, builtinGroupCount+len(persisted))
	groups = append(groups,
		builtinGroup(AllProvidersTitle, withEnabled(providers, true), general.AllProviders),
		builtinGroup(AllEnabledProvidersTitle, providers, general.EnabledProviders),
	)
	groups = append(groups, persisted...)
	policy.EnsureGroupDefaults(groups)
	return groups, nil
}

func builtinGroup(title string, providers []settings.Provider, flags settings.GroupFlags) settings.Group {
	return settings.Group{
		Title:             title,
		Providers:         providers,
		Enabled:           flags.Enabled,
		DefaultForMovies:  flags.ForMovies,
		DefaultForTVShows: flags.ForTVShows,
	}
}

// PersistProviderGroups saves a list shaped like the ProviderGroups result:
// the flags of the two built-in groups go to the general settings and the
// remaining groups replace the persisted ones.
func (s *Service) PersistProviderGroups(ctx context.Context, groups []settings.Group) error {
	if len(groups) < builtinGroupCount {
		return fmt.Errorf("persist provider groups: expected the %d built-in groups first, got %d groups", builtinGroupCount, len(groups))
	}
	general := settings.General{
		AllProviders:     flagsOf(groups[0]),
		EnabledProviders: flagsOf(groups[1]),
	}
	if err := s.store.SaveGroupSettings(ctx, general, groups[builtinGroupCount:]); err != nil {
		return fmt.Errorf("persist provider groups: %w", err)
	}
	return nil
}

func flagsOf(g settings.Group) settings.GroupFlags {
	return settings.GroupFlags{Enabled: g.Enabled, ForMovies: g.DefaultForMovies, ForTVShows: g.DefaultForTVShows}
}

// SetDefaultGroup makes the group titled title the only default for the
// search type t (IMDb counts as movies) and persists the groups.
func (s *Service) SetDefaultGroup(ctx context.Context, title string, t searchtype.Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.ProviderGroups(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, g := range groups {
		if g.Title == title {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, title)
	}
	for i := range groups {
		switch t {
		case searchtype.Movie, searchtype.IMDb:
			groups[i].DefaultForMovies = i == idx
		case searchtype.TVShow:
			groups[i].DefaultForTVShows = i == idx
		default:
			return fmt.Errorf("set default group: search type %s has no default", t)
		}
	}
	return s.PersistProviderGroups(ctx, groups)
}

// EnabledProviderGroups returns the enabled groups.
func (s *Service) EnabledProviderGroups(ctx context.Context) ([]settings.Group, error) {
	groups, err := s.ProviderGroups(ctx)
	if err != nil {
		return nil, err
	}
	out := groups[:0]
	for _, g := range groups {
		if g.Enabled {
			out = append(out, g)
		}
	}
	return out, nil
}

// EnabledProvidersFromGroup returns the group members that are enabled and
// still installed on the host.
func (s *Service) EnabledProvidersFromGroup(g settings.Group) []settings.Provider {
	installed := make(map[string]struct{})
	for _, name := range s.installedProviders() {
		installed[name] = struct{}{}
	}
	var out []settings.Provider
	for _, p := range g.Providers {
		if !p.Enabled {
			continue
		}
		if _, ok := installed[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// DefaultGroupForSearchType returns the first enabled group that is the
// default for t and has at least one usable provider. Movies and IMDb
// searches use the movies default; TV-show searches use the TV-shows
// default. It returns nil when no group qualifies.
func (s *Service) DefaultGroupForSearchType(ctx context.Context, t searchtype.Type) (*settings.Group, error) {
	groups, err := s.ProviderGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		g := &groups[i]
		if !g.Enabled {
			continue
		}
		var isDefault bool
		switch t {
		case searchtype.Movie, searchtype.IMDb:
			isDefault = g.DefaultForMovies
		case searchtype.TVShow:
			isDefault = g.DefaultForTVShows
		default:
			return nil, nil
		}
		if isDefault && len(s.EnabledProvidersFromGroup(*g)) > 0 {
			return g, nil
		}
	}
	return nil, nil
}
