package subsettings

import (
	"context"
	"errors"
	"testing"

	"subdesk/internal/searchtype"
	"subdesk/internal/settings"
)

func TestProviderGroupsBuiltinsFirstWithDefaults(t *testing.T) {
	store := newMemStore()
	store.providers = []settings.Provider{{ID: "A", Title: "A", Enabled: false}, {ID: "B", Title: "B", Enabled: true}}
	store.groups = []settings.Group{{Title: "Custom", Enabled: true}}
	svc := newTestService(store, &fakeHost{providers: []string{"A", "B"}}, nil, nil)

	groups, err := svc.ProviderGroups(context.Background())
	if err != nil {
		t.Fatalf("ProviderGroups: %v", err)
	}
	if len(groups) != 3 || groups[0].Title != AllProvidersTitle || groups[1].Title != AllEnabledProvidersTitle || groups[2].Title != "Custom" {
		t.Fatalf("unexpected groups %#v", groups)
	}
	for _, p := range groups[0].Providers {
		if !p.Enabled {
			t.Fatalf("all-providers group must force providers enabled: %#v", groups[0].Providers)
		}
	}
	if groups[1].Providers[0].Enabled {
		t.Fatal("all-enabled-providers group must keep the configured flags")
	}
	if !groups[0].DefaultForMovies || !groups[0].DefaultForTVShows {
		t.Fatal("first group should become the default when none is set")
	}
	for _, g := range groups[1:] {
		if g.DefaultForMovies || g.DefaultForTVShows {
			t.Fatalf("only one default expected, got %#v", g)
		}
	}
}

func TestProviderGroupsKeepsPersistedDefault(t *testing.T) {
	store := newMemStore()
	store.general.EnabledProviders.ForTVShows = true
	svc := newTestService(store, &fakeHost{providers: []string{"A"}}, nil, nil)

	groups, err := svc.ProviderGroups(context.Background())
	if err != nil {
		t.Fatalf("ProviderGroups: %v", err)
	}
	if groups[0].DefaultForTVShows || !groups[1].DefaultForTVShows {
		t.Fatalf("persisted TV default must win: %#v", groups)
	}
	if !groups[0].DefaultForMovies {
		t.Fatal("movies default should fall to the first group")
	}
}

func TestEnabledProviderGroupsAndMembers(t *testing.T) {
	store := newMemStore()
	store.general.AllProviders.Enabled = false
	store.groups = []settings.Group{
		{Title: "Off", Enabled: false},
		{Title: "Mixed", Enabled: true, Providers: []settings.Provider{
			{ID: "A", Enabled: true},
			{ID: "Uninstalled", Enabled: true},
			{ID: "B", Enabled: false},
		}},
	}
	svc := newTestService(store, &fakeHost{providers: []string{"A", "B"}}, nil, nil)

	groups, err := svc.EnabledProviderGroups(context.Background())
	if err != nil {
		t.Fatalf("EnabledProviderGroups: %v", err)
	}
	if len(groups) != 2 || groups[0].Title != AllEnabledProvidersTitle || groups[1].Title != "Mixed" {
		t.Fatalf("unexpected enabled groups %#v", groups)
	}
	members := svc.EnabledProvidersFromGroup(groups[1])
	if len(members) != 1 || members[0].ID != "A" {
		t.Fatalf("unexpected members %#v", members)
	}
	if got := svc.EnabledProvidersFromGroup(settings.Group{}); len(got) != 0 {
		t.Fatalf("empty group should have no members, got %#v", got)
	}
}

func TestDefaultGroupForSearchType(t *testing.T) {
	store := newMemStore()
	store.general.AllProviders = settings.GroupFlags{Enabled: true}
	store.general.EnabledProviders = settings.GroupFlags{Enabled: true}
	store.groups = []settings.Group{
		{Title: "Movies", Enabled: true, DefaultForMovies: true, Providers: []settings.Provider{{ID: "A", Enabled: true}}},
		{Title: "Shows", Enabled: true, DefaultForTVShows: true, Providers: []settings.Provider{{ID: "Gone", Enabled: true}}},
	}
	svc := newTestService(store, &fakeHost{providers: []string{"A"}}, nil, nil)
	ctx := context.Background()

	for _, typ := range []searchtype.Type{searchtype.Movie, searchtype.IMDb} {
		g, err := svc.DefaultGroupForSearchType(ctx, typ)
		if err != nil || g == nil || g.Title != "Movies" {
			t.Fatalf("DefaultGroupForSearchType(%s) = %#v, %v", typ, g, err)
		}
	}

	// The TV default has no installed provider, so nothing qualifies.
	g, err := svc.DefaultGroupForSearchType(ctx, searchtype.TVShow)
	if err != nil || g != nil {
		t.Fatalf("expected no TV default, got %#v, %v", g, err)
	}

	g, err = svc.DefaultGroupForSearchType(ctx, searchtype.None)
	if err != nil || g != nil {
		t.Fatalf("expected nil for None, got %#v, %v", g, err)
	}
}

func TestSetDefaultGroupPersists(t *testing.T) {
	store := newMemStore()
	store.groups = []settings.Group{{Title: "Custom", Enabled: true}}
	svc := newTestService(store, &fakeHost{providers: []string{"A"}}, nil, nil)
	ctx := context.Background()

	if err := svc.SetDefaultGroup(ctx, "Custom", searchtype.TVShow); err != nil {
		t.Fatalf("SetDefaultGroup: %v", err)
	}
	if !store.groups[0].DefaultForTVShows {
		t.Fatalf("expected custom group to be the TV default, got %#v", store.groups)
	}
	if store.general.AllProviders.ForTVShows || !store.general.AllProviders.ForMovies {
		t.Fatalf("unexpected general flags %#v", store.general)
	}

	if err := svc.SetDefaultGroup(ctx, "Missing", searchtype.Movie); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
	if err := svc.PersistProviderGroups(ctx, nil); err == nil {
		t.Fatal("expected error when built-in groups are missing")
	}
}

func TestSetDefaultGroupFailedSaveLeavesStoreUntouched(t *testing.T) {
	store := newMemStore()
	store.groups = []settings.Group{{Title: "Custom", Enabled: true}}
	generalBefore := store.general
	store.saveErr = errStoreDown
	svc := newTestService(store, &fakeHost{providers: []string{"A"}}, nil, nil)

	err := svc.SetDefaultGroup(context.Background(), "Custom", searchtype.Movie)
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	if store.general != generalBefore || store.groups[0].DefaultForMovies {
		t.Fatalf("failed save must not change stored groups: general=%#v groups=%#v", store.general, store.groups)
	}
	if store.saves != 0 {
		t.Fatalf("expected no completed saves, got %d", store.saves)
	}
}
