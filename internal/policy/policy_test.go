package policy

import (
	"testing"

	"subdesk/internal/settings"
)

func countTVDefaults(groups []settings.Group) int {
	n := 0
	for _, g := range groups {
		if g.DefaultForTVShows {
			n++
		}
	}
	return n
}

func TestEnsureGroupDefaultsPicksFirst(t *testing.T) {
	groups := []settings.Group{{Title: "a"}, {Title: "b"}, {Title: "c"}}
	EnsureGroupDefaults(groups)
	if !groups[0].DefaultForMovies || !groups[0].DefaultForTVShows {
		t.Fatalf("expected first group to become default: %#v", groups[0])
	}
	if countTVDefaults(groups) != 1 {
		t.Fatalf("expected exactly one TV default, got %d", countTVDefaults(groups))
	}
}

func TestEnsureGroupDefaultsKeepsExisting(t *testing.T) {
	groups := []settings.Group{{Title: "a"}, {Title: "b", DefaultForTVShows: true}}
	EnsureGroupDefaults(groups)
	if groups[0].DefaultForTVShows {
		t.Fatal("existing TV default must not be duplicated onto the first group")
	}
	if !groups[0].DefaultForMovies {
		t.Fatal("movies default should fall to the first group independently")
	}
}

func TestEnsureFolderDefaults(t *testing.T) {
	folders := []settings.Folder{{Path: `.\`, DefaultForMovies: true}, {Path: `C:\Subs\`}}
	EnsureFolderDefaults(folders)
	if !folders[0].DefaultForTVShows || folders[1].DefaultForTVShows {
		t.Fatalf("unexpected TV defaults: %#v", folders)
	}
	EnsureFolderDefaults(nil)
}

func TestEnsureEnabledLanguage(t *testing.T) {
	catalog := func() []settings.Language {
		return []settings.Language{
			{Code: "de", Name: "German"},
			{Code: "en", Name: "English"},
			{Code: "fr", Name: "French"},
		}
	}

	langs := catalog()
	if !EnsureEnabledLanguage(langs, "French") || !langs[2].Enabled || langs[1].Enabled {
		t.Fatalf("expected UI language enabled: %#v", langs)
	}

	langs = catalog()
	if !EnsureEnabledLanguage(langs, "Klingon") || !langs[1].Enabled {
		t.Fatalf("expected English fallback: %#v", langs)
	}

	langs = catalog()
	langs[0].Enabled = true
	if !EnsureEnabledLanguage(langs, "French") || langs[2].Enabled {
		t.Fatalf("existing selection must be kept: %#v", langs)
	}
}

// Neither the UI language nor English is present: the list stays without an
// enabled language and the caller is told so.
func TestEnsureEnabledLanguageNoMatchLeavesNoneEnabled(t *testing.T) {
	langs := []settings.Language{{Code: "de", Name: "German"}, {Code: "fr", Name: "French"}}
	if EnsureEnabledLanguage(langs, "Klingon") {
		t.Fatal("expected false when no fallback language exists")
	}
	if HasEnabledLanguage(langs) {
		t.Fatalf("expected no enabled language: %#v", langs)
	}
}
