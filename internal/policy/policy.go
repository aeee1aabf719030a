// Package policy enforces the default-selection invariants on reconciled
// lists: some group and some folder is the default for movies and for TV
// shows, and some language is enabled.
package policy

import "subdesk/internal/settings"

// FallbackLanguage is enabled when nothing matches the UI language.
const FallbackLanguage = "English"

// EnsureDefault sets the flag on the first element when no element has it.
// It reports whether the list was changed. Empty lists are left alone.
func EnsureDefault[E any](list []E, has func(*E) bool, set func(*E)) bool {
	if len(list) == 0 {
		return false
	}
	for i := range list {
		if has(&list[i]) {
			return false
		}
	}
	set(&list[0])
	return true
}

// EnsureGroupDefaults applies the movies and TV-shows default rule to groups.
func EnsureGroupDefaults(groups []settings.Group) {
	EnsureDefault(groups,
		func(g *settings.Group) bool { return g.DefaultForMovies },
		func(g *settings.Group) { g.DefaultForMovies = true },
	)
	EnsureDefault(groups,
		func(g *settings.Group) bool { return g.DefaultForTVShows },
		func(g *settings.Group) { g.DefaultForTVShows = true },
	)
}

// EnsureFolderDefaults applies the movies and TV-shows default rule to folders.
func EnsureFolderDefaults(folders []settings.Folder) {
	EnsureDefault(folders,
		func(f *settings.Folder) bool { return f.DefaultForMovies },
		func(f *settings.Folder) { f.DefaultForMovies = true },
	)
	EnsureDefault(folders,
		func(f *settings.Folder) bool { return f.DefaultForTVShows },
		func(f *settings.Folder) { f.DefaultForTVShows = true },
	)
}

// HasEnabledLanguage reports whether any language is enabled.
func HasEnabledLanguage(langs []settings.Language) bool {
	for _, l := range langs {
		if l.Enabled {
			return true
		}
	}
	return false
}

// EnsureEnabledLanguage enables a language when none is enabled: the one named
// uiLanguage, otherwise the one named English. It returns false when the list
// still has no enabled language afterwards, which happens when neither name
// is present.
func EnsureEnabledLanguage(langs []settings.Language, uiLanguage string) bool {
	if HasEnabledLanguage(langs) {
		return true
	}
	for _, name := range []string{uiLanguage, FallbackLanguage} {
		if name == "" {
			continue
		}
		for i := range langs {
			if langs[i].Name == name {
				langs[i].Enabled = true
				return true
			}
		}
	}
	return false
}
