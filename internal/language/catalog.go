package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// FallbackUILanguage is the UI language assumed when the locale cannot be
// mapped onto the catalog.
const FallbackUILanguage = "English"

// Entry is one catalog language.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog lists the languages subtitles can be searched in.
type Catalog struct {
	entries []Entry
}

// NewCatalog returns the built-in catalog in its fixed order.
func NewCatalog() *Catalog {
	entries := make([]Entry, 0, len(languages))
	for _, e := range languages {
		entries = append(entries, Entry{Code: e.code2, Name: e.display})
	}
	return &Catalog{entries: entries}
}

// SupportedLanguages returns a copy of the catalog entries.
func (c *Catalog) SupportedLanguages() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether the catalog has a language named name.
func (c *Catalog) Contains(name string) bool {
	for _, e := range c.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// UILanguageName maps a POSIX locale (for example "pt_BR.UTF-8") to the
// English name of its base language. Locales the catalog does not list, and
// unparsable input such as "C" or "POSIX", yield FallbackUILanguage.
func (c *Catalog) UILanguageName(locale string) string {
	name := localeDisplayName(locale)
	if name == "" || !c.Contains(name) {
		return FallbackUILanguage
	}
	return name
}

func localeDisplayName(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	switch locale {
	case "", "C", "POSIX":
		return ""
	}
	tag, err := xlanguage.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	if e := lookup(base.String()); e != nil {
		return e.display
	}
	return display.English.Languages().Name(base)
}
