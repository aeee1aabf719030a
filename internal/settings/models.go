package settings

// Provider is a subtitle-source backend identified by a stable ID.
type Provider struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
}

// Language is a subtitle language keyed by its catalog code.
type Language struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Group is a named, ordered collection of providers.
type Group struct {
	Title             string     `json:"title"`
	Providers         []Provider `json:"providers"`
	Enabled           bool       `json:"enabled"`
	DefaultForMovies  bool       `json:"default_for_movies"`
	DefaultForTVShows bool       `json:"default_for_tv_shows"`
}

// Folder is a configured subtitle search folder. Path is compared verbatim.
type Folder struct {
	Path              string `json:"path"`
	Enabled           bool   `json:"enabled"`
	DefaultForMovies  bool   `json:"default_for_movies"`
	DefaultForTVShows bool   `json:"default_for_tv_shows"`
}

// GroupFlags holds the persisted switches of a synthetic provider group.
type GroupFlags struct {
	Enabled    bool `json:"enabled"`
	ForMovies  bool `json:"for_movies"`
	ForTVShows bool `json:"for_tv_shows"`
}

// General holds settings that are not lists: the flags of the two built-in
// provider groups.
type General struct {
	AllProviders     GroupFlags `json:"all_providers"`
	EnabledProviders GroupFlags `json:"enabled_providers"`
}

// DefaultGeneral enables both built-in groups. Default flags are left unset so
// the default policy picks the first group.
func DefaultGeneral() General {
	return General{
		AllProviders:     GroupFlags{Enabled: true},
		EnabledProviders: GroupFlags{Enabled: true},
	}
}
