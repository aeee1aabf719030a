// Package searchtype picks the subtitle search strategy for a media item from
// the fields its descriptor carries.
package searchtype

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type is a subtitle search strategy.
type Type int

const (
	None Type = iota
	Movie
	IMDb
	TVShow
)

func (t Type) String() string {
	switch t {
	case Movie:
		return "movie"
	case IMDb:
		return "imdb"
	case TVShow:
		return "tvshow"
	default:
		return "none"
	}
}

// MarshalText encodes the type by name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseType maps a type name (case-insensitive) back to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "movie":
		return Movie, nil
	case "imdb":
		return IMDb, nil
	case "tvshow", "tv", "episode":
		return TVShow, nil
	}
	return None, fmt.Errorf("unknown search type %q", s)
}

// MediaDescriptor carries the media fields a search can use. Empty means absent.
type MediaDescriptor struct {
	IMDbID  string `json:"imdb_id,omitempty"`
	Title   string `json:"title,omitempty"`
	Year    string `json:"year,omitempty"`
	Season  string `json:"season,omitempty"`
	Episode string `json:"episode,omitempty"`
}

func (d MediaDescriptor) hasIMDb() bool { return d.IMDbID != "" }

func (d MediaDescriptor) hasMovie() bool { return d.Title != "" && d.Year != "" }

func (d MediaDescriptor) hasEpisode() bool {
	return d.Title != "" && d.Season != "" && d.Episode != ""
}

// Classify returns the natural search type for d. Later rules override
// earlier ones: title+season+episode selects TVShow, an IMDb ID always wins,
// and otherwise title+year selects Movie, even over TVShow.
func Classify(d MediaDescriptor) Type {
	result := None
	if d.hasEpisode() {
		result = TVShow
	}
	if d.hasIMDb() {
		result = IMDb
	} else if d.hasMovie() {
		result = Movie
	}
	return result
}

// CanSearchWithType reports whether d has the fields a search of type t needs,
// independent of what Classify would pick.
func CanSearchWithType(d MediaDescriptor, t Type) bool {
	switch t {
	case IMDb:
		return d.hasIMDb()
	case TVShow:
		return d.hasEpisode()
	case Movie:
		return d.hasMovie()
	default:
		return false
	}
}

const (
	MinYear    = 1900
	MaxYear    = 2050
	MaxEpisode = 999
)

var imdbPattern = regexp.MustCompile(`tt\d{7}`)

// IsIMDbIDValid accepts IDs of the form tt1234567.
func IsIMDbIDValid(id string) bool {
	return len(id) == 9 && imdbPattern.MatchString(id)
}

// IsYearValid accepts integer years in [MinYear, MaxYear].
func IsYearValid(year string) bool {
	n, err := strconv.Atoi(year)
	return err == nil && n >= MinYear && n <= MaxYear
}

// IsSeasonOrEpisodeValid accepts integers in [1, MaxEpisode].
func IsSeasonOrEpisodeValid(value string) bool {
	n, err := strconv.Atoi(value)
	return err == nil && n >= 1 && n <= MaxEpisode
}
