package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subdesk/internal/searchtype"
)

type searchTypeReport struct {
	Media      searchtype.MediaDescriptor `json:"media"`
	Type       searchtype.Type            `json:"type"`
	CanSearch  map[string]bool            `json:"can_search"`
	Invalid    []string                   `json:"invalid,omitempty"`
	Requested  *searchtype.Type           `json:"requested,omitempty"`
	Searchable *bool                      `json:"searchable,omitempty"`
}

func buildSearchTypeReport(media searchtype.MediaDescriptor) searchTypeReport {
	report := searchTypeReport{
		Media:     media,
		Type:      searchtype.Classify(media),
		CanSearch: map[string]bool{},
	}
	for _, t := range []searchtype.Type{searchtype.Movie, searchtype.IMDb, searchtype.TVShow} {
		report.CanSearch[t.String()] = searchtype.CanSearchWithType(media, t)
	}
	if media.IMDbID != "" && !searchtype.IsIMDbIDValid(media.IMDbID) {
		report.Invalid = append(report.Invalid, "imdb")
	}
	if media.Year != "" && !searchtype.IsYearValid(media.Year) {
		report.Invalid = append(report.Invalid, "year")
	}
	if media.Season != "" && !searchtype.IsSeasonOrEpisodeValid(media.Season) {
		report.Invalid = append(report.Invalid, "season")
	}
	if media.Episode != "" && !searchtype.IsSeasonOrEpisodeValid(media.Episode) {
		report.Invalid = append(report.Invalid, "episode")
	}
	return report
}

func newSearchTypeCommand(ctx *commandContext) *cobra.Command {
	var media searchtype.MediaDescriptor
	var requested string

	cmd := &cobra.Command{
		Use:         "searchtype",
		Short:       "Classify which subtitle search a media item supports",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			report := buildSearchTypeReport(media)
			if requested != "" {
				typ, err := searchtype.ParseType(requested)
				if err != nil {
					return err
				}
				ok := searchtype.CanSearchWithType(media, typ)
				report.Requested = &typ
				report.Searchable = &ok
			}
			if ctx.JSONMode() {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Search type: %s\n", report.Type)
			for _, t := range []searchtype.Type{searchtype.Movie, searchtype.IMDb, searchtype.TVShow} {
				fmt.Fprintf(out, "Can search as %s: %s\n", t, yesNo(report.CanSearch[t.String()]))
			}
			if report.Requested != nil {
				fmt.Fprintf(out, "Requested %s: %s\n", *report.Requested, yesNo(*report.Searchable))
			}
			for _, field := range report.Invalid {
				fmt.Fprintf(out, "Warning: %s value is out of range\n", field)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&media.IMDbID, "imdb", "", "IMDb ID (tt1234567)")
	flags.StringVar(&media.Title, "title", "", "Movie or show title")
	flags.StringVar(&media.Year, "year", "", "Release year ("+strconv.Itoa(searchtype.MinYear)+"-"+strconv.Itoa(searchtype.MaxYear)+")")
	flags.StringVar(&media.Season, "season", "", "Season number")
	flags.StringVar(&media.Episode, "episode", "", "Episode number")
	flags.StringVar(&requested, "as", "", "Check a specific search type: movie, imdb, or tvshow")
	return cmd
}
