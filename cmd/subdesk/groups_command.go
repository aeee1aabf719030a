package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subdesk/internal/searchtype"
	"subdesk/internal/settings"
	"subdesk/internal/subsettings"
)

type groupView struct {
	Title             string   `json:"title"`
	Enabled           bool     `json:"enabled"`
	DefaultForMovies  bool     `json:"default_for_movies"`
	DefaultForTVShows bool     `json:"default_for_tv_shows"`
	Providers         []string `json:"providers"`
}

func newGroupView(svc *subsettings.Service, g settings.Group) groupView {
	ids := []string{}
	for _, p := range svc.EnabledProvidersFromGroup(g) {
		ids = append(ids, p.ID)
	}
	return groupView{
		Title:             g.Title,
		Enabled:           g.Enabled,
		DefaultForMovies:  g.DefaultForMovies,
		DefaultForTVShows: g.DefaultForTVShows,
		Providers:         ids,
	}
}

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "Inspect provider groups and their search defaults",
	}

	groupsCmd.AddCommand(newGroupsListCommand(ctx))
	groupsCmd.AddCommand(newGroupsDefaultCommand(ctx))
	groupsCmd.AddCommand(newGroupsSetDefaultCommand(ctx))

	return groupsCmd
}

func newGroupsListCommand(ctx *commandContext) *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List provider groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				var groups []settings.Group
				var err error
				if enabledOnly {
					groups, err = svc.EnabledProviderGroups(rctx)
				} else {
					groups, err = svc.ProviderGroups(rctx)
				}
				if err != nil {
					return err
				}
				views := make([]groupView, 0, len(groups))
				for _, g := range groups {
					views = append(views, newGroupView(svc, g))
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, views)
				}
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					rows = append(rows, []string{
						v.Title,
						yesNo(v.Enabled),
						defaultMarks(v.DefaultForMovies, v.DefaultForTVShows),
						strings.Join(v.Providers, ", "),
					})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Group", "Enabled", "Default", "Usable providers"}, rows, nil))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "Show only enabled groups")
	return cmd
}

func newGroupsDefaultCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "default <search-type>",
		Short: "Show the default group for a search type (movie, imdb, tvshow)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := searchtype.ParseType(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				group, err := svc.DefaultGroupForSearchType(rctx, typ)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					if group == nil {
						return writeJSON(cmd, map[string]any{"search_type": typ, "group": nil})
					}
					return writeJSON(cmd, map[string]any{"search_type": typ, "group": newGroupView(svc, *group)})
				}
				if group == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No usable default group for %s searches\n", typ)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", group.Title)
				return nil
			})
		},
	}
}

func newGroupsSetDefaultCommand(ctx *commandContext) *cobra.Command {
	var forType string

	cmd := &cobra.Command{
		Use:   "set-default <group title>",
		Short: "Make a group the default for movie or TV-show searches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := searchtype.ParseType(forType)
			if err != nil {
				return err
			}
			if typ == searchtype.None {
				return errors.New("--for is required (movie or tvshow)")
			}
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				if err := svc.SetDefaultGroup(rctx, args[0], typ); err != nil {
					return err
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, map[string]any{"group": args[0], "search_type": typ})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now the default for %s searches\n", args[0], typ)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&forType, "for", "", "Search type: movie or tvshow")
	return cmd
}
