package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"subdesk/internal/settings"
	"subdesk/internal/subsettings"
)

func newFoldersCommand(ctx *commandContext) *cobra.Command {
	foldersCmd := &cobra.Command{
		Use:   "folders",
		Short: "Inspect subtitle search folders",
	}

	foldersCmd.AddCommand(newFoldersListCommand(ctx))
	foldersCmd.AddCommand(newFoldersResolveCommand(ctx))

	return foldersCmd
}

func newFoldersListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured search folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				folders, err := svc.Folders(rctx)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					if folders == nil {
						folders = []settings.Folder{}
					}
					return writeJSON(cmd, folders)
				}
				rows := make([][]string, 0, len(folders))
				for _, f := range folders {
					rows = append(rows, []string{f.Path, yesNo(f.Enabled), defaultMarks(f.DefaultForMovies, f.DefaultForTVShows)})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Folder", "Enabled", "Default"}, rows, nil))
				return nil
			})
		},
	}
}

func newFoldersResolveCommand(ctx *commandContext) *cobra.Command {
	var includeReadOnly bool

	cmd := &cobra.Command{
		Use:   "resolve [media-file]",
		Short: "Resolve the enabled folders for a media file and check their health",
		Long: `Resolve the enabled folders for a media file and check their health.

Relative folders are resolved against the directory of the media file and are
skipped when no media file is given. ReadOnly folders are hidden unless
--include-readonly is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			media := ""
			if len(args) == 1 {
				media = args[0]
			}
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				folders, err := svc.FoldersForMedia(rctx, media, includeReadOnly)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					if folders == nil {
						folders = []subsettings.ResolvedFolder{}
					}
					return writeJSON(cmd, folders)
				}
				out := cmd.OutOrStdout()
				if len(folders) == 0 {
					fmt.Fprintln(out, "No usable folders")
					return nil
				}
				colorize := shouldColorize(out)
				rows := make([][]string, 0, len(folders))
				for _, f := range folders {
					rows = append(rows, []string{
						f.ResolvedPath,
						f.OriginalPath,
						statusLabel(f.Health, colorize),
						defaultMarks(f.DefaultForMovies, f.DefaultForTVShows),
					})
				}
				fmt.Fprint(out, renderTable([]string{"Path", "Configured", "Health", "Default"}, rows, nil))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&includeReadOnly, "include-readonly", false, "Include folders that cannot be written")
	return cmd
}
