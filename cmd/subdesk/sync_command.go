package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"subdesk/internal/subsettings"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile persisted settings with the host and save them",
		Long: `Reconcile persisted settings with the host and save them.

Providers no longer installed and folders no longer configured are dropped;
new ones are appended enabled. Languages follow the built-in catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				result, err := svc.Sync(rctx)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, result)
				}
				enabledLanguages := 0
				for _, l := range result.Languages {
					if l.Enabled {
						enabledLanguages++
					}
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Providers: %d\n", len(result.Providers))
				fmt.Fprintf(out, "Languages: %d (%d enabled)\n", len(result.Languages), enabledLanguages)
				fmt.Fprintf(out, "Folders: %d\n", len(result.Folders))
				return nil
			})
		},
	}
}
