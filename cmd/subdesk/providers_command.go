package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"subdesk/internal/settings"
	"subdesk/internal/subsettings"
)

func newProvidersCommand(ctx *commandContext) *cobra.Command {
	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "Inspect and select subtitle providers",
	}

	providersCmd.AddCommand(newProvidersListCommand(ctx))
	providersCmd.AddCommand(newProvidersToggleCommand(ctx, "enable", true))
	providersCmd.AddCommand(newProvidersToggleCommand(ctx, "disable", false))

	return providersCmd
}

func newProvidersListCommand(ctx *commandContext) *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed providers in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				var providers []settings.Provider
				var err error
				if enabledOnly {
					providers, err = svc.EnabledProviders(rctx)
				} else {
					providers, err = svc.ReconcileProviders(rctx)
				}
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					if providers == nil {
						providers = []settings.Provider{}
					}
					return writeJSON(cmd, providers)
				}
				if len(providers) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No providers installed")
					return nil
				}
				rows := make([][]string, 0, len(providers))
				for i, p := range providers {
					rows = append(rows, []string{fmt.Sprint(i + 1), p.ID, p.Title, yesNo(p.Enabled)})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"#", "ID", "Title", "Enabled"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "Show only enabled providers")
	return cmd
}

func newProvidersToggleCommand(ctx *commandContext, verb string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>...",
		Short: fmt.Sprintf("%s providers by ID", capitalize(verb)),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				selection := make(map[string]bool, len(args))
				for _, id := range args {
					selection[id] = enabled
				}
				unmatched, err := svc.SetProviderSelection(rctx, selection)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					return writeJSON(cmd, map[string]any{
						"updated":   len(selection) - len(unmatched),
						"unmatched": nonNil(unmatched),
					})
				}
				printUnmatched(cmd, "providers", unmatched)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d provider(s)\n", capitalize(verb)+"d", len(selection)-len(unmatched))
				return nil
			})
		},
	}
}
