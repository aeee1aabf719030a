package main

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"subdesk/internal/language"
	"subdesk/internal/settings"
	"subdesk/internal/subsettings"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "Inspect and select subtitle languages",
	}

	languagesCmd.AddCommand(newLanguagesListCommand(ctx))
	languagesCmd.AddCommand(newLanguagesToggleCommand(ctx, "enable", true))
	languagesCmd.AddCommand(newLanguagesToggleCommand(ctx, "disable", false))
	languagesCmd.AddCommand(newLanguagesPriorityCommand(ctx))

	return languagesCmd
}

func newLanguagesListCommand(ctx *commandContext) *cobra.Command {
	var selectedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported languages in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				if selectedOnly {
					return printSelectedLanguages(rctx, cmd, ctx, svc)
				}
				languages, err := svc.ReconcileLanguages(rctx)
				if err != nil {
					return err
				}
				if ctx.JSONMode() {
					if languages == nil {
						languages = []settings.Language{}
					}
					return writeJSON(cmd, languages)
				}
				rows := make([][]string, 0, len(languages))
				for i, l := range languages {
					rows = append(rows, []string{fmt.Sprint(i + 1), l.Code, l.Name, yesNo(l.Enabled)})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Code", "Name", "Enabled"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&selectedOnly, "selected", false, "Show only the enabled languages")
	return cmd
}

func printSelectedLanguages(rctx context.Context, cmd *cobra.Command, ctx *commandContext, svc *subsettings.Service) error {
	codes, err := svc.SelectedLanguageCodes(rctx)
	if err != nil {
		return err
	}
	names, err := svc.SelectedLanguageNames(rctx)
	if err != nil {
		return err
	}
	if ctx.JSONMode() {
		return writeJSON(cmd, map[string]any{"codes": nonNil(codes), "names": nonNil(names)})
	}
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No languages selected")
		return nil
	}
	fmt.Fprintln(out, strings.Join(names, ", "))
	return nil
}

func newLanguagesToggleCommand(ctx *commandContext, verb string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <code>...",
		Short: fmt.Sprintf("%s languages by code or name", capitalize(verb)),
		Long: fmt.Sprintf(`%s languages by code or name.

Codes may be ISO 639-1 ("de"), ISO 639-2 ("deu", "ger"), or the English
name ("german").`, capitalize(verb)),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				selection := make(map[string]bool, len(args))
				for _, code := range args {
					selection[code] = enabled
				}
				unmatched, err := svc.SetLanguageSelection(rctx, selection)
				if err != nil {
					return err
				}
				updated := len(language.NormalizeList(matchedKeys(args, unmatched)))
				if ctx.JSONMode() {
					return writeJSON(cmd, map[string]any{
						"updated":   updated,
						"unmatched": nonNil(unmatched),
					})
				}
				printUnmatched(cmd, "languages", describeLanguages(unmatched))
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d language(s)\n", capitalize(verb)+"d", updated)
				return nil
			})
		},
	}
}

func matchedKeys(args, unmatched []string) []string {
	var out []string
	for _, a := range args {
		if !slices.Contains(unmatched, a) {
			out = append(out, a)
		}
	}
	return out
}

// describeLanguages labels codes with their English name, e.g. "sw (Swahili)".
func describeLanguages(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, fmt.Sprintf("%s (%s)", c, language.DisplayName(c)))
	}
	return out
}

func newLanguagesPriorityCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <code>",
		Short: "Show the priority of a language (1 is highest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(rctx context.Context, svc *subsettings.Service) error {
				priority, err := svc.LanguagePriority(rctx, args[0])
				if err != nil {
					return err
				}
				found := priority != math.MaxInt
				if ctx.JSONMode() {
					result := map[string]any{"code": args[0], "found": found}
					if found {
						result["priority"] = priority
					}
					return writeJSON(cmd, result)
				}
				if !found {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not in the language list\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", args[0], priority)
				return nil
			})
		},
	}
}
