package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subdesk/internal/pathres"
)

func newPathCommand(ctx *commandContext) *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Path resolution and folder health diagnostics",
	}

	pathCmd.AddCommand(newPathResolveCommand(ctx))
	pathCmd.AddCommand(newPathClassifyCommand(ctx))

	return pathCmd
}

func newPathResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "resolve <relative> <reference-dir>",
		Short:       "Resolve a relative folder against a reference directory",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, ok, err := pathres.Resolve(args[0], args[1])
			if err != nil {
				return err
			}
			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{
					"relative":  args[0],
					"reference": args[1],
					"resolved":  resolved,
					"ok":        ok,
				})
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "unresolvable")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
}

type classifiedPath struct {
	Path   string `json:"path"`
	Health string `json:"health"`
}

func newPathClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <path>...",
		Short: "Classify folders as OK, NonExistant, or ReadOnly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			rctx := ctx.requestContext(cmd)
			pass := ctx.newClassifier(cfg, logger).NewPass()

			results := make([]classifiedPath, 0, len(args))
			for _, path := range args {
				results = append(results, classifiedPath{Path: path, Health: pass.Classify(rctx, path).String()})
			}
			if ctx.JSONMode() {
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Path, r.Health})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Path", "Health"}, rows, nil))
			return nil
		},
	}
}
