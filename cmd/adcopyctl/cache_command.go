package main

import (
	"context"
	"fmt"

	"adcopy/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the interpretation and landing page caches",
	}

	cacheCmd.AddCommand(newCachePruneCommand(ctx))

	return cacheCmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete expired cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cleanup usecase.CleanupUsecase
			return withComponents(cmd.Context(), func(c context.Context) error {
				report, err := cleanup.PruneCaches(c)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.jsonOutput {
					return ctx.printJSON(out, report)
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Cache", "Deleted"},
					[][]string{
						{"interpretations", humanize.Comma(report.InterpretationsDeleted)},
						{"landing pages", humanize.Comma(report.LandingPagesDeleted)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			}, &cleanup)
		},
	}
}
