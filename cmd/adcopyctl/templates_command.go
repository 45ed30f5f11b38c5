package main

import (
	"context"
	"fmt"
	"strconv"

	"adcopy/internal/domain/entity"
	"adcopy/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newTemplatesCommand(ctx *commandContext) *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage default prompt templates",
	}

	templatesCmd.AddCommand(newTemplatesSeedCommand(ctx))

	return templatesCmd
}

var platforms = []entity.Platform{
	entity.PlatformFacebook,
	entity.PlatformGoogle,
	entity.PlatformTikTok,
}

type seedResult struct {
	Created   int                      `json:"created"`
	Templates []*entity.PromptTemplate `json:"templates"`
}

func newTemplatesSeedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create any missing default templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			var templates usecase.PromptTemplateUsecase
			return withComponents(cmd.Context(), func(c context.Context) error {
				created, err := templates.SeedDefaults(c)
				if err != nil {
					return err
				}

				defaults := make([]*entity.PromptTemplate, 0, len(platforms))
				for _, platform := range platforms {
					tmpl, err := templates.GetDefaultTemplate(c, platform, entity.PromptTypeAdCopy)
					if err != nil {
						return err
					}
					defaults = append(defaults, tmpl)
				}

				out := cmd.OutOrStdout()
				if ctx.jsonOutput {
					return ctx.printJSON(out, seedResult{Created: created, Templates: defaults})
				}

				rows := make([][]string, 0, len(defaults))
				for _, tmpl := range defaults {
					rows = append(rows, []string{
						string(tmpl.Template.Platform),
						tmpl.Name,
						strconv.Itoa(len(tmpl.Template.Sections)),
						humanize.Time(tmpl.UpdatedAt),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Platform", "Name", "Sections", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				fmt.Fprintf(out, "%d default templates created\n", created)
				return nil
			}, &templates)
		},
	}
}
