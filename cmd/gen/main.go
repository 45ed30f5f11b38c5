// Command gen writes type-safe gorm/gen query helpers for the persistence
// models into internal/infra/persistence/postgres/query.
package main

import (
	"adcopy/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CredentialModel{},
		model.ProjectModel{},
		model.AssetModel{},
		model.InterpretationCacheModel{},
		model.LandingPageCacheModel{},
		model.PromptTemplateModel{},
		model.GenerationModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
