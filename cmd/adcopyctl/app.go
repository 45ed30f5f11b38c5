package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"adcopy/config"
	"adcopy/internal/infra/auth"
	logs "adcopy/internal/infra/log"
	"adcopy/internal/infra/persistence/postgres"
	"adcopy/internal/infra/storage"
	"adcopy/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const appTimeout = 30 * time.Second

type commandContext struct {
	jsonOutput bool
}

func (c *commandContext) printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// withComponents populates targets from the service graph and runs fn while
// the graph is started. Providers nobody asks for are never constructed, so
// a command that only needs the token service never dials the database.
func withComponents(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	opts := []fx.Option{
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewInterpretationCacheRepository,
			postgres.NewLandingPageCacheRepository,
			postgres.NewPromptTemplateRepository,
			auth.NewJWTService,
			storage.NewBucket,
			storage.NewTempDir,
			impl.NewInterpretationCache,
			impl.NewPromptTemplateService,
			impl.NewCleanupService,
		),
		fx.Populate(targets...),
	}

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build components")
	}

	startCtx, cancel := context.WithTimeout(ctx, appTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start components")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), appTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}
