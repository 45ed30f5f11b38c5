package main

import (
	"context"
	"log/slog"
	"os"

	"adcopy/config"
	"adcopy/internal/delivery"
	"adcopy/internal/delivery/worker"
	"adcopy/internal/delivery/worker/handler"
	"adcopy/internal/domain/service"
	"adcopy/internal/infra/gemini"
	logs "adcopy/internal/infra/log"
	"adcopy/internal/infra/persistence/postgres"
	"adcopy/internal/infra/pubsub"
	"adcopy/internal/infra/scraper"
	"adcopy/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProjectRepository,
			postgres.NewAssetRepository,
			postgres.NewInterpretationCacheRepository,
			postgres.NewLandingPageCacheRepository,
			postgres.NewPromptTemplateRepository,
			postgres.NewGenerationRepository,
			postgres.NewTransactionManager,
		),
	)
}

// The worker only generates; asset interpretation stays in the API process.
func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				gemini.NewClient,
				fx.As(new(service.TextGenerator)),
			),
			scraper.NewStaticFetcher,
			scraper.NewBrowserRenderer,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInterpretationCache,
			impl.NewScraperService,
			impl.NewPromptTemplateService,
			impl.NewAdCopyService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
