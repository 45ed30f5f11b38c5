package main

import (
	"context"
	"log/slog"
	"os"

	"adcopy/config"
	"adcopy/internal/delivery"
	"adcopy/internal/delivery/http"
	"adcopy/internal/delivery/http/middleware"
	"adcopy/internal/delivery/http/router/handler"
	"adcopy/internal/delivery/scheduler"
	"adcopy/internal/domain/service"
	"adcopy/internal/infra/auth"
	"adcopy/internal/infra/dropbox"
	"adcopy/internal/infra/gemini"
	logs "adcopy/internal/infra/log"
	"adcopy/internal/infra/media"
	"adcopy/internal/infra/persistence/postgres"
	"adcopy/internal/infra/pubsub"
	"adcopy/internal/infra/scraper"
	"adcopy/internal/infra/speech"
	"adcopy/internal/infra/storage"
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
		injectMiddleware(),
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
			postgres.NewCredentialRepository,
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

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			dropbox.NewClient,
			dropbox.NewOAuthProvider,
			fx.Annotate(
				gemini.NewClient,
				fx.As(new(service.VisionAnalyzer)),
				fx.As(new(service.TextGenerator)),
			),
			speech.NewClient,
			media.NewFFmpeg,
			storage.NewBucket,
			storage.NewTempDir,
			scraper.NewStaticFetcher,
			scraper.NewBrowserRenderer,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewCloudFileService,
			impl.NewInterpretationCache,
			impl.NewAssetInterpreter,
			impl.NewScraperService,
			impl.NewPromptTemplateService,
			impl.NewProjectService,
			impl.NewAdCopyService,
			impl.NewCleanupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCloudHandler,
			handler.NewProjectHandler,
			handler.NewGenerationHandler,
			handler.NewScrapeHandler,
			handler.NewTemplateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
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

				// Run every OnStop hook before exiting.
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
