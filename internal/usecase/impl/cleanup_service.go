package impl

import (
	"context"
	"log/slog"
	"time"

	"adcopy/config"
	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/repository"
	"adcopy/internal/domain/service"
	"adcopy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCleanupMaxAge = time.Hour

type cleanupService struct {
	tempStore      service.TempStore
	objects        service.ObjectStore
	cache          usecase.InterpretationCache
	landingRepo    repository.LandingPageCacheRepository
	maxAge         time.Duration
	audioPrefix    string
	interpretGCTTL time.Duration
	landingTTL     time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// CleanupServiceParams holds dependencies for the cleanup monitor, injected by Fx.
type CleanupServiceParams struct {
	fx.In

	TempStore   service.TempStore
	Objects     service.ObjectStore
	Cache       usecase.InterpretationCache
	LandingRepo repository.LandingPageCacheRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCleanupService creates the cleanup monitor.
func NewCleanupService(params CleanupServiceParams) usecase.CleanupUsecase {
	maxAge := params.Config.Cleanup.MaxAge
	if maxAge <= 0 {
		maxAge = defaultCleanupMaxAge
	}

	return &cleanupService{
		tempStore:      params.TempStore,
		objects:        params.Objects,
		cache:          params.Cache,
		landingRepo:    params.LandingRepo,
		maxAge:         maxAge,
		audioPrefix:    params.Config.Storage.AudioPrefix,
		interpretGCTTL: params.Config.Cache.InterpretationGCTTL,
		landingTTL:     params.Config.Cache.LandingPageTTL,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *cleanupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *cleanupService) ScanTempFiles(ctx context.Context) ([]string, error) {
	files, err := s.tempStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list temp files")
	}

	cutoff := s.now().Add(-s.maxAge)
	stale := make([]string, 0, len(files))
	for _, f := range files {
		if f.ModTime.Before(cutoff) {
			stale = append(stale, f.Path)
		}
	}

	return stale, nil
}

func (s *cleanupService) ScanObjects(ctx context.Context) ([]string, error) {
	objects, err := s.objects.List(ctx, s.audioPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bucket objects")
	}

	cutoff := s.now().Add(-s.maxAge)
	stale := make([]string, 0, len(objects))
	for _, obj := range objects {
		if obj.CreatedAt == nil {
			continue
		}
		if obj.CreatedAt.Before(cutoff) {
			stale = append(stale, obj.Key)
		}
	}

	return stale, nil
}

func (s *cleanupService) CleanupTempFiles(ctx context.Context, paths []string) usecase.DeletionReport {
	return s.deleteAll(ctx, paths, func(_ context.Context, path string) error {
		return s.tempStore.Remove(path)
	})
}

func (s *cleanupService) CleanupObjects(ctx context.Context, keys []string) usecase.DeletionReport {
	return s.deleteAll(ctx, keys, s.objects.Delete)
}

func (s *cleanupService) deleteAll(ctx context.Context, targets []string, del func(context.Context, string) error) usecase.DeletionReport {
	report := usecase.DeletionReport{
		Scanned:  len(targets),
		Outcomes: make([]usecase.DeletionOutcome, 0, len(targets)),
	}

	results := processSequentially(ctx, targets, 0, func(ctx context.Context, target string) (struct{}, error) {
		return struct{}{}, del(ctx, target)
	})
	for i, r := range results {
		outcome := usecase.DeletionOutcome{Target: targets[i], Deleted: r.Err == nil}
		if r.Err != nil {
			outcome.Error = r.Err.Error()
			report.Failed++
			s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Cleanup delete failed",
				slog.String("target", targets[i]),
				slog.Any("error", r.Err),
			)
		} else {
			report.Deleted++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report
}

// PerformCleanup never fails as a whole: a scan error is recorded on its
// domain report and the other domain still runs.
func (s *cleanupService) PerformCleanup(ctx context.Context) *usecase.CleanupReport {
	report := &usecase.CleanupReport{StartedAt: s.now()}

	if paths, err := s.ScanTempFiles(ctx); err != nil {
		report.TempFiles = usecase.DeletionReport{Outcomes: []usecase.DeletionOutcome{}, ScanErr: err.Error()}
	} else {
		report.TempFiles = s.CleanupTempFiles(ctx, paths)
	}

	if keys, err := s.ScanObjects(ctx); err != nil {
		report.Objects = usecase.DeletionReport{Outcomes: []usecase.DeletionOutcome{}, ScanErr: err.Error()}
	} else {
		report.Objects = s.CleanupObjects(ctx, keys)
	}

	report.FinishedAt = s.now()

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Cleanup finished",
		slog.Int("temp_deleted", report.TempFiles.Deleted),
		slog.Int("temp_failed", report.TempFiles.Failed),
		slog.Int("objects_deleted", report.Objects.Deleted),
		slog.Int("objects_failed", report.Objects.Failed),
		slog.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)

	return report
}

func (s *cleanupService) PruneCaches(ctx context.Context) (*usecase.PruneReport, error) {
	interpretations, err := s.cache.DeleteOldEntries(ctx, s.interpretGCTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prune interpretation cache")
	}

	pages, err := s.landingRepo.DeleteCreatedBefore(ctx, s.now().Add(-s.landingTTL))
	if err != nil {
		return nil, errors.Wrap(err, "failed to prune landing page cache")
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Caches pruned",
		slog.Int64("interpretations", interpretations),
		slog.Int64("landing_pages", pages),
	)

	return &usecase.PruneReport{
		InterpretationsDeleted: interpretations,
		LandingPagesDeleted:    pages,
	}, nil
}
