package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"adcopy/config"
	mockUsecase "adcopy/internal/mocks/usecase"
	"adcopy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, cleanupCfg *config.CleanupConfig) (*Scheduler, *mockUsecase.MockCleanupUsecase, *fxtest.Lifecycle) {
	cleanup := mockUsecase.NewMockCleanupUsecase(t)
	lc := fxtest.NewLifecycle(t)

	s := New(Params{
		Lc:      lc,
		Cfg:     &config.Config{Cleanup: cleanupCfg},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Cleanup: cleanup,
	}).(*Scheduler)

	return s, cleanup, lc
}

func TestScheduler_RunsOnEveryTick(t *testing.T) {
	s, cleanup, lc := newTestScheduler(t, &config.CleanupConfig{Enabled: true, Interval: 10 * time.Millisecond})

	ticks := make(chan struct{}, 16)
	cleanup.EXPECT().PerformCleanup(mock.Anything).Return(&usecase.CleanupReport{})
	cleanup.EXPECT().PruneCaches(mock.Anything).RunAndReturn(func(context.Context) (*usecase.PruneReport, error) {
		ticks <- struct{}{}

		return nil, errors.New("database is locked")
	})

	lc.RequireStart()
	go func() { _ = s.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler did not tick")
		}
	}

	lc.RequireStop()
}

func TestScheduler_Disabled(t *testing.T) {
	s, cleanup, lc := newTestScheduler(t, nil)

	lc.RequireStart()
	require.NoError(t, s.Serve(context.Background()))
	lc.RequireStop()

	cleanup.AssertNotCalled(t, "PerformCleanup", mock.Anything)
}

func TestScheduler_RunOnce_ReportsScanErrors(t *testing.T) {
	s, cleanup, _ := newTestScheduler(t, &config.CleanupConfig{Enabled: true})

	ctx := context.Background()
	cleanup.EXPECT().PerformCleanup(ctx).Return(&usecase.CleanupReport{
		TempFiles: usecase.DeletionReport{ScanErr: "read dir failed"},
	})
	cleanup.EXPECT().PruneCaches(ctx).Return(&usecase.PruneReport{}, nil)

	s.RunOnce(ctx)

	assert.Equal(t, defaultInterval, s.interval)
}
