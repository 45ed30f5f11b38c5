package impl

import (
	"context"
	"testing"
	"time"

	"adcopy/internal/domain/service"
	mockRepo "adcopy/internal/mocks/repository"
	mockSvc "adcopy/internal/mocks/service"
	mockUsecase "adcopy/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cleanupServiceFixtures struct {
	service     *cleanupService
	tempStore   *mockSvc.MockTempStore
	objects     *mockSvc.MockObjectStore
	cache       *mockUsecase.MockInterpretationCache
	landingRepo *mockRepo.MockLandingPageCacheRepository
	now         time.Time
}

func createTestCleanupService(t *testing.T) cleanupServiceFixtures {
	fx := cleanupServiceFixtures{
		tempStore:   mockSvc.NewMockTempStore(t),
		objects:     mockSvc.NewMockObjectStore(t),
		cache:       mockUsecase.NewMockInterpretationCache(t),
		landingRepo: mockRepo.NewMockLandingPageCacheRepository(t),
		now:         time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	fx.service = NewCleanupService(CleanupServiceParams{
		TempStore:   fx.tempStore,
		Objects:     fx.objects,
		Cache:       fx.cache,
		LandingRepo: fx.landingRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*cleanupService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func TestCleanupService_ScanTempFiles(t *testing.T) {
	fx := createTestCleanupService(t)

	fx.tempStore.EXPECT().List().Return([]service.TempFileInfo{
		{Path: "/tmp/adcopy/old.mp4", ModTime: fx.now.Add(-2 * time.Hour)},
		{Path: "/tmp/adcopy/new.wav", ModTime: fx.now.Add(-10 * time.Minute)},
		{Path: "/tmp/adcopy/edge.jpg", ModTime: fx.now.Add(-time.Hour)},
	}, nil)

	stale, err := fx.service.ScanTempFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/adcopy/old.mp4"}, stale)
}

func TestCleanupService_ScanObjects_SkipsUnknownCreationTime(t *testing.T) {
	fx := createTestCleanupService(t)

	ctx := context.Background()
	old := fx.now.Add(-3 * time.Hour)
	recent := fx.now.Add(-time.Minute)

	fx.objects.EXPECT().List(ctx, "audio/").Return([]service.ObjectInfo{
		{Key: "audio/old.wav", CreatedAt: &old},
		{Key: "audio/recent.wav", CreatedAt: &recent},
		{Key: "audio/unknown.wav"},
	}, nil)

	stale, err := fx.service.ScanObjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"audio/old.wav"}, stale)
}

func TestCleanupService_PerformCleanup_CollectsPerItemFailures(t *testing.T) {
	fx := createTestCleanupService(t)

	ctx := context.Background()
	old := fx.now.Add(-3 * time.Hour)

	fx.tempStore.EXPECT().List().Return([]service.TempFileInfo{
		{Path: "/tmp/adcopy/a.mp4", ModTime: old},
		{Path: "/tmp/adcopy/b.mp4", ModTime: old},
	}, nil)
	fx.tempStore.EXPECT().Remove("/tmp/adcopy/a.mp4").Return(errors.New("permission denied"))
	fx.tempStore.EXPECT().Remove("/tmp/adcopy/b.mp4").Return(nil)
	fx.objects.EXPECT().List(ctx, "audio/").Return([]service.ObjectInfo{{Key: "audio/x.wav", CreatedAt: &old}}, nil)
	fx.objects.EXPECT().Delete(ctx, "audio/x.wav").Return(nil)

	report := fx.service.PerformCleanup(ctx)

	assert.Equal(t, 2, report.TempFiles.Scanned)
	assert.Equal(t, 1, report.TempFiles.Deleted)
	assert.Equal(t, 1, report.TempFiles.Failed)
	assert.False(t, report.TempFiles.Outcomes[0].Deleted)
	assert.Contains(t, report.TempFiles.Outcomes[0].Error, "permission denied")
	assert.True(t, report.TempFiles.Outcomes[1].Deleted)

	assert.Equal(t, 1, report.Objects.Deleted)
	assert.Empty(t, report.Objects.ScanErr)
}

func TestCleanupService_PerformCleanup_ScanErrorDoesNotStopOtherDomain(t *testing.T) {
	fx := createTestCleanupService(t)

	ctx := context.Background()

	fx.tempStore.EXPECT().List().Return(nil, errors.New("read dir failed"))
	fx.objects.EXPECT().List(ctx, "audio/").Return([]service.ObjectInfo{}, nil)

	report := fx.service.PerformCleanup(ctx)
	assert.Contains(t, report.TempFiles.ScanErr, "read dir failed")
	assert.Empty(t, report.Objects.ScanErr)
	assert.Zero(t, report.Objects.Scanned)
}

func TestCleanupService_PruneCaches(t *testing.T) {
	fx := createTestCleanupService(t)

	ctx := context.Background()

	fx.cache.EXPECT().DeleteOldEntries(ctx, 90*24*time.Hour).Return(int64(4), nil)
	fx.landingRepo.EXPECT().DeleteCreatedBefore(ctx, fx.now.Add(-7*24*time.Hour)).Return(int64(2), nil)

	report, err := fx.service.PruneCaches(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.InterpretationsDeleted)
	assert.Equal(t, int64(2), report.LandingPagesDeleted)
}
