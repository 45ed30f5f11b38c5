package impl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/service"
	mockRepo "adcopy/internal/mocks/repository"
	mockSvc "adcopy/internal/mocks/service"
	mockUsecase "adcopy/internal/mocks/usecase"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assetInterpreterFixtures struct {
	service     *assetInterpreterService
	cache       *mockUsecase.MockInterpretationCache
	files       *mockUsecase.MockCloudFileUsecase
	vision      *mockSvc.MockVisionAnalyzer
	audio       *mockSvc.MockAudioExtractor
	speech      *mockSvc.MockSpeechTranscriber
	objects     *mockSvc.MockObjectStore
	tempStore   *mockSvc.MockTempStore
	projectRepo *mockRepo.MockProjectRepository
	assetRepo   *mockRepo.MockAssetRepository
}

func createTestAssetInterpreter(t *testing.T) assetInterpreterFixtures {
	fx := assetInterpreterFixtures{
		cache:       mockUsecase.NewMockInterpretationCache(t),
		files:       mockUsecase.NewMockCloudFileUsecase(t),
		vision:      mockSvc.NewMockVisionAnalyzer(t),
		audio:       mockSvc.NewMockAudioExtractor(t),
		speech:      mockSvc.NewMockSpeechTranscriber(t),
		objects:     mockSvc.NewMockObjectStore(t),
		tempStore:   mockSvc.NewMockTempStore(t),
		projectRepo: mockRepo.NewMockProjectRepository(t),
		assetRepo:   mockRepo.NewMockAssetRepository(t),
	}

	svc := NewAssetInterpreter(AssetInterpreterParams{
		Cache:       fx.cache,
		Files:       fx.files,
		Vision:      fx.vision,
		Audio:       fx.audio,
		Speech:      fx.speech,
		Objects:     fx.objects,
		TempStore:   fx.tempStore,
		ProjectRepo: fx.projectRepo,
		AssetRepo:   fx.assetRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	fx.service = svc.(*assetInterpreterService)

	fx.tempStore.EXPECT().Remove(mock.AnythingOfType("string")).Return(nil).Maybe()

	return fx
}

func imageAsset(name string) *entity.Asset {
	return &entity.Asset{
		ID:           uuid.New(),
		RemoteFileID: "id:" + name,
		FileName:     name,
		FileType:     entity.FileTypeImage,
		MimeType:     "image/jpeg",
		RemotePath:   "/ads/" + name,
	}
}

func videoAsset(name string) *entity.Asset {
	return &entity.Asset{
		ID:           uuid.New(),
		RemoteFileID: "id:" + name,
		FileName:     name,
		FileType:     entity.FileTypeVideo,
		MimeType:     "video/mp4",
		RemotePath:   "/ads/" + name,
	}
}

func TestAssetInterpreter_InterpretAsset_FreshCacheHit(t *testing.T) {
	fx := createTestAssetInterpreter(t)

	ctx := context.Background()
	asset := imageAsset("hero.jpg")

	fx.cache.EXPECT().
		Get(ctx, asset.RemoteFileID).
		Return(&entity.InterpretationCacheEntry{
			RemoteFileID:     asset.RemoteFileID,
			Interpretation:   "A red sneaker on a white background.",
			ProcessingMethod: entity.ProcessingMethodVision,
			Metadata:         map[string]any{"confidence": 0.9},
			UpdatedAt:        time.Now().Add(-24 * time.Hour),
		}, nil)

	result := fx.service.InterpretAsset(ctx, uuid.New(), asset)
	assert.True(t, result.Success)
	assert.True(t, result.FromCache)
	assert.Equal(t, "A red sneaker on a white background.", result.Interpretation)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
}

func TestAssetInterpreter_InterpretAsset_StaleCacheIsReprocessed(t *testing.T) {
	fx := createTestAssetInterpreter(t)

	ctx := context.Background()
	userID := uuid.New()
	asset := imageAsset("hero.jpg")
	data := []byte("jpeg")

	fx.cache.EXPECT().
		Get(ctx, asset.RemoteFileID).
		Return(&entity.InterpretationCacheEntry{
			Interpretation: "old",
			UpdatedAt:      time.Now().Add(-31 * 24 * time.Hour),
		}, nil)
	fx.files.EXPECT().
		DownloadFile(ctx, userID, asset.RemotePath).
		Return(&usecase.DownloadedFile{Data: data, TempPath: "/tmp/hero.jpg"}, nil)
	fx.vision.EXPECT().
		AnalyzeImage(ctx, data, "image/jpeg", visionPrompt).
		Return("  A blue sneaker.  ", nil)
	fx.cache.EXPECT().
		Put(ctx, mock.MatchedBy(func(in *usecase.PutInterpretationInput) bool {
			return in.RemoteFileID == asset.RemoteFileID &&
				in.Interpretation == "A blue sneaker." &&
				in.ProcessingMethod == entity.ProcessingMethodVision
		})).
		Return(&entity.InterpretationCacheEntry{}, nil)

	result := fx.service.InterpretAsset(ctx, userID, asset)
	require.True(t, result.Success, result.Error)
	assert.False(t, result.FromCache)
	assert.Equal(t, "A blue sneaker.", result.Interpretation)
	fx.tempStore.AssertCalled(t, "Remove", "/tmp/hero.jpg")
}

func TestAssetInterpreter_InterpretAssets_KeepsOrderAndContinues(t *testing.T) {
	fx := createTestAssetInterpreter(t)

	ctx := context.Background()
	userID := uuid.New()
	a, b, c := imageAsset("a.jpg"), imageAsset("b.jpg"), imageAsset("c.jpg")

	fx.cache.EXPECT().Get(ctx, mock.AnythingOfType("string")).Return(nil, nil)
	fx.files.EXPECT().
		DownloadFile(ctx, userID, b.RemotePath).
		Return(nil, errors.New("409 path/not_found"))
	for _, asset := range []*entity.Asset{a, c} {
		fx.files.EXPECT().
			DownloadFile(ctx, userID, asset.RemotePath).
			Return(&usecase.DownloadedFile{Data: []byte(asset.FileName), TempPath: "/tmp/" + asset.FileName}, nil)
		fx.vision.EXPECT().
			AnalyzeImage(ctx, []byte(asset.FileName), "image/jpeg", visionPrompt).
			Return("description of "+asset.FileName, nil)
	}
	fx.cache.EXPECT().
		Put(ctx, mock.AnythingOfType("*usecase.PutInterpretationInput")).
		Return(&entity.InterpretationCacheEntry{}, nil).
		Times(2)

	results := fx.service.InterpretAssets(ctx, userID, []*entity.Asset{a, b, c})
	require.Len(t, results, 3)

	assert.Equal(t, a.ID, results[0].AssetID)
	assert.True(t, results[0].Success)

	assert.Equal(t, b.ID, results[1].AssetID)
	assert.False(t, results[1].Success)
	assert.Equal(t, usecase.StageDownload, results[1].Stage)
	assert.Contains(t, results[1].Error, "path/not_found")

	assert.Equal(t, c.ID, results[2].AssetID)
	assert.True(t, results[2].Success)
	assert.Equal(t, "description of c.jpg", results[2].Interpretation)
}

func TestAssetInterpreter_InterpretAsset_SilentVideo(t *testing.T) {
	fx := createTestAssetInterpreter(t)

	ctx := context.Background()
	userID := uuid.New()
	asset := videoAsset("promo.mp4")
	wavPath := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(wavPath, []byte("RIFF"), 0o600))

	fx.cache.EXPECT().Get(ctx, asset.RemoteFileID).Return(nil, nil)
	fx.files.EXPECT().
		DownloadFile(ctx, userID, asset.RemotePath).
		Return(&usecase.DownloadedFile{Data: []byte("mp4"), TempPath: "/tmp/promo.mp4"}, nil)
	fx.tempStore.EXPECT().NewPath(".wav").Return(wavPath, nil)
	fx.audio.EXPECT().ExtractAudio(ctx, "/tmp/promo.mp4", wavPath).Return(nil)
	fx.audio.EXPECT().ProbeDuration(ctx, wavPath).Return(12*time.Second, nil)
	fx.speech.EXPECT().
		Recognize(ctx, []byte("RIFF")).
		Return(&service.Transcript{}, nil)
	fx.cache.EXPECT().
		Put(ctx, mock.MatchedBy(func(in *usecase.PutInterpretationInput) bool {
			return in.ProcessingMethod == entity.ProcessingMethodSpeechToText &&
				in.Metadata["duration_seconds"] == 12.0
		})).
		Return(&entity.InterpretationCacheEntry{}, nil)

	result := fx.service.InterpretAsset(ctx, userID, asset)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Interpretation, "promo.mp4")
	assert.Contains(t, result.Interpretation, "12.0 seconds")
	assert.InDelta(t, 12.0, result.DurationSeconds, 1e-9)
	fx.tempStore.AssertCalled(t, "Remove", wavPath)
	fx.tempStore.AssertCalled(t, "Remove", "/tmp/promo.mp4")
}

func TestAssetInterpreter_InterpretAsset_LongVideoUsesBucket(t *testing.T) {
	fx := createTestAssetInterpreter(t)
	fx.service.newObjectKey = func(prefix string) string { return prefix + "fixed.wav" }

	ctx := context.Background()
	userID := uuid.New()
	asset := videoAsset("webinar.mov")
	wavPath := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(wavPath, []byte("RIFF-long"), 0o600))

	fx.cache.EXPECT().Get(ctx, asset.RemoteFileID).Return(nil, nil)
	fx.files.EXPECT().
		DownloadFile(ctx, userID, asset.RemotePath).
		Return(&usecase.DownloadedFile{Data: []byte("mov"), TempPath: "/tmp/webinar.mov"}, nil)
	fx.tempStore.EXPECT().NewPath(".wav").Return(wavPath, nil)
	fx.audio.EXPECT().ExtractAudio(ctx, "/tmp/webinar.mov", wavPath).Return(nil)
	fx.audio.EXPECT().ProbeDuration(ctx, wavPath).Return(90*time.Second, nil)
	fx.objects.EXPECT().
		Upload(ctx, "audio/fixed.wav", []byte("RIFF-long"), "audio/wav").
		Return("gs://adcopy-audio/audio/fixed.wav", nil)
	fx.speech.EXPECT().
		LongRunningRecognize(ctx, "gs://adcopy-audio/audio/fixed.wav").
		Return(&service.Transcript{Segments: []service.TranscriptSegment{
			{Text: "Welcome to the launch.", Confidence: 0.8},
			{Text: "Sign up today.", Confidence: 0.6},
		}}, nil)
	fx.objects.EXPECT().Delete(mock.Anything, "audio/fixed.wav").Return(nil).Once()
	fx.cache.EXPECT().
		Put(ctx, mock.AnythingOfType("*usecase.PutInterpretationInput")).
		Return(&entity.InterpretationCacheEntry{}, nil)

	result := fx.service.InterpretAsset(ctx, userID, asset)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Interpretation, "Welcome to the launch. Sign up today.")
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
}

func TestAssetInterpreter_InterpretAsset_TranscriptionFailureStillDeletesUpload(t *testing.T) {
	fx := createTestAssetInterpreter(t)
	fx.service.newObjectKey = func(prefix string) string { return prefix + "fixed.wav" }

	ctx := context.Background()
	userID := uuid.New()
	asset := videoAsset("webinar.mov")
	wavPath := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(wavPath, []byte("RIFF-long"), 0o600))

	fx.cache.EXPECT().Get(ctx, asset.RemoteFileID).Return(nil, nil)
	fx.files.EXPECT().
		DownloadFile(ctx, userID, asset.RemotePath).
		Return(&usecase.DownloadedFile{Data: []byte("mov"), TempPath: "/tmp/webinar.mov"}, nil)
	fx.tempStore.EXPECT().NewPath(".wav").Return(wavPath, nil)
	fx.audio.EXPECT().ExtractAudio(ctx, "/tmp/webinar.mov", wavPath).Return(nil)
	fx.audio.EXPECT().ProbeDuration(ctx, wavPath).Return(2*time.Minute, nil)
	fx.objects.EXPECT().
		Upload(ctx, "audio/fixed.wav", []byte("RIFF-long"), "audio/wav").
		Return("gs://adcopy-audio/audio/fixed.wav", nil)
	fx.speech.EXPECT().
		LongRunningRecognize(ctx, "gs://adcopy-audio/audio/fixed.wav").
		Return(nil, errors.New("quota exceeded"))
	fx.objects.EXPECT().Delete(mock.Anything, "audio/fixed.wav").Return(nil).Once()

	result := fx.service.InterpretAsset(ctx, userID, asset)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.StageTranscribe, result.Stage)
	assert.Contains(t, result.Error, "quota exceeded")
}

func TestAssetInterpreter_InterpretAsset_CacheWriteFailure(t *testing.T) {
	fx := createTestAssetInterpreter(t)

	ctx := context.Background()
	userID := uuid.New()
	asset := imageAsset("hero.jpg")

	fx.cache.EXPECT().Get(ctx, asset.RemoteFileID).Return(nil, nil)
	fx.files.EXPECT().
		DownloadFile(ctx, userID, asset.RemotePath).
		Return(&usecase.DownloadedFile{Data: []byte("jpeg"), TempPath: "/tmp/hero.jpg"}, nil)
	fx.vision.EXPECT().
		AnalyzeImage(ctx, []byte("jpeg"), "image/jpeg", visionPrompt).
		Return("A sneaker.", nil)
	fx.cache.EXPECT().
		Put(ctx, mock.AnythingOfType("*usecase.PutInterpretationInput")).
		Return(nil, errors.New("connection reset"))

	result := fx.service.InterpretAsset(ctx, userID, asset)
	assert.False(t, result.Success)
	assert.Equal(t, usecase.StageCache, result.Stage)
}

func TestAssetInterpreter_InterpretProjectAssets_Forbidden(t *testing.T) {
	fx := createTestAssetInterpreter(t)

	ctx := context.Background()
	projectID := uuid.New()

	fx.projectRepo.EXPECT().
		FindProjectByID(ctx, projectID).
		Return(&entity.Project{ID: projectID, UserID: uuid.New()}, nil)

	_, err := fx.service.InterpretProjectAssets(ctx, uuid.New(), projectID)
	require.Error(t, err)
}
