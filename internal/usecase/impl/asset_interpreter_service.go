package impl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"adcopy/config"
	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/repository"
	"adcopy/internal/domain/service"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Clips shorter than this are transcribed inline.
	syncTranscriptionLimit = 60 * time.Second

	// The vision API reports no confidence of its own.
	visionConfidence = 0.9

	visionPrompt = `Analyze this advertising image and describe, in plain prose:
1. The main visual elements, products and people shown.
2. Brand cues such as logos, colors and typography.
3. Any text visible in the image, quoted exactly.
4. The overall tone and mood.
5. The likely target audience.
6. Any call to action, explicit or implied.
Be concrete. This description will be used to write ad copy.`
)

type assetInterpreterService struct {
	cache        usecase.InterpretationCache
	files        usecase.CloudFileUsecase
	vision       service.VisionAnalyzer
	audio        service.AudioExtractor
	speech       service.SpeechTranscriber
	objects      service.ObjectStore
	tempStore    service.TempStore
	projectRepo  repository.ProjectRepository
	assetRepo    repository.AssetRepository
	freshFor     time.Duration
	audioPrefix  string
	logger       *slog.Logger
	now          func() time.Time
	newObjectKey func(prefix string) string
}

// AssetInterpreterParams holds dependencies for the asset interpreter, injected by Fx.
type AssetInterpreterParams struct {
	fx.In

	Cache       usecase.InterpretationCache
	Files       usecase.CloudFileUsecase
	Vision      service.VisionAnalyzer
	Audio       service.AudioExtractor
	Speech      service.SpeechTranscriber
	Objects     service.ObjectStore
	TempStore   service.TempStore
	ProjectRepo repository.ProjectRepository
	AssetRepo   repository.AssetRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAssetInterpreter creates the asset interpreter.
func NewAssetInterpreter(params AssetInterpreterParams) usecase.AssetInterpreter {
	return &assetInterpreterService{
		cache:       params.Cache,
		files:       params.Files,
		vision:      params.Vision,
		audio:       params.Audio,
		speech:      params.Speech,
		objects:     params.Objects,
		tempStore:   params.TempStore,
		projectRepo: params.ProjectRepo,
		assetRepo:   params.AssetRepo,
		freshFor:    params.Config.Cache.InterpretationTTL,
		audioPrefix: params.Config.Storage.AudioPrefix,
		logger:      params.Logger,
		now:         time.Now,
		newObjectKey: func(prefix string) string {
			return prefix + uuid.NewString() + ".wav"
		},
	}
}

func (s *assetInterpreterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// interpretation is what a successful vision or speech path produces.
type interpretation struct {
	text       string
	method     entity.ProcessingMethod
	confidence float64
	duration   time.Duration
}

// stageError tags an error with the pipeline stage it came from.
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string { return e.stage + ": " + e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

func failAt(stage string, err error) error {
	return &stageError{stage: stage, err: err}
}

func (s *assetInterpreterService) InterpretAsset(ctx context.Context, userID uuid.UUID, asset *entity.Asset) *usecase.InterpretationResult {
	result := &usecase.InterpretationResult{
		AssetID:      asset.ID,
		RemoteFileID: asset.RemoteFileID,
		FileName:     asset.FileName,
		FileType:     asset.FileType,
	}

	cached, err := s.cache.Get(ctx, asset.RemoteFileID)
	if err != nil {
		s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Interpretation cache lookup failed",
			slog.String("remote_file_id", asset.RemoteFileID),
			slog.Any("error", err),
		)
	}
	if cached != nil && cached.IsFresh(s.now(), s.freshFor) {
		result.Success = true
		result.FromCache = true
		result.Interpretation = cached.Interpretation
		result.ProcessingMethod = cached.ProcessingMethod
		result.Confidence = metadataFloat(cached.Metadata, "confidence")
		result.DurationSeconds = metadataFloat(cached.Metadata, "duration_seconds")

		return result
	}

	interp, err := s.interpret(ctx, userID, asset)
	if err != nil {
		return s.fail(ctx, result, err)
	}

	metadata := map[string]any{
		"file_name":  asset.FileName,
		"mime_type":  asset.MimeType,
		"confidence": interp.confidence,
	}
	if asset.FileType == entity.FileTypeVideo {
		metadata["duration_seconds"] = interp.duration.Seconds()
	}

	_, err = s.cache.Put(ctx, &usecase.PutInterpretationInput{
		RemoteFileID:     asset.RemoteFileID,
		FileType:         asset.FileType,
		Interpretation:   interp.text,
		ProcessingMethod: interp.method,
		Metadata:         metadata,
	})
	if err != nil {
		return s.fail(ctx, result, failAt(usecase.StageCache, err))
	}

	result.Success = true
	result.Interpretation = interp.text
	result.ProcessingMethod = interp.method
	result.Confidence = interp.confidence
	result.DurationSeconds = interp.duration.Seconds()

	return result
}

func (s *assetInterpreterService) fail(ctx context.Context, result *usecase.InterpretationResult, err error) *usecase.InterpretationResult {
	var se *stageError
	if errors.As(err, &se) {
		result.Stage = se.stage
		err = se.err
	}
	result.Error = err.Error()

	s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Asset interpretation failed",
		slog.String("asset_id", result.AssetID.String()),
		slog.String("file_name", result.FileName),
		slog.String("stage", result.Stage),
		slog.Any("error", err),
	)

	return result
}

func (s *assetInterpreterService) interpret(ctx context.Context, userID uuid.UUID, asset *entity.Asset) (*interpretation, error) {
	switch asset.FileType {
	case entity.FileTypeImage:
		return s.interpretImage(ctx, userID, asset)
	case entity.FileTypeVideo:
		return s.interpretVideo(ctx, userID, asset)
	default:
		return nil, failAt(usecase.StageClassify, errors.Errorf("unsupported file type %q", asset.FileType))
	}
}

func (s *assetInterpreterService) interpretImage(ctx context.Context, userID uuid.UUID, asset *entity.Asset) (*interpretation, error) {
	file, err := s.files.DownloadFile(ctx, userID, asset.RemotePath)
	if err != nil {
		return nil, failAt(usecase.StageDownload, err)
	}
	defer s.removeTemp(ctx, file.TempPath)

	mimeType := asset.MimeType
	if mimeType == "" {
		mimeType = entity.MimeTypeFromName(asset.FileName)
	}

	text, err := s.vision.AnalyzeImage(ctx, file.Data, mimeType, visionPrompt)
	if err != nil {
		return nil, failAt(usecase.StageVision, err)
	}

	return &interpretation{
		text:       strings.TrimSpace(text),
		method:     entity.ProcessingMethodVision,
		confidence: visionConfidence,
	}, nil
}

func (s *assetInterpreterService) interpretVideo(ctx context.Context, userID uuid.UUID, asset *entity.Asset) (*interpretation, error) {
	file, err := s.files.DownloadFile(ctx, userID, asset.RemotePath)
	if err != nil {
		return nil, failAt(usecase.StageDownload, err)
	}
	defer s.removeTemp(ctx, file.TempPath)

	wavPath, err := s.tempStore.NewPath(".wav")
	if err != nil {
		return nil, failAt(usecase.StageExtractAudio, err)
	}
	defer s.removeTemp(ctx, wavPath)

	if err := s.audio.ExtractAudio(ctx, file.TempPath, wavPath); err != nil {
		return nil, failAt(usecase.StageExtractAudio, err)
	}

	duration, err := s.audio.ProbeDuration(ctx, wavPath)
	if err != nil {
		return nil, failAt(usecase.StageExtractAudio, err)
	}

	result := &interpretation{
		method:   entity.ProcessingMethodSpeechToText,
		duration: duration,
	}
	if duration <= 0 {
		result.text = noSpeechInterpretation(asset.FileName, duration)

		return result, nil
	}

	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, failAt(usecase.StageExtractAudio, errors.Wrap(err, "failed to read extracted audio"))
	}

	transcript, err := s.transcribe(ctx, audio, duration)
	if err != nil {
		return nil, failAt(usecase.StageTranscribe, err)
	}

	text := transcript.Text()
	if text == "" {
		result.text = noSpeechInterpretation(asset.FileName, duration)

		return result, nil
	}

	result.text = fmt.Sprintf("Video %q (%.1f seconds) transcript: %s", asset.FileName, duration.Seconds(), text)
	result.confidence = transcript.AverageConfidence()

	return result, nil
}

// transcribe sends short clips inline. Longer clips go through the bucket,
// and the uploaded object is deleted whatever the outcome.
func (s *assetInterpreterService) transcribe(ctx context.Context, audio []byte, duration time.Duration) (*service.Transcript, error) {
	if duration < syncTranscriptionLimit {
		return s.speech.Recognize(ctx, audio)
	}

	key := s.newObjectKey(s.audioPrefix)
	uri, err := s.objects.Upload(ctx, key, audio, "audio/wav")
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload audio")
	}
	defer func() {
		if err := s.objects.Delete(context.WithoutCancel(ctx), key); err != nil {
			s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Failed to delete uploaded audio",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}()

	return s.speech.LongRunningRecognize(ctx, uri)
}

func (s *assetInterpreterService) removeTemp(ctx context.Context, path string) {
	if err := s.tempStore.Remove(path); err != nil {
		s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Failed to remove temp file",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}

func noSpeechInterpretation(fileName string, duration time.Duration) string {
	return fmt.Sprintf("Video %q (%.1f seconds) contains no detectable speech. "+
		"Describe it from its visuals and the landing page instead.", fileName, duration.Seconds())
}

func (s *assetInterpreterService) InterpretAssets(ctx context.Context, userID uuid.UUID, assets []*entity.Asset) []*usecase.InterpretationResult {
	outcomes := processSequentially(ctx, assets, 0,
		func(ctx context.Context, asset *entity.Asset) (*usecase.InterpretationResult, error) {
			return s.InterpretAsset(ctx, userID, asset), nil
		})

	results := make([]*usecase.InterpretationResult, len(outcomes))
	for i, outcome := range outcomes {
		results[i] = outcome.Value
		if outcome.Err != nil {
			results[i] = s.fail(ctx, &usecase.InterpretationResult{
				AssetID:      assets[i].ID,
				RemoteFileID: assets[i].RemoteFileID,
				FileName:     assets[i].FileName,
				FileType:     assets[i].FileType,
			}, outcome.Err)
		}
	}

	return results
}

func (s *assetInterpreterService) InterpretProjectAssets(ctx context.Context, userID, projectID uuid.UUID) ([]*usecase.InterpretationResult, error) {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.FindAssetsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find project assets")
	}

	results := s.InterpretAssets(ctx, userID, assets)

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Interpreted project assets",
		slog.String("project_id", projectID.String()),
		slog.Int("total", len(results)),
		slog.Int("succeeded", succeeded),
	)

	return results, nil
}

// metadataFloat reads a number from a JSON-decoded metadata map.
func metadataFloat(metadata map[string]any, key string) float64 {
	switch v := metadata[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}

	return 0
}
