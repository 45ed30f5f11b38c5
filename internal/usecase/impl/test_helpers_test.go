package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"adcopy/config"
	"adcopy/internal/domain/repository"
	mockRepo "adcopy/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Gemini: &config.GeminiConfig{
			TextModel:       "gemini-test",
			Temperature:     0.8,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
		Storage: &config.StorageConfig{
			AudioPrefix: "audio/",
		},
		Scraper: &config.ScraperConfig{},
		Cache: &config.CacheConfig{
			InterpretationTTL:   30 * 24 * time.Hour,
			InterpretationGCTTL: 90 * 24 * time.Hour,
			LandingPageTTL:      7 * 24 * time.Hour,
		},
		Cleanup: &config.CleanupConfig{
			MaxAge: time.Hour,
		},
	}
}

// runInTx makes the mocked transaction manager call fn with factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
