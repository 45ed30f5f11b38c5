package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	mockRepo "adcopy/internal/mocks/repository"
	mockSvc "adcopy/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scraperServiceFixtures struct {
	service     *scraperService
	landingRepo *mockRepo.MockLandingPageCacheRepository
	fetcher     *mockSvc.MockPageFetcher
	renderer    *mockSvc.MockPageRenderer
	now         time.Time
}

func createTestScraperService(t *testing.T) scraperServiceFixtures {
	landingRepo := mockRepo.NewMockLandingPageCacheRepository(t)
	fetcher := mockSvc.NewMockPageFetcher(t)
	renderer := mockSvc.NewMockPageRenderer(t)

	svc := NewScraperService(ScraperServiceParams{
		LandingRepo: landingRepo,
		Fetcher:     fetcher,
		Renderer:    renderer,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*scraperService)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := now
	svc.now = func() time.Time {
		tick = tick.Add(time.Millisecond)

		return tick
	}

	return scraperServiceFixtures{
		service:     svc,
		landingRepo: landingRepo,
		fetcher:     fetcher,
		renderer:    renderer,
		now:         now,
	}
}

func pageWithText(n int) *entity.PageContent {
	return &entity.PageContent{
		Title:   "Acme Running",
		Content: strings.Repeat("a", n),
	}
}

func TestScraperService_ScrapeContent_StaticPage(t *testing.T) {
	fx := createTestScraperService(t)

	ctx := context.Background()
	url := "https://acme.example/shoes"

	fx.fetcher.EXPECT().Fetch(ctx, url).Return(pageWithText(500), nil)
	fx.landingRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(e *entity.LandingPageCacheEntry) bool {
			return e.URL == url && e.Title == "Acme Running"
		})).
		Return(nil)

	content, err := fx.service.ScrapeContent(ctx, url, false)
	require.NoError(t, err)
	assert.Equal(t, entity.ScrapeMethodStatic, content.Method)
	assert.Positive(t, content.ProcessingTime)
	assert.False(t, content.FromCache())
}

func TestScraperService_ScrapeContent_ThinPageRendersOnce(t *testing.T) {
	fx := createTestScraperService(t)

	ctx := context.Background()
	url := "https://spa.example/"

	fx.fetcher.EXPECT().Fetch(ctx, url).Return(pageWithText(40), nil)
	fx.renderer.EXPECT().Render(ctx, url).Return(pageWithText(800), nil).Once()
	fx.landingRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.LandingPageCacheEntry")).Return(nil)

	content, err := fx.service.ScrapeContent(ctx, url, false)
	require.NoError(t, err)
	assert.Equal(t, entity.ScrapeMethodBrowser, content.Method)
	assert.Len(t, content.Content, 800)
	fx.renderer.AssertNumberOfCalls(t, "Render", 1)
}

func TestScraperService_ScrapeContent_KeepsThinPageWhenRenderFails(t *testing.T) {
	fx := createTestScraperService(t)

	ctx := context.Background()
	url := "https://thin.example/"

	fx.fetcher.EXPECT().Fetch(ctx, url).Return(pageWithText(40), nil)
	fx.renderer.EXPECT().Render(ctx, url).Return(nil, errors.New("chrome not found"))
	fx.landingRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.LandingPageCacheEntry")).Return(nil)

	content, err := fx.service.ScrapeContent(ctx, url, false)
	require.NoError(t, err)
	assert.Equal(t, entity.ScrapeMethodStatic, content.Method)
	assert.Len(t, content.Content, 40)
}

func TestScraperService_ScrapeContent_BothPathsFail(t *testing.T) {
	fx := createTestScraperService(t)

	ctx := context.Background()
	url := "https://down.example/"

	fx.fetcher.EXPECT().Fetch(ctx, url).Return(nil, errors.New("503"))
	fx.renderer.EXPECT().Render(ctx, url).Return(nil, errors.New("timeout"))

	_, err := fx.service.ScrapeContent(ctx, url, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestScraperService_ScrapeContent_InvalidURL(t *testing.T) {
	fx := createTestScraperService(t)

	for _, url := range []string{"", "not a url", "ftp://files.example/a"} {
		_, err := fx.service.ScrapeContent(context.Background(), url, true)
		assert.ErrorIs(t, err, domainerrors.ErrValidation, url)
	}
}

func TestScraperService_ScrapeContent_CacheFreshnessBoundary(t *testing.T) {
	ctx := context.Background()
	url := "https://acme.example/"

	t.Run("exactly seven days old is served from cache", func(t *testing.T) {
		fx := createTestScraperService(t)
		fx.service.now = func() time.Time { return fx.now }

		fx.landingRepo.EXPECT().
			FindByURL(ctx, url).
			Return(&entity.LandingPageCacheEntry{
				URL:       url,
				Title:     "Cached",
				Content:   "cached content",
				CreatedAt: fx.now.Add(-7 * 24 * time.Hour),
			}, nil)

		content, err := fx.service.ScrapeContent(ctx, url, true)
		require.NoError(t, err)
		assert.Equal(t, entity.ScrapeMethodCache, content.Method)
		assert.True(t, content.FromCache())
		assert.Equal(t, "cached content", content.Content)
	})

	t.Run("one second older is evicted and scraped again", func(t *testing.T) {
		fx := createTestScraperService(t)
		fx.service.now = func() time.Time { return fx.now }

		fx.landingRepo.EXPECT().
			FindByURL(ctx, url).
			Return(&entity.LandingPageCacheEntry{
				URL:       url,
				CreatedAt: fx.now.Add(-7*24*time.Hour - time.Second),
			}, nil)
		fx.landingRepo.EXPECT().DeleteByURL(ctx, url).Return(nil).Once()
		fx.fetcher.EXPECT().Fetch(ctx, url).Return(pageWithText(300), nil)
		fx.landingRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.LandingPageCacheEntry")).Return(nil)

		content, err := fx.service.ScrapeContent(ctx, url, true)
		require.NoError(t, err)
		assert.Equal(t, entity.ScrapeMethodStatic, content.Method)
		assert.False(t, content.FromCache())
	})
}

func TestScraperService_ScrapeMultipleURLs(t *testing.T) {
	fx := createTestScraperService(t)

	ctx := context.Background()
	good := "https://acme.example/"
	missing := "https://acme.example/missing"

	fx.landingRepo.EXPECT().FindByURL(ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrLandingPageNotFound)
	fx.fetcher.EXPECT().Fetch(ctx, good).Return(pageWithText(300), nil)
	fx.fetcher.EXPECT().Fetch(ctx, missing).Return(nil, errors.New("404"))
	fx.renderer.EXPECT().Render(ctx, missing).Return(nil, errors.New("404"))
	fx.landingRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.LandingPageCacheEntry")).Return(nil)

	results := fx.service.ScrapeMultipleURLs(ctx, []string{missing, "bad url", good})
	require.Len(t, results, 3)

	assert.Equal(t, missing, results[0].URL)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)

	assert.False(t, results[1].Success)

	assert.Equal(t, good, results[2].URL)
	assert.True(t, results[2].Success)
	assert.Equal(t, "Acme Running", results[2].Content.Title)
}
