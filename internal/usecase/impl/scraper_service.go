package impl

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"adcopy/config"
	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/domain/service"
	"adcopy/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Static extraction below this many characters triggers a browser render.
const minPageContentLength = 100

type scraperService struct {
	landingRepo     repository.LandingPageCacheRepository
	fetcher         service.PageFetcher
	renderer        service.PageRenderer
	validate        *validator.Validate
	ttl             time.Duration
	politenessDelay time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// ScraperServiceParams holds dependencies for the scraper, injected by Fx.
type ScraperServiceParams struct {
	fx.In

	LandingRepo repository.LandingPageCacheRepository
	Fetcher     service.PageFetcher
	Renderer    service.PageRenderer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewScraperService creates the landing page scraper.
func NewScraperService(params ScraperServiceParams) usecase.ScraperUsecase {
	return &scraperService{
		landingRepo:     params.LandingRepo,
		fetcher:         params.Fetcher,
		renderer:        params.Renderer,
		validate:        validator.New(),
		ttl:             params.Config.Cache.LandingPageTTL,
		politenessDelay: params.Config.Scraper.PolitenessDelay,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (s *scraperService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *scraperService) ScrapeContent(ctx context.Context, url string, useCache bool) (*entity.ScrapedContent, error) {
	if err := s.validate.Var(url, "required,http_url"); err != nil {
		return nil, domainerrors.ErrValidation.WithDetails("invalid url: " + url)
	}

	if useCache {
		if cached := s.lookup(ctx, url); cached != nil {
			return cached, nil
		}
	}

	start := s.now()
	page, method, err := s.extract(ctx, url)
	if err != nil {
		return nil, err
	}

	elapsed := s.now().Sub(start)
	if elapsed <= 0 {
		// Zero is reserved for cache hits.
		elapsed = time.Nanosecond
	}

	entry := &entity.LandingPageCacheEntry{
		URL:      url,
		Title:    page.Title,
		Content:  page.Content,
		Metadata: page.Metadata,
	}
	if err := s.landingRepo.Upsert(ctx, entry); err != nil {
		s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Failed to cache landing page",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Scraped landing page",
		slog.String("url", url),
		slog.String("method", string(method)),
		slog.Int("length", utf8.RuneCountInString(page.Content)),
		slog.Duration("elapsed", elapsed),
	)

	return &entity.ScrapedContent{
		URL:            url,
		Title:          page.Title,
		Content:        page.Content,
		Metadata:       page.Metadata,
		Method:         method,
		ProcessingTime: elapsed,
	}, nil
}

// lookup returns a fresh cache hit. Expired entries are deleted here.
func (s *scraperService) lookup(ctx context.Context, url string) *entity.ScrapedContent {
	entry, err := s.landingRepo.FindByURL(ctx, url)
	if errors.Is(err, repository.ErrLandingPageNotFound) {
		return nil
	}
	if err != nil {
		s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Landing page cache lookup failed",
			slog.String("url", url),
			slog.Any("error", err),
		)

		return nil
	}

	if !entry.IsFresh(s.now(), s.ttl) {
		if err := s.landingRepo.DeleteByURL(ctx, url); err != nil {
			s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Failed to evict expired landing page",
				slog.String("url", url),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return &entity.ScrapedContent{
		URL:      entry.URL,
		Title:    entry.Title,
		Content:  entry.Content,
		Metadata: entry.Metadata,
		Method:   entity.ScrapeMethodCache,
	}
}

// extract tries the static fetch first and renders in a browser when that
// fails or is too thin. A thin static result is kept if the render fails.
func (s *scraperService) extract(ctx context.Context, url string) (*entity.PageContent, entity.ScrapeMethod, error) {
	page, err := s.fetcher.Fetch(ctx, url)
	if err == nil && utf8.RuneCountInString(page.Content) >= minPageContentLength {
		return page, entity.ScrapeMethodStatic, nil
	}

	if err != nil {
		s.log(ctx).LogAttrs(ctx, slog.LevelDebug, "Static fetch failed, rendering",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}

	rendered, renderErr := s.renderer.Render(ctx, url)
	if renderErr == nil {
		return rendered, entity.ScrapeMethodBrowser, nil
	}

	if err == nil && page.Content != "" {
		s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Browser render failed, keeping static content",
			slog.String("url", url),
			slog.Any("error", renderErr),
		)

		return page, entity.ScrapeMethodStatic, nil
	}

	return nil, "", errors.Wrapf(renderErr, "failed to scrape %s", url)
}

func (s *scraperService) ScrapeMultipleURLs(ctx context.Context, urls []string) []*usecase.ScrapeResult {
	outcomes := processSequentially(ctx, urls, s.politenessDelay,
		func(ctx context.Context, url string) (*entity.ScrapedContent, error) {
			return s.ScrapeContent(ctx, url, true)
		})

	results := make([]*usecase.ScrapeResult, len(urls))
	for i, outcome := range outcomes {
		results[i] = &usecase.ScrapeResult{URL: urls[i]}
		if outcome.Err != nil {
			results[i].Error = outcome.Err.Error()

			continue
		}
		results[i].Success = true
		results[i].Content = outcome.Value
	}

	return results
}
