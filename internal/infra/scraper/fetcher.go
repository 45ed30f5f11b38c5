package scraper

import (
	"context"
	"io"
	"net/http"
	"time"

	"adcopy/config"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxPageBytes     = 5 << 20
)

// StaticFetcher implements service.PageFetcher with a plain HTTP GET.
type StaticFetcher struct {
	httpClient *http.Client
	userAgent  string
	maxLength  int
	now        func() time.Time
}

// NewStaticFetcher creates the fetcher from the scraper config section.
func NewStaticFetcher(cfg *config.Config) service.PageFetcher {
	return newStaticFetcher(cfg.Scraper, &http.Client{Timeout: cfg.Scraper.Timeout})
}

func newStaticFetcher(cfg *config.ScraperConfig, httpClient *http.Client) *StaticFetcher {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &StaticFetcher{
		httpClient: httpClient,
		userAgent:  userAgent,
		maxLength:  cfg.MaxContentLength,
		now:        time.Now,
	}
}

// Fetch downloads url and extracts its text.
func (f *StaticFetcher) Fetch(ctx context.Context, url string) (*entity.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("scraper", "fetch", 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.NewUpstreamError("scraper", "fetch", resp.StatusCode, "", nil)
	}

	return Extract(io.LimitReader(resp.Body, maxPageBytes), f.maxLength, f.now())
}
