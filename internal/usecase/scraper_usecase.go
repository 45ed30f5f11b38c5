package usecase

import (
	"context"

	"adcopy/internal/domain/entity"
)

// ScrapeResult is the per-URL outcome of a batch scrape.
type ScrapeResult struct {
	URL     string                 `json:"url"`
	Success bool                   `json:"success"`
	Content *entity.ScrapedContent `json:"content,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// ScraperUsecase extracts landing page text behind a per-URL cache.
type ScraperUsecase interface {
	// ScrapeContent validates url, serves a fresh cache entry when allowed,
	// otherwise fetches statically and falls back to a browser render.
	ScrapeContent(ctx context.Context, url string, useCache bool) (*entity.ScrapedContent, error)

	// ScrapeMultipleURLs scrapes one URL at a time with a delay between requests.
	ScrapeMultipleURLs(ctx context.Context, urls []string) []*ScrapeResult
}
