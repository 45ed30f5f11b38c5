package service

import (
	"context"

	"adcopy/internal/domain/entity"
)

// PageFetcher extracts readable content from the static HTML of a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*entity.PageContent, error)
}

// PageRenderer extracts readable content after rendering the URL in a headless browser.
type PageRenderer interface {
	Render(ctx context.Context, url string) (*entity.PageContent, error)
}
