package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeMethod tells how a landing page result was obtained.
type ScrapeMethod string

const (
	ScrapeMethodStatic  ScrapeMethod = "static"
	ScrapeMethodBrowser ScrapeMethod = "browser"
	ScrapeMethodCache   ScrapeMethod = "cache"
)

// LandingPageMetadata is the page-level metadata captured next to the text.
type LandingPageMetadata struct {
	Description   string    `json:"description,omitempty"`
	Keywords      []string  `json:"keywords"`
	OGTitle       string    `json:"og_title,omitempty"`
	OGDescription string    `json:"og_description,omitempty"`
	ScrapedAt     time.Time `json:"scraped_at"`
}

// LandingPageCacheEntry is the cached extraction of one URL, shared across projects.
type LandingPageCacheEntry struct {
	ID        uuid.UUID           `json:"id"`
	URL       string              `json:"url"`
	Title     string              `json:"title,omitempty"`
	Content   string              `json:"content"`
	Metadata  LandingPageMetadata `json:"metadata"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// IsFresh reports whether the entry was created no longer than ttl before now.
func (e *LandingPageCacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) <= ttl
}

// PageContent is the readable text extracted from an HTML document.
type PageContent struct {
	Title    string
	Content  string
	Metadata LandingPageMetadata
}

// ScrapedContent is the result of ScrapeContent. ProcessingTime is zero for cache hits.
type ScrapedContent struct {
	URL            string              `json:"url"`
	Title          string              `json:"title,omitempty"`
	Content        string              `json:"content"`
	Metadata       LandingPageMetadata `json:"metadata"`
	Method         ScrapeMethod        `json:"method"`
	ProcessingTime time.Duration       `json:"processing_time"`
}

// FromCache reports whether the content was served from the landing page cache.
func (s *ScrapedContent) FromCache() bool {
	return s.ProcessingTime == 0
}
