package handler

import (
	"net/http"
	"testing"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	mockUsecase "adcopy/internal/mocks/usecase"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScrapeHandler(t *testing.T) {
	scraper := mockUsecase.NewMockScraperUsecase(t)
	h := NewScrapeHandler(ScrapeHandlerParams{Scraper: scraper})
	e := newTestEcho(uuid.New())
	e.POST("/scrape", h.Scrape)

	t.Run("single url defaults to cache", func(t *testing.T) {
		scraper.EXPECT().
			ScrapeContent(mock.Anything, "https://acme.example/", true).
			Return(&entity.ScrapedContent{URL: "https://acme.example/", Title: "Acme"}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/scrape", `{"url":"https://acme.example/"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Acme"`)
	})

	t.Run("cache bypass", func(t *testing.T) {
		scraper.EXPECT().
			ScrapeContent(mock.Anything, "https://acme.example/", false).
			Return(&entity.ScrapedContent{URL: "https://acme.example/"}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/scrape", `{"url":"https://acme.example/","use_cache":false}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("batch", func(t *testing.T) {
		urls := []string{"https://a.example/", "https://b.example/"}
		scraper.EXPECT().
			ScrapeMultipleURLs(mock.Anything, urls).
			Return([]*usecase.ScrapeResult{
				{URL: urls[0], Success: true},
				{URL: urls[1], Success: false, Error: "timeout"},
			}).
			Once()

		rec := doRequest(e, http.MethodPost, "/scrape", `{"urls":["https://a.example/","https://b.example/"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var results []usecase.ScrapeResult
		decodeData(t, rec, &results)
		require.Len(t, results, 2)
		assert.Equal(t, "timeout", results[1].Error)
	})

	t.Run("missing url", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/scrape", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("scraper validation error", func(t *testing.T) {
		scraper.EXPECT().
			ScrapeContent(mock.Anything, "https://bad.example/", true).
			Return(nil, domainerrors.ErrValidation.WithDetails("unsupported scheme")).
			Once()

		rec := doRequest(e, http.MethodPost, "/scrape", `{"url":"https://bad.example/"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
