package handler

import (
	"net/http"

	"adcopy/internal/delivery/http/response"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScrapeHandlerParams holds dependencies for ScrapeHandler, injected by Fx.
type ScrapeHandlerParams struct {
	fx.In

	Scraper usecase.ScraperUsecase
}

// ScrapeHandler previews landing page extraction.
type ScrapeHandler struct {
	scraper usecase.ScraperUsecase
}

// NewScrapeHandler is the constructor for ScrapeHandler
func NewScrapeHandler(params ScrapeHandlerParams) *ScrapeHandler {
	return &ScrapeHandler{scraper: params.Scraper}
}

// ScrapeRequest asks for one URL (url) or a batch (urls).
type ScrapeRequest struct {
	URL      string   `json:"url" validate:"omitempty,url"`
	URLs     []string `json:"urls" validate:"omitempty,max=10,dive,url"`
	UseCache *bool    `json:"use_cache"`
}

// Scrape returns the content for url, or one result per entry of urls.
func (h *ScrapeHandler) Scrape(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req ScrapeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if req.URL == "" && len(req.URLs) == 0 {
		return domainerrors.ErrValidation.WithDetails("url or urls is required")
	}
	if len(req.URLs) > 0 {
		return response.Success(c, http.StatusOK, h.scraper.ScrapeMultipleURLs(ctx, req.URLs))
	}

	useCache := req.UseCache == nil || *req.UseCache
	content, err := h.scraper.ScrapeContent(ctx, req.URL, useCache)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, content)
}
