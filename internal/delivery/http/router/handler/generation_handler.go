package handler

import (
	"net/http"

	"adcopy/internal/delivery/http/response"
	"adcopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GenerationHandlerParams holds dependencies for GenerationHandler, injected by Fx.
type GenerationHandlerParams struct {
	fx.In

	AdCopy usecase.AdCopyUsecase
}

// GenerationHandler starts generations and lists their variations.
type GenerationHandler struct {
	adCopy usecase.AdCopyUsecase
}

// NewGenerationHandler is the constructor for GenerationHandler
func NewGenerationHandler(params GenerationHandlerParams) *GenerationHandler {
	return &GenerationHandler{adCopy: params.AdCopy}
}

// Generate runs the whole generation inside the request.
func (h *GenerationHandler) Generate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.adCopy.GenerateAdCopy(c.Request().Context(), userID, projectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

// GenerateAsync queues the generation for the worker and answers 202.
func (h *GenerationHandler) GenerateAsync(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.adCopy.RequestGeneration(c.Request().Context(), userID, projectID); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"project_id": projectID.String(),
		"status":     "queued",
	})
}

func (h *GenerationHandler) ListGenerations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	records, err := h.adCopy.ListGenerations(c.Request().Context(), userID, projectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records)
}
