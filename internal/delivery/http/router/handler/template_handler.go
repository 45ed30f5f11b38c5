package handler

import (
	"net/http"

	"adcopy/internal/delivery/http/response"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TemplateHandlerParams holds dependencies for TemplateHandler, injected by Fx.
type TemplateHandlerParams struct {
	fx.In

	Templates usecase.PromptTemplateUsecase
}

// TemplateHandler serves prompt template management.
type TemplateHandler struct {
	templates usecase.PromptTemplateUsecase
}

// NewTemplateHandler is the constructor for TemplateHandler
func NewTemplateHandler(params TemplateHandlerParams) *TemplateHandler {
	return &TemplateHandler{templates: params.Templates}
}

// ListTemplates returns the caller's templates and the system defaults.
// Query: platform (optional).
func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	platform := entity.Platform(c.QueryParam("platform"))
	if platform != "" && !platform.IsValid() {
		return domainerrors.ErrValidation.WithDetails("unknown platform " + string(platform))
	}

	templates, err := h.templates.ListTemplates(c.Request().Context(), userID, platform)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, templates)
}

// DefaultTemplate returns the default for a platform. Query: platform, type.
func (h *TemplateHandler) DefaultTemplate(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	platform := entity.Platform(c.QueryParam("platform"))
	if !platform.IsValid() {
		return domainerrors.ErrValidation.WithDetails("platform must be one of facebook, google, tiktok")
	}
	promptType := entity.PromptType(c.QueryParam("type"))
	if promptType == "" {
		promptType = entity.PromptTypeAdCopy
	}

	template, err := h.templates.GetDefaultTemplate(c.Request().Context(), platform, promptType)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, template)
}

func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	templateID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	template, err := h.templates.GetTemplate(c.Request().Context(), userID, templateID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, template)
}

func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.TemplateInput
	if err := bind(c, &req); err != nil {
		return err
	}

	template, err := h.templates.CreateTemplate(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, template)
}

func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	templateID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req usecase.TemplateInput
	if err := bind(c, &req); err != nil {
		return err
	}

	template, err := h.templates.UpdateTemplate(c.Request().Context(), userID, templateID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, template)
}

func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	templateID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.templates.DeleteTemplate(c.Request().Context(), userID, templateID); err != nil {
		return err
	}

	return response.NoContent(c)
}
