package handler

import (
	"net/http"
	"strconv"

	"adcopy/internal/delivery/http/response"
	"adcopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CloudHandlerParams holds dependencies for CloudHandler, injected by Fx.
type CloudHandlerParams struct {
	fx.In

	Files       usecase.CloudFileUsecase
	Credentials usecase.CredentialUsecase
}

// CloudHandler serves the storage connection and file browsing routes.
type CloudHandler struct {
	files       usecase.CloudFileUsecase
	credentials usecase.CredentialUsecase
}

// NewCloudHandler is the constructor for CloudHandler
func NewCloudHandler(params CloudHandlerParams) *CloudHandler {
	return &CloudHandler{
		files:       params.Files,
		credentials: params.Credentials,
	}
}

// OAuthCallbackRequest carries the values the provider redirected back with.
type OAuthCallbackRequest struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state" validate:"required"`
}

// ListFiles lists supported media in a folder. Query: path, recursive.
func (h *CloudHandler) ListFiles(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	recursive := false
	if raw := c.QueryParam("recursive"); raw != "" {
		if recursive, err = strconv.ParseBool(raw); err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "recursive must be a boolean")
		}
	}

	files, err := h.files.ListFiles(c.Request().Context(), userID, c.QueryParam("path"), recursive)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, files)
}

// AuthorizationURL returns the consent page the client should open.
func (h *CloudHandler) AuthorizationURL(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	url, err := h.credentials.AuthorizationURL(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// OAuthCallback redeems the authorization code.
func (h *CloudHandler) OAuthCallback(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req OAuthCallbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	credential, err := h.credentials.Connect(c.Request().Context(), userID, req.Code, req.State)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, credential)
}

// ConnectionStatus reports whether the caller has an active connection.
func (h *CloudHandler) ConnectionStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	status, err := h.credentials.Status(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status)
}

// Disconnect deactivates the caller's connection.
func (h *CloudHandler) Disconnect(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.credentials.Disconnect(c.Request().Context(), userID); err != nil {
		return err
	}

	return response.NoContent(c)
}
