package handler

import (
	"net/http"

	"adcopy/internal/delivery/http/response"
	"adcopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	Projects    usecase.ProjectUsecase
	Interpreter usecase.AssetInterpreter
}

// ProjectHandler serves project and asset routes.
type ProjectHandler struct {
	projects    usecase.ProjectUsecase
	interpreter usecase.AssetInterpreter
}

// NewProjectHandler is the constructor for ProjectHandler
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projects:    params.Projects,
		interpreter: params.Interpreter,
	}
}

// ImportAssetsRequest lists remote paths to attach to a project.
type ImportAssetsRequest struct {
	Paths []string `json:"paths" validate:"required,min=1,max=50,dive,required"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.CreateProjectInput
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projects.CreateProject(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, project)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.ListProjects(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projects.GetProject(c.Request().Context(), userID, projectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateProjectInput
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projects.UpdateProject(c.Request().Context(), userID, projectID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.projects.DeleteProject(c.Request().Context(), userID, projectID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// ImportAssets attaches remote files to the project. Per-path failures are
// part of a 200 response.
func (h *ProjectHandler) ImportAssets(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ImportAssetsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.projects.ImportAssets(c.Request().Context(), userID, projectID, req.Paths)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *ProjectHandler) ListAssets(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	assets, err := h.projects.ListAssets(c.Request().Context(), userID, projectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, assets)
}

func (h *ProjectHandler) DeleteAsset(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	assetID, err := uuidParam(c, "assetId")
	if err != nil {
		return err
	}

	if err := h.projects.DeleteAsset(c.Request().Context(), userID, projectID, assetID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// InterpretAssets runs the interpreter over every asset of the project.
func (h *ProjectHandler) InterpretAssets(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.interpreter.InterpretProjectAssets(c.Request().Context(), userID, projectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, results)
}
