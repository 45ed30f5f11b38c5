package handler

import (
	"context"
	"net/http"
	"testing"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	mockUsecase "adcopy/internal/mocks/usecase"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectHandlerFixtures struct {
	echo        *echo.Echo
	userID      uuid.UUID
	projects    *mockUsecase.MockProjectUsecase
	interpreter *mockUsecase.MockAssetInterpreter
}

func createTestProjectHandler(t *testing.T) projectHandlerFixtures {
	fx := projectHandlerFixtures{
		userID:      uuid.New(),
		projects:    mockUsecase.NewMockProjectUsecase(t),
		interpreter: mockUsecase.NewMockAssetInterpreter(t),
	}

	h := NewProjectHandler(ProjectHandlerParams{Projects: fx.projects, Interpreter: fx.interpreter})
	fx.echo = newTestEcho(fx.userID)
	fx.echo.POST("/projects", h.CreateProject)
	fx.echo.GET("/projects/:id", h.GetProject)
	fx.echo.PATCH("/projects/:id", h.UpdateProject)
	fx.echo.POST("/projects/:id/assets", h.ImportAssets)
	fx.echo.DELETE("/projects/:id/assets/:assetId", h.DeleteAsset)
	fx.echo.POST("/projects/:id/assets/interpret", h.InterpretAssets)

	return fx
}

func TestProjectHandler_CreateProject(t *testing.T) {
	fx := createTestProjectHandler(t)

	fx.projects.EXPECT().
		CreateProject(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.CreateProjectInput) bool {
			return in.Name == "Launch" && in.Platform == entity.PlatformTikTok && len(in.LandingPageURLs) == 1
		})).
		RunAndReturn(func(_ context.Context, userID uuid.UUID, in *usecase.CreateProjectInput) (*entity.Project, error) {
			return &entity.Project{ID: uuid.New(), UserID: userID, Name: in.Name, Platform: in.Platform}, nil
		})

	rec := doRequest(fx.echo, http.MethodPost, "/projects",
		`{"name":"Launch","platform":"tiktok","landing_page_urls":["https://acme.example/"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var project entity.Project
	decodeData(t, rec, &project)
	assert.Equal(t, "Launch", project.Name)
	assert.Equal(t, fx.userID, project.UserID)
}

func TestProjectHandler_CreateProject_ValidationDetails(t *testing.T) {
	fx := createTestProjectHandler(t)

	rec := doRequest(fx.echo, http.MethodPost, "/projects", `{"name":"Launch","platform":"myspace"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", info.Code)
	details, ok := info.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details["platform"], "must be one of")
}

func TestProjectHandler_GetProject_Errors(t *testing.T) {
	fx := createTestProjectHandler(t)

	projectID := uuid.New()
	fx.projects.EXPECT().
		GetProject(mock.Anything, fx.userID, projectID).
		Return(nil, domainerrors.ErrProjectForbidden)

	rec := doRequest(fx.echo, http.MethodGet, "/projects/"+projectID.String(), "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "PROJECT_FORBIDDEN", info.Code)
	assert.Nil(t, info.Details)

	rec = doRequest(fx.echo, http.MethodGet, "/projects/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_UpdateProject_Partial(t *testing.T) {
	fx := createTestProjectHandler(t)

	projectID := uuid.New()
	fx.projects.EXPECT().
		UpdateProject(mock.Anything, fx.userID, projectID, mock.MatchedBy(func(in *usecase.UpdateProjectInput) bool {
			return in.Name != nil && *in.Name == "Renamed" && in.Platform == nil && in.LandingPageURLs == nil
		})).
		Return(&entity.Project{ID: projectID, Name: "Renamed"}, nil)

	rec := doRequest(fx.echo, http.MethodPatch, "/projects/"+projectID.String(), `{"name":"Renamed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectHandler_ImportAssets(t *testing.T) {
	fx := createTestProjectHandler(t)

	projectID := uuid.New()
	fx.projects.EXPECT().
		ImportAssets(mock.Anything, fx.userID, projectID, []string{"/ads/a.jpg", "/ads/b.pdf"}).
		Return(&usecase.ImportAssetsOutput{
			Imported: []*entity.Asset{{ID: uuid.New(), FileName: "a.jpg"}},
			Failed:   []usecase.ImportFailure{{Path: "/ads/b.pdf", Error: "file type is not a supported image or video: b.pdf"}},
		}, nil)

	rec := doRequest(fx.echo, http.MethodPost, "/projects/"+projectID.String()+"/assets",
		`{"paths":["/ads/a.jpg","/ads/b.pdf"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ImportAssetsOutput
	decodeData(t, rec, &output)
	assert.Len(t, output.Imported, 1)
	assert.Equal(t, "/ads/b.pdf", output.Failed[0].Path)

	rec = doRequest(fx.echo, http.MethodPost, "/projects/"+projectID.String()+"/assets", `{"paths":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_DeleteAsset(t *testing.T) {
	fx := createTestProjectHandler(t)

	projectID := uuid.New()
	assetID := uuid.New()
	fx.projects.EXPECT().DeleteAsset(mock.Anything, fx.userID, projectID, assetID).Return(nil)

	rec := doRequest(fx.echo, http.MethodDelete, "/projects/"+projectID.String()+"/assets/"+assetID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProjectHandler_InterpretAssets(t *testing.T) {
	fx := createTestProjectHandler(t)

	projectID := uuid.New()
	fx.interpreter.EXPECT().
		InterpretProjectAssets(mock.Anything, fx.userID, projectID).
		Return([]*usecase.InterpretationResult{
			{FileName: "a.jpg", Success: true, FromCache: true},
			{FileName: "b.mp4", Success: false, Stage: usecase.StageDownload, Error: "dropbox download failed"},
		}, nil)

	rec := doRequest(fx.echo, http.MethodPost, "/projects/"+projectID.String()+"/assets/interpret", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var results []usecase.InterpretationResult
	decodeData(t, rec, &results)
	require.Len(t, results, 2)
	assert.True(t, results[0].FromCache)
	assert.Equal(t, usecase.StageDownload, results[1].Stage)
}
