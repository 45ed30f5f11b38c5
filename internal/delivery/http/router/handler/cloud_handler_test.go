package handler

import (
	"net/http"
	"testing"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	mockUsecase "adcopy/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCloudTestEcho(t *testing.T) (*echo.Echo, uuid.UUID, *mockUsecase.MockCloudFileUsecase, *mockUsecase.MockCredentialUsecase) {
	userID := uuid.New()
	files := mockUsecase.NewMockCloudFileUsecase(t)
	credentials := mockUsecase.NewMockCredentialUsecase(t)
	h := NewCloudHandler(CloudHandlerParams{Files: files, Credentials: credentials})

	e := newTestEcho(userID)
	e.GET("/cloud/files", h.ListFiles)
	e.POST("/cloud/oauth/callback", h.OAuthCallback)
	e.DELETE("/cloud/connection", h.Disconnect)

	return e, userID, files, credentials
}

func TestCloudHandler_ListFiles(t *testing.T) {
	e, userID, files, _ := newCloudTestEcho(t)

	files.EXPECT().
		ListFiles(mock.Anything, userID, "/ads", true).
		Return([]entity.RemoteFile{{ID: "id:1", Name: "a.jpg", Path: "/ads/a.jpg"}}, nil)
	files.EXPECT().
		ListFiles(mock.Anything, userID, "/none", false).
		Return(nil, domainerrors.ErrNoCredential)

	rec := doRequest(e, http.MethodGet, "/cloud/files?path=/ads&recursive=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/cloud/files?path=/none", "")
	require.Equal(t, http.StatusPreconditionFailed, rec.Code)
	assert.Equal(t, "NO_CREDENTIAL", decodeError(t, rec).Code)

	rec = doRequest(e, http.MethodGet, "/cloud/files?recursive=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCloudHandler_OAuthCallback_HidesTokens(t *testing.T) {
	e, userID, _, credentials := newCloudTestEcho(t)

	credentials.EXPECT().
		Connect(mock.Anything, userID, "code-1", "state-1").
		Return(&entity.Credential{
			ID:                uuid.New(),
			UserID:            userID,
			Provider:          entity.ProviderTypeDropbox,
			ProviderAccountID: "dbid:1",
			AccessToken:       "secret-access",
			RefreshToken:      "secret-refresh",
			IsActive:          true,
		}, nil)

	rec := doRequest(e, http.MethodPost, "/cloud/oauth/callback", `{"code":"code-1","state":"state-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "dbid:1")
	assert.NotContains(t, rec.Body.String(), "secret-")

	rec = doRequest(e, http.MethodPost, "/cloud/oauth/callback", `{"code":"code-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCloudHandler_Disconnect(t *testing.T) {
	e, userID, _, credentials := newCloudTestEcho(t)

	credentials.EXPECT().Disconnect(mock.Anything, userID).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/cloud/connection", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
