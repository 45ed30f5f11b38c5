package impl

import (
	"context"
	"testing"
	"time"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/domain/service"
	mockRepo "adcopy/internal/mocks/repository"
	mockSvc "adcopy/internal/mocks/service"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cloudFileServiceFixtures struct {
	service        usecase.CloudFileUsecase
	credentialRepo *mockRepo.MockCredentialRepository
	oauthProvider  *mockSvc.MockStorageOAuthProvider
	storage        *mockSvc.MockCloudStorageClient
	tempStore      *mockSvc.MockTempStore
}

func createTestCloudFileService(t *testing.T) cloudFileServiceFixtures {
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	oauthProvider := mockSvc.NewMockStorageOAuthProvider(t)
	storage := mockSvc.NewMockCloudStorageClient(t)
	tempStore := mockSvc.NewMockTempStore(t)

	oauthProvider.EXPECT().Provider().Return(entity.ProviderTypeDropbox).Maybe()

	svc := NewCloudFileService(CloudFileServiceParams{
		CredentialRepo: credentialRepo,
		OAuthProvider:  oauthProvider,
		Storage:        storage,
		TempStore:      tempStore,
		Logger:         newDiscardLogger(),
	})

	return cloudFileServiceFixtures{
		service:        svc,
		credentialRepo: credentialRepo,
		oauthProvider:  oauthProvider,
		storage:        storage,
		tempStore:      tempStore,
	}
}

func credentialExpiringIn(userID uuid.UUID, d time.Duration) *entity.Credential {
	expiresAt := time.Now().Add(d)

	return &entity.Credential{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       entity.ProviderTypeDropbox,
		AccessToken:    "old-token",
		RefreshToken:   "refresh-token",
		TokenExpiresAt: &expiresAt,
		IsActive:       true,
	}
}

func TestCloudFileService_ListFiles_RefreshesExpiringToken(t *testing.T) {
	fx := createTestCloudFileService(t)

	ctx := context.Background()
	userID := uuid.New()
	credential := credentialExpiringIn(userID, 2*time.Minute)
	newExpiry := time.Now().Add(4 * time.Hour)

	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox).
		Return(credential, nil)
	fx.oauthProvider.EXPECT().
		Refresh(ctx, "refresh-token").
		Return(&entity.OAuthToken{AccessToken: "new-token", ExpiresAt: &newExpiry}, nil).
		Once()
	fx.credentialRepo.EXPECT().
		UpdateTokens(ctx, credential.ID, "new-token", "", &newExpiry).
		Return(nil)
	fx.storage.EXPECT().
		ListFolder(ctx, "new-token", "/ads", false).
		Return(&service.ListFolderPage{
			Entries: []entity.RemoteFile{{ID: "id:1", Name: "hero.jpg"}, {ID: "id:2", Name: "notes.txt"}},
			Cursor:  "cursor-1",
			HasMore: true,
		}, nil)
	fx.storage.EXPECT().
		ListFolderContinue(ctx, "new-token", "cursor-1").
		Return(&service.ListFolderPage{
			Entries: []entity.RemoteFile{{ID: "id:3", Name: "promo.MP4"}},
		}, nil)

	files, err := fx.service.ListFiles(ctx, userID, "/ads", false)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "hero.jpg", files[0].Name)
	assert.Equal(t, "promo.MP4", files[1].Name)
}

func TestCloudFileService_ListFiles_KeepsValidToken(t *testing.T) {
	fx := createTestCloudFileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox).
		Return(credentialExpiringIn(userID, 10*time.Minute), nil)
	fx.storage.EXPECT().
		ListFolder(ctx, "old-token", "", true).
		Return(&service.ListFolderPage{}, nil)

	files, err := fx.service.ListFiles(ctx, userID, "", true)
	require.NoError(t, err)
	assert.Empty(t, files)
	fx.oauthProvider.AssertNotCalled(t, "Refresh")
}

func TestCloudFileService_ListFiles_NoCredential(t *testing.T) {
	fx := createTestCloudFileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox).
		Return(nil, repository.ErrCredentialNotFound)

	_, err := fx.service.ListFiles(ctx, userID, "/", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoCredential)
}

func TestCloudFileService_ListFiles_MissingRefreshToken(t *testing.T) {
	fx := createTestCloudFileService(t)

	ctx := context.Background()
	userID := uuid.New()
	credential := credentialExpiringIn(userID, -time.Minute)
	credential.RefreshToken = ""

	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox).
		Return(credential, nil)

	_, err := fx.service.ListFiles(ctx, userID, "/", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRefreshFailed)
}

func TestCloudFileService_DownloadFile(t *testing.T) {
	fx := createTestCloudFileService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := []byte("video-bytes")

	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox).
		Return(&entity.Credential{ID: uuid.New(), AccessToken: "token"}, nil)
	fx.storage.EXPECT().
		Download(ctx, "token", "/ads/promo.mp4").
		Return(data, nil)
	fx.tempStore.EXPECT().
		Write(data, ".mp4").
		Return("/tmp/adcopy/abc.mp4", nil)

	file, err := fx.service.DownloadFile(ctx, userID, "/ads/promo.mp4")
	require.NoError(t, err)
	assert.Equal(t, data, file.Data)
	assert.Equal(t, "/tmp/adcopy/abc.mp4", file.TempPath)
}
