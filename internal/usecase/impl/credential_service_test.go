package impl

import (
	"context"
	"net/url"
	"testing"
	"time"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	mockRepo "adcopy/internal/mocks/repository"
	mockSvc "adcopy/internal/mocks/service"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type credentialServiceFixtures struct {
	service        usecase.CredentialUsecase
	txManager      *mockRepo.MockTransactionManager
	txFactory      *mockRepo.MockRepositoryFactory
	credentialRepo *mockRepo.MockCredentialRepository
	oauthProvider  *mockSvc.MockStorageOAuthProvider
	storage        *mockSvc.MockCloudStorageClient
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	oauthProvider := mockSvc.NewMockStorageOAuthProvider(t)
	storage := mockSvc.NewMockCloudStorageClient(t)

	oauthProvider.EXPECT().Provider().Return(entity.ProviderTypeDropbox).Maybe()
	oauthProvider.EXPECT().
		AuthCodeURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string {
			return "https://www.dropbox.com/oauth2/authorize?state=" + state
		}).
		Maybe()

	svc := NewCredentialService(CredentialServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentialRepo,
		OAuthProvider:  oauthProvider,
		Storage:        storage,
		Logger:         newDiscardLogger(),
	})

	return credentialServiceFixtures{
		service:        svc,
		txManager:      txManager,
		txFactory:      txFactory,
		credentialRepo: credentialRepo,
		oauthProvider:  oauthProvider,
		storage:        storage,
	}
}

func stateFromURL(t *testing.T, raw string) string {
	t.Helper()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	return parsed.Query().Get("state")
}

func TestCredentialService_Connect_Success(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(4 * time.Hour)

	authURL, err := fx.service.AuthorizationURL(ctx, userID)
	require.NoError(t, err)
	state := stateFromURL(t, authURL)
	require.NotEmpty(t, state)

	fx.oauthProvider.EXPECT().
		Exchange(ctx, "auth-code").
		Return(&entity.OAuthToken{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    &expiresAt,
			AccountID:    "dbid:token",
		}, nil)
	fx.storage.EXPECT().
		GetCurrentAccount(ctx, "access").
		Return(&entity.ProviderAccount{AccountID: "dbid:account", Email: "owner@example.com"}, nil)

	runInTx(fx.txManager, fx.txFactory)
	fx.txFactory.EXPECT().NewCredentialRepository().Return(fx.credentialRepo)
	fx.credentialRepo.EXPECT().
		DeactivateCredentials(ctx, userID, entity.ProviderTypeDropbox).
		Return(int64(1), nil)
	fx.credentialRepo.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
		Return(nil)

	credential, err := fx.service.Connect(ctx, userID, "auth-code", state)
	require.NoError(t, err)
	assert.Equal(t, userID, credential.UserID)
	assert.Equal(t, "dbid:account", credential.ProviderAccountID)
	assert.Equal(t, "owner@example.com", credential.ProviderAccountEmail)
	assert.Equal(t, "refresh", credential.RefreshToken)
	assert.True(t, credential.IsActive)
}

func TestCredentialService_Connect_RejectsForeignState(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	authURL, err := fx.service.AuthorizationURL(ctx, uuid.New())
	require.NoError(t, err)

	_, err = fx.service.Connect(ctx, uuid.New(), "auth-code", stateFromURL(t, authURL))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
}

func TestCredentialService_Connect_StateIsSingleUse(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	authURL, err := fx.service.AuthorizationURL(ctx, userID)
	require.NoError(t, err)
	state := stateFromURL(t, authURL)

	fx.oauthProvider.EXPECT().
		Exchange(ctx, "bad-code").
		Return(nil, errors.New("invalid_grant")).
		Once()

	_, err = fx.service.Connect(ctx, userID, "bad-code", state)
	require.Error(t, err)

	_, err = fx.service.Connect(ctx, userID, "bad-code", state)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
}

func TestOAuthStates_Expire(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	states := newOAuthStates(func() time.Time { return now })
	userID := uuid.New()

	state, err := states.issue(userID)
	require.NoError(t, err)

	now = now.Add(oauthStateTTL + time.Second)
	assert.False(t, states.consume(state, userID))
}

func TestCredentialService_Disconnect(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		DeactivateCredentials(ctx, userID, entity.ProviderTypeDropbox).
		Return(int64(1), nil).
		Once()

	require.NoError(t, fx.service.Disconnect(ctx, userID))
}

func TestCredentialService_Disconnect_NothingActive(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		DeactivateCredentials(ctx, userID, entity.ProviderTypeDropbox).
		Return(int64(0), nil)

	err := fx.service.Disconnect(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoCredential)
}

func TestCredentialService_Status(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	connectedID := uuid.New()
	strangerID := uuid.New()

	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, connectedID, entity.ProviderTypeDropbox).
		Return(&entity.Credential{ProviderAccountID: "dbid:1", CreatedAt: time.Now()}, nil)
	fx.credentialRepo.EXPECT().
		FindActiveCredential(ctx, strangerID, entity.ProviderTypeDropbox).
		Return(nil, repository.ErrCredentialNotFound)

	status, err := fx.service.Status(ctx, connectedID)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "dbid:1", status.AccountID)

	status, err = fx.service.Status(ctx, strangerID)
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, entity.ProviderTypeDropbox, status.Provider)
}
