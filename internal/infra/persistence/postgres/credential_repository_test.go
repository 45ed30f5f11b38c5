package postgres

import (
	"context"
	"testing"
	"time"

	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCredential(userID uuid.UUID, accountID string) *entity.Credential {
	expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Second)

	return &entity.Credential{
		UserID:            userID,
		Provider:          entity.ProviderTypeDropbox,
		ProviderAccountID: accountID,
		AccessToken:       "access-" + accountID,
		RefreshToken:      "refresh-" + accountID,
		TokenExpiresAt:    &expiresAt,
		IsActive:          true,
	}
}

func TestCredentialRepository_CreateAndFindActive(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(newTestDB(t))
	userID := uuid.New()

	credential := newTestCredential(userID, "dbid:1")
	require.NoError(t, repo.CreateCredential(ctx, credential))
	assert.NotEqual(t, uuid.Nil, credential.ID)

	found, err := repo.FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox)
	require.NoError(t, err)
	assert.Equal(t, credential.ID, found.ID)
	assert.Equal(t, "access-dbid:1", found.AccessToken)
	assert.True(t, found.IsActive)

	_, err = repo.FindActiveCredential(ctx, uuid.New(), entity.ProviderTypeDropbox)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_UpdateTokens(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(newTestDB(t))
	userID := uuid.New()

	credential := newTestCredential(userID, "dbid:1")
	require.NoError(t, repo.CreateCredential(ctx, credential))

	newExpiry := time.Now().UTC().Add(4 * time.Hour).Truncate(time.Second)
	require.NoError(t, repo.UpdateTokens(ctx, credential.ID, "access-2", "", &newExpiry))

	found, err := repo.FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox)
	require.NoError(t, err)
	assert.Equal(t, "access-2", found.AccessToken)
	assert.Equal(t, "refresh-dbid:1", found.RefreshToken, "empty refresh token keeps the stored one")
	require.NotNil(t, found.TokenExpiresAt)
	assert.True(t, found.TokenExpiresAt.Equal(newExpiry))

	err = repo.UpdateTokens(ctx, uuid.New(), "x", "y", nil)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_DeactivateCredentials(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(newTestDB(t))
	userID := uuid.New()
	otherUserID := uuid.New()

	require.NoError(t, repo.CreateCredential(ctx, newTestCredential(userID, "dbid:1")))
	require.NoError(t, repo.CreateCredential(ctx, newTestCredential(userID, "dbid:2")))
	require.NoError(t, repo.CreateCredential(ctx, newTestCredential(otherUserID, "dbid:3")))

	count, err := repo.DeactivateCredentials(ctx, userID, entity.ProviderTypeDropbox)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = repo.FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	other, err := repo.FindActiveCredential(ctx, otherUserID, entity.ProviderTypeDropbox)
	require.NoError(t, err)
	assert.Equal(t, "dbid:3", other.ProviderAccountID)

	count, err = repo.DeactivateCredentials(ctx, userID, entity.ProviderTypeDropbox)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	userID := uuid.New()

	errAbort := errorString("abort")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCredentialRepository().CreateCredential(ctx, newTestCredential(userID, "dbid:1")); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	_, err = NewCredentialRepository(db).FindActiveCredential(ctx, userID, entity.ProviderTypeDropbox)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}
