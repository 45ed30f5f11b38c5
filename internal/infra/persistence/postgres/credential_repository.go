package postgres

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// CreateCredential persists a new credential.
func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindActiveCredential returns the first active credential for the user and provider.
func (repo *credentialRepository) FindActiveCredential(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ? AND is_active = ?", userID, string(provider), true).
		Order("created_at ASC").
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find active credential")
	}

	return toCredentialDomain(&credentialM), nil
}

// UpdateTokens writes refreshed token material back to a credential.
// An empty refresh token keeps the stored one.
func (repo *credentialRepository) UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt *time.Time) error {
	updates := map[string]any{
		"access_token":     accessToken,
		"token_expires_at": expiresAt,
		"updated_at":       time.Now().UTC(),
	}
	if refreshToken != "" {
		updates["refresh_token"] = refreshToken
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update credential tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// DeactivateCredentials soft-disables every active credential for the user and provider.
func (repo *credentialRepository) DeactivateCredentials(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ? AND provider = ? AND is_active = ?", userID, string(provider), true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate credentials")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toCredentialDomain converts a GORM CredentialModel to a domain Credential entity.
func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:                   data.ID,
		UserID:               data.UserID,
		Provider:             entity.ProviderType(data.Provider),
		ProviderAccountID:    data.ProviderAccountID,
		ProviderAccountEmail: data.ProviderAccountEmail,
		AccessToken:          data.AccessToken,
		RefreshToken:         data.RefreshToken,
		TokenExpiresAt:       data.TokenExpiresAt,
		Scope:                data.Scope,
		IsActive:             data.IsActive,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromCredentialDomain converts a domain Credential entity to a GORM CredentialModel.
func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		Provider:             string(data.Provider),
		ProviderAccountID:    data.ProviderAccountID,
		ProviderAccountEmail: data.ProviderAccountEmail,
		AccessToken:          data.AccessToken,
		RefreshToken:         data.RefreshToken,
		TokenExpiresAt:       data.TokenExpiresAt,
		Scope:                data.Scope,
		IsActive:             data.IsActive,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
