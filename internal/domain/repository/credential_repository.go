// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when no active credential exists for a user and provider.
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepository defines the interface for OAuth credential persistence.
type CredentialRepository interface {
	// CreateCredential persists a new credential.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindActiveCredential returns the first active credential for the user and provider.
	FindActiveCredential(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Credential, error)

	// UpdateTokens writes refreshed token material back to a credential.
	UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt *time.Time) error

	// DeactivateCredentials soft-disables every active credential for the user and provider.
	DeactivateCredentials(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (int64, error)
}
