package usecase

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionStatus describes the user's storage connection.
type ConnectionStatus struct {
	Connected      bool                `json:"connected"`
	Provider       entity.ProviderType `json:"provider"`
	AccountID      string              `json:"account_id,omitempty"`
	AccountEmail   string              `json:"account_email,omitempty"`
	TokenExpiresAt *time.Time          `json:"token_expires_at,omitempty"`
	ConnectedAt    *time.Time          `json:"connected_at,omitempty"`
}

// CredentialUsecase manages the OAuth connection to the storage provider.
type CredentialUsecase interface {
	// AuthorizationURL returns the consent page URL with a fresh state bound to userID.
	AuthorizationURL(ctx context.Context, userID uuid.UUID) (string, error)

	// Connect redeems an authorization code and stores the credential, replacing
	// any active one.
	Connect(ctx context.Context, userID uuid.UUID, code, state string) (*entity.Credential, error)

	// Disconnect deactivates the user's credentials. Rows are kept.
	Disconnect(ctx context.Context, userID uuid.UUID) error

	// Status reports whether the user has an active credential.
	Status(ctx context.Context, userID uuid.UUID) (*ConnectionStatus, error)
}
