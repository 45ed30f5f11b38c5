package service

import (
	"context"

	"adcopy/internal/domain/entity"
)

// StorageOAuthProvider performs the OAuth2 grants of a cloud storage provider.
type StorageOAuthProvider interface {
	// AuthCodeURL returns the consent page URL for the given state.
	AuthCodeURL(state string) string

	// Exchange redeems an authorization code.
	Exchange(ctx context.Context, code string) (*entity.OAuthToken, error)

	// Refresh performs a refresh_token grant. Expiry is computed as now + expires_in.
	Refresh(ctx context.Context, refreshToken string) (*entity.OAuthToken, error)

	// Provider returns the provider type.
	Provider() entity.ProviderType
}
