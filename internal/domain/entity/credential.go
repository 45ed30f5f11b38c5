// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external cloud-storage provider.
type ProviderType string

const (
	// ProviderTypeDropbox is the only storage provider currently supported.
	ProviderTypeDropbox ProviderType = "dropbox"
)

// Credential stores the OAuth tokens a user granted for a storage provider.
// Deactivated credentials are kept for audit and are never used for API calls.
type Credential struct {
	ID                   uuid.UUID    `json:"id"`
	UserID               uuid.UUID    `json:"user_id"`
	Provider             ProviderType `json:"provider"`
	ProviderAccountID    string       `json:"provider_account_id"`              // Account id reported by the provider.
	ProviderAccountEmail string       `json:"provider_account_email,omitempty"` // Optional, for display.
	AccessToken          string       `json:"-"`
	RefreshToken         string       `json:"-"`
	TokenExpiresAt       *time.Time   `json:"token_expires_at,omitempty"` // Nil for non-expiring tokens.
	Scope                string       `json:"scope,omitempty"`
	IsActive             bool         `json:"is_active"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// ExpiresWithin reports whether the access token expires before now+window.
// Tokens without an expiry never need a refresh.
func (c *Credential) ExpiresWithin(now time.Time, window time.Duration) bool {
	if c.TokenExpiresAt == nil {
		return false
	}

	return c.TokenExpiresAt.Before(now.Add(window))
}

// OAuthToken is the result of an authorization_code or refresh_token grant.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string // Empty when the provider did not rotate it.
	ExpiresAt    *time.Time
	Scope        string
	AccountID    string
}

// ProviderAccount describes the account behind a freshly exchanged token.
type ProviderAccount struct {
	AccountID string
	Email     string
	Name      string
}
