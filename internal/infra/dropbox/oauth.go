// Package dropbox talks to the Dropbox OAuth2 and HTTP APIs.
package dropbox

import (
	"context"
	"net/http"
	"strings"
	"time"

	"adcopy/config"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	providerName = "dropbox"

	defaultAuthURL  = "https://www.dropbox.com/oauth2/authorize"
	defaultTokenURL = "https://api.dropboxapi.com/oauth2/token"
)

var defaultScopes = []string{
	"account_info.read",
	"files.metadata.read",
	"files.content.read",
	"files.content.write",
}

// OAuthProvider performs the Dropbox authorization_code and refresh_token grants.
type OAuthProvider struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

// NewOAuthProvider builds the provider from the dropbox config section.
func NewOAuthProvider(cfg *config.Config) (service.StorageOAuthProvider, error) {
	return newOAuthProvider(cfg, &http.Client{Timeout: 30 * time.Second})
}

func newOAuthProvider(cfg *config.Config, httpClient *http.Client) (*OAuthProvider, error) {
	if cfg.Dropbox == nil || cfg.Dropbox.ClientID == "" || cfg.Dropbox.ClientSecret == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("dropbox client id and secret are required")
	}

	authURL := cfg.Dropbox.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := cfg.Dropbox.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	scopes := cfg.Dropbox.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &OAuthProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Dropbox.ClientID,
			ClientSecret: cfg.Dropbox.ClientSecret,
			RedirectURL:  cfg.Dropbox.RedirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL returns the consent page URL. Offline access makes Dropbox
// issue a refresh token next to the short-lived access token.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state, oauth2.SetAuthURLParam("token_access_type", "offline"))
}

// Exchange redeems an authorization code.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*entity.OAuthToken, error) {
	token, err := p.oauthConfig.Exchange(p.withHTTPClient(ctx), code)
	if err != nil {
		return nil, toUpstreamError("token_exchange", err)
	}

	return toOAuthToken(token), nil
}

// Refresh performs a refresh_token grant.
func (p *OAuthProvider) Refresh(ctx context.Context, refreshToken string) (*entity.OAuthToken, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrTokenRefreshFailed.WrapMessage("credential has no refresh token")
	}

	source := p.oauthConfig.TokenSource(p.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, toUpstreamError("token_refresh", err)
	}

	return toOAuthToken(token), nil
}

// Provider returns the provider type.
func (p *OAuthProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeDropbox
}

func (p *OAuthProvider) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func toOAuthToken(token *oauth2.Token) *entity.OAuthToken {
	result := &entity.OAuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	// oauth2 derives Expiry from expires_in at receipt time.
	if !token.Expiry.IsZero() {
		expiresAt := token.Expiry.UTC()
		result.ExpiresAt = &expiresAt
	}
	if scope, ok := token.Extra("scope").(string); ok {
		result.Scope = scope
	}
	if accountID, ok := token.Extra("account_id").(string); ok {
		result.AccountID = accountID
	}

	return result
}

func toUpstreamError(stage string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}

		return domainerrors.NewUpstreamError(providerName, stage, status, strings.TrimSpace(string(retrieveErr.Body)), err)
	}

	return domainerrors.NewUpstreamError(providerName, stage, 0, "", err)
}
