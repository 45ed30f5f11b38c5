package dropbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(tokenURL string) *config.Config {
	return &config.Config{
		Dropbox: &config.DropboxConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost:8080/cloud/oauth/callback",
			TokenURL:     tokenURL,
		},
	}
}

func TestNewOAuthProvider_RequiresClientCredentials(t *testing.T) {
	_, err := newOAuthProvider(&config.Config{}, http.DefaultClient)

	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestOAuthProvider_AuthCodeURL(t *testing.T) {
	provider, err := newOAuthProvider(newTestConfig(""), http.DefaultClient)
	require.NoError(t, err)

	parsed, err := url.Parse(provider.AuthCodeURL("state-123"))
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "www.dropbox.com", parsed.Host)
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Equal(t, "offline", query.Get("token_access_type"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Contains(t, query.Get("scope"), "files.content.read")
}

func TestOAuthProvider_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"token_type":    "bearer",
			"expires_in":    14400,
			"scope":         "files.content.read",
			"account_id":    "dbid:abc",
		})
	}))
	defer server.Close()

	provider, err := newOAuthProvider(newTestConfig(server.URL), server.Client())
	require.NoError(t, err)

	token, err := provider.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.Equal(t, "refresh-1", token.RefreshToken)
	assert.Equal(t, "dbid:abc", token.AccountID)
	assert.Equal(t, "files.content.read", token.Scope)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(4*time.Hour), *token.ExpiresAt, time.Minute)
}

func TestOAuthProvider_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-2",
			"token_type":   "bearer",
			"expires_in":   14400,
		})
	}))
	defer server.Close()

	provider, err := newOAuthProvider(newTestConfig(server.URL), server.Client())
	require.NoError(t, err)

	token, err := provider.Refresh(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "access-2", token.AccessToken)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(4*time.Hour), *token.ExpiresAt, time.Minute)
}

func TestOAuthProvider_RefreshFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"refresh token is malformed"}`))
	}))
	defer server.Close()

	provider, err := newOAuthProvider(newTestConfig(server.URL), server.Client())
	require.NoError(t, err)

	_, err = provider.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrTokenRefreshFailed)

	_, err = provider.Refresh(context.Background(), "revoked")
	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	assert.Equal(t, "token_refresh", upstreamErr.Stage)
	assert.Contains(t, upstreamErr.Body, "invalid_grant")
}
