package dropbox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newClient(&config.Config{
		Dropbox: &config.DropboxConfig{
			APIBaseURL:     server.URL + "/2",
			ContentBaseURL: server.URL + "/2/",
		},
	}, server.Client())
}

func TestClient_ListFolderAndContinue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/2/files/list_folder":
			assert.Equal(t, "", body["path"])
			assert.Equal(t, true, body["recursive"])
			_, _ = io.WriteString(w, `{
				"entries": [
					{".tag": "folder", "id": "id:dir", "name": "ads", "path_display": "/ads"},
					{".tag": "file", "id": "id:1", "name": "Hero.JPG", "path_display": "/ads/Hero.JPG",
					 "size": 2048, "content_hash": "abc", "server_modified": "2024-05-01T10:00:00Z", "is_downloadable": true,
					 "media_info": {".tag": "metadata", "metadata": {".tag": "photo", "dimensions": {"width": 800, "height": 600}}}}
				],
				"cursor": "cursor-1",
				"has_more": true
			}`)
		case "/2/files/list_folder/continue":
			assert.Equal(t, "cursor-1", body["cursor"])
			_, _ = io.WriteString(w, `{
				"entries": [
					{".tag": "file", "id": "id:2", "name": "clip.mp4", "path_display": "/ads/clip.mp4", "size": 4096,
					 "is_downloadable": false,
					 "media_info": {".tag": "metadata", "metadata": {".tag": "video", "duration": 42000}}}
				],
				"cursor": "cursor-2",
				"has_more": false
			}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	page, err := client.ListFolder(context.Background(), "token-1", "/", true)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.True(t, page.HasMore)
	assert.Equal(t, "cursor-1", page.Cursor)

	hero := page.Entries[0]
	assert.Equal(t, "id:1", hero.ID)
	assert.Equal(t, "/ads/Hero.JPG", hero.Path)
	assert.True(t, hero.IsDownloadable)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), hero.ServerModifiedAt)
	require.NotNil(t, hero.MediaInfo)
	assert.Equal(t, 800, hero.MediaInfo.Width)

	next, err := client.ListFolderContinue(context.Background(), "token-1", page.Cursor)
	require.NoError(t, err)
	require.Len(t, next.Entries, 1)
	assert.False(t, next.HasMore)
	assert.False(t, next.Entries[0].IsDownloadable)
	assert.Equal(t, 42*time.Second, next.Entries[0].MediaInfo.Duration)
}

func TestClient_ListFolderUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"error_summary": "path/not_found/..", "error": {".tag": "path", "path": {".tag": "not_found"}}}`)
	})

	_, err := client.ListFolder(context.Background(), "token-1", "/missing", false)

	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusConflict, upstreamErr.StatusCode)
	assert.Equal(t, "list_folder", upstreamErr.Stage)
	assert.Contains(t, upstreamErr.Body, "path/not_found")
}

func TestClient_Download(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/download", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Dropbox-API-Arg"), `"path":"/ads/caf\u00e9.png"`)
		_, _ = w.Write([]byte("png-bytes"))
	})

	data, err := client.Download(context.Background(), "token-1", "/ads/café.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestClient_GetCurrentAccount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/users/get_current_account", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"account_id": "dbid:abc",
			"email": "ada@example.com",
			"email_verified": true,
			"disabled": false,
			"locale": "en",
			"referral_link": "https://db.tt/abc",
			"is_paired": false,
			"account_type": {".tag": "basic"},
			"root_info": {".tag": "user", "root_namespace_id": "1", "home_namespace_id": "1"},
			"name": {"display_name": "Ada", "given_name": "Ada", "surname": "L", "familiar_name": "Ada", "abbreviated_name": "AL"}
		}`)
	})

	account, err := client.GetCurrentAccount(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "dbid:abc", account.AccountID)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.Equal(t, "Ada", account.Name)
}

func TestClient_GetMetadataRejectsFolders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{".tag": "folder", "id": "id:dir", "name": "ads", "path_display": "/ads"}`)
	})

	_, err := client.GetMetadata(context.Background(), "token-1", "/ads")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestClient_UnauthorizedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error_summary": "expired_access_token/..", "error": {".tag": "expired_access_token"}}`)
	})

	_, err := client.GetCurrentAccount(context.Background(), "stale")

	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Equal(t, "get_current_account", upstreamErr.Stage)
}

func TestClient_HonorsContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"entries": [], "cursor": "c", "has_more": false}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListFolder(ctx, "token-1", "", false)

	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Zero(t, upstreamErr.StatusCode)
	assert.ErrorIs(t, err, context.Canceled)
}
