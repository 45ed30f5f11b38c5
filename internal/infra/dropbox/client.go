package dropbox

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adcopy/config"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/auth"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/users"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const listFolderLimit = 2000

// Client wraps the Dropbox SDK for listing, download and metadata.
// The SDK is token-scoped, so a config is built per call.
type Client struct {
	httpClient     *http.Client
	apiBaseURL     string
	contentBaseURL string
}

// NewClient creates the Dropbox API client.
func NewClient(cfg *config.Config) service.CloudStorageClient {
	return newClient(cfg, &http.Client{Timeout: 2 * time.Minute})
}

func newClient(cfg *config.Config, httpClient *http.Client) *Client {
	client := &Client{httpClient: httpClient}
	if cfg.Dropbox != nil {
		client.apiBaseURL = strings.TrimRight(cfg.Dropbox.APIBaseURL, "/")
		client.contentBaseURL = strings.TrimRight(cfg.Dropbox.ContentBaseURL, "/")
	}

	return client
}

// sdkConfig builds the SDK config for one call. Requests carry ctx and the
// bearer token through the transport.
func (c *Client) sdkConfig(ctx context.Context, accessToken string) dropbox.Config {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	sdkCfg := dropbox.Config{
		Token:    accessToken,
		LogLevel: dropbox.LogOff,
		Client: &http.Client{
			Timeout: c.httpClient.Timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
				Base:   contextTransport{ctx: ctx, base: base},
			},
		},
	}
	if c.apiBaseURL != "" || c.contentBaseURL != "" {
		sdkCfg.URLGenerator = c.routeURL
	}

	return sdkCfg
}

// routeURL resolves an SDK route against the configured base URLs, which
// already carry the API version segment.
func (c *Client) routeURL(hostType, namespace, route string) string {
	base := c.apiBaseURL
	if hostType == "content" {
		base = c.contentBaseURL
	}
	if base == "" {
		base = "https://" + hostType + ".dropboxapi.com/2"
	}

	return fmt.Sprintf("%s/%s/%s", base, namespace, route)
}

// ListFolder returns the first page of a folder listing. The root folder is "".
func (c *Client) ListFolder(ctx context.Context, accessToken, path string, recursive bool) (*service.ListFolderPage, error) {
	arg := files.NewListFolderArg(rootAwarePath(path))
	arg.Recursive = recursive
	arg.IncludeMediaInfo = true
	arg.Limit = listFolderLimit

	res, err := files.New(c.sdkConfig(ctx, accessToken)).ListFolder(arg)
	if err != nil {
		return nil, toSDKError("list_folder", err)
	}

	return toListFolderPage(res), nil
}

// ListFolderContinue fetches the page after cursor.
func (c *Client) ListFolderContinue(ctx context.Context, accessToken, cursor string) (*service.ListFolderPage, error) {
	res, err := files.New(c.sdkConfig(ctx, accessToken)).ListFolderContinue(files.NewListFolderContinueArg(cursor))
	if err != nil {
		return nil, toSDKError("list_folder_continue", err)
	}

	return toListFolderPage(res), nil
}

// GetMetadata returns the metadata of a single file.
func (c *Client) GetMetadata(ctx context.Context, accessToken, path string) (*entity.RemoteFile, error) {
	arg := files.NewGetMetadataArg(path)
	arg.IncludeMediaInfo = true

	res, err := files.New(c.sdkConfig(ctx, accessToken)).GetMetadata(arg)
	if err != nil {
		return nil, toSDKError("get_metadata", err)
	}

	file, ok := res.(*files.FileMetadata)
	if !ok {
		return nil, domainerrors.ErrValidation.WrapMessage(fmt.Sprintf("%s is not a file", path))
	}

	return toRemoteFile(file), nil
}

// GetCurrentAccount describes the account the token belongs to.
func (c *Client) GetCurrentAccount(ctx context.Context, accessToken string) (*entity.ProviderAccount, error) {
	res, err := users.New(c.sdkConfig(ctx, accessToken)).GetCurrentAccount()
	if err != nil {
		return nil, toSDKError("get_current_account", err)
	}

	account := &entity.ProviderAccount{
		AccountID: res.AccountId,
		Email:     res.Email,
	}
	if res.Name != nil {
		account.Name = res.Name.DisplayName
	}

	return account, nil
}

// Download returns the raw content of the file at path.
func (c *Client) Download(ctx context.Context, accessToken, path string) ([]byte, error) {
	_, content, err := files.New(c.sdkConfig(ctx, accessToken)).Download(files.NewDownloadArg(path))
	if err != nil {
		return nil, toSDKError("download", err)
	}
	defer content.Close()

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(providerName, "download", 0, "", errors.Wrap(err, "failed to read file content"))
	}

	return data, nil
}

// contextTransport binds every outgoing request to ctx. The SDK builds its
// requests without one.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// toSDKError maps SDK failures onto the HTTP status Dropbox answered with.
// Route errors are always 409 Conflict.
func toSDKError(stage string, err error) error {
	status := 0
	body := ""
	switch e := err.(type) {
	case dropbox.SDKInternalError:
		status, body = e.StatusCode, e.Content
	case auth.AuthAPIError, *auth.AuthAPIError:
		status, body = http.StatusUnauthorized, err.Error()
	case auth.AccessAPIError, *auth.AccessAPIError:
		status, body = http.StatusForbidden, err.Error()
	case auth.RateLimitAPIError, *auth.RateLimitAPIError:
		status, body = http.StatusTooManyRequests, err.Error()
	case files.ListFolderAPIError, *files.ListFolderAPIError,
		files.ListFolderContinueAPIError, *files.ListFolderContinueAPIError,
		files.GetMetadataAPIError, *files.GetMetadataAPIError,
		files.DownloadAPIError, *files.DownloadAPIError:
		status, body = http.StatusConflict, err.Error()
	default:
		return domainerrors.NewUpstreamError(providerName, stage, 0, "", err)
	}

	return domainerrors.NewUpstreamError(providerName, stage, status, body, nil)
}

// --- Mapper Functions ---

func toListFolderPage(res *files.ListFolderResult) *service.ListFolderPage {
	page := &service.ListFolderPage{
		Entries: make([]entity.RemoteFile, 0, len(res.Entries)),
		Cursor:  res.Cursor,
		HasMore: res.HasMore,
	}
	for _, entry := range res.Entries {
		file, ok := entry.(*files.FileMetadata)
		if !ok {
			continue
		}
		page.Entries = append(page.Entries, *toRemoteFile(file))
	}

	return page
}

func toRemoteFile(meta *files.FileMetadata) *entity.RemoteFile {
	path := meta.PathDisplay
	if path == "" {
		path = meta.PathLower
	}

	file := &entity.RemoteFile{
		ID:               meta.Id,
		Name:             meta.Name,
		Path:             path,
		Size:             int64(meta.Size),
		ContentHash:      meta.ContentHash,
		IsDownloadable:   meta.IsDownloadable,
		ServerModifiedAt: meta.ServerModified.UTC(),
	}
	if meta.MediaInfo != nil && meta.MediaInfo.Metadata != nil {
		file.MediaInfo = toMediaInfo(meta.MediaInfo.Metadata)
	}

	return file
}

func toMediaInfo(metadata files.IsMediaMetadata) *entity.MediaInfo {
	info := &entity.MediaInfo{}
	var dims *files.Dimensions
	switch m := metadata.(type) {
	case *files.PhotoMetadata:
		dims = m.Dimensions
	case *files.VideoMetadata:
		dims = m.Dimensions
		info.Duration = time.Duration(m.Duration) * time.Millisecond
	default:
		return nil
	}
	if dims != nil {
		info.Width = int(dims.Width)
		info.Height = int(dims.Height)
	}

	return info
}

// rootAwarePath maps "/" to "", the only spelling of the root Dropbox accepts.
func rootAwarePath(path string) string {
	if path == "/" {
		return ""
	}

	return path
}
