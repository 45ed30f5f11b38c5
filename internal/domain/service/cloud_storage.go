package service

import (
	"context"

	"adcopy/internal/domain/entity"
)

// ListFolderPage is one page of a cursor-paginated folder listing.
// Entries holds files only; folders are dropped by the client.
type ListFolderPage struct {
	Entries []entity.RemoteFile
	Cursor  string
	HasMore bool
}

// CloudStorageClient is the raw API of a cloud storage provider.
// Non-2xx responses are returned as *errors.UpstreamError.
type CloudStorageClient interface {
	ListFolder(ctx context.Context, accessToken, path string, recursive bool) (*ListFolderPage, error)
	ListFolderContinue(ctx context.Context, accessToken, cursor string) (*ListFolderPage, error)
	Download(ctx context.Context, accessToken, path string) ([]byte, error)
	GetMetadata(ctx context.Context, accessToken, path string) (*entity.RemoteFile, error)
	GetCurrentAccount(ctx context.Context, accessToken string) (*entity.ProviderAccount, error)
}
