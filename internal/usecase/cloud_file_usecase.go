package usecase

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// DownloadedFile is a remote file held in memory and mirrored to a temp file.
// The caller owns TempPath and must remove it.
type DownloadedFile struct {
	Data     []byte
	TempPath string
}

// CloudFileUsecase is the gateway to the user's connected cloud storage.
type CloudFileUsecase interface {
	// ListFiles lists supported media under folderPath, following the cursor until exhausted.
	ListFiles(ctx context.Context, userID uuid.UUID, folderPath string, recursive bool) ([]entity.RemoteFile, error)

	// DownloadFile downloads remotePath into memory and a managed temp file.
	DownloadFile(ctx context.Context, userID uuid.UUID, remotePath string) (*DownloadedFile, error)

	// GetFileMetadata returns the metadata of a single file.
	GetFileMetadata(ctx context.Context, userID uuid.UUID, remotePath string) (*entity.RemoteFile, error)
}
