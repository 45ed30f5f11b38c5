package service

import (
	"context"
	"time"
)

// ObjectInfo describes an object in the managed bucket.
type ObjectInfo struct {
	Key       string
	URI       string
	Size      int64
	CreatedAt *time.Time // Nil when the backend does not report creation time.
}

// ObjectStore is the managed remote bucket used for long audio uploads.
type ObjectStore interface {
	// Upload writes data under key and returns the object URI understood by the speech service.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

// TempFileInfo describes a file in the managed temp directory.
type TempFileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// TempStore is the managed local temp directory. It is created lazily.
type TempStore interface {
	// Write stores data under a random unique name keeping ext, and returns the path.
	Write(data []byte, ext string) (string, error)
	// NewPath reserves a random unique path with ext without creating the file.
	NewPath(ext string) (string, error)
	List() ([]TempFileInfo, error)
	Remove(path string) error
}
