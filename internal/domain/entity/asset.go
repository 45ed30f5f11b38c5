package entity

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a media file imported into a project from cloud storage.
type Asset struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	RemoteFileID string    `json:"remote_file_id"` // Cache identity, see RemoteFile.Key.
	FileName     string    `json:"file_name"`
	FileType     FileType  `json:"file_type"`
	MimeType     string    `json:"mime_type"`
	FileSize     int64     `json:"file_size"`
	RemotePath   string    `json:"remote_path"`
	LocalPath    string    `json:"-"` // Ephemeral, only set while the asset is being processed.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
