package entity

import (
	"path"
	"strings"
	"time"
)

// FileType classifies a media asset.
type FileType string

const (
	FileTypeImage   FileType = "image"
	FileTypeVideo   FileType = "video"
	FileTypeUnknown FileType = "unknown"
)

// DefaultMimeType is returned for extensions outside the allow-list.
const DefaultMimeType = "application/octet-stream"

var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".heic": "image/heic",
}

var videoMimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
}

// RemoteFile is a file entry returned by a storage provider listing. It is never persisted.
type RemoteFile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Path             string     `json:"path"`
	Size             int64      `json:"size"`
	ContentHash      string     `json:"content_hash,omitempty"`
	ServerModifiedAt time.Time  `json:"server_modified_at"`
	IsDownloadable   bool       `json:"is_downloadable"`
	MediaInfo        *MediaInfo `json:"media_info,omitempty"`
}

// MediaInfo carries optional provider-side media metadata.
type MediaInfo struct {
	Width    int           `json:"width,omitempty"`
	Height   int           `json:"height,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Key returns the identity used by the interpretation cache: the provider
// file id, or the normalized path when the provider omitted an id.
func (f RemoteFile) Key() string {
	if f.ID != "" {
		return f.ID
	}

	return NormalizePath(f.Path)
}

// FileType classifies the file by its name.
func (f RemoteFile) FileType() FileType {
	return FileTypeFromName(f.Name)
}

// NormalizePath lower-cases a provider path and forces a single leading slash.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	cleaned := path.Clean("/" + strings.ToLower(p))
	if cleaned == "/" {
		return ""
	}

	return cleaned
}

// FileTypeFromName classifies a file by extension.
func FileTypeFromName(name string) FileType {
	ext := strings.ToLower(path.Ext(name))
	if _, ok := imageMimeTypes[ext]; ok {
		return FileTypeImage
	}
	if _, ok := videoMimeTypes[ext]; ok {
		return FileTypeVideo
	}

	return FileTypeUnknown
}

// MimeTypeFromName resolves the mime type from the extension.
func MimeTypeFromName(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if mime, ok := imageMimeTypes[ext]; ok {
		return mime
	}
	if mime, ok := videoMimeTypes[ext]; ok {
		return mime
	}

	return DefaultMimeType
}

// IsSupportedMedia reports whether the name carries an allow-listed image or video extension.
func IsSupportedMedia(name string) bool {
	return FileTypeFromName(name) != FileTypeUnknown
}
