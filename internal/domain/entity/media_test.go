package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileClassification(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		fileType FileType
		mime     string
	}{
		{name: "jpeg upper case", file: "Hero.JPG", fileType: FileTypeImage, mime: "image/jpeg"},
		{name: "png", file: "banner.png", fileType: FileTypeImage, mime: "image/png"},
		{name: "mov", file: "clip.mov", fileType: FileTypeVideo, mime: "video/quicktime"},
		{name: "pdf", file: "brief.pdf", fileType: FileTypeUnknown, mime: DefaultMimeType},
		{name: "no extension", file: "README", fileType: FileTypeUnknown, mime: DefaultMimeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fileType, FileTypeFromName(tt.file))
			assert.Equal(t, tt.mime, MimeTypeFromName(tt.file))
			assert.Equal(t, tt.fileType != FileTypeUnknown, IsSupportedMedia(tt.file))
		})
	}
}

func TestRemoteFile_Key(t *testing.T) {
	assert.Equal(t, "id:abc", RemoteFile{ID: "id:abc", Path: "/Ads/a.png"}.Key())
	assert.Equal(t, "/ads/a.png", RemoteFile{Path: " /Ads//a.png "}.Key())
	assert.Empty(t, NormalizePath("/"))
}

func TestCredential_ExpiresWithin(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	soon := now.Add(2 * time.Minute)
	later := now.Add(10 * time.Minute)

	assert.True(t, (&Credential{TokenExpiresAt: &soon}).ExpiresWithin(now, 5*time.Minute))
	assert.False(t, (&Credential{TokenExpiresAt: &later}).ExpiresWithin(now, 5*time.Minute))
	assert.False(t, (&Credential{}).ExpiresWithin(now, 5*time.Minute))
}
