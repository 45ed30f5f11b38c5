package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name            string                      `gorm:"type:varchar(255);not null"`
	Platform        string                      `gorm:"type:varchar(20);not null"`
	LandingPageURLs datatypes.JSONSlice[string] `gorm:"column:landing_page_urls"`
	SystemPrompt    string                      `gorm:"type:text"`
	VariationCount  int                         `gorm:"not null;default:3"`
	Status          string                      `gorm:"type:varchar(20);not null;default:draft"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Assets      []AssetModel      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Generations []GenerationModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// BeforeCreate assigns the primary key.
func (m *ProjectModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// AssetModel mirrors the 'assets' table. A remote file is imported at most once per project.
type AssetModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assets_project_remote_file"`
	RemoteFileID string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_assets_project_remote_file"`
	FileName     string    `gorm:"type:varchar(512);not null"`
	FileType     string    `gorm:"type:varchar(20);not null"`
	MimeType     string    `gorm:"type:varchar(100);not null"`
	FileSize     int64     `gorm:"not null;default:0"`
	RemotePath   string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// BeforeCreate assigns the primary key.
func (m *AssetModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
