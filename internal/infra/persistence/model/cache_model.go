package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InterpretationCacheModel mirrors the 'content_interpretations' table.
type InterpretationCacheModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	RemoteFileID     string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	FileType         string    `gorm:"type:varchar(20);not null"`
	Interpretation   string    `gorm:"type:text;not null"`
	ProcessingMethod string    `gorm:"type:varchar(30);not null"`
	Metadata         datatypes.JSONMap
	CreatedAt        time.Time
	UpdatedAt        time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InterpretationCacheModel) TableName() string {
	return "content_interpretations"
}

// BeforeCreate assigns the primary key.
func (m *InterpretationCacheModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// LandingPageMetadata is the JSON document stored in landing_page_cache.metadata.
type LandingPageMetadata struct {
	Description   string    `json:"description,omitempty"`
	Keywords      []string  `json:"keywords"`
	OGTitle       string    `json:"ogTitle,omitempty"`
	OGDescription string    `json:"ogDescription,omitempty"`
	ScrapedAt     time.Time `json:"scrapedAt"`
}

// LandingPageCacheModel mirrors the 'landing_page_cache' table.
type LandingPageCacheModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	URL       string    `gorm:"column:url;type:text;not null;uniqueIndex"`
	Title     string    `gorm:"type:text"`
	Content   string    `gorm:"type:text;not null"`
	Metadata  datatypes.JSONType[LandingPageMetadata]
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LandingPageCacheModel) TableName() string {
	return "landing_page_cache"
}

// BeforeCreate assigns the primary key.
func (m *LandingPageCacheModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
