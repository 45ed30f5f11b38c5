package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialModel mirrors the 'cloud_credentials' table.
type CredentialModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_credentials_user_provider"`
	Provider             string     `gorm:"type:varchar(50);not null;index:idx_credentials_user_provider"`
	ProviderAccountID    string     `gorm:"type:varchar(255);not null"`
	ProviderAccountEmail string     `gorm:"type:varchar(255)"`
	AccessToken          string     `gorm:"type:text;not null"`
	RefreshToken         string     `gorm:"type:text"`
	TokenExpiresAt       *time.Time `gorm:"index"`
	Scope                string     `gorm:"type:text"`
	IsActive             bool       `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "cloud_credentials"
}

// BeforeCreate assigns the primary key.
func (m *CredentialModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
