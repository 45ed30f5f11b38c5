package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PromptSectionDoc is one element of prompt_templates.sections.
type PromptSectionDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Editable bool   `json:"editable"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

// PromptTemplateModel mirrors the 'prompt_templates' table.
// The partial unique index keeps a single default per platform and prompt type.
type PromptTemplateModel struct {
	ID           uuid.UUID                             `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID                             `gorm:"type:uuid;not null;index"`
	Name         string                                `gorm:"type:varchar(255);not null"`
	PromptType   string                                `gorm:"type:varchar(50);not null;uniqueIndex:idx_prompt_templates_default,where:is_default = true"`
	Platform     string                                `gorm:"type:varchar(20);not null;uniqueIndex:idx_prompt_templates_default,where:is_default = true"`
	IsDefault    bool                                  `gorm:"not null"`
	SystemPrompt string                                `gorm:"type:text"`
	Sections     datatypes.JSONSlice[PromptSectionDoc] `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromptTemplateModel) TableName() string {
	return "prompt_templates"
}

// BeforeCreate assigns the primary key.
func (m *PromptTemplateModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
