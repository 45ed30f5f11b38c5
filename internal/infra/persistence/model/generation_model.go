package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GenerationContextDoc is the prompt context snapshot stored with a generation.
type GenerationContextDoc struct {
	ProjectName          string   `json:"projectName"`
	VariationCount       int      `json:"variationCount"`
	VariationType        string   `json:"variationType,omitempty"`
	AssetInterpretations []string `json:"assetInterpretations"`
	LandingPageContent   []string `json:"landingPageContent"`
}

// GenerationMetadataDoc describes the model call of a generation.
type GenerationMetadataDoc struct {
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	PromptTokens     int64   `json:"promptTokens"`
	CompletionTokens int64   `json:"completionTokens"`
	TotalTokens      int64   `json:"totalTokens"`
	ProcessingTimeMs int64   `json:"processingTimeMs"`
}

// GenerationModel mirrors the 'generations' table. Content holds the
// platform-shaped JSON document selected by Platform.
type GenerationModel struct {
	ID                 uuid.UUID                                 `gorm:"type:uuid;primary_key"`
	ProjectID          uuid.UUID                                 `gorm:"type:uuid;not null;index"`
	VariationNumber    int                                       `gorm:"not null"`
	Platform           string                                    `gorm:"type:varchar(20);not null"`
	VariationType      string                                    `gorm:"type:varchar(50);not null"`
	Content            datatypes.JSON                            `gorm:"not null"`
	Context            datatypes.JSONType[GenerationContextDoc]  `gorm:"column:context"`
	GenerationMetadata datatypes.JSONType[GenerationMetadataDoc] `gorm:"column:generation_metadata"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenerationModel) TableName() string {
	return "generations"
}

// BeforeCreate assigns the primary key.
func (m *GenerationModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// All lists every model for schema migration, parents first.
func All() []any {
	return []any{
		&CredentialModel{},
		&ProjectModel{},
		&AssetModel{},
		&InterpretationCacheModel{},
		&LandingPageCacheModel{},
		&PromptTemplateModel{},
		&GenerationModel{},
	}
}
