package repository

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// GenerationRepository defines the interface for generation record persistence.
type GenerationRepository interface {
	// CreateGenerations inserts the records of one project run.
	CreateGenerations(ctx context.Context, records []*entity.GenerationRecord) error

	// FindGenerationsByProject returns records ordered by variation number.
	FindGenerationsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.GenerationRecord, error)

	// DeleteGenerationsByProject removes every record of the project.
	DeleteGenerationsByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}
