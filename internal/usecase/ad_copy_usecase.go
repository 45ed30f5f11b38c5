package usecase

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// GenerationOutput is the result of a successful project run.
type GenerationOutput struct {
	ProjectID   uuid.UUID                  `json:"project_id"`
	Status      entity.ProjectStatus       `json:"status"`
	Generations []*entity.GenerationRecord `json:"generations"`
}

// AdCopyUsecase runs ad copy generation for a project.
type AdCopyUsecase interface {
	// GenerateAdCopy gathers context, renders one prompt per variation, calls
	// the model and persists the variations. Any error leaves the project failed.
	GenerateAdCopy(ctx context.Context, userID, projectID uuid.UUID) (*GenerationOutput, error)

	// RequestGeneration queues a generation for the worker.
	RequestGeneration(ctx context.Context, userID, projectID uuid.UUID) error

	// ListGenerations returns the persisted variations of a project.
	ListGenerations(ctx context.Context, userID, projectID uuid.UUID) ([]*entity.GenerationRecord, error)
}
