package repository

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for project persistence.
var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *entity.Project) error
	FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	// FindProjectsByUser returns the user's projects newest first.
	FindProjectsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
	UpdateProject(ctx context.Context, project *entity.Project) error
	// UpdateStatus persists a status transition on its own.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProjectStatus) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
