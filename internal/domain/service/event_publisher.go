package service

import (
	"context"
)

// GenerationRequestedEvent asks the worker to run ad copy generation for a project.
type GenerationRequestedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishGenerationRequested publishes a generation request for async processing
	PublishGenerationRequested(ctx context.Context, event *GenerationRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
