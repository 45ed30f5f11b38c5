package usecase

import (
	"context"
	"time"
)

// DeletionOutcome is the result of deleting one file or object.
type DeletionOutcome struct {
	Target  string `json:"target"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// DeletionReport collects the outcomes of one cleanup domain.
type DeletionReport struct {
	Scanned  int               `json:"scanned"`
	Deleted  int               `json:"deleted"`
	Failed   int               `json:"failed"`
	Outcomes []DeletionOutcome `json:"outcomes"`
	ScanErr  string            `json:"scan_error,omitempty"`
}

// CleanupReport is the result of PerformCleanup.
type CleanupReport struct {
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	TempFiles  DeletionReport `json:"temp_files"`
	Objects    DeletionReport `json:"objects"`
}

// PruneReport is the result of PruneCaches.
type PruneReport struct {
	InterpretationsDeleted int64 `json:"interpretations_deleted"`
	LandingPagesDeleted    int64 `json:"landing_pages_deleted"`
}

// CleanupUsecase removes files the pipeline left behind.
type CleanupUsecase interface {
	// ScanTempFiles returns temp files older than the max age.
	ScanTempFiles(ctx context.Context) ([]string, error)

	// ScanObjects returns keys of bucket objects older than the max age.
	// Objects without a creation time are never returned.
	ScanObjects(ctx context.Context) ([]string, error)

	CleanupTempFiles(ctx context.Context, paths []string) DeletionReport
	CleanupObjects(ctx context.Context, keys []string) DeletionReport

	// PerformCleanup scans and deletes both domains independently.
	PerformCleanup(ctx context.Context) *CleanupReport

	// PruneCaches deletes interpretations past the GC TTL and expired landing pages.
	PruneCaches(ctx context.Context) (*PruneReport, error)
}
