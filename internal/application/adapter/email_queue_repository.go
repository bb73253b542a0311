package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns up to limit jobs that are ready to be processed,
	// oldest scheduled first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// FindByID retrieves an email job by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)
}
