package worker

import "context"

// WorkerRepository defines data access for piece-rate workers.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	// GetActive returns all active workers without pagination, for dropdowns
	// and bulk attendance entry.
	GetActive(ctx context.Context) ([]Worker, error)

	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)

	Update(ctx context.Context, w Worker) error

	SetActive(ctx context.Context, id string, active bool) error
}
