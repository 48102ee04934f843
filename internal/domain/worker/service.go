package worker

import "context"

// WorkerService defines business logic for worker management.
type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	Get(ctx context.Context, id string) (WorkerResponse, error)

	List(ctx context.Context, filter WorkerFilter) ([]WorkerResponse, int64, error)

	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	SetActive(ctx context.Context, id string, active bool) error

	SetPhoto(ctx context.Context, id string, photoURL string) error
}
