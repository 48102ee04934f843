package piecework

import (
	"context"
	"time"
)

// WorkerSalaryRepository defines data access for piece-rate transactions.
type WorkerSalaryRepository interface {
	Create(ctx context.Context, ws WorkerSalary) (WorkerSalary, error)

	GetByID(ctx context.Context, id string) (WorkerSalary, error)

	List(ctx context.Context, filter WorkerSalaryFilter) ([]WorkerSalary, int64, error)

	// ListRange returns all records in [from, to] without pagination, for
	// aggregation and reporting.
	ListRange(ctx context.Context, from, to time.Time) ([]WorkerSalary, error)

	MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error)

	Delete(ctx context.Context, id string) error
}
