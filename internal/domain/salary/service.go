package salary

import (
	"context"
	"time"
)

// SalaryService defines business logic for monthly salary management.
type SalaryService interface {
	// ReconcileMonth derives/updates every active employee's salary row for the
	// month of referenceDate. Safe to re-run; never touches paid rows.
	ReconcileMonth(ctx context.Context, referenceDate time.Time) ([]ReconcileResult, error)

	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)

	Update(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)

	Get(ctx context.Context, id string) (SalaryResponse, error)

	ListByMonth(ctx context.Context, salaryMonth string, filter SalaryFilter) ([]SalaryResponse, int64, error)

	MarkPaid(ctx context.Context, req MarkPaidRequest) (MarkPaidResult, error)

	Delete(ctx context.Context, id string) error
}
