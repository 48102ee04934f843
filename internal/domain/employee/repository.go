package employee

import "context"

// EmployeeRepository defines data access for salaried employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActive returns all active employees without pagination; the monthly
	// reconciler iterates this set.
	GetActive(ctx context.Context) ([]Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	Update(ctx context.Context, emp Employee) error

	SetActive(ctx context.Context, id string, active bool) error
}
