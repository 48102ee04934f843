package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	SetActive(ctx context.Context, id string, active bool) error

	SetPhoto(ctx context.Context, id string, photoURL string) error
}
