package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRepository defines data access for monthly employee salary rows.
type SalaryRepository interface {
	GetByID(ctx context.Context, id string) (EmployeeSalary, error)

	GetByEmployeeAndMonth(ctx context.Context, employeeID, salaryMonth string) (EmployeeSalary, error)

	// InsertIfAbsent inserts on the natural key with ON CONFLICT DO NOTHING and
	// reports whether a row was actually inserted.
	InsertIfAbsent(ctx context.Context, s EmployeeSalary) (EmployeeSalary, bool, error)

	UpdateAmounts(ctx context.Context, id string, gross, advance, net decimal.Decimal) error

	ListByMonth(ctx context.Context, salaryMonth string, filter SalaryFilter) ([]EmployeeSalary, int64, error)

	MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error)

	Delete(ctx context.Context, id string) error
}
