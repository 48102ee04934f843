package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSalary is one employee's salary row for one month.
// (employee_id, salary_month) is unique; a paid row is locked against
// automated recompute.
type EmployeeSalary struct {
	ID          string
	EmployeeID  string
	SalaryMonth string // "2006-01"
	GrossSalary decimal.Decimal
	Advance     decimal.Decimal
	NetSalary   decimal.Decimal
	Paid        bool
	PaidDate    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// ReconcileStatus tags each employee's outcome in a reconciler run.
type ReconcileStatus string

const (
	ReconcileCreated     ReconcileStatus = "created"
	ReconcileUpdated     ReconcileStatus = "updated"
	ReconcileSkippedPaid ReconcileStatus = "skipped_paid"
	ReconcileError       ReconcileStatus = "error"
)

// ReconcileResult is the per-employee outcome of a monthly reconciliation run.
type ReconcileResult struct {
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         string          `json:"employee_name"`
	Status               ReconcileStatus `json:"status"`
	GrossSalary          decimal.Decimal `json:"gross_salary"`
	NetSalary            decimal.Decimal `json:"net_salary"`
	AttendanceIncomplete bool            `json:"attendance_incomplete,omitempty"`
	Error                string          `json:"error,omitempty"`
}
