package salary

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/pkg/validator"
)

type CreateSalaryRequest struct {
	EmployeeID  string          `json:"employee_id"`
	SalaryMonth string          `json:"salary_month"` // "2006-01"
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Advance     decimal.Decimal `json:"advance"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.SalaryMonth); !ok {
		errs = append(errs, validator.ValidationError{Field: "salary_month", Message: "must be YYYY-MM"})
	}
	if r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "must be non-negative"})
	}
	if r.Advance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	ID          string
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	Advance     *decimal.Decimal `json:"advance,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossSalary != nil && r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "must be non-negative"})
	}
	if r.Advance != nil && r.Advance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkPaidRequest flips salary rows to paid. Ids are UUID-validated before
// any write; the paid transition is one-way.
type MarkPaidRequest struct {
	IDs []string `json:"ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one id is required"})
	}
	for i, id := range r.IDs {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, validator.ValidationError{Field: "ids[" + validator.Itoa(i) + "]", Message: "is not a valid UUID"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidResult struct {
	Requested int64 `json:"requested"`
	Affected  int64 `json:"affected"`
	Skipped   int64 `json:"skipped"`
}

type SalaryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	EmployeeCode string          `json:"employee_code,omitempty"`
	SalaryMonth  string          `json:"salary_month"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Advance      decimal.Decimal `json:"advance"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Paid         bool            `json:"paid"`
	PaidDate     *string         `json:"paid_date,omitempty"`
}

type SalaryFilter struct {
	EmployeeID *string
	Paid       *bool
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type ReconcileRequest struct {
	// ReferenceDate defaults to today when absent.
	ReferenceDate *string `json:"reference_date,omitempty"` // "2006-01-02"
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReferenceDate != nil {
		if _, ok := validator.IsValidDate(*r.ReferenceDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "reference_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
