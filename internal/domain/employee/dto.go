package employee

import (
	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string          `json:"full_name"`
	Code         string          `json:"code"`
	Phone        *string         `json:"phone,omitempty"`
	SalaryAmount decimal.Decimal `json:"salary_amount"`
	JoinedAt     *string         `json:"joined_at,omitempty"` // "2006-01-02"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-20 chars of A-Z, 0-9 or dash"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if r.SalaryAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_amount", Message: "must be non-negative"})
	}
	if r.JoinedAt != nil {
		if _, ok := validator.IsValidDate(*r.JoinedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "joined_at", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	FullName     *string          `json:"full_name,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	SalaryAmount *decimal.Decimal `json:"salary_amount,omitempty"`
	JoinedAt     *string          `json:"joined_at,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.SalaryAmount != nil && r.SalaryAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_amount", Message: "must be non-negative"})
	}
	if r.JoinedAt != nil {
		if _, ok := validator.IsValidDate(*r.JoinedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "joined_at", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	FullName     string          `json:"full_name"`
	Code         string          `json:"code"`
	Phone        *string         `json:"phone,omitempty"`
	SalaryAmount decimal.Decimal `json:"salary_amount"`
	IsActive     bool            `json:"is_active"`
	PhotoURL     *string         `json:"photo_url,omitempty"`
	JoinedAt     *string         `json:"joined_at,omitempty"`
}

type EmployeeFilter struct {
	Search    *string
	IsActive  *bool
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
