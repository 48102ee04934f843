package salary

import "errors"

var (
	ErrSalaryNotFound     = errors.New("salary record not found")
	ErrSalaryExists       = errors.New("salary record already exists for this month")
	ErrSalaryAlreadyPaid  = errors.New("salary record already paid, cannot modify")
	ErrInvalidSalaryMonth = errors.New("salary month must be in YYYY-MM format")
)
