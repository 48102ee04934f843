package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a salaried staff member paid a monthly base amount.
type Employee struct {
	ID           string
	FullName     string
	Code         string
	Phone        *string
	SalaryAmount decimal.Decimal
	IsActive     bool
	PhotoURL     *string
	JoinedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
