package user

import (
	"time"
)

// User is an application account, optionally tied to an employee row.
type User struct {
	ID           string
	EmployeeID   *string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
