package worker

import (
	"time"
)

// Worker is a piece-rate worker paid per completed operation piece.
type Worker struct {
	ID        string
	FullName  string
	Code      string
	Phone     *string
	IsActive  bool
	PhotoURL  *string
	JoinedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
