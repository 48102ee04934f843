package piecework

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerSalary is one piece-rate transaction: a worker did N pieces of an
// operation on a date. total_amount = pieces_done * amount_per_piece unless
// explicitly overridden at entry time.
type WorkerSalary struct {
	ID             string
	WorkerID       string
	OperationID    string
	ProductID      string
	Date           time.Time
	PiecesDone     int
	AmountPerPiece decimal.Decimal
	TotalAmount    decimal.Decimal
	Paid           bool
	PaidDate       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	WorkerName    *string
	OperationName *string
	ProductName   *string
}

// WorkerAggregate sums a worker's records over a period. Paid is the AND of
// every contributing record's paid flag.
type WorkerAggregate struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name,omitempty"`
	TotalPieces int             `json:"total_pieces"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Paid        bool            `json:"paid"`
}

// OperationExpense is the cost/pieces sum for one operation display name.
type OperationExpense struct {
	Cost   decimal.Decimal `json:"cost"`
	Pieces int             `json:"pieces"`
}
