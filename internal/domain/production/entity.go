package production

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a garment style master (shirt, trouser, ...).
type Product struct {
	ID          string
	Name        string
	Code        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Operation is a production step for a product with its piece rate.
type Operation struct {
	ID             string
	ProductID      string
	Name           string
	Code           string
	AmountPerPiece decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	ProductName *string
}

type ProductionStatus string

const (
	ProductionStatusOpen      ProductionStatus = "open"
	ProductionStatusCompleted ProductionStatus = "completed"
	ProductionStatusCancelled ProductionStatus = "cancelled"
)

// Production is an order for a quantity of a product.
type Production struct {
	ID            string
	ProductID     string
	OrderNo       string
	TotalQuantity int
	Status        ProductionStatus
	StartDate     *time.Time
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ProductName *string
}

// ProductionOperation accumulates pieces done for one operation of one production.
type ProductionOperation struct {
	ID           string
	ProductionID string
	OperationID  string
	PiecesDone   int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	OperationName *string
	OperationCode *string
}
