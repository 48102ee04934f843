package production

import "context"

// ProductRepository defines data access for the product master.
type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)

	GetByID(ctx context.Context, id string) (Product, error)

	List(ctx context.Context, filter ProductFilter) ([]Product, int64, error)

	Update(ctx context.Context, p Product) error

	SetActive(ctx context.Context, id string, active bool) error
}

// OperationRepository defines data access for the per-product operation master.
type OperationRepository interface {
	Create(ctx context.Context, op Operation) (Operation, error)

	GetByID(ctx context.Context, id string) (Operation, error)

	ListByProduct(ctx context.Context, productID string, activeOnly bool) ([]Operation, error)

	Update(ctx context.Context, op Operation) error

	SetActive(ctx context.Context, id string, active bool) error
}

// ProductionRepository defines data access for production orders and their
// per-operation piece counters.
type ProductionRepository interface {
	Create(ctx context.Context, p Production) (Production, error)

	GetByID(ctx context.Context, id string) (Production, error)

	List(ctx context.Context, filter ProductionFilter) ([]Production, int64, error)

	UpdateStatus(ctx context.Context, id string, status ProductionStatus) error

	CreateOperationRow(ctx context.Context, row ProductionOperation) (ProductionOperation, error)

	ListOperationRows(ctx context.Context, productionID string) ([]ProductionOperation, error)

	// AddPieces increments the pieces counter of one operation row.
	AddPieces(ctx context.Context, productionID, operationID string, pieces int) error
}
