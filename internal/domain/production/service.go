package production

import "context"

// ProductionService defines business logic for production orders.
type ProductionService interface {
	Create(ctx context.Context, req CreateProductionRequest) (ProductionResponse, error)

	Get(ctx context.Context, id string) (ProductionResponse, error)

	List(ctx context.Context, filter ProductionFilter) ([]ProductionResponse, int64, error)

	UpdateStatus(ctx context.Context, id string, status string) error
}
