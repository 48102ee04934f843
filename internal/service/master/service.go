package master

import (
	"context"
	"fmt"

	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

// MasterService manages the product and operation masters.
type MasterService interface {
	CreateProduct(ctx context.Context, req production.CreateProductRequest) (production.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (production.ProductResponse, error)
	ListProducts(ctx context.Context, filter production.ProductFilter) ([]production.ProductResponse, int64, error)
	UpdateProduct(ctx context.Context, req production.UpdateProductRequest) (production.ProductResponse, error)

	CreateOperation(ctx context.Context, req production.CreateOperationRequest) (production.OperationResponse, error)
	GetOperation(ctx context.Context, id string) (production.OperationResponse, error)
	ListOperations(ctx context.Context, productID string, activeOnly bool) ([]production.OperationResponse, error)
	UpdateOperation(ctx context.Context, req production.UpdateOperationRequest) (production.OperationResponse, error)
}

type MasterServiceImpl struct {
	db *database.DB
	production.ProductRepository
	production.OperationRepository
}

func NewMasterService(
	db *database.DB,
	productRepo production.ProductRepository,
	operationRepo production.OperationRepository,
) MasterService {
	return &MasterServiceImpl{
		db:                  db,
		ProductRepository:   productRepo,
		OperationRepository: operationRepo,
	}
}

// CreateProduct implements MasterService.
func (s *MasterServiceImpl) CreateProduct(ctx context.Context, req production.CreateProductRequest) (production.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return production.ProductResponse{}, err
	}

	created, err := s.ProductRepository.Create(ctx, production.Product{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		IsActive:    true,
	})
	if err != nil {
		return production.ProductResponse{}, err
	}

	return mapProductToResponse(created), nil
}

// GetProduct implements MasterService.
func (s *MasterServiceImpl) GetProduct(ctx context.Context, id string) (production.ProductResponse, error) {
	p, err := s.ProductRepository.GetByID(ctx, id)
	if err != nil {
		return production.ProductResponse{}, err
	}
	return mapProductToResponse(p), nil
}

// ListProducts implements MasterService.
func (s *MasterServiceImpl) ListProducts(ctx context.Context, filter production.ProductFilter) ([]production.ProductResponse, int64, error) {
	products, total, err := s.ProductRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]production.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, mapProductToResponse(p))
	}

	return responses, total, nil
}

// UpdateProduct implements MasterService.
func (s *MasterServiceImpl) UpdateProduct(ctx context.Context, req production.UpdateProductRequest) (production.ProductResponse, error) {
	existing, err := s.ProductRepository.GetByID(ctx, req.ID)
	if err != nil {
		return production.ProductResponse{}, err
	}

	if req.Name != nil && *req.Name != "" {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.ProductRepository.Update(ctx, existing); err != nil {
		return production.ProductResponse{}, err
	}

	return mapProductToResponse(existing), nil
}

// CreateOperation implements MasterService.
func (s *MasterServiceImpl) CreateOperation(ctx context.Context, req production.CreateOperationRequest) (production.OperationResponse, error) {
	if err := req.Validate(); err != nil {
		return production.OperationResponse{}, err
	}

	if _, err := s.ProductRepository.GetByID(ctx, req.ProductID); err != nil {
		return production.OperationResponse{}, err
	}

	created, err := s.OperationRepository.Create(ctx, production.Operation{
		ProductID:      req.ProductID,
		Name:           req.Name,
		Code:           req.Code,
		AmountPerPiece: req.AmountPerPiece,
		IsActive:       true,
	})
	if err != nil {
		return production.OperationResponse{}, err
	}

	return mapOperationToResponse(created), nil
}

// GetOperation implements MasterService.
func (s *MasterServiceImpl) GetOperation(ctx context.Context, id string) (production.OperationResponse, error) {
	op, err := s.OperationRepository.GetByID(ctx, id)
	if err != nil {
		return production.OperationResponse{}, err
	}
	return mapOperationToResponse(op), nil
}

// ListOperations implements MasterService.
func (s *MasterServiceImpl) ListOperations(ctx context.Context, productID string, activeOnly bool) ([]production.OperationResponse, error) {
	operations, err := s.OperationRepository.ListByProduct(ctx, productID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	responses := make([]production.OperationResponse, 0, len(operations))
	for _, op := range operations {
		responses = append(responses, mapOperationToResponse(op))
	}

	return responses, nil
}

// UpdateOperation implements MasterService.
func (s *MasterServiceImpl) UpdateOperation(ctx context.Context, req production.UpdateOperationRequest) (production.OperationResponse, error) {
	existing, err := s.OperationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return production.OperationResponse{}, err
	}

	if req.Name != nil && *req.Name != "" {
		existing.Name = *req.Name
	}
	if req.AmountPerPiece != nil {
		if req.AmountPerPiece.IsNegative() {
			return production.OperationResponse{}, fmt.Errorf("amount per piece must be non-negative")
		}
		existing.AmountPerPiece = *req.AmountPerPiece
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.OperationRepository.Update(ctx, existing); err != nil {
		return production.OperationResponse{}, err
	}

	return mapOperationToResponse(existing), nil
}

func mapProductToResponse(p production.Product) production.ProductResponse {
	return production.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		IsActive:    p.IsActive,
	}
}

func mapOperationToResponse(op production.Operation) production.OperationResponse {
	return production.OperationResponse{
		ID:             op.ID,
		ProductID:      op.ProductID,
		ProductName:    op.ProductName,
		Name:           op.Name,
		Code:           op.Code,
		AmountPerPiece: op.AmountPerPiece,
		IsActive:       op.IsActive,
	}
}
