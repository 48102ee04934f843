package production

import (
	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/pkg/validator"
)

// ========== PRODUCT DTOs ==========

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-20 chars of A-Z, 0-9 or dash"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID          string
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type ProductFilter struct {
	Search    *string
	IsActive  *bool
	Page      int
	Limit     int
	SortOrder string
}

// ========== OPERATION DTOs ==========

type CreateOperationRequest struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	AmountPerPiece decimal.Decimal `json:"amount_per_piece"`
}

func (r *CreateOperationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{Field: "product_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-20 chars of A-Z, 0-9 or dash"})
	}
	if r.AmountPerPiece.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount_per_piece", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOperationRequest struct {
	ID             string
	Name           *string          `json:"name,omitempty"`
	AmountPerPiece *decimal.Decimal `json:"amount_per_piece,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

type OperationResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ProductName    *string         `json:"product_name,omitempty"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	AmountPerPiece decimal.Decimal `json:"amount_per_piece"`
	IsActive       bool            `json:"is_active"`
}

// ========== PRODUCTION DTOs ==========

type CreateProductionRequest struct {
	ProductID     string  `json:"product_id"`
	OrderNo       string  `json:"order_no"`
	TotalQuantity int     `json:"total_quantity"`
	StartDate     *string `json:"start_date,omitempty"` // "2006-01-02"
	DueDate       *string `json:"due_date,omitempty"`
}

func (r *CreateProductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{Field: "product_id", Message: "is required"})
	}
	if validator.IsEmpty(r.OrderNo) {
		errs = append(errs, validator.ValidationError{Field: "order_no", Message: "is required"})
	}
	if r.TotalQuantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_quantity", Message: "must be positive"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductionOperationResponse struct {
	OperationID   string  `json:"operation_id"`
	OperationName *string `json:"operation_name,omitempty"`
	OperationCode *string `json:"operation_code,omitempty"`
	PiecesDone    int     `json:"pieces_done"`
}

type ProductionResponse struct {
	ID             string                        `json:"id"`
	ProductID      string                        `json:"product_id"`
	ProductName    *string                       `json:"product_name,omitempty"`
	OrderNo        string                        `json:"order_no"`
	TotalQuantity  int                           `json:"total_quantity"`
	Status         string                        `json:"status"`
	StartDate      *string                       `json:"start_date,omitempty"`
	DueDate        *string                       `json:"due_date,omitempty"`
	FinishedPieces int                           `json:"finished_pieces"`
	Operations     []ProductionOperationResponse `json:"operations,omitempty"`

	// OperationErrors lists operation rows that could not be created during a
	// best-effort create; the production row itself is never rolled back.
	OperationErrors []string `json:"operation_errors,omitempty"`
}

type ProductionFilter struct {
	ProductID *string
	Status    *string
	Page      int
	Limit     int
	SortOrder string
}
