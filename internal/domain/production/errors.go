package production

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductCodeExists    = errors.New("product code already exists")
	ErrOperationNotFound    = errors.New("operation not found")
	ErrOperationCodeExists  = errors.New("operation code already exists for this product")
	ErrProductionNotFound   = errors.New("production not found")
	ErrOrderNoExists        = errors.New("production order number already exists")
	ErrInvalidStatus        = errors.New("invalid production status")
	ErrProductHasNoOps      = errors.New("product has no active operations")
	ErrOperationRowNotFound = errors.New("production operation row not found")
)
