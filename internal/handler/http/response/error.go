package response

import (
	"errors"
	"net/http"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
	"github.com/stitchline/garment-erp-go/internal/domain/auth"
	"github.com/stitchline/garment-erp-go/internal/domain/employee"
	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/domain/report"
	"github.com/stitchline/garment-erp-go/internal/domain/salary"
	"github.com/stitchline/garment-erp-go/internal/domain/user"
	"github.com/stitchline/garment-erp-go/internal/domain/worker"
	"github.com/stitchline/garment-erp-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee and worker domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerCodeExists):
		Conflict(w, "Worker code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryExists):
		Conflict(w, "Salary record already exists for this month")
	case errors.Is(err, salary.ErrSalaryAlreadyPaid):
		Conflict(w, "Salary record already paid")
	case errors.Is(err, salary.ErrInvalidSalaryMonth):
		BadRequest(w, "Salary month must be in YYYY-MM format", nil)

	// Production domain errors
	case errors.Is(err, production.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, production.ErrProductCodeExists):
		Conflict(w, "Product code already exists")
	case errors.Is(err, production.ErrOperationNotFound):
		NotFound(w, "Operation not found")
	case errors.Is(err, production.ErrOperationCodeExists):
		Conflict(w, "Operation code already exists for this product")
	case errors.Is(err, production.ErrProductionNotFound):
		NotFound(w, "Production not found")
	case errors.Is(err, production.ErrOrderNoExists):
		Conflict(w, "Production order number already exists")
	case errors.Is(err, production.ErrInvalidStatus):
		BadRequest(w, "Invalid production status", nil)
	case errors.Is(err, production.ErrProductHasNoOps):
		BadRequest(w, "Product has no active operations", nil)
	case errors.Is(err, production.ErrOperationRowNotFound):
		NotFound(w, "Production operation row not found")

	// Piecework domain errors
	case errors.Is(err, piecework.ErrWorkerSalaryNotFound):
		NotFound(w, "Worker salary record not found")
	case errors.Is(err, piecework.ErrRecordAlreadyPaid):
		Conflict(w, "Worker salary record already paid")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Invalid report month", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
