package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/employee"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:     req.FullName,
		Code:         req.Code,
		Phone:        req.Phone,
		SalaryAmount: req.SalaryAmount.Round(2),
		IsActive:     true,
		JoinedAt:     parseDatePtr(req.JoinedAt),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, total, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.SalaryAmount != nil {
		existing.SalaryAmount = req.SalaryAmount.Round(2)
	}
	if req.JoinedAt != nil {
		existing.JoinedAt = parseDatePtr(req.JoinedAt)
	}

	if err := s.EmployeeRepository.Update(ctx, existing); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(existing), nil
}

// SetActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	return s.EmployeeRepository.SetActive(ctx, id, active)
}

// SetPhoto implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetPhoto(ctx context.Context, id string, photoURL string) error {
	existing, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	existing.PhotoURL = &photoURL
	return s.EmployeeRepository.Update(ctx, existing)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		FullName:     emp.FullName,
		Code:         emp.Code,
		Phone:        emp.Phone,
		SalaryAmount: emp.SalaryAmount,
		IsActive:     emp.IsActive,
		PhotoURL:     emp.PhotoURL,
		JoinedAt:     formatDatePtr(emp.JoinedAt),
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
