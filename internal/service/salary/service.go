package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
	"github.com/stitchline/garment-erp-go/internal/domain/employee"
	"github.com/stitchline/garment-erp-go/internal/domain/salary"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type SalaryServiceImpl struct {
	db     *database.DB
	logger *slog.Logger
	salary.SalaryRepository
	employee.EmployeeRepository
	attendanceService attendance.AttendanceService
}

func NewSalaryService(
	db *database.DB,
	logger *slog.Logger,
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:                 db,
		logger:             logger,
		SalaryRepository:   salaryRepo,
		EmployeeRepository: employeeRepo,
		attendanceService:  attendanceService,
	}
}

// ReconcileMonth implements salary.SalaryService.
// Each employee is processed independently: a failure for one employee is
// recorded in its result and the loop continues. Paid rows are never touched.
// Re-running with unchanged attendance yields identical gross/net values.
func (s *SalaryServiceImpl) ReconcileMonth(ctx context.Context, referenceDate time.Time) ([]salary.ReconcileResult, error) {
	salaryMonth := referenceDate.Format("2006-01")
	monthStart := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	calendarDays := monthStart.AddDate(0, 1, -1).Day()

	employees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	results := make([]salary.ReconcileResult, 0, len(employees))
	for _, emp := range employees {
		results = append(results, s.reconcileEmployee(ctx, emp, salaryMonth, calendarDays, referenceDate))
	}

	return results, nil
}

func (s *SalaryServiceImpl) reconcileEmployee(ctx context.Context, emp employee.Employee, salaryMonth string, calendarDays int, referenceDate time.Time) salary.ReconcileResult {
	result := salary.ReconcileResult{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
	}

	summary, err := s.attendanceService.Summarize(ctx, attendance.PersonTypeEmployee, emp.ID, referenceDate.Month(), referenceDate.Year())
	if err != nil || summary == nil {
		s.logger.Warn("attendance summary failed, skipping employee",
			"employee_id", emp.ID, "salary_month", salaryMonth, "error", err)
		result.Status = salary.ReconcileError
		result.Error = "attendance summary unavailable"
		return result
	}

	gross := GrossSalary(emp.SalaryAmount, calendarDays, summary.Present, summary.Leave)

	// Fewer recorded days than elapsed days this month means attendance entry
	// is lagging. Informational only; the write still happens.
	recordedDays := summary.Present + summary.Absent + summary.Leave
	result.AttendanceIncomplete = recordedDays < referenceDate.Day()-1

	inserted, wasInserted, err := s.SalaryRepository.InsertIfAbsent(ctx, salary.EmployeeSalary{
		EmployeeID:  emp.ID,
		SalaryMonth: salaryMonth,
		GrossSalary: gross,
		Advance:     decimal.Zero,
		NetSalary:   gross,
	})
	if err != nil {
		s.logger.Error("salary insert failed",
			"employee_id", emp.ID, "salary_month", salaryMonth, "error", err)
		result.Status = salary.ReconcileError
		result.Error = err.Error()
		return result
	}
	if wasInserted {
		result.Status = salary.ReconcileCreated
		result.GrossSalary = inserted.GrossSalary
		result.NetSalary = inserted.NetSalary
		return result
	}

	// The row already existed (possibly created by a concurrent run); re-read
	// and take the update path, which respects the paid lock.
	existing, err := s.SalaryRepository.GetByEmployeeAndMonth(ctx, emp.ID, salaryMonth)
	if err != nil {
		result.Status = salary.ReconcileError
		result.Error = err.Error()
		return result
	}

	if existing.Paid {
		result.Status = salary.ReconcileSkippedPaid
		result.GrossSalary = existing.GrossSalary
		result.NetSalary = existing.NetSalary
		return result
	}

	net := NetSalary(gross, existing.Advance)
	if err := s.SalaryRepository.UpdateAmounts(ctx, existing.ID, gross, existing.Advance, net); err != nil {
		s.logger.Error("salary update failed",
			"employee_id", emp.ID, "salary_month", salaryMonth, "error", err)
		result.Status = salary.ReconcileError
		result.Error = err.Error()
		return result
	}

	result.Status = salary.ReconcileUpdated
	result.GrossSalary = gross
	result.NetSalary = net
	return result
}

// Create implements salary.SalaryService.
func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.SalaryResponse{}, employee.ErrEmployeeNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	net := NetSalary(req.GrossSalary, req.Advance)
	created, wasInserted, err := s.SalaryRepository.InsertIfAbsent(ctx, salary.EmployeeSalary{
		EmployeeID:  req.EmployeeID,
		SalaryMonth: req.SalaryMonth,
		GrossSalary: req.GrossSalary.Round(2),
		Advance:     req.Advance.Round(2),
		NetSalary:   net,
	})
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to create salary: %w", err)
	}
	if !wasInserted {
		return salary.SalaryResponse{}, salary.ErrSalaryExists
	}

	return s.Get(ctx, created.ID)
}

// Update implements salary.SalaryService.
func (s *SalaryServiceImpl) Update(ctx context.Context, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	existing, err := s.SalaryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	if existing.Paid {
		return salary.SalaryResponse{}, salary.ErrSalaryAlreadyPaid
	}

	gross := existing.GrossSalary
	if req.GrossSalary != nil {
		gross = req.GrossSalary.Round(2)
	}
	advance := existing.Advance
	if req.Advance != nil {
		advance = req.Advance.Round(2)
	}

	if err := s.SalaryRepository.UpdateAmounts(ctx, req.ID, gross, advance, NetSalary(gross, advance)); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to update salary: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Get implements salary.SalaryService.
func (s *SalaryServiceImpl) Get(ctx context.Context, id string) (salary.SalaryResponse, error) {
	row, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return mapSalaryToResponse(row), nil
}

// ListByMonth implements salary.SalaryService.
func (s *SalaryServiceImpl) ListByMonth(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.SalaryResponse, int64, error) {
	if _, err := time.Parse("2006-01", salaryMonth); err != nil {
		return nil, 0, salary.ErrInvalidSalaryMonth
	}

	rows, total, err := s.SalaryRepository.ListByMonth(ctx, salaryMonth, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salaries: %w", err)
	}

	responses := make([]salary.SalaryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, mapSalaryToResponse(row))
	}

	return responses, total, nil
}

// MarkPaid implements salary.SalaryService.
// Every id is UUID-validated before any write; rows already paid are counted
// as skipped, not errors.
func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, req salary.MarkPaidRequest) (salary.MarkPaidResult, error) {
	if err := req.Validate(); err != nil {
		return salary.MarkPaidResult{}, err
	}

	affected, err := s.SalaryRepository.MarkPaid(ctx, req.IDs, time.Now())
	if err != nil {
		return salary.MarkPaidResult{}, fmt.Errorf("failed to mark salaries paid: %w", err)
	}

	requested := int64(len(req.IDs))
	return salary.MarkPaidResult{
		Requested: requested,
		Affected:  affected,
		Skipped:   requested - affected,
	}, nil
}

// Delete implements salary.SalaryService.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Paid {
		return salary.ErrSalaryAlreadyPaid
	}
	return s.SalaryRepository.Delete(ctx, id)
}

func mapSalaryToResponse(row salary.EmployeeSalary) salary.SalaryResponse {
	resp := salary.SalaryResponse{
		ID:          row.ID,
		EmployeeID:  row.EmployeeID,
		SalaryMonth: row.SalaryMonth,
		GrossSalary: row.GrossSalary,
		Advance:     row.Advance,
		NetSalary:   row.NetSalary,
		Paid:        row.Paid,
	}
	if row.EmployeeName != nil {
		resp.EmployeeName = *row.EmployeeName
	}
	if row.EmployeeCode != nil {
		resp.EmployeeCode = *row.EmployeeCode
	}
	if row.PaidDate != nil {
		formatted := row.PaidDate.Format("2006-01-02")
		resp.PaidDate = &formatted
	}
	return resp
}
