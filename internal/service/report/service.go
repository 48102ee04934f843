package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/report"
	"github.com/stitchline/garment-erp-go/internal/domain/salary"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
	pieceworksvc "github.com/stitchline/garment-erp-go/internal/service/piecework"
)

type ReportService interface {
	WorkerEarnings(ctx context.Context, period report.Period, referenceDate time.Time) (report.WorkerEarningsReport, error)
	OperationExpenses(ctx context.Context, period report.Period, referenceDate time.Time) (report.OperationExpenseReport, error)
	MonthlySalaries(ctx context.Context, salaryMonth string) (report.SalaryReport, error)

	ExportWorkerEarnings(ctx context.Context, period report.Period, referenceDate time.Time) ([]byte, string, error)
	ExportOperationExpenses(ctx context.Context, period report.Period, referenceDate time.Time) ([]byte, string, error)
	ExportMonthlySalaries(ctx context.Context, salaryMonth string) ([]byte, string, error)
}

type ReportServiceImpl struct {
	db               *database.DB
	workerSalaryRepo piecework.WorkerSalaryRepository
	salaryRepo       salary.SalaryRepository
}

func NewReportService(
	db *database.DB,
	workerSalaryRepo piecework.WorkerSalaryRepository,
	salaryRepo salary.SalaryRepository,
) ReportService {
	return &ReportServiceImpl{
		db:               db,
		workerSalaryRepo: workerSalaryRepo,
		salaryRepo:       salaryRepo,
	}
}

// periodRecords fetches the reference year's records and keeps the ones in
// the requested bucket. All periods are sub-ranges of the reference year, so
// one range query covers every case.
func (s *ReportServiceImpl) periodRecords(ctx context.Context, period report.Period, referenceDate time.Time) ([]piecework.WorkerSalary, error) {
	yearStart := time.Date(referenceDate.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(referenceDate.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	records, err := s.workerSalaryRepo.ListRange(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker salary records: %w", err)
	}

	filtered := records[:0:0]
	for _, rec := range records {
		if InPeriod(rec.Date, period, referenceDate) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// WorkerEarnings implements ReportService.
func (s *ReportServiceImpl) WorkerEarnings(ctx context.Context, period report.Period, referenceDate time.Time) (report.WorkerEarningsReport, error) {
	records, err := s.periodRecords(ctx, period, referenceDate)
	if err != nil {
		return report.WorkerEarningsReport{}, err
	}

	aggregates := pieceworksvc.AggregateByWorker(records)

	result := report.WorkerEarningsReport{
		Period:        string(period),
		ReferenceDate: referenceDate.Format("2006-01-02"),
		Rows:          make([]report.WorkerEarningsRow, 0, len(aggregates)),
		TotalAmount:   decimal.Zero,
		RecordCount:   len(records),
	}
	for _, agg := range aggregates {
		result.Rows = append(result.Rows, report.WorkerEarningsRow{
			WorkerID:    agg.WorkerID,
			WorkerName:  agg.WorkerName,
			TotalPieces: agg.TotalPieces,
			TotalAmount: agg.TotalAmount,
			Paid:        agg.Paid,
		})
		result.TotalPieces += agg.TotalPieces
		result.TotalAmount = result.TotalAmount.Add(agg.TotalAmount)
	}
	result.Efficiency = Efficiency(result.TotalPieces, result.RecordCount)

	return result, nil
}

// OperationExpenses implements ReportService.
func (s *ReportServiceImpl) OperationExpenses(ctx context.Context, period report.Period, referenceDate time.Time) (report.OperationExpenseReport, error) {
	records, err := s.periodRecords(ctx, period, referenceDate)
	if err != nil {
		return report.OperationExpenseReport{}, err
	}

	breakdown := pieceworksvc.OperationExpenseBreakdown(records)

	result := report.OperationExpenseReport{
		Period:        string(period),
		ReferenceDate: referenceDate.Format("2006-01-02"),
		Rows:          make([]report.OperationExpenseRow, 0, len(breakdown)),
		TotalCost:     decimal.Zero,
	}

	// Preserve first-seen record order for stable report rows.
	seen := make(map[string]bool)
	for _, rec := range records {
		name := "unknown"
		if rec.OperationName != nil && *rec.OperationName != "" {
			name = *rec.OperationName
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		entry := breakdown[name]
		result.Rows = append(result.Rows, report.OperationExpenseRow{
			OperationName: name,
			Cost:          entry.Cost,
			Pieces:        entry.Pieces,
		})
		result.TotalCost = result.TotalCost.Add(entry.Cost)
	}

	return result, nil
}

// MonthlySalaries implements ReportService.
func (s *ReportServiceImpl) MonthlySalaries(ctx context.Context, salaryMonth string) (report.SalaryReport, error) {
	if _, err := time.Parse("2006-01", salaryMonth); err != nil {
		return report.SalaryReport{}, report.ErrInvalidMonth
	}

	rows, _, err := s.salaryRepo.ListByMonth(ctx, salaryMonth, salary.SalaryFilter{Limit: 10000})
	if err != nil {
		return report.SalaryReport{}, fmt.Errorf("failed to list salaries: %w", err)
	}

	result := report.SalaryReport{
		SalaryMonth: salaryMonth,
		Rows:        make([]report.SalaryReportRow, 0, len(rows)),
		TotalGross:  decimal.Zero,
		TotalNet:    decimal.Zero,
	}
	for _, row := range rows {
		reportRow := report.SalaryReportRow{
			GrossSalary: row.GrossSalary,
			Advance:     row.Advance,
			NetSalary:   row.NetSalary,
			Paid:        row.Paid,
		}
		if row.EmployeeName != nil {
			reportRow.EmployeeName = *row.EmployeeName
		}
		if row.EmployeeCode != nil {
			reportRow.EmployeeCode = *row.EmployeeCode
		}
		result.Rows = append(result.Rows, reportRow)
		result.TotalGross = result.TotalGross.Add(row.GrossSalary)
		result.TotalNet = result.TotalNet.Add(row.NetSalary)
		if row.Paid {
			result.PaidCount++
		} else {
			result.UnpaidCount++
		}
	}

	return result, nil
}

// ExportWorkerEarnings implements ReportService.
func (s *ReportServiceImpl) ExportWorkerEarnings(ctx context.Context, period report.Period, referenceDate time.Time) ([]byte, string, error) {
	data, err := s.WorkerEarnings(ctx, period, referenceDate)
	if err != nil {
		return nil, "", err
	}

	content, err := buildWorkerEarningsWorkbook(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build worker earnings workbook: %w", err)
	}

	filename := fmt.Sprintf("worker-earnings-%s-%s.xlsx", period, referenceDate.Format("2006-01-02"))
	return content, filename, nil
}

// ExportOperationExpenses implements ReportService.
func (s *ReportServiceImpl) ExportOperationExpenses(ctx context.Context, period report.Period, referenceDate time.Time) ([]byte, string, error) {
	data, err := s.OperationExpenses(ctx, period, referenceDate)
	if err != nil {
		return nil, "", err
	}

	content, err := buildOperationExpenseWorkbook(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build operation expense workbook: %w", err)
	}

	filename := fmt.Sprintf("operation-expenses-%s-%s.xlsx", period, referenceDate.Format("2006-01-02"))
	return content, filename, nil
}

// ExportMonthlySalaries implements ReportService.
func (s *ReportServiceImpl) ExportMonthlySalaries(ctx context.Context, salaryMonth string) ([]byte, string, error) {
	data, err := s.MonthlySalaries(ctx, salaryMonth)
	if err != nil {
		return nil, "", err
	}

	content, err := buildSalaryWorkbook(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build salary workbook: %w", err)
	}

	filename := fmt.Sprintf("salaries-%s.xlsx", salaryMonth)
	return content, filename, nil
}
