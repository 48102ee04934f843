package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/report"
	"github.com/stitchline/garment-erp-go/internal/domain/salary"
)

type fakeWorkerSalaryRepo struct {
	ListRangeFn func(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error)
}

func (f *fakeWorkerSalaryRepo) Create(ctx context.Context, ws piecework.WorkerSalary) (piecework.WorkerSalary, error) {
	panic("not implemented")
}

func (f *fakeWorkerSalaryRepo) GetByID(ctx context.Context, id string) (piecework.WorkerSalary, error) {
	panic("not implemented")
}

func (f *fakeWorkerSalaryRepo) List(ctx context.Context, filter piecework.WorkerSalaryFilter) ([]piecework.WorkerSalary, int64, error) {
	panic("not implemented")
}

func (f *fakeWorkerSalaryRepo) ListRange(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error) {
	return f.ListRangeFn(ctx, from, to)
}

func (f *fakeWorkerSalaryRepo) MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
	panic("not implemented")
}

func (f *fakeWorkerSalaryRepo) Delete(ctx context.Context, id string) error {
	panic("not implemented")
}

type fakeSalaryRepo struct {
	ListByMonthFn func(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error)
}

func (f *fakeSalaryRepo) GetByID(ctx context.Context, id string) (salary.EmployeeSalary, error) {
	panic("not implemented")
}

func (f *fakeSalaryRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error) {
	panic("not implemented")
}

func (f *fakeSalaryRepo) InsertIfAbsent(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
	panic("not implemented")
}

func (f *fakeSalaryRepo) UpdateAmounts(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
	panic("not implemented")
}

func (f *fakeSalaryRepo) ListByMonth(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error) {
	return f.ListByMonthFn(ctx, salaryMonth, filter)
}

func (f *fakeSalaryRepo) MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
	panic("not implemented")
}

func (f *fakeSalaryRepo) Delete(ctx context.Context, id string) error {
	panic("not implemented")
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func strPtr(s string) *string { return &s }

func TestWorkerEarnings(t *testing.T) {
	march := day(2024, time.March, 20)

	records := []piecework.WorkerSalary{
		{WorkerID: "w1", WorkerName: strPtr("Devi"), Date: day(2024, time.March, 5), PiecesDone: 50, TotalAmount: d("250"), Paid: true},
		{WorkerID: "w1", WorkerName: strPtr("Devi"), Date: day(2024, time.March, 18), PiecesDone: 30, TotalAmount: d("150"), Paid: false},
		{WorkerID: "w2", WorkerName: strPtr("Esha"), Date: day(2024, time.March, 12), PiecesDone: 40, TotalAmount: d("240"), Paid: true},
		// outside the month, must be excluded
		{WorkerID: "w1", WorkerName: strPtr("Devi"), Date: day(2024, time.April, 2), PiecesDone: 99, TotalAmount: d("999"), Paid: true},
	}

	svc := NewReportService(nil,
		&fakeWorkerSalaryRepo{ListRangeFn: func(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error) {
			return records, nil
		}},
		&fakeSalaryRepo{},
	)

	result, err := svc.WorkerEarnings(context.Background(), report.PeriodMonthly, march)
	require.NoError(t, err)

	assert.Equal(t, 3, result.RecordCount)
	assert.Equal(t, 120, result.TotalPieces)
	assert.Equal(t, "640", result.TotalAmount.String())
	// 120 pieces over 3 records against a 10-per-record target: 400%.
	assert.Equal(t, 400, result.Efficiency)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, "w1", result.Rows[0].WorkerID)
	assert.Equal(t, 80, result.Rows[0].TotalPieces)
	assert.False(t, result.Rows[0].Paid)
	assert.True(t, result.Rows[1].Paid)
}

func TestOperationExpenses(t *testing.T) {
	ref := day(2024, time.March, 20)

	records := []piecework.WorkerSalary{
		{OperationName: strPtr("Cutting"), Date: day(2024, time.March, 5), PiecesDone: 50, TotalAmount: d("250")},
		{OperationName: strPtr("Stitching"), Date: day(2024, time.March, 6), PiecesDone: 30, TotalAmount: d("300")},
		{OperationName: strPtr("Cutting"), Date: day(2024, time.March, 7), PiecesDone: 25, TotalAmount: d("125")},
	}

	svc := NewReportService(nil,
		&fakeWorkerSalaryRepo{ListRangeFn: func(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error) {
			return records, nil
		}},
		&fakeSalaryRepo{},
	)

	result, err := svc.OperationExpenses(context.Background(), report.PeriodMonthly, ref)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Cutting", result.Rows[0].OperationName)
	assert.Equal(t, "375", result.Rows[0].Cost.String())
	assert.Equal(t, 75, result.Rows[0].Pieces)
	assert.Equal(t, "675", result.TotalCost.String())
}

func TestMonthlySalaries(t *testing.T) {
	t.Run("totals and paid counts", func(t *testing.T) {
		rows := []salary.EmployeeSalary{
			{EmployeeName: strPtr("Asha"), EmployeeCode: strPtr("E01"), GrossSalary: d("27000"), Advance: d("2000"), NetSalary: d("25000"), Paid: true},
			{EmployeeName: strPtr("Bilal"), EmployeeCode: strPtr("E02"), GrossSalary: d("24000"), Advance: d("0"), NetSalary: d("24000"), Paid: false},
		}
		svc := NewReportService(nil, &fakeWorkerSalaryRepo{},
			&fakeSalaryRepo{ListByMonthFn: func(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error) {
				return rows, int64(len(rows)), nil
			}},
		)

		result, err := svc.MonthlySalaries(context.Background(), "2024-03")
		require.NoError(t, err)

		assert.Equal(t, "51000", result.TotalGross.String())
		assert.Equal(t, "49000", result.TotalNet.String())
		assert.Equal(t, 1, result.PaidCount)
		assert.Equal(t, 1, result.UnpaidCount)
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		svc := NewReportService(nil, &fakeWorkerSalaryRepo{}, &fakeSalaryRepo{})

		_, err := svc.MonthlySalaries(context.Background(), "March 2024")
		assert.ErrorIs(t, err, report.ErrInvalidMonth)
	})
}

func TestExportMonthlySalaries(t *testing.T) {
	svc := NewReportService(nil, &fakeWorkerSalaryRepo{},
		&fakeSalaryRepo{ListByMonthFn: func(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error) {
			return []salary.EmployeeSalary{
				{EmployeeName: strPtr("Asha"), EmployeeCode: strPtr("E01"), GrossSalary: d("27000"), Advance: d("2000"), NetSalary: d("25000")},
			}, 1, nil
		}},
	)

	content, filename, err := svc.ExportMonthlySalaries(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "salaries-2024-03.xlsx", filename)
	assert.NotEmpty(t, content)
}
