package salary

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
	"github.com/stitchline/garment-erp-go/internal/domain/employee"
	"github.com/stitchline/garment-erp-go/internal/domain/salary"
)

type fakeSalaryRepo struct {
	GetByIDFn               func(ctx context.Context, id string) (salary.EmployeeSalary, error)
	GetByEmployeeAndMonthFn func(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error)
	InsertIfAbsentFn        func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error)
	UpdateAmountsFn         func(ctx context.Context, id string, gross, advance, net decimal.Decimal) error
	ListByMonthFn           func(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error)
	MarkPaidFn              func(ctx context.Context, ids []string, paidDate time.Time) (int64, error)
	DeleteFn                func(ctx context.Context, id string) error
}

func (f *fakeSalaryRepo) GetByID(ctx context.Context, id string) (salary.EmployeeSalary, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeSalaryRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error) {
	return f.GetByEmployeeAndMonthFn(ctx, employeeID, salaryMonth)
}

func (f *fakeSalaryRepo) InsertIfAbsent(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
	return f.InsertIfAbsentFn(ctx, s)
}

func (f *fakeSalaryRepo) UpdateAmounts(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
	return f.UpdateAmountsFn(ctx, id, gross, advance, net)
}

func (f *fakeSalaryRepo) ListByMonth(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error) {
	return f.ListByMonthFn(ctx, salaryMonth, filter)
}

func (f *fakeSalaryRepo) MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
	return f.MarkPaidFn(ctx, ids, paidDate)
}

func (f *fakeSalaryRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeEmployeeRepo struct {
	GetActiveFn func(ctx context.Context) ([]employee.Employee, error)
	GetByIDFn   func(ctx context.Context, id string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	panic("not implemented")
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.GetActiveFn(ctx)
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	panic("not implemented")
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	panic("not implemented")
}

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, id string, active bool) error {
	panic("not implemented")
}

type fakeAttendanceService struct {
	SummarizeFn func(ctx context.Context, personType attendance.PersonType, personID string, month time.Month, year int) (*attendance.MonthSummary, error)
}

func (f *fakeAttendanceService) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.MarkDayResult, error) {
	panic("not implemented")
}

func (f *fakeAttendanceService) Summarize(ctx context.Context, personType attendance.PersonType, personID string, month time.Month, year int) (*attendance.MonthSummary, error) {
	return f.SummarizeFn(ctx, personType, personID, month, year)
}

func (f *fakeAttendanceService) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, int64, error) {
	panic("not implemented")
}

func (f *fakeAttendanceService) Delete(ctx context.Context, id string) error {
	panic("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestDailySalary(t *testing.T) {
	tests := []struct {
		name         string
		base         string
		calendarDays int
		want         string
	}{
		{"april thirty days", "30000", 30, "1000"},
		{"february twenty eight days", "28000", 28, "1000"},
		{"uneven division", "10000", 31, "322.5806451612903226"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailySalary(d(tt.base), tt.calendarDays)
			assert.True(t, d(tt.want).Sub(got).Abs().LessThan(d("0.0001")),
				"got %s, want %s", got, tt.want)
		})
	}

	t.Run("zero days is zero, not a panic", func(t *testing.T) {
		assert.True(t, DailySalary(d("30000"), 0).IsZero())
	})
}

func TestGrossSalary(t *testing.T) {
	t.Run("absent days contribute zero", func(t *testing.T) {
		full := GrossSalary(d("30000"), 30, 30, 0)
		withAbsence := GrossSalary(d("30000"), 30, 27, 0)
		assert.Equal(t, "30000", full.String())
		assert.Equal(t, "27000", withAbsence.String())
	})

	t.Run("leave days are paid", func(t *testing.T) {
		got := GrossSalary(d("30000"), 30, 25, 2)
		assert.Equal(t, "27000", got.String())
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		got := GrossSalary(d("10000"), 31, 20, 0)
		// 10000/31*20 = 6451.612903... -> 6451.61
		assert.Equal(t, "6451.61", got.String())
	})
}

func TestNetSalary(t *testing.T) {
	assert.Equal(t, "25000", NetSalary(d("27000"), d("2000")).String())
	assert.Equal(t, "-500", NetSalary(d("1500"), d("2000")).String())
}

func TestReconcileMonth(t *testing.T) {
	april := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)

	activeEmployee := employee.Employee{
		ID:           "e1",
		FullName:     "Asha Verma",
		SalaryAmount: d("30000"),
		IsActive:     true,
	}

	fullSummary := func(ctx context.Context, pt attendance.PersonType, pid string, month time.Month, year int) (*attendance.MonthSummary, error) {
		return &attendance.MonthSummary{TotalDays: 30, Present: 25, Absent: 3, Leave: 2}, nil
	}

	t.Run("creates a fresh row with zero advance", func(t *testing.T) {
		var inserted salary.EmployeeSalary
		salaryRepo := &fakeSalaryRepo{
			InsertIfAbsentFn: func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
				inserted = s
				s.ID = "s1"
				return s, true, nil
			},
		}
		svc := NewSalaryService(nil, testLogger(),
			salaryRepo,
			&fakeEmployeeRepo{GetActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{activeEmployee}, nil
			}},
			&fakeAttendanceService{SummarizeFn: fullSummary},
		)

		results, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.Equal(t, salary.ReconcileCreated, results[0].Status)
		assert.Equal(t, "27000", results[0].GrossSalary.String())
		assert.Equal(t, "27000", results[0].NetSalary.String())
		assert.Equal(t, "2025-04", inserted.SalaryMonth)
		assert.True(t, inserted.Advance.IsZero())
	})

	t.Run("updates an unpaid row preserving its advance", func(t *testing.T) {
		var gotGross, gotAdvance, gotNet decimal.Decimal
		salaryRepo := &fakeSalaryRepo{
			InsertIfAbsentFn: func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
				return salary.EmployeeSalary{}, false, nil
			},
			GetByEmployeeAndMonthFn: func(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error) {
				return salary.EmployeeSalary{
					ID: "s1", EmployeeID: employeeID, SalaryMonth: salaryMonth,
					GrossSalary: d("26000"), Advance: d("2000"), NetSalary: d("24000"),
				}, nil
			},
			UpdateAmountsFn: func(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
				gotGross, gotAdvance, gotNet = gross, advance, net
				return nil
			},
		}
		svc := NewSalaryService(nil, testLogger(),
			salaryRepo,
			&fakeEmployeeRepo{GetActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{activeEmployee}, nil
			}},
			&fakeAttendanceService{SummarizeFn: fullSummary},
		)

		results, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.Equal(t, salary.ReconcileUpdated, results[0].Status)
		assert.Equal(t, "27000", gotGross.String())
		assert.Equal(t, "2000", gotAdvance.String())
		assert.Equal(t, "25000", gotNet.String())
	})

	t.Run("paid rows are skipped untouched", func(t *testing.T) {
		updateCalled := false
		salaryRepo := &fakeSalaryRepo{
			InsertIfAbsentFn: func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
				return salary.EmployeeSalary{}, false, nil
			},
			GetByEmployeeAndMonthFn: func(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error) {
				return salary.EmployeeSalary{
					ID: "s1", GrossSalary: d("26000"), Advance: d("2000"),
					NetSalary: d("24000"), Paid: true,
				}, nil
			},
			UpdateAmountsFn: func(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
				updateCalled = true
				return nil
			},
		}
		svc := NewSalaryService(nil, testLogger(),
			salaryRepo,
			&fakeEmployeeRepo{GetActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{activeEmployee}, nil
			}},
			&fakeAttendanceService{SummarizeFn: fullSummary},
		)

		results, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.Equal(t, salary.ReconcileSkippedPaid, results[0].Status)
		assert.False(t, updateCalled)
		assert.Equal(t, "26000", results[0].GrossSalary.String())
		assert.Equal(t, "24000", results[0].NetSalary.String())
	})

	t.Run("rerun with unchanged attendance yields identical amounts", func(t *testing.T) {
		stored := salary.EmployeeSalary{}
		exists := false
		salaryRepo := &fakeSalaryRepo{
			InsertIfAbsentFn: func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
				if exists {
					return salary.EmployeeSalary{}, false, nil
				}
				exists = true
				s.ID = "s1"
				stored = s
				return s, true, nil
			},
			GetByEmployeeAndMonthFn: func(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error) {
				return stored, nil
			},
			UpdateAmountsFn: func(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
				stored.GrossSalary = gross
				stored.Advance = advance
				stored.NetSalary = net
				return nil
			},
		}
		svc := NewSalaryService(nil, testLogger(),
			salaryRepo,
			&fakeEmployeeRepo{GetActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{activeEmployee}, nil
			}},
			&fakeAttendanceService{SummarizeFn: fullSummary},
		)

		first, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)
		second, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)

		assert.Equal(t, salary.ReconcileCreated, first[0].Status)
		assert.Equal(t, salary.ReconcileUpdated, second[0].Status)
		assert.True(t, first[0].GrossSalary.Equal(second[0].GrossSalary))
		assert.True(t, first[0].NetSalary.Equal(second[0].NetSalary))
	})

	t.Run("one employee's failure never aborts the batch", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepo{
			InsertIfAbsentFn: func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
				s.ID = "s-" + s.EmployeeID
				return s, true, nil
			},
		}
		svc := NewSalaryService(nil, testLogger(),
			salaryRepo,
			&fakeEmployeeRepo{GetActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{
					{ID: "e1", FullName: "Asha", SalaryAmount: d("30000")},
					{ID: "e2", FullName: "Bilal", SalaryAmount: d("24000")},
					{ID: "e3", FullName: "Chitra", SalaryAmount: d("36000")},
				}, nil
			}},
			&fakeAttendanceService{SummarizeFn: func(ctx context.Context, pt attendance.PersonType, pid string, month time.Month, year int) (*attendance.MonthSummary, error) {
				if pid == "e2" {
					return nil, errors.New("connection reset")
				}
				return &attendance.MonthSummary{TotalDays: 30, Present: 30}, nil
			}},
		)

		results, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, salary.ReconcileCreated, results[0].Status)
		assert.Equal(t, salary.ReconcileError, results[1].Status)
		assert.NotEmpty(t, results[1].Error)
		assert.Equal(t, salary.ReconcileCreated, results[2].Status)
	})

	t.Run("flags incomplete attendance without blocking the write", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepo{
			InsertIfAbsentFn: func(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
				s.ID = "s1"
				return s, true, nil
			},
		}
		svc := NewSalaryService(nil, testLogger(),
			salaryRepo,
			&fakeEmployeeRepo{GetActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{activeEmployee}, nil
			}},
			&fakeAttendanceService{SummarizeFn: func(ctx context.Context, pt attendance.PersonType, pid string, month time.Month, year int) (*attendance.MonthSummary, error) {
				// Only 5 days recorded by the 15th.
				return &attendance.MonthSummary{TotalDays: 30, Present: 5}, nil
			}},
		)

		results, err := svc.ReconcileMonth(context.Background(), april)
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.Equal(t, salary.ReconcileCreated, results[0].Status)
		assert.True(t, results[0].AttendanceIncomplete)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("reports affected versus skipped counts", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepo{
			MarkPaidFn: func(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
				return 2, nil
			},
		}
		svc := NewSalaryService(nil, testLogger(), salaryRepo, &fakeEmployeeRepo{}, &fakeAttendanceService{})

		result, err := svc.MarkPaid(context.Background(), salary.MarkPaidRequest{
			IDs: []string{
				"0195a9be-7dea-7bc0-a29c-0d77cde3e67a",
				"0195a9be-7dea-7bc0-a29c-0d77cde3e67b",
				"0195a9be-7dea-7bc0-a29c-0d77cde3e67c",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), result.Requested)
		assert.Equal(t, int64(2), result.Affected)
		assert.Equal(t, int64(1), result.Skipped)
	})

	t.Run("rejects non-UUID ids before any write", func(t *testing.T) {
		writeCalled := false
		salaryRepo := &fakeSalaryRepo{
			MarkPaidFn: func(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
				writeCalled = true
				return 0, nil
			},
		}
		svc := NewSalaryService(nil, testLogger(), salaryRepo, &fakeEmployeeRepo{}, &fakeAttendanceService{})

		_, err := svc.MarkPaid(context.Background(), salary.MarkPaidRequest{
			IDs: []string{"0195a9be-7dea-7bc0-a29c-0d77cde3e67a", "not-a-uuid"},
		})
		assert.Error(t, err)
		assert.False(t, writeCalled)
	})
}

func TestUpdateSalary(t *testing.T) {
	t.Run("paid row cannot be edited", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepo{
			GetByIDFn: func(ctx context.Context, id string) (salary.EmployeeSalary, error) {
				return salary.EmployeeSalary{ID: id, Paid: true}, nil
			},
		}
		svc := NewSalaryService(nil, testLogger(), salaryRepo, &fakeEmployeeRepo{}, &fakeAttendanceService{})

		gross := d("20000")
		_, err := svc.Update(context.Background(), salary.UpdateSalaryRequest{ID: "s1", GrossSalary: &gross})
		assert.ErrorIs(t, err, salary.ErrSalaryAlreadyPaid)
	})

	t.Run("recomputes net from new amounts", func(t *testing.T) {
		var gotNet decimal.Decimal
		salaryRepo := &fakeSalaryRepo{
			GetByIDFn: func(ctx context.Context, id string) (salary.EmployeeSalary, error) {
				return salary.EmployeeSalary{
					ID: id, GrossSalary: d("27000"), Advance: d("2000"), NetSalary: d("25000"),
				}, nil
			},
			UpdateAmountsFn: func(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
				gotNet = net
				return nil
			},
		}
		svc := NewSalaryService(nil, testLogger(), salaryRepo, &fakeEmployeeRepo{}, &fakeAttendanceService{})

		advance := d("5000")
		_, err := svc.Update(context.Background(), salary.UpdateSalaryRequest{ID: "s1", Advance: &advance})
		require.NoError(t, err)
		assert.Equal(t, "22000", gotNet.String())
	})
}
