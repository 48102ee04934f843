package report

import (
	"github.com/shopspring/decimal"
)

// Period buckets date-stamped records relative to a reference date.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), true
	}
	return "", false
}

// WorkerEarningsRow is one worker's period aggregate in the earnings report.
type WorkerEarningsRow struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name,omitempty"`
	TotalPieces int             `json:"total_pieces"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Paid        bool            `json:"paid"`
}

type WorkerEarningsReport struct {
	Period        string              `json:"period"`
	ReferenceDate string              `json:"reference_date"`
	Rows          []WorkerEarningsRow `json:"rows"`
	TotalPieces   int                 `json:"total_pieces"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	RecordCount   int                 `json:"record_count"`
	Efficiency    int                 `json:"efficiency"`
}

// OperationExpenseRow is the cost/pieces sum for one operation in the period.
type OperationExpenseRow struct {
	OperationName string          `json:"operation_name"`
	Cost          decimal.Decimal `json:"cost"`
	Pieces        int             `json:"pieces"`
}

type OperationExpenseReport struct {
	Period        string                `json:"period"`
	ReferenceDate string                `json:"reference_date"`
	Rows          []OperationExpenseRow `json:"rows"`
	TotalCost     decimal.Decimal       `json:"total_cost"`
}

// SalaryReportRow mirrors one employee salary row for the monthly report.
type SalaryReportRow struct {
	EmployeeName string          `json:"employee_name"`
	EmployeeCode string          `json:"employee_code"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Advance      decimal.Decimal `json:"advance"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Paid         bool            `json:"paid"`
}

type SalaryReport struct {
	SalaryMonth string            `json:"salary_month"`
	Rows        []SalaryReportRow `json:"rows"`
	TotalGross  decimal.Decimal   `json:"total_gross"`
	TotalNet    decimal.Decimal   `json:"total_net"`
	PaidCount   int               `json:"paid_count"`
	UnpaidCount int               `json:"unpaid_count"`
}
