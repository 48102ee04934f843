package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/salary"
)

// SalaryReconcileJob periodically reconciles the current month's employee
// salaries. The interval tick only acts during the first three days of the
// month; a mid-month tick is a no-op. The reconciler itself is idempotent
// and never touches paid rows, so overlapping runs are harmless.
type SalaryReconcileJob struct {
	salaryService salary.SalaryService
}

func NewSalaryReconcileJob(salaryService salary.SalaryService) *SalaryReconcileJob {
	return &SalaryReconcileJob{salaryService: salaryService}
}

func (j *SalaryReconcileJob) Run(ctx context.Context) error {
	now := time.Now()
	if now.Day() > 3 {
		return nil
	}

	// Reconcile the month that just closed.
	previousMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	results, err := j.salaryService.ReconcileMonth(ctx, previousMonth)
	if err != nil {
		return err
	}

	var created, updated, skipped, failed int
	for _, r := range results {
		switch r.Status {
		case salary.ReconcileCreated:
			created++
		case salary.ReconcileUpdated:
			updated++
		case salary.ReconcileSkippedPaid:
			skipped++
		case salary.ReconcileError:
			failed++
		}
	}

	slog.Info("Monthly salary reconciliation finished",
		"salary_month", previousMonth.Format("2006-01"),
		"created", created,
		"updated", updated,
		"skipped_paid", skipped,
		"errors", failed,
	)

	return nil
}
