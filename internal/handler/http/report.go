package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/report"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
	reportsvc "github.com/stitchline/garment-erp-go/internal/service/report"
)

type ReportHandler interface {
	WorkerEarnings(w http.ResponseWriter, r *http.Request)
	OperationExpenses(w http.ResponseWriter, r *http.Request)
	MonthlySalaries(w http.ResponseWriter, r *http.Request)
	ExportWorkerEarnings(w http.ResponseWriter, r *http.Request)
	ExportOperationExpenses(w http.ResponseWriter, r *http.Request)
	ExportMonthlySalaries(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportsvc.ReportService
}

func NewReportHandler(reportService reportsvc.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// parsePeriodParams reads the shared period/date query params. The date
// defaults to today and the period to monthly.
func parsePeriodParams(r *http.Request) (report.Period, time.Time, error) {
	period := report.PeriodMonthly
	if p := r.URL.Query().Get("period"); p != "" {
		parsed, ok := report.ParsePeriod(p)
		if !ok {
			return "", time.Time{}, report.ErrInvalidPeriod
		}
		period = parsed
	}

	referenceDate := time.Now().UTC()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", report.ErrInvalidPeriod)
		}
		referenceDate = parsed
	}

	return period, referenceDate, nil
}

// WorkerEarnings implements ReportHandler.
func (h *ReportHandlerImpl) WorkerEarnings(w http.ResponseWriter, r *http.Request) {
	period, referenceDate, err := parsePeriodParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rep, err := h.reportService.WorkerEarnings(r.Context(), period, referenceDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// OperationExpenses implements ReportHandler.
func (h *ReportHandlerImpl) OperationExpenses(w http.ResponseWriter, r *http.Request) {
	period, referenceDate, err := parsePeriodParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rep, err := h.reportService.OperationExpenses(r.Context(), period, referenceDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// MonthlySalaries implements ReportHandler.
func (h *ReportHandlerImpl) MonthlySalaries(w http.ResponseWriter, r *http.Request) {
	salaryMonth := r.URL.Query().Get("month")
	if salaryMonth == "" {
		salaryMonth = time.Now().UTC().Format("2006-01")
	}

	rep, err := h.reportService.MonthlySalaries(r.Context(), salaryMonth)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func writeWorkbook(w http.ResponseWriter, content []byte, filename string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// ExportWorkerEarnings implements ReportHandler.
func (h *ReportHandlerImpl) ExportWorkerEarnings(w http.ResponseWriter, r *http.Request) {
	period, referenceDate, err := parsePeriodParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	content, filename, err := h.reportService.ExportWorkerEarnings(r.Context(), period, referenceDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, content, filename)
}

// ExportOperationExpenses implements ReportHandler.
func (h *ReportHandlerImpl) ExportOperationExpenses(w http.ResponseWriter, r *http.Request) {
	period, referenceDate, err := parsePeriodParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	content, filename, err := h.reportService.ExportOperationExpenses(r.Context(), period, referenceDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, content, filename)
}

// ExportMonthlySalaries implements ReportHandler.
func (h *ReportHandlerImpl) ExportMonthlySalaries(w http.ResponseWriter, r *http.Request) {
	salaryMonth := r.URL.Query().Get("month")
	if salaryMonth == "" {
		salaryMonth = time.Now().UTC().Format("2006-01")
	}

	content, filename, err := h.reportService.ExportMonthlySalaries(r.Context(), salaryMonth)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, content, filename)
}
