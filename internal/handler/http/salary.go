package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/salary"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Reconcile(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Reconcile implements SalaryHandler.
// An empty body reconciles the current month.
func (h *SalaryHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var reconcileReq salary.ReconcileRequest

	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&reconcileReq); err != nil {
			slog.Error("Reconcile decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := reconcileReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	referenceDate := time.Now().UTC()
	if reconcileReq.ReferenceDate != nil {
		referenceDate, _ = time.Parse("2006-01-02", *reconcileReq.ReferenceDate)
	}

	results, err := h.salaryService.ReconcileMonth(r.Context(), referenceDate)
	if err != nil {
		slog.Error("Reconcile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary reconciliation finished", results)
}

// Create implements SalaryHandler.
func (h *SalaryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq salary.CreateSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary record created successfully", created)
}

// Get implements SalaryHandler.
func (h *SalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, err := h.salaryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

// List implements SalaryHandler.
func (h *SalaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	salaryMonth := r.URL.Query().Get("month")
	if salaryMonth == "" {
		salaryMonth = time.Now().UTC().Format("2006-01")
	}

	filter := salary.SalaryFilter{}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if paid := r.URL.Query().Get("paid"); paid != "" {
		isPaid := paid == "true"
		filter.Paid = &isPaid
	}
	filter.Page, filter.Limit = parsePagination(r)
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	salaries, total, err := h.salaryService.ListByMonth(r.Context(), salaryMonth, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, salaries, paginationMeta(filter.Page, filter.Limit, total))
}

// Update implements SalaryHandler.
func (h *SalaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq salary.UpdateSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.salaryService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record updated successfully", updated)
}

// MarkPaid implements SalaryHandler.
func (h *SalaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var markReq salary.MarkPaidRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("MarkPaid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.MarkPaid(r.Context(), markReq)
	if err != nil {
		slog.Error("MarkPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary records marked as paid", result)
}

// Delete implements SalaryHandler.
func (h *SalaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.salaryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted successfully", nil)
}
