package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
)

type PieceworkHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PieceworkHandlerImpl struct {
	pieceworkService piecework.PieceworkService
}

func NewPieceworkHandler(pieceworkService piecework.PieceworkService) PieceworkHandler {
	return &PieceworkHandlerImpl{pieceworkService: pieceworkService}
}

// Record implements PieceworkHandler.
func (h *PieceworkHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq piecework.RecordPiecesRequest

	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record pieces decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.pieceworkService.RecordPieces(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record pieces service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pieces recorded successfully", created)
}

// Get implements PieceworkHandler.
func (h *PieceworkHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ws, err := h.pieceworkService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ws)
}

// List implements PieceworkHandler.
func (h *PieceworkHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := piecework.WorkerSalaryFilter{}

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if operationID := r.URL.Query().Get("operation_id"); operationID != "" {
		filter.OperationID = &operationID
	}
	if productID := r.URL.Query().Get("product_id"); productID != "" {
		filter.ProductID = &productID
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if paid := r.URL.Query().Get("paid"); paid != "" {
		isPaid := paid == "true"
		filter.Paid = &isPaid
	}
	filter.Page, filter.Limit = parsePagination(r)
	filter.SortOrder = r.URL.Query().Get("sort_order")

	records, total, err := h.pieceworkService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, paginationMeta(filter.Page, filter.Limit, total))
}

// MarkPaid implements PieceworkHandler.
func (h *PieceworkHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var markReq piecework.MarkPaidRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("MarkPaid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.pieceworkService.MarkPaid(r.Context(), markReq)
	if err != nil {
		slog.Error("MarkPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker salary records marked as paid", result)
}

// Delete implements PieceworkHandler.
func (h *PieceworkHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.pieceworkService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker salary record deleted successfully", nil)
}
