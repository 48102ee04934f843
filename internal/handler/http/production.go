package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
)

type ProductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type ProductionHandlerImpl struct {
	productionService production.ProductionService
}

func NewProductionHandler(productionService production.ProductionService) ProductionHandler {
	return &ProductionHandlerImpl{productionService: productionService}
}

// Create implements ProductionHandler.
func (h *ProductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq production.CreateProductionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create production decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productionService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create production service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Production created successfully", created)
}

// Get implements ProductionHandler.
func (h *ProductionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.productionService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// List implements ProductionHandler.
func (h *ProductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := production.ProductionFilter{}

	if productID := r.URL.Query().Get("product_id"); productID != "" {
		filter.ProductID = &productID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page, filter.Limit = parsePagination(r)
	filter.SortOrder = r.URL.Query().Get("sort_order")

	productions, total, err := h.productionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, productions, paginationMeta(filter.Page, filter.Limit, total))
}

// UpdateStatus implements ProductionHandler.
func (h *ProductionHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.productionService.UpdateStatus(r.Context(), id, body.Status); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production status updated successfully", nil)
}
