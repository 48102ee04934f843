package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
	"github.com/stitchline/garment-erp-go/internal/service/master"
)

type MasterHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)

	CreateOperation(w http.ResponseWriter, r *http.Request)
	GetOperation(w http.ResponseWriter, r *http.Request)
	ListOperations(w http.ResponseWriter, r *http.Request)
	UpdateOperation(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateProduct implements MasterHandler.
func (h *MasterHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createReq production.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateProduct(r.Context(), createReq)
	if err != nil {
		slog.Error("Create product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created successfully", created)
}

// GetProduct implements MasterHandler.
func (h *MasterHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.masterService.GetProduct(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// ListProducts implements MasterHandler.
func (h *MasterHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := production.ProductFilter{}

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if active := r.URL.Query().Get("is_active"); active != "" {
		isActive := active == "true"
		filter.IsActive = &isActive
	}
	filter.Page, filter.Limit = parsePagination(r)
	filter.SortOrder = r.URL.Query().Get("sort_order")

	products, total, err := h.masterService.ListProducts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, products, paginationMeta(filter.Page, filter.Limit, total))
}

// UpdateProduct implements MasterHandler.
func (h *MasterHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var updateReq production.UpdateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.masterService.UpdateProduct(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated successfully", updated)
}

// CreateOperation implements MasterHandler.
func (h *MasterHandlerImpl) CreateOperation(w http.ResponseWriter, r *http.Request) {
	var createReq production.CreateOperationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create operation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateOperation(r.Context(), createReq)
	if err != nil {
		slog.Error("Create operation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Operation created successfully", created)
}

// GetOperation implements MasterHandler.
func (h *MasterHandlerImpl) GetOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	op, err := h.masterService.GetOperation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, op)
}

// ListOperations implements MasterHandler.
func (h *MasterHandlerImpl) ListOperations(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		response.BadRequest(w, "product_id is required", nil)
		return
	}
	activeOnly := r.URL.Query().Get("active_only") == "true"

	operations, err := h.masterService.ListOperations(r.Context(), productID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, operations)
}

// UpdateOperation implements MasterHandler.
func (h *MasterHandlerImpl) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	var updateReq production.UpdateOperationRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update operation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.masterService.UpdateOperation(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update operation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Operation updated successfully", updated)
}
