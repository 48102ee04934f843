package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/worker"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
	"github.com/stitchline/garment-erp-go/internal/service/file"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
	fileService   file.FileService
}

func NewWorkerHandler(workerService worker.WorkerService, fileService file.FileService) WorkerHandler {
	return &WorkerHandlerImpl{
		workerService: workerService,
		fileService:   fileService,
	}
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", created)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	wk, err := h.workerService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, wk)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.WorkerFilter{}

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if active := r.URL.Query().Get("is_active"); active != "" {
		isActive := active == "true"
		filter.IsActive = &isActive
	}
	filter.Page, filter.Limit = parsePagination(r)
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	workers, total, err := h.workerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, workers, paginationMeta(filter.Page, filter.Limit, total))
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq worker.UpdateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.workerService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", updated)
}

// SetActive implements WorkerHandler.
func (h *WorkerHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.workerService.SetActive(r.Context(), id, body.IsActive); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker status updated successfully", nil)
}

// UploadPhoto implements WorkerHandler.
func (h *WorkerHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Photo file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer f.Close()

	photoURL, err := h.fileService.UploadPersonPhoto(r.Context(), "worker", id, f, fileHeader.Filename)
	if err != nil {
		slog.Error("Upload worker photo error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if err := h.workerService.SetPhoto(r.Context(), id, photoURL); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded successfully", map[string]string{"photo_url": photoURL})
}
