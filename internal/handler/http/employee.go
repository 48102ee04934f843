package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/employee"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
	"github.com/stitchline/garment-erp-go/internal/service/file"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	fileService     file.FileService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, fileService file.FileService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		fileService:     fileService,
	}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{}

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

	employees, total, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, employees, paginationMeta(filter.Page, filter.Limit, total))
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// SetActive implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.SetActive(r.Context(), id, body.IsActive); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee status updated successfully", nil)
}

// UploadPhoto implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
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

	photoURL, err := h.fileService.UploadPersonPhoto(r.Context(), "employee", id, f, fileHeader.Filename)
	if err != nil {
		slog.Error("Upload employee photo error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if err := h.employeeService.SetPhoto(r.Context(), id, photoURL); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded successfully", map[string]string{"photo_url": photoURL})
}
