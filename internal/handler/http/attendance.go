package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MarkDay(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// MarkDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkDay(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkDayRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("MarkDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkDay(r.Context(), markReq)
	if err != nil {
		slog.Error("MarkDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", result)
}

// Summary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	personType := r.URL.Query().Get("person_type")
	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		response.BadRequest(w, "person_id is required", nil)
		return
	}
	if personType != string(attendance.PersonTypeEmployee) && personType != string(attendance.PersonTypeWorker) {
		response.BadRequest(w, "person_type must be 'employee' or 'worker'", nil)
		return
	}

	month := time.Now().UTC()
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			response.BadRequest(w, "month must be YYYY-MM", nil)
			return
		}
		month = parsed
	}

	summary, err := h.attendanceService.Summarize(r.Context(),
		attendance.PersonType(personType), personID, month.Month(), month.Year())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RecordFilter{}

	if personType := r.URL.Query().Get("person_type"); personType != "" {
		filter.PersonType = &personType
	}
	if personID := r.URL.Query().Get("person_id"); personID != "" {
		filter.PersonID = &personID
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page, filter.Limit = parsePagination(r)
	filter.SortOrder = r.URL.Query().Get("sort_order")

	records, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, paginationMeta(filter.Page, filter.Limit, total))
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}
