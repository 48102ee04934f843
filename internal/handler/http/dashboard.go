package http

import (
	"net/http"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/dashboard"
	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summarize(r.Context(), time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
