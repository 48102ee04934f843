package http

import (
	"net/http"
	"strconv"

	"github.com/stitchline/garment-erp-go/internal/handler/http/response"
)

// parsePagination reads page/limit query params with sane defaults.
func parsePagination(r *http.Request) (page, limit int) {
	page = 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	limit = 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	return page, limit
}

func paginationMeta(page, limit int, totalItems int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
