package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{"a", "b"}, &Meta{Page: 2, Limit: 20, TotalItems: 45, TotalPages: 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, int64(45), resp.Meta.TotalItems)
	assert.Nil(t, resp.Error)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "is required"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeBody(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "is required", resp.Error.Details["email"])
}

func TestErrorHelperCodes(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		wantCode int
		wantErr  string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "no", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "no") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "no") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "no") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "no") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "no") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			resp := decodeBody(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
			assert.Equal(t, "no", resp.Error.Message)
		})
	}
}
