package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	RespondWithJSON(rec, req, http.StatusOK, MessageResponse{Message: "done"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "done", resp.Message)
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("body carries a detail field", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

		RespondWithError(rec, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Detail string `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Task not found", resp.Detail)
	})

	t.Run("401 carries a bearer challenge", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)

		RespondWithError(rec, req, http.StatusUnauthorized, "Not authenticated")

		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("other statuses carry no challenge", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

		RespondWithError(rec, req, http.StatusBadRequest, "Invalid request format")

		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("trace ID from the context is echoed", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(context.WithValue(req.Context(), TraceIDKey, "trace-123"))

		RespondWithError(rec, req, http.StatusInternalServerError, "An unexpected error occurred")

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "trace-123", resp.TraceID)
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"An unexpected error occurred", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused",
		"raw error must not reach the client")
}
