package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/mocks"
)

func TestHistoryHandler_ListHistory(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	otherID := uuid.New()
	taskID := uuid.New()

	t.Run("returns the caller's entries newest first", func(t *testing.T) {
		t.Parallel()

		historyStore := mocks.NewMockHistoryStore()

		created, err := domain.NewHistoryEntry(ownerID, taskID, domain.HistoryActionCreated)
		require.NoError(t, err)
		completed, err := domain.NewHistoryEntry(ownerID, taskID, domain.HistoryActionCompleted)
		require.NoError(t, err)
		foreign, err := domain.NewHistoryEntry(otherID, uuid.New(), domain.HistoryActionCreated)
		require.NoError(t, err)
		historyStore.Entries = append(historyStore.Entries, created, completed, foreign)

		handler := NewHistoryHandler(historyStore, testLogger())

		req := authenticatedRequest(httptest.NewRequest(http.MethodGet, "/history", nil), ownerID)
		rec := httptest.NewRecorder()
		handler.ListHistory(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []HistoryEntryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2, "foreign entries must not leak")
		assert.Equal(t, "completed", resp[0].Action)
		assert.Equal(t, "created", resp[1].Action)
		assert.Equal(t, taskID, resp[0].TaskID)
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		t.Parallel()

		handler := NewHistoryHandler(mocks.NewMockHistoryStore(), testLogger())

		req := authenticatedRequest(httptest.NewRequest(http.MethodGet, "/history", nil), ownerID)
		rec := httptest.NewRecorder()
		handler.ListHistory(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("unauthenticated request is a 401", func(t *testing.T) {
		t.Parallel()

		handler := NewHistoryHandler(mocks.NewMockHistoryStore(), testLogger())

		rec := httptest.NewRecorder()
		handler.ListHistory(rec, httptest.NewRequest(http.MethodGet, "/history", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
