package api

import (
	"log/slog"
	"net/http"

	"github.com/pkawa95/studytask-api/internal/api/middleware"
	"github.com/pkawa95/studytask-api/internal/api/shared"
	"github.com/pkawa95/studytask-api/internal/store"
)

// HistoryHandler serves the caller's audit log.
type HistoryHandler struct {
	historyStore store.HistoryStore
	logger       *slog.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyStore store.HistoryStore, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HistoryHandler")
	}

	return &HistoryHandler{
		historyStore: historyStore,
		logger:       logger.With(slog.String("component", "history_handler")),
	}
}

// ListHistory handles GET /history requests, newest entries first.
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	entries, err := h.historyStore.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewHistoryListResponse(entries))
}
