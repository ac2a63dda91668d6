package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/api/middleware"
	"github.com/pkawa95/studytask-api/internal/api/shared"
	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/platform/logger"
	"github.com/pkawa95/studytask-api/internal/service"
)

// SubjectHandler handles subject-related HTTP requests.
type SubjectHandler struct {
	subjectService service.SubjectService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(subjectService service.SubjectService, logger *slog.Logger) *SubjectHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SubjectHandler")
	}

	return &SubjectHandler{
		subjectService: subjectService,
		validator:      validator.New(),
		logger:         logger.With(slog.String("component", "subject_handler")),
	}
}

// ListSubjects handles GET /subjects requests.
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	subjects, err := h.subjectService.ListSubjects(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewSubjectListResponse(subjects))
}

// CreateSubject handles POST /subjects requests.
func (h *SubjectHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req SubjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	subject, err := h.subjectService.CreateSubject(
		r.Context(), userID, req.Name, req.Description, req.Teacher, req.Color)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("subject created",
		slog.String("subject_id", subject.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, NewSubjectResponse(subject))
}

// UpdateSubject handles PUT /subjects/{id} requests.
func (h *SubjectHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	subjectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid subject ID")
		return
	}

	var patch domain.SubjectPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	subject, err := h.subjectService.UpdateSubject(r.Context(), userID, subjectID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewSubjectResponse(subject))
}

// DeleteSubject handles DELETE /subjects/{id} requests. The subject's
// tasks and their history entries go with it.
func (h *SubjectHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	subjectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid subject ID")
		return
	}

	if err := h.subjectService.DeleteSubject(r.Context(), userID, subjectID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Subject deleted",
	})
}
