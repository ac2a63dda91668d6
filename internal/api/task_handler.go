package api

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/api/middleware"
	"github.com/pkawa95/studytask-api/internal/api/shared"
	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/platform/logger"
	"github.com/pkawa95/studytask-api/internal/service"
	"github.com/pkawa95/studytask-api/internal/store"
)

// maxTaskFormMemory caps the in-memory portion of a multipart task form;
// larger image uploads spill to temp files.
const maxTaskFormMemory = 10 << 20 // 10 MiB

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.listWithFilter(w, r, store.TaskFilterAll)
}

// ListActiveTasks handles GET /tasks/active requests.
func (h *TaskHandler) ListActiveTasks(w http.ResponseWriter, r *http.Request) {
	h.listWithFilter(w, r, store.TaskFilterActive)
}

// ListCompletedTasks handles GET /tasks/completed requests.
func (h *TaskHandler) ListCompletedTasks(w http.ResponseWriter, r *http.Request) {
	h.listWithFilter(w, r, store.TaskFilterCompleted)
}

func (h *TaskHandler) listWithFilter(w http.ResponseWriter, r *http.Request, filter store.TaskFilter) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), userID, filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// CreateTask handles POST /tasks requests. The payload arrives as a
// multipart or urlencoded form so an image file can ride along; the
// image is stored base64-encoded.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxTaskFormMemory); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	title := r.FormValue("title")
	priority := r.FormValue("priority")
	dueDateRaw := r.FormValue("due_date")

	if title == "" || priority == "" || dueDateRaw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"title, priority and due_date are required")
		return
	}

	dueDate, err := time.Parse(dueDateLayout, dueDateRaw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid due_date, expected YYYY-MM-DD")
		return
	}

	var subjectID *uuid.UUID
	if raw := r.FormValue("subject_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid subject ID")
			return
		}
		subjectID = &id
	}

	var description *string
	if raw := r.FormValue("description"); raw != "" {
		description = &raw
	}

	image, err := h.readImageForm(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Failed to read image upload", err)
		return
	}

	task, err := h.taskService.CreateTask(
		r.Context(), userID, title, priority, dueDate, subjectID, description, image)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// readImageForm extracts an optional image file from the form and
// base64-encodes its contents. A missing file or a non-multipart form is
// not an error.
func (h *TaskHandler) readImageForm(r *http.Request) (*string, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close uploaded file", slog.String("error", err.Error()))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return &encoded, nil
}

// UpdateTask handles PUT /tasks/{id} requests with a JSON partial
// update.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req TaskUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Priority:    req.Priority,
		SubjectID:   req.SubjectID,
		Completed:   req.Completed,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Invalid due_date, expected YYYY-MM-DD")
			return
		}
		patch.DueDate = &dueDate
	}

	task, err := h.taskService.UpdateTask(r.Context(), userID, taskID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// MarkTaskDone handles PUT /tasks/{id}/done requests.
func (h *TaskHandler) MarkTaskDone(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if _, err := h.taskService.CompleteTask(r.Context(), userID, taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Task marked as completed",
	})
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Task deleted",
	})
}
