package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/employee-task-api/internal/api/shared"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/platform/logger"
	"github.com/phrazzld/employee-task-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
	now         func() time.Time
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With("handler", "task"),
		now:         time.Now,
	}
}

// toDomain parses and checks the due date against the handler clock.
func (h *TaskHandler) toDomain(req TaskRequest) (*domain.Task, error) {
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDueDate(due, h.now().UTC()); err != nil {
		return nil, err
	}
	return &domain.Task{
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     due,
	}, nil
}

// CreateTask handles POST /api/tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.toDomain(req)
	if err != nil {
		log.Warn("rejected task payload", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	created, err := h.taskService.CreateTask(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while creating the task.")
		return
	}

	log.Info("task created", "task_id", created.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(created))
}

// GetTask handles GET /api/tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests, optionally filtered by ?employeeId=
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var (
		tasks []domain.Task
		err   error
	)

	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		employeeID, perr := parsePositiveID("employeeId", raw)
		if perr != nil {
			HandleAPIError(w, r, perr, "")
			return
		}
		tasks, err = h.taskService.ListTasksByEmployee(r.Context(), employeeID)
	} else {
		tasks, err = h.taskService.ListTasks(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while fetching tasks.")
		return
	}

	h.respondWithTasks(w, r, tasks)
}

// ListEmployeeTasks handles GET /api/employees/{id}/tasks requests
func (h *TaskHandler) ListEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasksByEmployee(r.Context(), employeeID)
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while fetching tasks.")
		return
	}

	h.respondWithTasks(w, r, tasks)
}

func (h *TaskHandler) respondWithTasks(w http.ResponseWriter, r *http.Request, tasks []domain.Task) {
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("fetched tasks", "count", len(tasks))
	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Message: msgTasksFetched,
		Data:    tasksToResponse(tasks),
	})
}

// UpdateTask handles PUT /api/tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.toDomain(req)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("rejected task payload", "error", err, "task_id", id)
		HandleAPIError(w, r, err, "")
		return
	}

	updated, err := h.taskService.UpdateTask(r.Context(), id, task)
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while updating the task.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(updated))
}

// DeleteTask handles DELETE /api/tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "An error occurred while deleting the task.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
