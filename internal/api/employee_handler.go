package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/employee-task-api/internal/api/shared"
	"github.com/phrazzld/employee-task-api/internal/platform/logger"
	"github.com/phrazzld/employee-task-api/internal/service"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService service.EmployeeService
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger.With("handler", "employee"),
	}
}

// CreateEmployee handles POST /api/employees requests
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while creating the employee.")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("employee created", "employee_id", employee.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/employees/%d", employee.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, employeeToResponse(employee))
}

// GetEmployee handles GET /api/employees/{id} requests
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, employeeToResponse(employee))
}

// ListEmployees handles GET /api/employees requests
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while fetching employees.")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("fetched employees", "count", len(employees))
	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Message: msgEmployeesFetched,
		Data:    employeesToResponse(employees),
	})
}

// UpdateEmployee handles PUT /api/employees/{id} requests
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	var req EmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(r.Context(), id, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "An error occurred while updating the employee.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, employeeToResponse(employee))
}

// DeleteEmployee handles DELETE /api/employees/{id} requests
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathIDOrError(w, r, "id")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "An error occurred while deleting the employee.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
