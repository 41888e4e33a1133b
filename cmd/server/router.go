package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/phrazzld/employee-task-api/internal/api"
	"github.com/phrazzld/employee-task-api/internal/api/middleware"
	"github.com/phrazzld/employee-task-api/internal/domain"
)

// anyRole marks routes open to every authenticated caller.
var anyRole []string

var (
	adminOnly    = []string{domain.RoleAdmin}
	adminManager = []string{domain.RoleAdmin, domain.RoleManager}
	allRoles     = []string{domain.RoleAdmin, domain.RoleManager, domain.RoleUser}
)

// route is one authenticated endpoint under /api.
type route struct {
	method  string
	pattern string
	roles   []string
	handler http.HandlerFunc
}

// apiRoutes lists every authenticated endpoint with the roles allowed to call it.
func (app *application) apiRoutes() []route {
	employees := api.NewEmployeeHandler(app.employeeService, app.logger)
	tasks := api.NewTaskHandler(app.taskService, app.logger)
	users := api.NewUserHandler(app.userService, app.logger)

	return []route{
		{http.MethodPost, "/employees", adminOnly, employees.CreateEmployee},
		{http.MethodGet, "/employees", adminManager, employees.ListEmployees},
		{http.MethodGet, "/employees/{id}", adminManager, employees.GetEmployee},
		{http.MethodPut, "/employees/{id}", adminManager, employees.UpdateEmployee},
		{http.MethodDelete, "/employees/{id}", adminOnly, employees.DeleteEmployee},
		{http.MethodGet, "/employees/{id}/tasks", allRoles, tasks.ListEmployeeTasks},

		{http.MethodPost, "/tasks", adminManager, tasks.CreateTask},
		{http.MethodGet, "/tasks", allRoles, tasks.ListTasks},
		{http.MethodGet, "/tasks/{id}", allRoles, tasks.GetTask},
		{http.MethodPut, "/tasks/{id}", adminManager, tasks.UpdateTask},
		{http.MethodDelete, "/tasks/{id}", adminOnly, tasks.DeleteTask},

		{http.MethodGet, "/users/secure-data", anyRole, users.SecureData},
		{http.MethodGet, "/users", anyRole, users.ListUsers},
		{http.MethodGet, "/users/{id}", anyRole, users.GetUser},
		{http.MethodPut, "/users/{id}", adminOnly, users.UpdateUser},
		{http.MethodDelete, "/users/{id}", adminOnly, users.DeleteUser},
	}
}

// setupRouter builds the HTTP handler: global middleware, CORS, public
// endpoints and the role-guarded API routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	authMiddleware := middleware.NewAuthMiddleware(app.jwtService)
	users := api.NewUserHandler(app.userService, app.logger)

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(app.db))

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", users.Register)
		r.Post("/users/login", users.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			for _, rt := range app.apiRoutes() {
				r.With(authMiddleware.RequireRoles(rt.roles...)).Method(rt.method, rt.pattern, rt.handler)
			}
		})
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(app.config.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.TraceIDHeader}),
		handlers.ExposedHeaders([]string{"Location", middleware.TraceIDHeader}),
	)
	return cors(r)
}
