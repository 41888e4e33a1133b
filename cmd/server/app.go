package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/employee-task-api/internal/config"
	"github.com/phrazzld/employee-task-api/internal/platform/postgres"
	"github.com/phrazzld/employee-task-api/internal/service"
	"github.com/phrazzld/employee-task-api/internal/service/auth"
	"github.com/phrazzld/employee-task-api/internal/store"
)

// application holds all dependencies the HTTP server needs.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	employeeStore store.EmployeeStore
	taskStore     store.TaskStore
	userStore     store.UserStore

	employeeService service.EmployeeService
	taskService     service.TaskService
	userService     service.UserService

	jwtService auth.JWTService
}

// newApplication wires stores, auth components and services around db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	employeeStore := postgres.NewPostgresEmployeeStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	employeeService, err := service.NewEmployeeService(employeeStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %w", err)
	}
	taskService, err := service.NewTaskService(taskStore, employeeStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	userService, err := service.NewUserService(userStore, db, hasher, verifier, jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		employeeStore:   employeeStore,
		taskStore:       taskStore,
		userStore:       userStore,
		employeeService: employeeService,
		taskService:     taskService,
		userService:     userService,
		jwtService:      jwtService,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully and
// releases the database pool.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}
	return runServer(ctx, srv, app.shutdownTimeout(), app.logger)
}

func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	app.logger.Info("Closing database connection")
	closeDB(app.db, app.logger)
}
