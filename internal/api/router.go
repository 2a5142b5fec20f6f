package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/project-api/internal/api/handler"
	"github.com/taskhive/project-api/internal/api/middleware"
	"github.com/taskhive/project-api/internal/core/ports"
	"github.com/taskhive/project-api/internal/core/service"
	mongodb "github.com/taskhive/project-api/internal/infrastructure/db/mongo"
	"github.com/taskhive/project-api/internal/infrastructure/http/handlers"
)

// Deps carries the externally constructed dependencies the router wires
// into handlers.
type Deps struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Tokens   ports.TokenManager
	Activity ports.ActivityRecorder
	Throttle service.LoginThrottle
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("projectapi"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	projectRepo := mongodb.NewProjectRepository(deps.DB)
	membershipRepo := mongodb.NewMembershipRepository(deps.DB)
	taskRepo := mongodb.NewTaskRepository(deps.DB)
	activityRepo := mongodb.NewActivityRepository(deps.DB)

	// --- Services ---
	hasher := service.NewBcryptHasher()
	userService := service.NewUserService(userRepo, membershipRepo, hasher, deps.Activity)
	authService := service.NewAuthService(userService, hasher, deps.Tokens, deps.Throttle, deps.Activity, deps.Log)
	projectService := service.NewProjectService(projectRepo, membershipRepo, userRepo, deps.Activity)
	taskService := service.NewTaskService(taskRepo, projectRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, activityRepo)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	authRequired := middleware.Auth(deps.Tokens)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/activity", userHandler.Activity)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC("admin"))
	users.POST("/add-to-project", userHandler.AddToProject)

	// --- Project routes ---
	projects := e.Group("/projects", authRequired)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.POST("/:id/tasks", taskHandler.Create)
	projects.GET("/:id/tasks", taskHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
