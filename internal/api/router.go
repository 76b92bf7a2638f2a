package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/edulab/lms-api/docs"
	"github.com/edulab/lms-api/internal/api/handler"
	"github.com/edulab/lms-api/internal/api/middleware"
	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are nil with the
// default in-memory setup; the readiness probe and rate limiter degrade
// gracefully without them.
type Deps struct {
	AuthService   ports.AuthService
	UserService   ports.UserService
	CourseService ports.CourseService

	JWTSecret    string
	LoginLimiter middleware.AttemptLimiter

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("lms"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	courseHandler := handler.NewCourseHandler(deps.CourseService)

	authMW := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))
	teaching := middleware.RBAC(string(domain.RoleAdmin), string(domain.RoleInstructor))

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, middleware.RateLimit(deps.LoginLimiter))
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/profile", authHandler.Profile, authMW)

	// --- Users (all routes gated; mutations are admin-only) ---
	users := e.Group("/v1/users", authMW)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, adminOnly)
	users.PATCH("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Courses (all routes gated; writes need a teaching role) ---
	courses := e.Group("/v1/courses", authMW)
	courses.GET("", courseHandler.List)
	courses.GET("/:id", courseHandler.Get)
	courses.POST("", courseHandler.Create, teaching)
	courses.PATCH("/:id", courseHandler.Update, teaching)
	courses.DELETE("/:id", courseHandler.Delete, adminOnly)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
