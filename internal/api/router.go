package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/socialserv/marketplace-api/docs"
	"github.com/socialserv/marketplace-api/internal/api/handler"
	"github.com/socialserv/marketplace-api/internal/api/middleware"
	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/service"
	mongodb "github.com/socialserv/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/socialserv/marketplace-api/internal/infrastructure/db/redis"
)

const serviceName = "marketplace-api"

// Options carries the runtime settings the router needs beyond its
// connected dependencies.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Version   string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Subsystem must be a valid metric name fragment, so no hyphens here.
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories ---
	customerRepo := mongodb.NewCustomerRepository(db)
	workerRepo := mongodb.NewWorkerRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	passcodeStore := redisdb.NewPasscodeStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(customerRepo, workerRepo, opts.JWTSecret, opts.TokenTTL, log)
	customerService := service.NewCustomerService(customerRepo, log)
	workerService := service.NewWorkerService(workerRepo, log)
	jobService := service.NewJobService(jobRepo, workerRepo, passcodeStore, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	workerHandler := handler.NewWorkerHandler(workerService)
	jobHandler := handler.NewJobHandler(jobService)
	adminHandler := handler.NewAdminHandler(customerRepo, workerRepo, jobRepo, log)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	statsHandler := handler.NewStatsHandler(serviceName, opts.Version, customerRepo, workerRepo, jobRepo)

	authRequired := middleware.Auth(opts.JWTSecret)

	// --- Health probes and operational surfaces (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/health/stats", statsHandler.Stats)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.POST("/register/customer", authHandler.RegisterCustomer)
	auth.POST("/register/worker", authHandler.RegisterWorker)
	auth.POST("/login", authHandler.Login)

	// --- Customer directory ---
	customers := v1.Group("/customers", authRequired)
	customers.GET("", customerHandler.List)

	// --- Worker directory ---
	workers := v1.Group("/workers", authRequired)
	workers.GET("", workerHandler.List)
	workers.PUT("/me", workerHandler.UpdateProfile, middleware.RBAC(domain.RoleWorker))

	// --- Jobs ---
	jobs := v1.Group("/jobs", authRequired)
	jobs.POST("", jobHandler.Create, middleware.RBAC(domain.RoleCustomer))
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PUT("/:id", jobHandler.Update, middleware.RBAC(domain.RoleCustomer))
	jobs.GET("/worker/:worker_id", jobHandler.JobsForWorker)
	jobs.GET("/customer/:customer_id", jobHandler.JobsForCustomer)

	jobs.POST("/:id/accept", jobHandler.Accept, middleware.RBAC(domain.RoleWorker))
	jobs.POST("/:id/arrive", jobHandler.Arrive, middleware.RBAC(domain.RoleWorker))
	jobs.POST("/:id/start", jobHandler.Start, middleware.RBAC(domain.RoleCustomer, domain.RoleWorker))
	jobs.POST("/:id/complete", jobHandler.Complete, middleware.RBAC(domain.RoleWorker))
	jobs.POST("/:id/rate", jobHandler.Rate, middleware.RBAC(domain.RoleCustomer))
	jobs.POST("/:id/cancel", jobHandler.Cancel, middleware.RBAC(domain.RoleCustomer))

	// --- Admin ---
	admin := v1.Group("/admin", authRequired, middleware.RBAC(domain.RoleAdmin))
	admin.DELETE("/data", adminHandler.PurgeData)

	return e
}
