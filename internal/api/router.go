package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/receptionhq/queue-calling/docs"
	"github.com/receptionhq/queue-calling/internal/api/handler"
	"github.com/receptionhq/queue-calling/internal/api/middleware"
	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
	"github.com/receptionhq/queue-calling/internal/core/service"
	"github.com/receptionhq/queue-calling/internal/infrastructure/config"
	mongodb "github.com/receptionhq/queue-calling/internal/infrastructure/db/mongo"
	redisdb "github.com/receptionhq/queue-calling/internal/infrastructure/db/redis"
	"github.com/receptionhq/queue-calling/pkg/logger"
)

// NewRouter wires repositories, services, and handlers into an Echo instance
// with all routes registered. It also starts the queue service's command loop
// (stopped when ctx is cancelled) and seeds the guaranteed accounts.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("queue"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	stateRepo := mongodb.NewStateRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.SessionTTL, logger.For("auth"))

	var seedStaff *service.SeedUser
	if cfg.Staff.Username != "" && cfg.Staff.Password != "" {
		seedStaff = &service.SeedUser{Username: cfg.Staff.Username, Password: cfg.Staff.Password, Role: domain.RoleStaff}
	}
	userService := service.NewUserService(userRepo, sessionStore,
		service.SeedUser{Username: cfg.Admin.Username, Password: cfg.Admin.Password, Role: domain.RoleAdmin},
		seedStaff, logger.For("users"))
	if err := userService.EnsureSeedUsers(ctx); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	queueService := service.NewQueueService(stateRepo, logger.For("queue"))
	queueService.Start(ctx)

	authHandler := handler.NewAuthHandler(authService)
	queueHandler := handler.NewQueueHandler(queueService)
	displayHandler := handler.NewDisplayHandler(queueService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Public routes ---
	a := e.Group("/api")
	a.GET("/health", healthHandler.Liveness)
	a.GET("/health/ready", healthDepsHandler.Readiness)
	a.GET("/metrics", echoprometheus.NewHandler())
	a.GET("/docs/*", echoswagger.WrapHandler)
	a.POST("/login", authHandler.Login)
	a.POST("/logout", authHandler.Logout)
	a.GET("/state", queueHandler.State)

	// --- Staff routes (staff or admin) ---
	staff := a.Group("", middleware.Auth(authService), middleware.RequireRole(domain.RoleStaff))
	staff.POST("/next", queueHandler.Next)
	staff.POST("/prev", queueHandler.Prev)
	staff.POST("/staff-message", displayHandler.SetBroadcast(ports.FieldStaffMessage))
	staff.POST("/staff-message/clear", displayHandler.ClearBroadcast(ports.FieldStaffMessage))

	// --- Admin routes ---
	admin := a.Group("", middleware.Auth(authService), middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/queue/reset", queueHandler.Reset)
	admin.POST("/ticker", displayHandler.SetBroadcast(ports.FieldTicker))
	admin.POST("/ticker/clear", displayHandler.ClearBroadcast(ports.FieldTicker))
	admin.POST("/display-message", displayHandler.SetBroadcast(ports.FieldDisplayMessage))
	admin.POST("/display-message/clear", displayHandler.ClearBroadcast(ports.FieldDisplayMessage))
	admin.POST("/note", displayHandler.SetBroadcast(ports.FieldNote))
	admin.POST("/note/clear", displayHandler.ClearBroadcast(ports.FieldNote))
	admin.POST("/admin-message", displayHandler.SetBroadcast(ports.FieldAdminMessage))
	admin.POST("/admin-message/clear", displayHandler.ClearBroadcast(ports.FieldAdminMessage))
	admin.POST("/center-image", displayHandler.SetCenterImage)
	admin.DELETE("/center-image", displayHandler.ClearCenterImage)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:username/password", userHandler.ResetPassword)
	admin.DELETE("/users/:username", userHandler.Delete)

	return e, nil
}
