package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bellastudio/booking-api/docs"
	"github.com/bellastudio/booking-api/internal/api/handler"
	"github.com/bellastudio/booking-api/internal/api/middleware"
	"github.com/bellastudio/booking-api/internal/core/service"
	mongodb "github.com/bellastudio/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bellastudio/booking-api/internal/infrastructure/db/redis"
)

// Options bundles the external collaborators the router needs.
type Options struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	// AdminPassword seeds the bootstrap admin account.
	AdminPassword string
	// Queue receives confirmation jobs from the booking flow.
	Queue service.NotificationQueue
	Log   zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the auth service (the caller runs the admin bootstrap).
func NewRouter(opts Options) (*echo.Echo, *service.AuthService) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	serviceRepo := mongodb.NewServiceRepository(opts.Mongo)
	appointmentRepo := mongodb.NewAppointmentRepository(opts.Mongo)
	galleryRepo := mongodb.NewGalleryRepository(opts.Mongo)
	reviewRepo := mongodb.NewReviewRepository(opts.Mongo)
	scheduleRepo := mongodb.NewScheduleRepository(opts.Mongo)
	slots := redisdb.NewSlotHold(opts.Redis)

	// --- Services ---
	tokenService := service.NewTokenService(opts.JWTSecret, 24*time.Hour)
	authService := service.NewAuthService(userRepo, tokenService, opts.AdminPassword, opts.Log)
	catalogService := service.NewCatalogService(serviceRepo, opts.Log)
	bookingService := service.NewBookingService(appointmentRepo, serviceRepo, scheduleRepo, slots, opts.Queue, opts.Log)
	galleryService := service.NewGalleryService(galleryRepo, opts.Log)
	reviewService := service.NewReviewService(reviewRepo, opts.Log)
	scheduleService := service.NewScheduleService(scheduleRepo, opts.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	appointmentHandler := handler.NewAppointmentHandler(bookingService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.AdminOnly(userRepo)

	// --- Routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)

	apiGroup.GET("/services", serviceHandler.List)
	apiGroup.POST("/services", serviceHandler.Create, authRequired, adminOnly)
	apiGroup.PUT("/services/:id", serviceHandler.Update, authRequired, adminOnly)
	apiGroup.DELETE("/services/:id", serviceHandler.Delete, authRequired, adminOnly)

	apiGroup.POST("/appointments", appointmentHandler.Book)
	apiGroup.GET("/appointments", appointmentHandler.List, authRequired, adminOnly)
	apiGroup.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus, authRequired, adminOnly)
	apiGroup.DELETE("/appointments/:id", appointmentHandler.Delete, authRequired, adminOnly)

	apiGroup.GET("/gallery", galleryHandler.List)
	apiGroup.POST("/gallery", galleryHandler.Create, authRequired, adminOnly)
	apiGroup.PUT("/gallery/:id", galleryHandler.Update, authRequired, adminOnly)
	apiGroup.DELETE("/gallery/:id", galleryHandler.Delete, authRequired, adminOnly)

	apiGroup.GET("/reviews", reviewHandler.List)
	apiGroup.POST("/reviews", reviewHandler.Create, authRequired, adminOnly)
	apiGroup.PUT("/reviews/:id", reviewHandler.Update, authRequired, adminOnly)
	apiGroup.DELETE("/reviews/:id", reviewHandler.Delete, authRequired, adminOnly)

	apiGroup.GET("/schedule/blocked-dates", scheduleHandler.ListBlockedDates)
	apiGroup.POST("/schedule/blocked-dates", scheduleHandler.BlockDate, authRequired, adminOnly)
	apiGroup.DELETE("/schedule/blocked-dates/:id", scheduleHandler.UnblockDate, authRequired, adminOnly)

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, authService
}
