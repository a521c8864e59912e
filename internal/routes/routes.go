package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cityvent/events-api/internal/audit"
	"github.com/cityvent/events-api/internal/cache"
	"github.com/cityvent/events-api/internal/config"
	"github.com/cityvent/events-api/internal/handlers"
	infraRepo "github.com/cityvent/events-api/internal/infra/repository"
	"github.com/cityvent/events-api/internal/media"
	"github.com/cityvent/events-api/internal/middleware"
	"github.com/cityvent/events-api/internal/payments"
	ucEvent "github.com/cityvent/events-api/internal/usecase/event"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	eventRepo := infraRepo.NewEventGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	liveCache := cache.NewLiveStatusCache(cfg.RedisAddr, cfg.RedisPassword)

	storage := media.NewStorage(media.StorageConfig{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		BaseURL:   cfg.MediaBase,
	})

	checkout, err := payments.NewCheckout(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("payments disabled: %v", err)
	}

	// ======================================================
	// USE CASES — EVENTS
	// ======================================================
	createEventUC := ucEvent.NewCreateEvent(eventRepo, auditDispatcher)
	publishScheduleUC := ucEvent.NewPublishSchedule(eventRepo, auditDispatcher)
	cancelEventUC := ucEvent.NewCancelEvent(eventRepo, auditDispatcher)
	listMyEventsUC := ucEvent.NewListMyEvents(eventRepo)
	listByDateUC := ucEvent.NewListEventsByDate(eventRepo)
	liveStatusUC := ucEvent.NewGetLiveStatus(eventRepo, liveCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	eventHandler := handlers.NewEventHandler(
		createEventUC,
		publishScheduleUC,
		cancelEventUC,
		listMyEventsUC,
	)
	scheduleHandler := handlers.NewScheduleHandler()
	mediaHandler := handlers.NewMediaHandler(db, storage, auditDispatcher)

	publicHandler := handlers.NewPublicHandler(db, listByDateUC, liveStatusUC)
	checkoutHandler := handlers.NewCheckoutHandler(db, checkout)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/events", publicHandler.ListByDate)
			publicAPI.GET("/events/:public_id", publicHandler.GetEvent)
			publicAPI.GET("/events/:public_id/live", publicHandler.LiveStatus)
			publicAPI.POST("/events/:public_id/checkout", checkoutHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/events", eventHandler.ListMine)
			secured.POST("/me/events", eventHandler.Create)
			secured.PUT("/me/events/:id/schedule", eventHandler.PublishSchedule)
			secured.PATCH("/me/events/:id/cancel", eventHandler.Cancel)
			secured.PUT("/me/events/:id/cover", mediaHandler.UploadCover)

			secured.POST("/me/schedule/preview", scheduleHandler.Preview)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
