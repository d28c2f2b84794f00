package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/audit"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/auth"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/handlers"
	infraRepo "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/infra/repository"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/middleware"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/notification"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/payment"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/storage"
	ucbooking "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/usecase/booking"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/weather"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	tokenService := auth.NewTokenService(db, cfg.CookieSecret)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	poolUploads := storage.NewUploads(cfg.UploadsDir)
	galleryUploads := storage.NewUploads(cfg.GalleryDir)

	mailer := notification.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AlertEmail)

	var payments *payment.MercadoPago
	if cfg.Flags.PagamentoOnline && cfg.MercadoPagoAccessToken != "" {
		p, err := payment.NewMercadoPago(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Error().Err(err).Msg("mercado pago disabled: invalid credentials")
		} else {
			payments = p
		}
	}

	var weatherClient *weather.Client
	if cfg.WeatherAPIKey != "" {
		weatherClient = weather.NewClient(
			cfg.WeatherAPIKey,
			cfg.WeatherCity,
			weather.NewCache(cfg.RedisAddr),
		)
	}

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createBookingUC := ucbooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	checkAvailabilityUC := ucbooking.NewCheckAvailability(
		bookingRepo,
	)

	updateStatusUC := ucbooking.NewUpdateAppointmentStatus(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokenService, cfg)

	bookingHandler := handlers.NewBookingHandler(
		db,
		cfg,
		createBookingUC,
		checkAvailabilityUC,
		poolUploads,
		mailer,
		payments,
	)

	appointmentAdminHandler := handlers.NewAppointmentAdminHandler(
		db,
		updateStatusUC,
		auditDispatcher,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, cfg, galleryUploads)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	weatherHandler := handlers.NewWeatherHandler(cfg, weatherClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceHandler.ListPublic)
			publicAPI.GET("/gallery", galleryHandler.ListPublic)
			publicAPI.GET("/weather", weatherHandler.Get)
			publicAPI.GET("/availability", bookingHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA (cookie de sessão)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokenService, db))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.GetMe)

			// ------------------------------
			// AGENDAMENTOS DO CLIENTE
			// ------------------------------
			secured.GET("/me/appointments", bookingHandler.ListMine)
			secured.POST("/me/appointments", bookingHandler.Create)
			secured.POST("/me/appointments/:id/photo", bookingHandler.UploadPhoto)
			secured.GET("/me/appointments/:id/payment-link", bookingHandler.PaymentLink)

			// ------------------------------
			// BACK OFFICE
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/appointments", appointmentAdminHandler.List)
				admin.POST("/appointments", appointmentAdminHandler.Create)
				admin.PATCH("/appointments/:id/confirm", appointmentAdminHandler.Confirm)
				admin.PATCH("/appointments/:id/reject", appointmentAdminHandler.Reject)
				admin.PATCH("/appointments/:id/done", appointmentAdminHandler.Done)
				admin.PATCH("/appointments/:id/miss", appointmentAdminHandler.Miss)
				admin.DELETE("/appointments/:id", appointmentAdminHandler.Delete)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/schedule-limits", scheduleHandler.Get)
				admin.PUT("/schedule-limits", scheduleHandler.Update)

				admin.POST("/gallery", galleryHandler.Create)

				admin.GET("/users", userHandler.List)
				admin.PATCH("/users/:id/admin", userHandler.SetAdmin)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
