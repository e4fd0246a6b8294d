package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"telehealth-server/internal/config"
	"telehealth-server/internal/handlers"
	"telehealth-server/internal/metrics"
	"telehealth-server/internal/middleware"
	"telehealth-server/internal/query"
	"telehealth-server/internal/session"
	"telehealth-server/pkg/logging"
)

// Dependencies are the services the routes are built over.
type Dependencies struct {
	Config   *config.Config
	Sessions *session.Manager
	Doctors  *query.Doctors
	Logger   *logging.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	sessionHandler := handlers.NewSessionHandler(deps.Sessions, cfg, deps.Logger)
	doctorHandler := handlers.NewDoctorHandler(deps.Doctors)
	symptomHandler := handlers.NewSymptomHandler(deps.Doctors)
	authHandler := handlers.NewAuthHandler()
	stateHandler := handlers.NewStateHandler()
	messageHandler := handlers.NewMessageHandler(deps.Doctors, cfg.Delays, deps.Metrics, deps.Logger)
	notificationHandler := handlers.NewNotificationHandler()
	favoriteHandler := handlers.NewFavoriteHandler(deps.Doctors)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Doctors, deps.Logger)

	// Public routes (no session required)
	public := router.Group("/api/v1")
	{
		public.POST("/sessions", sessionHandler.CreateSession)

		doctorRoutes := public.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.GetDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
			doctorRoutes.GET("/:id/reviews", doctorHandler.GetDoctorReviews)
			doctorRoutes.POST("/:id/response", doctorHandler.GetDoctorResponse)
		}

		public.POST("/symptoms/analyze", symptomHandler.AnalyzeSymptoms)
	}

	// Session routes
	private := router.Group("/api/v1")
	private.Use(middleware.SessionMiddleware(deps.Sessions, cfg.JWTSecret))
	{
		private.DELETE("/sessions/current", sessionHandler.EndSession)

		private.GET("/state", stateHandler.GetState)
		private.PATCH("/state/ui", stateHandler.UpdateUI)
		private.GET("/events", stateHandler.Events)

		authRoutes := private.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/profile", middleware.RequireUser(), authHandler.GetProfile)
			authRoutes.PUT("/profile", middleware.RequireUser(), authHandler.UpdateProfile)
		}

		messageRoutes := private.Group("/messages")
		{
			messageRoutes.GET("", messageHandler.GetMessages)
			messageRoutes.POST("", middleware.RequireUser(), messageHandler.SendMessage)
			messageRoutes.PATCH("/:id/read", messageHandler.MarkMessageAsRead)
		}

		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkNotificationAsRead)
			notificationRoutes.POST("/read-all", notificationHandler.MarkAllNotificationsRead)
		}

		favoriteRoutes := private.Group("/favorites")
		{
			favoriteRoutes.GET("", favoriteHandler.GetFavorites)
			favoriteRoutes.PUT("/:doctorId", favoriteHandler.AddFavorite)
			favoriteRoutes.DELETE("/:doctorId", favoriteHandler.RemoveFavorite)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
