package routes

import (
	"net/http"
	"time"

	"theyool/handlers"
	"theyool/middleware"
	"theyool/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers every handler the router needs.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Availability *handlers.AvailabilityHandler
	BlockedTime  *handlers.BlockedTimeHandler
	Reminder     *handlers.ReminderHandler
}

// RegisterConsultationRoutes sets up the public consultation endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/availability", hb.Availability.GetAvailability)
		api.GET("/available-slots", hb.Availability.GetAvailableSlots)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.GET("/consultations", hb.Booking.ListBookings)
		adminGroup.GET("/consultations/:id", hb.Booking.GetBooking)
		adminGroup.PUT("/consultations/:id/confirm", hb.Booking.ConfirmBooking)
		adminGroup.PUT("/consultations/:id/cancel", hb.Booking.CancelBooking)
		adminGroup.PATCH("/consultations/:id", hb.Booking.UpdateBookingNotes)

		adminGroup.GET("/blocked-times", hb.BlockedTime.ListBlockedTimes)
		adminGroup.POST("/blocked-times", hb.BlockedTime.CreateBlockedTime)
		adminGroup.DELETE("/blocked-times/:id", hb.BlockedTime.DeleteBlockedTime)
	}
}

// RegisterCronRoutes sets up the shared-secret reminder endpoint. Both
// verbs run the same job so external cron services can use either.
func RegisterCronRoutes(r *gin.Engine, hb *HandlerBundle) {
	cronGroup := r.Group("/api/cron")
	{
		cronGroup.Use(middleware.CronAuthMiddleware())
		cronGroup.GET("/send-reminders", hb.Reminder.SendReminders)
		cronGroup.POST("/send-reminders", hb.Reminder.SendReminders)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterConsultationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCronRoutes(r, hb)
	RegisterHealthRoute(r)
}
