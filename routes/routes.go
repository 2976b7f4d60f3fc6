package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sethrock/AppointmentManager/authentication"
	"github.com/sethrock/AppointmentManager/controllers"
	"github.com/sethrock/AppointmentManager/webhooks"
)

// Setup wires the full HTTP surface. Webhook endpoints are open because
// Formsite cannot attach a bearer token; everything else sits behind the
// staff JWT middleware.
func Setup(
	log zerolog.Logger,
	jwtSecret string,
	appointmentCtl *controllers.AppointmentController,
	staffCtl *controllers.StaffController,
	webhookHandler *webhooks.Handler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	r.POST("/staff/login", staffCtl.Login)

	hooks := r.Group("/api/webhooks")
	{
		hooks.POST("/appointment", webhookHandler.Appointment)
		hooks.POST("/appointment-reschedule", webhookHandler.Reschedule)
		hooks.POST("/appointment-com-can", webhookHandler.CompleteOrCancel)
	}

	api := r.Group("/api")
	api.Use(authentication.StaffAuthMiddleware([]byte(jwtSecret)))
	{
		api.GET("/appointments", appointmentCtl.GetAppointments)
		api.GET("/appointments/:id", appointmentCtl.GetAppointmentByID)
		api.GET("/appointments/:id/webhook-logs", appointmentCtl.GetWebhookLogs)
		api.GET("/appointments/:id/actions", appointmentCtl.GetAppointmentActions)
		api.GET("/appointments/:id/summary.pdf", appointmentCtl.GetAppointmentSummaryPDF)
		api.GET("/analytics", appointmentCtl.GetAnalytics)
		api.GET("/filters", appointmentCtl.GetFilterOptions)
	}

	return r
}
