package webhooks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sethrock/AppointmentManager/models"
)

// Handler exposes the three Formsite webhook endpoints. The endpoint path
// is the source discriminator; Formsite sends the same flat payload shape
// to all three.
type Handler struct {
	reconciler *Reconciler
}

func NewHandler(r *Reconciler) *Handler {
	return &Handler{reconciler: r}
}

func (h *Handler) Appointment(c *gin.Context)      { h.handle(c, models.SourceAppointment) }
func (h *Handler) Reschedule(c *gin.Context)       { h.handle(c, models.SourceReschedule) }
func (h *Handler) CompleteOrCancel(c *gin.Context) { h.handle(c, models.SourceCompleteOrCancel) }

// handle acks with 200 no matter what: Formsite retry-storms on non-2xx,
// and a permanent business error would never succeed on retry anyway. The
// outcome rides in the body.
func (h *Handler) handle(c *gin.Context, source string) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid JSON payload"})
		return
	}

	message, err := h.reconciler.Process(c.Request.Context(), source, payload)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
