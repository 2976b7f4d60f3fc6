package models

import "time"

// Webhook sources, one per Formsite form.
const (
	SourceAppointment      = "appointment"
	SourceReschedule       = "appointment-reschedule"
	SourceCompleteOrCancel = "appointment-com-can"
)

// WebhookLog actions and statuses.
const (
	ActionPending    = "pending"
	ActionCreate     = "create"
	ActionReschedule = "reschedule"
	ActionComplete   = "complete"
	ActionCancel     = "cancel"

	LogProcessing = "processing"
	LogSuccess    = "success"
	LogError      = "error"
)

// WebhookLog is the append-only audit trail, one row per inbound event.
// Rows are created as processing and updated exactly once to a terminal
// status; they are never deleted.
type WebhookLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Source        string    `json:"source"`
	AppointmentID string    `json:"appointmentId" gorm:"index"`
	RawData       string    `json:"rawData"`
	Action        string    `json:"action"`
	Status        string    `json:"status"`
	ErrorMessage  string    `json:"errorMessage"`
	CreatedAt     time.Time `json:"createdAt"`
}
