package storage

import (
	"context"
	"errors"

	"github.com/sethrock/AppointmentManager/models"
)

// ErrDuplicateKey is returned by CreateAppointment when the id already
// exists. Create never silently overwrites.
var ErrDuplicateKey = errors.New("appointment id already exists")

// Store is the only path to persisted appointment state. Both the webhook
// reconciler and the read side go through it, never through the database
// directly.
//
// UpdateAppointment applies only the fields the patch actually sets and
// bumps UpdatedAt; it returns (nil, nil) for an unknown id so callers can
// decide whether "not found" is fatal.
type Store interface {
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, filters models.AppointmentFilters) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, a models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, p models.AppointmentPatch) (*models.Appointment, error)

	CreateWebhookLog(ctx context.Context, entry models.WebhookLog) (*models.WebhookLog, error)
	UpdateWebhookLog(ctx context.Context, id uint, status, action, errorMessage string) (*models.WebhookLog, error)
	GetWebhookLogsByAppointmentID(ctx context.Context, appointmentID string) ([]models.WebhookLog, error)

	GetStaffUser(ctx context.Context, username string) (*models.StaffUser, error)
}

// digitsOf strips everything but digits, so "555-0100" matches "5550100".
func digitsOf(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
