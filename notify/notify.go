package notify

import (
	"context"
	"fmt"

	"github.com/go-gomail/gomail"
	"github.com/rs/zerolog"

	"github.com/sethrock/AppointmentManager/models"
)

// Mailer emails the staff inbox when an appointment is completed or
// canceled. Sends run in a goroutine so webhook acknowledgement never
// waits on SMTP.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	to       string
	log      zerolog.Logger
}

func NewMailer(host string, port int, username, password, to string, log zerolog.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		to:       to,
		log:      log.With().Str("component", "notify").Logger(),
	}
}

func (m *Mailer) AppointmentResolved(ctx context.Context, a *models.Appointment, action string) {
	appointment := *a
	go func() {
		if err := m.send(appointment, action); err != nil {
			m.log.Error().Err(err).
				Str("appointment_id", appointment.ID).
				Str("action", action).
				Msg("notification email failed")
		}
	}()
}

func (m *Mailer) send(a models.Appointment, action string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.username)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Appointment %s: %s", a.ID, action))
	msg.SetBody("text/plain", body(a, action))

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

func body(a models.Appointment, action string) string {
	b := fmt.Sprintf("Appointment %s was marked %s.\n\nClient: %s\nProvider: %s\nStart: %s %s\n",
		a.ID, action, a.ClientName, a.Provider, a.StartDate, a.StartTime)
	switch a.DispositionStatus {
	case models.StatusComplete:
		if a.TotalCollected != nil {
			b += fmt.Sprintf("Total collected: %.2f\n", *a.TotalCollected)
		}
	case models.StatusCanceled:
		if a.WhoCanceled != "" {
			b += fmt.Sprintf("Canceled by: %s\n", a.WhoCanceled)
		}
	}
	return b
}
