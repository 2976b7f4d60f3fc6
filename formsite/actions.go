package formsite

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/sethrock/AppointmentManager/models"
)

// Staff actions resolve to pre-filled Formsite forms. The dashboard opens
// the URL in a new tab; the completion comes back later through the form's
// webhook, never synchronously.
const (
	rescheduleFormDir = "appointment-reschedule"
	comCanFormDir     = "appointment-com-can"

	dispositionCodeComplete = "1"
	dispositionCodeCancel   = "3"
)

// ActionURLs bundles the three pre-filled form links for one appointment.
type ActionURLs struct {
	Reschedule string `json:"reschedule"`
	Complete   string `json:"complete"`
	Cancel     string `json:"cancel"`
}

// BuildActionURLs returns the pre-filled reschedule, complete and cancel
// form URLs for an appointment.
func (c *Client) BuildActionURLs(a models.Appointment) ActionURLs {
	return ActionURLs{
		Reschedule: c.fillURL(rescheduleFormDir, a, ""),
		Complete:   c.fillURL(comCanFormDir, a, dispositionCodeComplete),
		Cancel:     c.fillURL(comCanFormDir, a, dispositionCodeCancel),
	}
}

// fillURL inverts the field table into a querystring that pre-fills a form.
// dispositionCode, when set, overrides item 49 with the action's code. The
// appointment's reference number always rides in item 59 so the resulting
// submission can be correlated back to this record.
func (c *Client) fillURL(formDir string, a models.Appointment, dispositionCode string) string {
	params := url.Values{}

	for _, f := range fieldTable {
		switch f.Kind {
		case kindText:
			if f.ID == "59" {
				continue // reference number is set below, not the App-ID
			}
			if v := *f.str(&a); v != "" {
				params.Set("id"+f.ID, v)
			}
		case kindNumber:
			if v := *f.num(&a); v != nil {
				params.Set("id"+f.ID, strconv.FormatFloat(*v, 'f', -1, 64))
			}
		case kindBool:
			if a.ClientUsesEmail {
				params.Set("id"+f.ID, "1")
			} else {
				params.Set("id"+f.ID, "0")
			}
		case kindStatus:
			if dispositionCode != "" {
				params.Set("id"+f.ID, dispositionCode)
			} else if a.DispositionStatus != "" {
				params.Set("id"+f.ID, a.DispositionStatus)
			}
		}
	}

	if a.ReferenceNumber != "" {
		params.Set("id59", a.ReferenceNumber)
	}

	return fmt.Sprintf("https://%s.formsite.com/%s/%s/fill?%s", c.cfg.Server, c.cfg.UserDir, formDir, params.Encode())
}
