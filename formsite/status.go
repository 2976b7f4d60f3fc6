package formsite

import "github.com/sethrock/AppointmentManager/models"

// NormalizeStatus collapses every disposition representation the forms emit
// (numeric codes, verbs, past tense) into one of the four canonical states.
// Unrecognized or empty input defaults to Scheduled so a non-canonical
// string can never reach the database. Matching is case-sensitive, same as
// the form's own option values.
func NormalizeStatus(raw string) string {
	switch raw {
	case "1", "Complete":
		return models.StatusComplete
	case "3", "Cancel", "Canceled":
		return models.StatusCanceled
	case "2", "Reschedule", "Rescheduled":
		return models.StatusRescheduled
	default:
		return models.StatusScheduled
	}
}
