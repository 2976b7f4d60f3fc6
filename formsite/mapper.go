package formsite

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sethrock/AppointmentManager/models"
)

// MappingError wraps an unexpected failure while translating a Formsite
// payload. Callers surface it as a server error rather than swallowing it.
type MappingError struct {
	Err error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("failed to map formsite data: %v", e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// flexString tolerates the API returning either a string or a number for
// id-ish fields.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// Item is one answered question on a form result.
type Item struct {
	ID     string `json:"id"`
	Value  string `json:"value"`
	Values []struct {
		Value string `json:"value"`
	} `json:"values"`
}

// Result is one form submission as returned by the results endpoints.
type Result struct {
	ID               flexString `json:"id"`
	ReferenceNumber  flexString `json:"reference_number"`
	RepetitionNumber flexString `json:"repetition_number"`
	TotalScore       flexString `json:"total_score"`
	MaxScore         flexString `json:"max_score"`
	OrderTotal       flexString `json:"order_total"`
	SaveReturnUser   string     `json:"save_return_user"`
	SaveReturnEmail  string     `json:"save_return_email"`
	DateStart        string     `json:"date_start"`
	DateUpdate       string     `json:"date_update"`
	Items            []Item     `json:"items"`
}

// itemLookup flattens the items array into id -> value. Multi-select values
// are joined into one comma-delimited string. A missing or empty items array
// yields an empty lookup, not an error.
func itemLookup(items []Item) map[string]string {
	lookup := make(map[string]string, len(items))
	for _, it := range items {
		if it.Value != "" {
			lookup[it.ID] = it.Value
			continue
		}
		if len(it.Values) > 0 {
			parts := make([]string, 0, len(it.Values))
			for _, v := range it.Values {
				parts = append(parts, v.Value)
			}
			lookup[it.ID] = strings.Join(parts, ", ")
		}
	}
	return lookup
}

// MapResultToAppointment translates a full form result into a normalized
// Appointment. Fields absent from the result stay at their zero value,
// except numerics, which come back as an explicit 0 for downstream
// arithmetic, and the disposition status, which defaults to Scheduled.
func MapResultToAppointment(result Result) (a models.Appointment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &MappingError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	lookup := itemLookup(result.Items)

	a.ID = string(result.ID)
	for _, f := range fieldTable {
		raw, ok := lookup[f.ID]
		switch f.Kind {
		case kindText:
			if ok {
				*f.str(&a) = raw
			}
		case kindNumber:
			n := 0.0
			if ok {
				if v, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64); perr == nil {
					n = v
				}
			}
			*f.num(&a) = &n
		case kindBool:
			a.ClientUsesEmail = raw == "Yes"
		case kindStatus:
			a.DispositionStatus = NormalizeStatus(raw)
		}
	}

	a.ReferenceNumber = string(result.ReferenceNumber)
	a.RepetitionNumber = string(result.RepetitionNumber)
	a.ScoringTotal = string(result.TotalScore)
	a.ScoringMax = string(result.MaxScore)
	a.OrderTotal = string(result.OrderTotal)
	a.SaveReturnUsername = result.SaveReturnUser
	a.SaveReturnEmail = result.SaveReturnEmail
	a.CreatedAt = parseResultTime(result.DateStart)
	a.UpdatedAt = parseResultTime(result.DateUpdate)

	return a, nil
}

// MapPayloadToPatch translates a flat webhook payload (idNN keys, with
// snake_case fallbacks) into a partial update. Keys absent from the payload
// leave the corresponding patch field nil: unlike the full result mapper,
// a webhook must never overwrite fields it did not carry.
func MapPayloadToPatch(payload map[string]any) models.AppointmentPatch {
	var p models.AppointmentPatch
	for _, f := range fieldTable {
		raw, ok := payloadValue(payload, f)
		if !ok {
			continue
		}
		switch f.Kind {
		case kindText:
			v := raw
			*f.strP(&p) = &v
		case kindNumber:
			if v, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64); perr == nil {
				*f.numP(&p) = &v
			}
		case kindBool:
			v := raw == "1" || raw == "true" || raw == "Yes"
			p.ClientUsesEmail = &v
		case kindStatus:
			v := NormalizeStatus(raw)
			p.DispositionStatus = &v
		}
	}
	return p
}

// CreateTargetID extracts the appointment id from a create-form payload.
func CreateTargetID(payload map[string]any) string {
	if v := stringify(payload["id"]); v != "" {
		return v
	}
	return stringify(payload["result_id"])
}

// ReferenceTargetID extracts the originating appointment id from a
// reschedule or complete/cancel payload, where it rides in the hidden
// reference-number field.
func ReferenceTargetID(payload map[string]any) string {
	if v := stringify(payload["id59"]); v != "" {
		return v
	}
	return stringify(payload["reference_number"])
}

func payloadValue(payload map[string]any, f fieldMapping) (string, bool) {
	if v, ok := payload["id"+f.ID]; ok {
		return stringify(v), true
	}
	if v, ok := payload[f.Key]; ok {
		return stringify(v), true
	}
	return "", false
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, stringify(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// Formsite reports result timestamps in a few close formats.
func parseResultTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
