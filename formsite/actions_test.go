package formsite

import (
	"net/url"
	"strings"
	"testing"

	"github.com/sethrock/AppointmentManager/models"
)

func TestBuildActionURLs(t *testing.T) {
	client := NewClient(ClientConfig{Server: "fs16", UserDir: "testdir", FormDir: "appointment"}, nil)
	rev := 400.0
	a := models.Appointment{
		ID:                "2001",
		ReferenceNumber:   "2001",
		ClientName:        "Jane Doe",
		ClientUsesEmail:   true,
		GrossRevenue:      &rev,
		DispositionStatus: models.StatusScheduled,
	}

	urls := client.BuildActionURLs(a)

	if !strings.HasPrefix(urls.Reschedule, "https://fs16.formsite.com/testdir/appointment-reschedule/fill?") {
		t.Errorf("Reschedule url = %q", urls.Reschedule)
	}
	if !strings.HasPrefix(urls.Complete, "https://fs16.formsite.com/testdir/appointment-com-can/fill?") {
		t.Errorf("Complete url = %q", urls.Complete)
	}

	completeQ := queryOf(t, urls.Complete)
	if completeQ.Get("id49") != "1" {
		t.Errorf("complete id49 = %q, want disposition code 1", completeQ.Get("id49"))
	}
	cancelQ := queryOf(t, urls.Cancel)
	if cancelQ.Get("id49") != "3" {
		t.Errorf("cancel id49 = %q, want disposition code 3", cancelQ.Get("id49"))
	}

	for name, q := range map[string]url.Values{"complete": completeQ, "cancel": cancelQ} {
		if q.Get("id59") != "2001" {
			t.Errorf("%s id59 = %q, want reference number 2001", name, q.Get("id59"))
		}
		if q.Get("id4") != "Jane Doe" {
			t.Errorf("%s id4 = %q, want Jane Doe", name, q.Get("id4"))
		}
		if q.Get("id32") != "400" {
			t.Errorf("%s id32 = %q, want 400", name, q.Get("id32"))
		}
		if q.Get("id7") != "1" {
			t.Errorf("%s id7 = %q, want 1", name, q.Get("id7"))
		}
		// absent numerics must not appear at all
		if q.Has("id29") {
			t.Errorf("%s carries id29 for a nil duration", name)
		}
	}

	rescheduleQ := queryOf(t, urls.Reschedule)
	if rescheduleQ.Get("id49") != models.StatusScheduled {
		t.Errorf("reschedule id49 = %q, want current status", rescheduleQ.Get("id49"))
	}
}

func queryOf(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing %q: %v", raw, err)
	}
	return u.Query()
}
