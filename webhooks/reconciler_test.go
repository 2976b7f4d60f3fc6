package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sethrock/AppointmentManager/models"
	"github.com/sethrock/AppointmentManager/storage"
)

func newTestReconciler() (*Reconciler, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewReconciler(store, zerolog.Nop()), store
}

func TestProcessCreate(t *testing.T) {
	r, store := newTestReconciler()
	ctx := context.Background()

	msg, err := r.Process(ctx, models.SourceAppointment, map[string]any{
		"id":   "2001",
		"id4":  "Jane Doe",
		"id32": "400",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if msg != "Created new appointment 2001" {
		t.Errorf("msg = %q", msg)
	}

	a, _ := store.GetAppointment(ctx, "2001")
	if a == nil {
		t.Fatal("appointment not created")
	}
	if a.ClientName != "Jane Doe" {
		t.Errorf("ClientName = %q, want Jane Doe", a.ClientName)
	}
	if a.GrossRevenue == nil || *a.GrossRevenue != 400 {
		t.Errorf("GrossRevenue = %v, want 400", a.GrossRevenue)
	}
	if a.DispositionStatus != models.StatusScheduled {
		t.Errorf("DispositionStatus = %q, want default Scheduled", a.DispositionStatus)
	}

	logs, _ := store.GetWebhookLogsByAppointmentID(ctx, "2001")
	if len(logs) != 1 {
		t.Fatalf("len(logs) = %d, want 1", len(logs))
	}
	if logs[0].Status != models.LogSuccess || logs[0].Action != models.ActionCreate {
		t.Errorf("log = %+v, want success/create", logs[0])
	}
}

func TestProcessCreateRedeliveryIsIdempotent(t *testing.T) {
	r, store := newTestReconciler()
	ctx := context.Background()

	payload := map[string]any{"id": "2001", "id4": "Jane Doe"}
	if _, err := r.Process(ctx, models.SourceAppointment, payload); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	msg, err := r.Process(ctx, models.SourceAppointment, payload)
	if err != nil {
		t.Fatalf("second delivery: %v", err)
	}
	if msg != "Updated appointment 2001" {
		t.Errorf("msg = %q, want update on redelivery", msg)
	}

	logs, _ := store.GetWebhookLogsByAppointmentID(ctx, "2001")
	if len(logs) != 2 {
		t.Fatalf("len(logs) = %d, want both deliveries logged", len(logs))
	}
	for _, l := range logs {
		if l.Status != models.LogSuccess {
			t.Errorf("log %d status = %q, want success", l.ID, l.Status)
		}
	}
}

func TestProcessReschedule(t *testing.T) {
	r, store := newTestReconciler()
	ctx := context.Background()

	if _, err := r.Process(ctx, models.SourceAppointment, map[string]any{
		"id":   "2001",
		"id4":  "Jane Doe",
		"id45": "prefers afternoons",
		"id25": "2024-03-10",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	msg, err := r.Process(ctx, models.SourceReschedule, map[string]any{
		"id59": "2001",
		"id61": "2024-03-17",
		"id62": "15:00",
		"id4":  "SHOULD NOT LAND", // reschedule only touches its own fields
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if msg != "Rescheduled appointment 2001" {
		t.Errorf("msg = %q", msg)
	}

	a, _ := store.GetAppointment(ctx, "2001")
	if a.DispositionStatus != models.StatusRescheduled {
		t.Errorf("DispositionStatus = %q, want Rescheduled", a.DispositionStatus)
	}
	if a.UpdatedStartDate != "2024-03-17" || a.UpdatedStartTime != "15:00" {
		t.Errorf("updated schedule = %q %q", a.UpdatedStartDate, a.UpdatedStartTime)
	}
	if a.ClientName != "Jane Doe" {
		t.Errorf("ClientName = %q, reschedule must not rewrite client fields", a.ClientName)
	}
	if a.ClientNotes != "prefers afternoons" {
		t.Errorf("ClientNotes = %q, want preserved", a.ClientNotes)
	}
	if a.StartDate != "2024-03-10" {
		t.Errorf("StartDate = %q, original schedule must survive", a.StartDate)
	}
}

func TestProcessComplete(t *testing.T) {
	r, store := newTestReconciler()
	ctx := context.Background()

	if _, err := r.Process(ctx, models.SourceAppointment, map[string]any{
		"id": "2001", "id4": "Jane Doe", "id32": "400",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	msg, err := r.Process(ctx, models.SourceCompleteOrCancel, map[string]any{
		"id59": "2001",
		"id49": "1",
		"id53": "400",
		"id57": "Yes",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if msg != "Updated appointment 2001 with action: complete" {
		t.Errorf("msg = %q", msg)
	}

	a, _ := store.GetAppointment(ctx, "2001")
	if a.DispositionStatus != models.StatusComplete {
		t.Errorf("DispositionStatus = %q, want Complete", a.DispositionStatus)
	}
	if a.TotalCollected == nil || *a.TotalCollected != 400 {
		t.Errorf("TotalCollected = %v, want 400", a.TotalCollected)
	}
	if a.SeeAgain != "Yes" {
		t.Errorf("SeeAgain = %q, want Yes", a.SeeAgain)
	}
}

func TestProcessCancel(t *testing.T) {
	r, store := newTestReconciler()
	ctx := context.Background()

	r.Process(ctx, models.SourceAppointment, map[string]any{"id": "2001"})

	if _, err := r.Process(ctx, models.SourceCompleteOrCancel, map[string]any{
		"id59": "2001",
		"id49": "3",
		"id67": "Client",
		"id68": "sick",
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	a, _ := store.GetAppointment(ctx, "2001")
	if a.DispositionStatus != models.StatusCanceled {
		t.Errorf("DispositionStatus = %q, want Canceled", a.DispositionStatus)
	}
	if a.WhoCanceled != "Client" || a.CancellationDetails != "sick" {
		t.Errorf("cancellation fields = %q %q", a.WhoCanceled, a.CancellationDetails)
	}
}

func TestProcessCompleteBeforeCreate(t *testing.T) {
	r, store := newTestReconciler()
	ctx := context.Background()

	_, err := r.Process(ctx, models.SourceCompleteOrCancel, map[string]any{
		"id59": "9999",
		"id49": "1",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// no partial record may appear
	if a, _ := store.GetAppointment(ctx, "9999"); a != nil {
		t.Fatalf("a = %+v, want no record for an out-of-order event", a)
	}

	logs, _ := store.GetWebhookLogsByAppointmentID(ctx, "9999")
	if len(logs) != 1 || logs[0].Status != models.LogError {
		t.Fatalf("logs = %+v, want one error row", logs)
	}
	if logs[0].ErrorMessage == "" {
		t.Error("error row missing message")
	}
}

func TestProcessMissingReference(t *testing.T) {
	r, _ := newTestReconciler()

	_, err := r.Process(context.Background(), models.SourceReschedule, map[string]any{"id61": "2024-03-17"})
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("err = %v, want ErrMissingReference", err)
	}
}

func TestProcessUnknownDisposition(t *testing.T) {
	r, _ := newTestReconciler()
	ctx := context.Background()

	r.Process(ctx, models.SourceAppointment, map[string]any{"id": "2001"})

	_, err := r.Process(ctx, models.SourceCompleteOrCancel, map[string]any{
		"id59": "2001",
		"id49": "Scheduled",
	})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

type captureNotifier struct {
	appointment *models.Appointment
	action      string
}

func (n *captureNotifier) AppointmentResolved(_ context.Context, a *models.Appointment, action string) {
	n.appointment = a
	n.action = action
}

func TestNotifierFiredOnTerminalDisposition(t *testing.T) {
	store := storage.NewMemoryStore()
	notifier := &captureNotifier{}
	r := NewReconciler(store, zerolog.Nop()).WithNotifier(notifier)
	ctx := context.Background()

	r.Process(ctx, models.SourceAppointment, map[string]any{"id": "2001"})
	if notifier.appointment != nil {
		t.Fatal("notifier fired on create")
	}

	r.Process(ctx, models.SourceCompleteOrCancel, map[string]any{"id59": "2001", "id49": "1"})
	if notifier.appointment == nil || notifier.action != models.ActionComplete {
		t.Fatalf("notifier = %+v/%q, want complete notification", notifier.appointment, notifier.action)
	}
}

func TestCacheInvalidationOnSuccessOnly(t *testing.T) {
	store := storage.NewMemoryStore()
	calls := 0
	r := NewReconciler(store, zerolog.Nop()).WithCacheInvalidation(func(context.Context) { calls++ })
	ctx := context.Background()

	r.Process(ctx, models.SourceAppointment, map[string]any{"id": "2001"})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 after successful create", calls)
	}

	r.Process(ctx, models.SourceReschedule, map[string]any{"id59": "missing"})
	if calls != 1 {
		t.Fatalf("calls = %d, failed events must not invalidate", calls)
	}
}
