package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/sethrock/AppointmentManager/models"
)

func strp(s string) *string   { return &s }
func nump(v float64) *float64 { return &v }

func TestCreateAppointmentRejectsDuplicate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.CreateAppointment(ctx, models.Appointment{ID: "2001"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := store.CreateAppointment(ctx, models.Appointment{ID: "2001"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("second create err = %v, want ErrDuplicateKey", err)
	}
}

func TestUpdateAppointmentPartial(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateAppointment(ctx, models.Appointment{
		ID:          "2001",
		ClientName:  "Jane Doe",
		ClientNotes: "prefers afternoons",
		GrossRevenue: nump(400),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := store.UpdateAppointment(ctx, "2001", models.AppointmentPatch{
		DispositionStatus: strp(models.StatusComplete),
		TotalCollected:    nump(400),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.DispositionStatus != models.StatusComplete {
		t.Errorf("DispositionStatus = %q, want Complete", updated.DispositionStatus)
	}
	if updated.TotalCollected == nil || *updated.TotalCollected != 400 {
		t.Errorf("TotalCollected = %v, want 400", updated.TotalCollected)
	}
	// fields the patch did not carry stay intact
	if updated.ClientName != "Jane Doe" {
		t.Errorf("ClientName = %q, want preserved", updated.ClientName)
	}
	if updated.ClientNotes != "prefers afternoons" {
		t.Errorf("ClientNotes = %q, want preserved", updated.ClientNotes)
	}
	if updated.GrossRevenue == nil || *updated.GrossRevenue != 400 {
		t.Errorf("GrossRevenue = %v, want preserved", updated.GrossRevenue)
	}
}

func TestUpdateAppointmentUnknownID(t *testing.T) {
	store := NewMemoryStore()
	a, err := store.UpdateAppointment(context.Background(), "nope", models.AppointmentPatch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if a != nil {
		t.Fatalf("a = %+v, want nil for unknown id", a)
	}
}

func TestListAppointmentsPhoneFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.CreateAppointment(ctx, models.Appointment{ID: "1", ClientPhone: "555-123-4567"})
	store.CreateAppointment(ctx, models.Appointment{ID: "2", ClientPhone: "(555) 987-6543"})

	out, err := store.ListAppointments(ctx, models.AppointmentFilters{PhoneNumber: "9876"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].ID != "2" {
		t.Fatalf("filtered = %+v, want only id 2", out)
	}

	// formatting differences in the query are ignored too
	out, _ = store.ListAppointments(ctx, models.AppointmentFilters{PhoneNumber: "123-45"})
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("filtered = %+v, want only id 1", out)
	}
}

func TestWebhookLogLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	entry, err := store.CreateWebhookLog(ctx, models.WebhookLog{
		Source:        models.SourceAppointment,
		AppointmentID: "2001",
		Status:        models.LogProcessing,
		Action:        models.ActionPending,
	})
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("log id not assigned")
	}

	settled, err := store.UpdateWebhookLog(ctx, entry.ID, models.LogSuccess, models.ActionCreate, "")
	if err != nil {
		t.Fatalf("update log: %v", err)
	}
	if settled.Status != models.LogSuccess || settled.Action != models.ActionCreate {
		t.Errorf("settled = %+v, want success/create", settled)
	}

	store.CreateWebhookLog(ctx, models.WebhookLog{
		Source:        models.SourceCompleteOrCancel,
		AppointmentID: "2001",
		Status:        models.LogError,
		ErrorMessage:  "boom",
	})
	store.CreateWebhookLog(ctx, models.WebhookLog{
		Source:        models.SourceAppointment,
		AppointmentID: "other",
		Status:        models.LogSuccess,
	})

	logs, err := store.GetWebhookLogsByAppointmentID(ctx, "2001")
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("len(logs) = %d, want 2", len(logs))
	}
	// newest first
	if logs[0].Source != models.SourceCompleteOrCancel {
		t.Errorf("logs[0].Source = %q, want newest entry first", logs[0].Source)
	}
	if logs[0].ErrorMessage != "boom" {
		t.Errorf("logs[0].ErrorMessage = %q, want boom", logs[0].ErrorMessage)
	}
}

func TestGetStaffUser(t *testing.T) {
	store := NewMemoryStore()
	store.SeedStaffUser(models.StaffUser{Username: "admin", Password: "hashed"})

	u, err := store.GetStaffUser(context.Background(), "admin")
	if err != nil {
		t.Fatalf("get staff: %v", err)
	}
	if u == nil || u.Username != "admin" {
		t.Fatalf("u = %+v, want admin", u)
	}

	u, _ = store.GetStaffUser(context.Background(), "ghost")
	if u != nil {
		t.Fatalf("u = %+v, want nil for unknown user", u)
	}
}
