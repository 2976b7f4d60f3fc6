package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sethrock/AppointmentManager/models"
)

// MemoryStore is an in-process Store used when no database is configured
// and throughout the tests. Semantics mirror GormStore exactly.
type MemoryStore struct {
	mu           sync.Mutex
	appointments map[string]models.Appointment
	logs         []models.WebhookLog
	nextLogID    uint
	staff        map[string]models.StaffUser
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		appointments: make(map[string]models.Appointment),
		nextLogID:    1,
		staff:        make(map[string]models.StaffUser),
	}
}

// SeedStaffUser registers a login, used by the no-database dev mode and by
// tests.
func (s *MemoryStore) SeedStaffUser(u models.StaffUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[u.Username] = u
}

func (s *MemoryStore) GetStaffUser(_ context.Context, username string) (*models.StaffUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.staff[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *MemoryStore) ListAppointments(_ context.Context, filters models.AppointmentFilters) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	digits := digitsOf(filters.PhoneNumber)
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if digits != "" && !strings.Contains(digitsOf(a.ClientPhone), digits) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) CreateAppointment(_ context.Context, a models.Appointment) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.appointments[a.ID]; exists {
		return nil, ErrDuplicateKey
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	s.appointments[a.ID] = a
	return &a, nil
}

func (s *MemoryStore) UpdateAppointment(_ context.Context, id string, p models.AppointmentPatch) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	p.ApplyTo(&a)
	a.UpdatedAt = time.Now()
	s.appointments[id] = a
	return &a, nil
}

func (s *MemoryStore) CreateWebhookLog(_ context.Context, entry models.WebhookLog) (*models.WebhookLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextLogID
	s.nextLogID++
	entry.CreatedAt = time.Now()
	s.logs = append(s.logs, entry)
	return &entry, nil
}

func (s *MemoryStore) UpdateWebhookLog(_ context.Context, id uint, status, action, errorMessage string) (*models.WebhookLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.logs {
		if s.logs[i].ID != id {
			continue
		}
		s.logs[i].Status = status
		if action != "" {
			s.logs[i].Action = action
		}
		if errorMessage != "" {
			s.logs[i].ErrorMessage = errorMessage
		}
		entry := s.logs[i]
		return &entry, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetWebhookLogsByAppointmentID(_ context.Context, appointmentID string) ([]models.WebhookLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.WebhookLog
	// logs append in id order; walk backwards for newest first
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].AppointmentID == appointmentID {
			out = append(out, s.logs[i])
		}
	}
	return out, nil
}
