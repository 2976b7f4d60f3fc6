package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sethrock/AppointmentManager/models"
)

// GormStore persists appointments and webhook logs in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var a models.Appointment
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) ListAppointments(ctx context.Context, filters models.AppointmentFilters) ([]models.Appointment, error) {
	var out []models.Appointment
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if digits := digitsOf(filters.PhoneNumber); digits != "" {
		// phone numbers arrive in assorted punctuation; match on digits only
		q = q.Where("regexp_replace(client_phone, '[^0-9]', '', 'g') LIKE ?", "%"+digits+"%")
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) CreateAppointment(ctx context.Context, a models.Appointment) (*models.Appointment, error) {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	// requires gorm.Config{TranslateError: true} so a unique violation
	// surfaces as gorm.ErrDuplicatedKey
	err := s.db.WithContext(ctx).Create(&a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) UpdateAppointment(ctx context.Context, id string, p models.AppointmentPatch) (*models.Appointment, error) {
	set := patchAssignments(p)
	set["updated_at"] = time.Now()

	res := s.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Updates(set)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetAppointment(ctx, id)
}

func (s *GormStore) CreateWebhookLog(ctx context.Context, entry models.WebhookLog) (*models.WebhookLog, error) {
	entry.CreatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) UpdateWebhookLog(ctx context.Context, id uint, status, action, errorMessage string) (*models.WebhookLog, error) {
	set := map[string]any{"status": status}
	if action != "" {
		set["action"] = action
	}
	if errorMessage != "" {
		set["error_message"] = errorMessage
	}

	res := s.db.WithContext(ctx).Model(&models.WebhookLog{}).Where("id = ?", id).Updates(set)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var entry models.WebhookLog
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) GetStaffUser(ctx context.Context, username string) (*models.StaffUser, error) {
	var u models.StaffUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) GetWebhookLogsByAppointmentID(ctx context.Context, appointmentID string) ([]models.WebhookLog, error) {
	var out []models.WebhookLog
	err := s.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
