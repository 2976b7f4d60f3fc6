package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sethrock/AppointmentManager/configuration"
	"github.com/sethrock/AppointmentManager/formsite"
	"github.com/sethrock/AppointmentManager/models"
	"github.com/sethrock/AppointmentManager/storage"
)

const resultsCacheKey = "formsite:appointments"

// AppointmentController serves the dashboard read paths. Appointment lists
// come from the Formsite results API (the system of record for raw
// submissions); webhook logs come from the store.
type AppointmentController struct {
	client       *formsite.Client
	store        storage.Store
	cache        *configuration.ResultsCache // optional
	fallbackMode string
	log          zerolog.Logger
}

func NewAppointmentController(client *formsite.Client, store storage.Store, cache *configuration.ResultsCache, fallbackMode string, log zerolog.Logger) *AppointmentController {
	return &AppointmentController{
		client:       client,
		store:        store,
		cache:        cache,
		fallbackMode: fallbackMode,
		log:          log.With().Str("component", "appointments").Logger(),
	}
}

// InvalidateCache drops the cached result set; wired into the webhook
// reconciler so a mutation is visible to the very next read.
func (ac *AppointmentController) InvalidateCache(ctx context.Context) {
	if ac.cache != nil {
		ac.cache.Delete(ctx, resultsCacheKey)
	}
}

// fetchAll pulls the full mapped result set, consulting the cache first.
func (ac *AppointmentController) fetchAll(ctx context.Context) ([]models.Appointment, error) {
	if ac.cache != nil {
		if raw, ok := ac.cache.Get(ctx, resultsCacheKey); ok {
			var cached []models.Appointment
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	results, err := ac.client.FetchResults(ctx)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(results))
	for _, r := range results {
		a, err := formsite.MapResultToAppointment(r)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	if ac.cache != nil {
		if raw, err := json.Marshal(appointments); err == nil {
			ac.cache.Set(ctx, resultsCacheKey, string(raw))
		}
	}
	return appointments, nil
}

// GetAppointments handles GET /api/appointments.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	var filters models.AppointmentFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	appointments, err := ac.fetchAll(c.Request.Context())
	if err != nil {
		appointments = ac.recoverList(c, err)
		if appointments == nil {
			return
		}
	}

	c.JSON(http.StatusOK, filterByPhone(appointments, filters.PhoneNumber))
}

// GetAppointmentByID handles GET /api/appointments/:id. The list fetch is
// preferred for coherency with the table view; a direct by-id fetch is the
// fallback for results the list page misses.
func (ac *AppointmentController) GetAppointmentByID(c *gin.Context) {
	id := c.Param("id")

	a, err := ac.lookup(c.Request.Context(), id)
	if err != nil {
		ac.renderReadError(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetAppointmentActions handles GET /api/appointments/:id/actions and
// returns the pre-filled Formsite form URLs for the reschedule, complete
// and cancel staff actions.
func (ac *AppointmentController) GetAppointmentActions(c *gin.Context) {
	id := c.Param("id")

	a, err := ac.lookup(c.Request.Context(), id)
	if err != nil {
		ac.renderReadError(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, ac.client.BuildActionURLs(*a))
}

// GetWebhookLogs handles GET /api/appointments/:id/webhook-logs.
func (ac *AppointmentController) GetWebhookLogs(c *gin.Context) {
	logs, err := ac.store.GetWebhookLogsByAppointmentID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to fetch webhook logs"})
		return
	}
	if logs == nil {
		logs = []models.WebhookLog{}
	}
	c.JSON(http.StatusOK, logs)
}

func (ac *AppointmentController) lookup(ctx context.Context, id string) (*models.Appointment, error) {
	appointments, err := ac.fetchAll(ctx)
	if err == nil {
		for i := range appointments {
			if appointments[i].ID == id {
				return &appointments[i], nil
			}
		}
		result, err := ac.client.FetchResult(ctx, id)
		if err != nil || result == nil {
			return nil, err
		}
		a, err := formsite.MapResultToAppointment(*result)
		if err != nil {
			return nil, err
		}
		return &a, nil
	}

	if ac.fallbackMode == configuration.FallbackFixture && isUpstream(err) {
		ac.log.Warn().Err(err).Msg("formsite unavailable, serving fixture data")
		for _, a := range fixtureAppointments() {
			if a.ID == id {
				a := a
				return &a, nil
			}
		}
		return nil, nil
	}
	return nil, err
}

// recoverList applies the configured fallback policy to a failed list
// fetch. It either writes the error response itself and returns nil, or
// hands back the fixture dataset.
func (ac *AppointmentController) recoverList(c *gin.Context, err error) []models.Appointment {
	if ac.fallbackMode == configuration.FallbackFixture && isUpstream(err) {
		ac.log.Warn().Err(err).Msg("formsite unavailable, serving fixture data")
		return fixtureAppointments()
	}
	ac.renderReadError(c, err)
	return nil
}

func (ac *AppointmentController) renderReadError(c *gin.Context, err error) {
	var me *formsite.MappingError
	if errors.As(err, &me) {
		ac.log.Error().Err(err).Msg("mapping failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mapping_failure", "message": err.Error()})
		return
	}
	if isUpstream(err) {
		ac.log.Error().Err(err).Msg("formsite upstream failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream_unavailable", "message": err.Error()})
		return
	}
	ac.log.Error().Err(err).Msg("appointment read failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": err.Error()})
}

func isUpstream(err error) bool {
	var ue *formsite.UpstreamError
	return errors.As(err, &ue)
}

func filterByPhone(appointments []models.Appointment, phone string) []models.Appointment {
	digits := digitsOnly(phone)
	if digits == "" {
		return appointments
	}
	out := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if strings.Contains(digitsOnly(a.ClientPhone), digits) {
			out = append(out, a)
		}
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
