package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sethrock/AppointmentManager/formsite"
	"github.com/sethrock/AppointmentManager/models"
	"github.com/sethrock/AppointmentManager/storage"
)

var (
	// ErrMissingReference means the payload carried no appointment id in
	// any of the expected fields. Fatal for the event, not the process.
	ErrMissingReference = errors.New("no appointment id found in webhook payload")

	// ErrNotFound means a reschedule or complete/cancel event arrived for
	// an appointment that was never created.
	ErrNotFound = errors.New("appointment not found")

	// ErrUnknownAction means the complete/cancel form submitted a
	// disposition that resolved to neither Complete nor Canceled.
	ErrUnknownAction = errors.New("unknown disposition action")
)

// Notifier is told when an appointment reaches a terminal disposition.
// Failures are the notifier's problem; the reconciler only logs them.
type Notifier interface {
	AppointmentResolved(ctx context.Context, a *models.Appointment, action string)
}

// Reconciler merges inbound Formsite events into stored appointment state,
// logging every attempt to the webhook audit trail.
type Reconciler struct {
	store      storage.Store
	log        zerolog.Logger
	locks      *keyedMutex
	notifier   Notifier              // optional
	invalidate func(context.Context) // optional cache invalidation hook
}

func NewReconciler(store storage.Store, log zerolog.Logger) *Reconciler {
	return &Reconciler{
		store: store,
		log:   log.With().Str("component", "webhook-reconciler").Logger(),
		locks: newKeyedMutex(64),
	}
}

// WithNotifier attaches an optional terminal-disposition notifier.
func (r *Reconciler) WithNotifier(n Notifier) *Reconciler {
	r.notifier = n
	return r
}

// WithCacheInvalidation attaches a hook run after every successful mutation,
// so the next dashboard read sees the webhook's effect.
func (r *Reconciler) WithCacheInvalidation(fn func(context.Context)) *Reconciler {
	r.invalidate = fn
	return r
}

// Process runs the full protocol for one inbound event: append a processing
// log row, dispatch by source, then settle the log row to success or error.
// The returned error is the business outcome; transport always acks anyway.
func (r *Reconciler) Process(ctx context.Context, source string, payload map[string]any) (string, error) {
	raw, _ := json.Marshal(payload)

	entry := models.WebhookLog{
		Source:        source,
		AppointmentID: bestEffortID(payload),
		RawData:       string(raw),
		Action:        models.ActionPending,
		Status:        models.LogProcessing,
	}

	var logID uint
	if logged, err := r.store.CreateWebhookLog(ctx, entry); err != nil {
		// keep processing: losing an audit row must not drop the event
		r.log.Error().Err(err).Str("source", source).Msg("failed to create webhook log")
	} else {
		logID = logged.ID
	}

	message, action, err := r.dispatch(ctx, source, payload)

	if err != nil {
		r.log.Error().Err(err).Str("source", source).Msg("webhook processing failed")
		r.settleLog(ctx, logID, models.LogError, "", err.Error())
		return "", err
	}

	r.settleLog(ctx, logID, models.LogSuccess, action, "")
	if r.invalidate != nil {
		r.invalidate(ctx)
	}
	return message, nil
}

// settleLog moves the audit row to its terminal status. A failure here is
// logged operationally and never masks the business outcome.
func (r *Reconciler) settleLog(ctx context.Context, logID uint, status, action, errMsg string) {
	if logID == 0 {
		return
	}
	if _, err := r.store.UpdateWebhookLog(ctx, logID, status, action, errMsg); err != nil {
		r.log.Error().Err(err).Uint("log_id", logID).Msg("failed to update webhook log")
	}
}

func (r *Reconciler) dispatch(ctx context.Context, source string, payload map[string]any) (message, action string, err error) {
	switch source {
	case models.SourceAppointment:
		message, action, err = r.processCreate(ctx, payload)
	case models.SourceReschedule:
		message, action, err = r.processReschedule(ctx, payload)
	case models.SourceCompleteOrCancel:
		message, action, err = r.processCompleteOrCancel(ctx, payload)
	default:
		err = fmt.Errorf("unknown webhook source: %s", source)
	}
	return message, action, err
}

// processCreate handles the main appointment form. Re-delivery of the same
// creation event lands as an update, which makes at-least-once delivery
// safe.
func (r *Reconciler) processCreate(ctx context.Context, payload map[string]any) (string, string, error) {
	id := formsite.CreateTargetID(payload)
	if id == "" {
		return "", "", ErrMissingReference
	}

	unlock := r.locks.lock(id)
	defer unlock()

	patch := formsite.MapPayloadToPatch(payload)

	existing, err := r.store.GetAppointment(ctx, id)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		if _, err := r.store.UpdateAppointment(ctx, id, patch); err != nil {
			return "", "", err
		}
		return fmt.Sprintf("Updated appointment %s", id), models.ActionCreate, nil
	}

	a := models.Appointment{ID: id}
	patch.ApplyTo(&a)
	if a.DispositionStatus == "" {
		a.DispositionStatus = models.StatusScheduled
	}
	if _, err := r.store.CreateAppointment(ctx, a); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Created new appointment %s", id), models.ActionCreate, nil
}

// processReschedule requires the target to exist already: a reschedule
// cannot precede its creation. Only the disposition and the four updated
// date/time fields are touched.
func (r *Reconciler) processReschedule(ctx context.Context, payload map[string]any) (string, string, error) {
	id := formsite.ReferenceTargetID(payload)
	if id == "" {
		return "", "", ErrMissingReference
	}

	unlock := r.locks.lock(id)
	defer unlock()

	existing, err := r.store.GetAppointment(ctx, id)
	if err != nil {
		return "", "", err
	}
	if existing == nil {
		return "", "", fmt.Errorf("%w: %s (reschedule)", ErrNotFound, id)
	}

	full := formsite.MapPayloadToPatch(payload)
	status := models.StatusRescheduled
	patch := models.AppointmentPatch{
		DispositionStatus: &status,
		UpdatedStartDate:  full.UpdatedStartDate,
		UpdatedStartTime:  full.UpdatedStartTime,
		UpdatedEndDate:    full.UpdatedEndDate,
		UpdatedEndTime:    full.UpdatedEndTime,
	}
	if _, err := r.store.UpdateAppointment(ctx, id, patch); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Rescheduled appointment %s", id), models.ActionReschedule, nil
}

// processCompleteOrCancel resolves the submitted disposition and patches in
// either the payment-collection fields (Complete) or the cancellation
// fields (Canceled). Anything else is an unknown action: logged, never
// applied.
func (r *Reconciler) processCompleteOrCancel(ctx context.Context, payload map[string]any) (string, string, error) {
	id := formsite.ReferenceTargetID(payload)
	if id == "" {
		return "", "", ErrMissingReference
	}

	unlock := r.locks.lock(id)
	defer unlock()

	existing, err := r.store.GetAppointment(ctx, id)
	if err != nil {
		return "", "", err
	}
	if existing == nil {
		return "", "", fmt.Errorf("%w: %s (complete/cancel)", ErrNotFound, id)
	}

	full := formsite.MapPayloadToPatch(payload)
	var status string
	if full.DispositionStatus != nil {
		status = *full.DispositionStatus
	}

	var patch models.AppointmentPatch
	var action string

	switch status {
	case models.StatusComplete:
		action = models.ActionComplete
		patch = models.AppointmentPatch{
			DispositionStatus:     &status,
			TotalCollectedCash:    full.TotalCollectedCash,
			TotalCollectedDigital: full.TotalCollectedDigital,
			TotalCollected:        full.TotalCollected,
			PaymentProcessor:      full.PaymentProcessor,
			PaymentNotes:          full.PaymentNotes,
			SeeAgain:              full.SeeAgain,
			CallNotes:             full.CallNotes,
		}
	case models.StatusCanceled:
		action = models.ActionCancel
		patch = models.AppointmentPatch{
			DispositionStatus:   &status,
			WhoCanceled:         full.WhoCanceled,
			CancellationDetails: full.CancellationDetails,
		}
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownAction, status)
	}

	updated, err := r.store.UpdateAppointment(ctx, id, patch)
	if err != nil {
		return "", "", err
	}

	if r.notifier != nil && updated != nil {
		r.notifier.AppointmentResolved(ctx, updated, action)
	}
	return fmt.Sprintf("Updated appointment %s with action: %s", id, action), action, nil
}

// bestEffortID pulls an appointment id from any of the known payload keys
// for the audit row. It may legitimately come up empty.
func bestEffortID(payload map[string]any) string {
	if id := formsite.CreateTargetID(payload); id != "" {
		return id
	}
	return formsite.ReferenceTargetID(payload)
}
