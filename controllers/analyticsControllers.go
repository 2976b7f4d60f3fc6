package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sethrock/AppointmentManager/analytics"
	"github.com/sethrock/AppointmentManager/models"
)

var validTimeframes = map[string]bool{"week": true, "month": true, "year": true}

const analyticsDateLayout = "2006-01-02"

// GetAnalytics handles GET /api/analytics?timeframe=week|month|year with
// optional start/end date bounds. All aggregates are computed over the
// same result set a dashboard list request would see, narrowed to the
// window; the window's end also anchors the timeframe buckets so a
// historical range charts its own period.
func (ac *AppointmentController) GetAnalytics(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", "month")
	if !validTimeframes[timeframe] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "timeframe must be week, month or year"})
		return
	}

	window, err := parseDateWindow(c.Query("start"), c.Query("end"))
	if err != nil {
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
	appointments = window.filter(appointments)

	c.JSON(http.StatusOK, gin.H{
		"summary":             analytics.Summarize(appointments),
		"timeframeData":       analytics.BucketByTimeframe(appointments, timeframe, window.anchor()),
		"providerPerformance": analytics.PerformanceByProvider(appointments),
		"marketingChannels":   analytics.DistributionByChannel(appointments),
	})
}

// dateWindow is an optional inclusive [start, end] bound on appointment
// start dates.
type dateWindow struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

func parseDateWindow(start, end string) (dateWindow, error) {
	var w dateWindow
	var err error
	if start != "" {
		if w.start, err = time.Parse(analyticsDateLayout, start); err != nil {
			return w, err
		}
		w.hasStart = true
	}
	if end != "" {
		if w.end, err = time.Parse(analyticsDateLayout, end); err != nil {
			return w, err
		}
		w.hasEnd = true
	}
	return w, nil
}

func (w dateWindow) anchor() time.Time {
	if w.hasEnd {
		return w.end
	}
	return time.Now()
}

func (w dateWindow) filter(appointments []models.Appointment) []models.Appointment {
	if !w.hasStart && !w.hasEnd {
		return appointments
	}
	out := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		t, err := time.Parse(analyticsDateLayout, a.StartDate)
		if err != nil {
			continue // undated records cannot be placed in a window
		}
		if w.hasStart && t.Before(w.start) {
			continue
		}
		if w.hasEnd && t.After(w.end) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GetFilterOptions handles GET /api/filters. The option lists mirror the
// choices the intake form offers.
func (ac *AppointmentController) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"setByOptions":    []string{"Seth", "Sera"},
		"providerOptions": []string{"Sera", "Courtesan Couple", "Chloe", "Alexa", "Frenchie"},
		"marketingChannelOptions": []string{
			"Private Delights", "Eros", "Tryst", "P411", "Slixa",
			"Instagram", "X", "Referral",
		},
		"callTypeOptions": []string{"In Call", "Out Call"},
		"statusOptions":   []string{"Scheduled", "Complete", "Canceled", "Rescheduled"},
	})
}
