package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/sethrock/AppointmentManager/models"
)

// Summary is the headline card row on the analytics page.
type Summary struct {
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	CanceledAppointments  int     `json:"canceledAppointments"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageRevenue        float64 `json:"averageRevenue"`
}

// TimeframeBucket is one point on the appointments/revenue trend chart.
type TimeframeBucket struct {
	Label        string  `json:"label"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// ProviderPerformance groups results per provider.
type ProviderPerformance struct {
	Provider         string  `json:"provider"`
	Appointments     int     `json:"appointments"`
	Revenue          float64 `json:"revenue"`
	CancellationRate float64 `json:"cancellationRate"`
}

// ChannelDistribution groups results per marketing channel.
type ChannelDistribution struct {
	Channel      string  `json:"channel"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
	Percentage   float64 `json:"percentage"`
}

func revenueOf(a models.Appointment) float64 {
	if a.GrossRevenue == nil {
		return 0
	}
	return *a.GrossRevenue
}

// Summarize computes the headline metrics. Absent revenue counts as 0 and
// an empty input yields zeros, never a division by zero.
func Summarize(appointments []models.Appointment) Summary {
	s := Summary{TotalAppointments: len(appointments)}
	for _, a := range appointments {
		switch a.DispositionStatus {
		case models.StatusComplete:
			s.CompletedAppointments++
		case models.StatusCanceled:
			s.CanceledAppointments++
		}
		s.TotalRevenue += revenueOf(a)
	}
	if s.TotalAppointments > 0 {
		s.AverageRevenue = s.TotalRevenue / float64(s.TotalAppointments)
	}
	return s
}

// BucketByTimeframe distributes appointments into fixed, pre-initialized
// buckets so charts render empty periods instead of skipping them:
// week = the trailing 7 calendar days, month = five week-of-month buckets,
// year = the twelve months of now's year. Appointments whose start date
// does not parse fall outside every bucket.
func BucketByTimeframe(appointments []models.Appointment, timeframe string, now time.Time) []TimeframeBucket {
	switch timeframe {
	case "week":
		return bucketWeek(appointments, now)
	case "year":
		return bucketYear(appointments, now)
	default: // month
		return bucketMonth(appointments, now)
	}
}

func startDateOf(a models.Appointment) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", a.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func bucketWeek(appointments []models.Appointment, now time.Time) []TimeframeBucket {
	buckets := make([]TimeframeBucket, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		key := day.Format("2006-01-02")
		buckets[i].Label = day.Format("Mon 1/2")
		index[key] = i
	}
	for _, a := range appointments {
		t, ok := startDateOf(a)
		if !ok {
			continue
		}
		if i, ok := index[t.Format("2006-01-02")]; ok {
			buckets[i].Appointments++
			buckets[i].Revenue += revenueOf(a)
		}
	}
	return buckets
}

func bucketMonth(appointments []models.Appointment, now time.Time) []TimeframeBucket {
	buckets := make([]TimeframeBucket, 5)
	for i := range buckets {
		buckets[i].Label = fmt.Sprintf("Week %d", i+1)
	}
	for _, a := range appointments {
		t, ok := startDateOf(a)
		if !ok || t.Year() != now.Year() || t.Month() != now.Month() {
			continue
		}
		week := t.Day() / 7 // day 1-6 -> 0, ..., day 28-31 -> 4
		buckets[week].Appointments++
		buckets[week].Revenue += revenueOf(a)
	}
	return buckets
}

func bucketYear(appointments []models.Appointment, now time.Time) []TimeframeBucket {
	buckets := make([]TimeframeBucket, 12)
	for i := range buckets {
		buckets[i].Label = time.Month(i + 1).String()[:3]
	}
	for _, a := range appointments {
		t, ok := startDateOf(a)
		if !ok || t.Year() != now.Year() {
			continue
		}
		m := int(t.Month()) - 1
		buckets[m].Appointments++
		buckets[m].Revenue += revenueOf(a)
	}
	return buckets
}

// PerformanceByProvider groups by provider. Appointments with no provider
// are excluded, not lumped into an "unknown" bucket.
func PerformanceByProvider(appointments []models.Appointment) []ProviderPerformance {
	type agg struct {
		count    int
		canceled int
		revenue  float64
	}
	groups := map[string]*agg{}
	for _, a := range appointments {
		if a.Provider == "" {
			continue
		}
		g := groups[a.Provider]
		if g == nil {
			g = &agg{}
			groups[a.Provider] = g
		}
		g.count++
		if a.DispositionStatus == models.StatusCanceled {
			g.canceled++
		}
		g.revenue += revenueOf(a)
	}

	out := make([]ProviderPerformance, 0, len(groups))
	for provider, g := range groups {
		p := ProviderPerformance{
			Provider:     provider,
			Appointments: g.count,
			Revenue:      g.revenue,
		}
		if g.count > 0 {
			p.CancellationRate = float64(g.canceled) / float64(g.count)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// DistributionByChannel groups by marketing channel. Percentages are over
// the channel-tagged total, so they sum to 100 whenever any appointment
// carries a channel.
func DistributionByChannel(appointments []models.Appointment) []ChannelDistribution {
	type agg struct {
		count   int
		revenue float64
	}
	groups := map[string]*agg{}
	total := 0
	for _, a := range appointments {
		if a.MarketingChannel == "" {
			continue
		}
		g := groups[a.MarketingChannel]
		if g == nil {
			g = &agg{}
			groups[a.MarketingChannel] = g
		}
		g.count++
		g.revenue += revenueOf(a)
		total++
	}

	out := make([]ChannelDistribution, 0, len(groups))
	for channel, g := range groups {
		d := ChannelDistribution{
			Channel:      channel,
			Appointments: g.count,
			Revenue:      g.revenue,
		}
		if total > 0 {
			d.Percentage = 100 * float64(g.count) / float64(total)
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Appointments > out[j].Appointments })
	return out
}
