package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/sethrock/AppointmentManager/models"
)

func rev(v float64) *float64 { return &v }

func TestSummarize(t *testing.T) {
	appointments := []models.Appointment{
		{DispositionStatus: models.StatusComplete, GrossRevenue: rev(100)},
		{DispositionStatus: models.StatusScheduled}, // nil revenue counts as 0
		{DispositionStatus: models.StatusCanceled, GrossRevenue: rev(200)},
	}

	s := Summarize(appointments)

	if s.TotalAppointments != 3 {
		t.Errorf("TotalAppointments = %d, want 3", s.TotalAppointments)
	}
	if s.CompletedAppointments != 1 || s.CanceledAppointments != 1 {
		t.Errorf("completed/canceled = %d/%d, want 1/1", s.CompletedAppointments, s.CanceledAppointments)
	}
	if s.TotalRevenue != 300 {
		t.Errorf("TotalRevenue = %v, want 300", s.TotalRevenue)
	}
	if s.AverageRevenue != 100 {
		t.Errorf("AverageRevenue = %v, want 100", s.AverageRevenue)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalAppointments != 0 || s.TotalRevenue != 0 || s.AverageRevenue != 0 {
		t.Errorf("empty summary = %+v, want all zeros", s)
	}
}

func TestBucketByTimeframeWeek(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) // a Sunday
	appointments := []models.Appointment{
		{StartDate: "2024-03-10", GrossRevenue: rev(100)},
		{StartDate: "2024-03-10", GrossRevenue: rev(50)},
		{StartDate: "2024-03-04", GrossRevenue: rev(25)},
		{StartDate: "2024-03-01"}, // outside the trailing week
		{StartDate: "bogus"},      // unparsable dates fall out
	}

	buckets := BucketByTimeframe(appointments, "week", now)

	if len(buckets) != 7 {
		t.Fatalf("len(buckets) = %d, want 7", len(buckets))
	}
	last := buckets[6]
	if last.Appointments != 2 || last.Revenue != 150 {
		t.Errorf("today's bucket = %+v, want 2 appointments / 150", last)
	}
	first := buckets[0]
	if first.Appointments != 1 || first.Revenue != 25 {
		t.Errorf("oldest bucket = %+v, want 1 appointment / 25", first)
	}
	// empty days still render
	if buckets[1].Appointments != 0 {
		t.Errorf("buckets[1] = %+v, want empty", buckets[1])
	}
}

func TestBucketByTimeframeMonth(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		{StartDate: "2024-03-01", GrossRevenue: rev(10)}, // 1/7 = 0
		{StartDate: "2024-03-08", GrossRevenue: rev(20)}, // 8/7 = 1
		{StartDate: "2024-03-14", GrossRevenue: rev(40)}, // 14/7 = 2
		{StartDate: "2024-03-31", GrossRevenue: rev(30)}, // 31/7 = 4
		{StartDate: "2024-02-15"},                        // other month
	}

	buckets := BucketByTimeframe(appointments, "month", now)

	if len(buckets) != 5 {
		t.Fatalf("len(buckets) = %d, want 5", len(buckets))
	}
	if buckets[0].Label != "Week 1" || buckets[0].Revenue != 10 {
		t.Errorf("buckets[0] = %+v", buckets[0])
	}
	if buckets[1].Revenue != 20 {
		t.Errorf("buckets[1] = %+v", buckets[1])
	}
	if buckets[2].Revenue != 40 {
		t.Errorf("buckets[2] = %+v, want day 14 in the third bucket", buckets[2])
	}
	if buckets[4].Revenue != 30 {
		t.Errorf("buckets[4] = %+v, want day 31 in the last bucket", buckets[4])
	}
}

func TestBucketByTimeframeYear(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		{StartDate: "2024-01-15", GrossRevenue: rev(100)},
		{StartDate: "2024-12-31", GrossRevenue: rev(200)},
		{StartDate: "2023-06-15"}, // other year
	}

	buckets := BucketByTimeframe(appointments, "year", now)

	if len(buckets) != 12 {
		t.Fatalf("len(buckets) = %d, want 12", len(buckets))
	}
	if buckets[0].Label != "Jan" || buckets[0].Revenue != 100 {
		t.Errorf("buckets[0] = %+v", buckets[0])
	}
	if buckets[11].Revenue != 200 {
		t.Errorf("buckets[11] = %+v", buckets[11])
	}
	if buckets[5].Appointments != 0 {
		t.Errorf("buckets[5] = %+v, want other-year results excluded", buckets[5])
	}
}

func TestPerformanceByProvider(t *testing.T) {
	appointments := []models.Appointment{
		{Provider: "Sera", GrossRevenue: rev(100), DispositionStatus: models.StatusComplete},
		{Provider: "Sera", GrossRevenue: rev(300), DispositionStatus: models.StatusCanceled},
		{Provider: "Chloe", GrossRevenue: rev(150)},
		{Provider: ""}, // untagged results drop out
	}

	out := PerformanceByProvider(appointments)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	// sorted by revenue descending
	if out[0].Provider != "Sera" || out[0].Revenue != 400 {
		t.Errorf("out[0] = %+v", out[0])
	}
	if out[0].CancellationRate != 0.5 {
		t.Errorf("CancellationRate = %v, want 0.5", out[0].CancellationRate)
	}
	if out[1].Provider != "Chloe" || out[1].CancellationRate != 0 {
		t.Errorf("out[1] = %+v", out[1])
	}
}

func TestDistributionByChannel(t *testing.T) {
	appointments := []models.Appointment{
		{MarketingChannel: "Eros", GrossRevenue: rev(100)},
		{MarketingChannel: "Eros", GrossRevenue: rev(100)},
		{MarketingChannel: "Tryst", GrossRevenue: rev(50)},
		{MarketingChannel: ""}, // untagged excluded from the denominator
	}

	out := DistributionByChannel(appointments)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Channel != "Eros" || out[0].Appointments != 2 {
		t.Errorf("out[0] = %+v", out[0])
	}

	var sum float64
	for _, d := range out {
		sum += d.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}
