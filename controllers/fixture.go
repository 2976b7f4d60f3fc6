package controllers

import "github.com/sethrock/AppointmentManager/models"

func fptr(v float64) *float64 { return &v }

// fixtureAppointments is the canned dataset served when FALLBACK_MODE=fixture
// and the Formsite API is unreachable. Development and demo use only.
func fixtureAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:                "1001",
			ClientName:        "John Smith",
			ClientPhone:       "555-123-4567",
			ClientUsesEmail:   true,
			ClientEmail:       "john.smith@example.com",
			CallType:          "In Call",
			StreetAddress:     "123 Main St",
			City:              "Seattle",
			State:             "WA",
			ZipCode:           "98101",
			StartDate:         "2023-05-15",
			StartTime:         "14:00",
			EndDate:           "2023-05-15",
			EndTime:           "16:00",
			Duration:          fptr(2),
			GrossRevenue:      fptr(500),
			DepositAmount:     fptr(150),
			DepositReceivedBy: "Venmo",
			PaymentProcess:    "Cash",
			DueToProvider:     fptr(350),
			SetBy:             "Seth",
			Provider:          "Sera",
			MarketingChannel:  "Private Delights",
			DispositionStatus: models.StatusScheduled,
			ClientNotes:       "First time client, prefers afternoon appointments.",
		},
		{
			ID:                "1002",
			ClientName:        "Emily Johnson",
			ClientPhone:       "555-987-6543",
			ClientUsesEmail:   true,
			ClientEmail:       "emily.j@example.com",
			CallType:          "Out Call",
			StreetAddress:     "456 Pine Ave",
			City:              "Portland",
			State:             "OR",
			ZipCode:           "97201",
			StartDate:         "2023-05-18",
			StartTime:         "19:00",
			EndDate:           "2023-05-18",
			EndTime:           "22:00",
			Duration:          fptr(3),
			GrossRevenue:      fptr(750),
			DepositAmount:     fptr(250),
			DepositReceivedBy: "Cash App",
			PaymentProcess:    "Credit Card",
			DueToProvider:     fptr(500),
			SetBy:             "Sera",
			Provider:          "Chloe",
			MarketingChannel:  "Eros",
			DispositionStatus: models.StatusScheduled,
			ClientNotes:       "Regular client, prefers evening appointments.",
		},
		{
			ID:                "1003",
			ClientName:        "Robert Williams",
			ClientPhone:       "555-222-3333",
			CallType:          "In Call",
			StreetAddress:     "789 Oak Dr",
			City:              "Bellevue",
			State:             "WA",
			ZipCode:           "98004",
			StartDate:         "2023-05-20",
			StartTime:         "11:00",
			EndDate:           "2023-05-20",
			EndTime:           "13:00",
			Duration:          fptr(2),
			GrossRevenue:      fptr(450),
			DepositAmount:     fptr(100),
			DepositReceivedBy: "Zelle",
			PaymentProcess:    "Cash",
			DueToProvider:     fptr(350),
			SetBy:             "Seth",
			Provider:          "Alexa",
			MarketingChannel:  "Tryst",
			DispositionStatus: models.StatusScheduled,
		},
		{
			ID:                "1004",
			ClientName:        "Jessica Brown",
			ClientPhone:       "555-444-5555",
			ClientUsesEmail:   true,
			ClientEmail:       "jess.brown@example.com",
			CallType:          "Out Call",
			StreetAddress:     "101 Elm St",
			City:              "Seattle",
			State:             "WA",
			ZipCode:           "98109",
			StartDate:         "2023-05-22",
			StartTime:         "16:00",
			EndDate:           "2023-05-22",
			EndTime:           "18:00",
			Duration:          fptr(2),
			GrossRevenue:      fptr(600),
			DepositAmount:     fptr(200),
			DepositReceivedBy: "PayPal",
			PaymentProcess:    "Credit Card",
			DueToProvider:     fptr(400),
			SetBy:             "Sera",
			Provider:          "Sera",
			MarketingChannel:  "P411",
			DispositionStatus: models.StatusScheduled,
			ClientNotes:       "Referred by another client.",
		},
		{
			ID:                "1005",
			ClientName:        "David Miller",
			ClientPhone:       "555-777-8888",
			ClientUsesEmail:   true,
			ClientEmail:       "david.m@example.com",
			CallType:          "In Call",
			StreetAddress:     "222 Cedar Blvd",
			City:              "Kirkland",
			State:             "WA",
			ZipCode:           "98033",
			StartDate:         "2023-05-25",
			StartTime:         "20:00",
			EndDate:           "2023-05-25",
			EndTime:           "23:00",
			Duration:          fptr(3),
			GrossRevenue:      fptr(800),
			DepositAmount:     fptr(300),
			DepositReceivedBy: "Venmo",
			PaymentProcess:    "Cash",
			DueToProvider:     fptr(500),
			SetBy:             "Seth",
			Provider:          "Frenchie",
			MarketingChannel:  "Referral",
			DispositionStatus: models.StatusScheduled,
			ClientNotes:       "New client, prefers late evening appointments.",
		},
	}
}
