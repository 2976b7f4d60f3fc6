package formsite

import "github.com/sethrock/AppointmentManager/models"

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumber
	kindBool
	kindStatus
)

type apt = models.Appointment
type patch = models.AppointmentPatch

// fieldMapping ties one Formsite item id to one Appointment field. The same
// table drives the results mapper, the webhook patch mapper and the
// pre-filled action URL builder, so the id assignments cannot drift apart.
//
// str/num return a pointer into the full record, strP/numP into a patch.
// The two sides may target different fields: item 59 holds the App-ID on a
// full result but carries the reference number on reschedule/complete
// submissions.
type fieldMapping struct {
	ID   string // Formsite item id ("4", "32", ...)
	Key  string // snake_case fallback key used by webhook payloads
	Kind fieldKind

	str  func(a *apt) *string
	num  func(a *apt) **float64
	strP func(p *patch) **string
	numP func(p *patch) **float64
}

func text(id, key string, str func(a *apt) *string, strP func(p *patch) **string) fieldMapping {
	return fieldMapping{ID: id, Key: key, Kind: kindText, str: str, strP: strP}
}

func number(id, key string, num func(a *apt) **float64, numP func(p *patch) **float64) fieldMapping {
	return fieldMapping{ID: id, Key: key, Kind: kindNumber, num: num, numP: numP}
}

// fieldTable is the single source of truth for the Formsite item layout of
// the appointment form. Item ids come from the form's pipe references.
var fieldTable = []fieldMapping{
	text("0", "set_by", func(a *apt) *string { return &a.SetBy }, func(p *patch) **string { return &p.SetBy }),
	text("1", "provider", func(a *apt) *string { return &a.Provider }, func(p *patch) **string { return &p.Provider }),
	text("2", "marketing_channel", func(a *apt) *string { return &a.MarketingChannel }, func(p *patch) **string { return &p.MarketingChannel }),
	text("4", "client_name", func(a *apt) *string { return &a.ClientName }, func(p *patch) **string { return &p.ClientName }),
	text("5", "client_phone", func(a *apt) *string { return &a.ClientPhone }, func(p *patch) **string { return &p.ClientPhone }),
	{ID: "7", Key: "client_uses_email", Kind: kindBool},
	text("24", "client_email", func(a *apt) *string { return &a.ClientEmail }, func(p *patch) **string { return &p.ClientEmail }),

	text("17", "call_type", func(a *apt) *string { return &a.CallType }, func(p *patch) **string { return &p.CallType }),
	text("10", "street_address", func(a *apt) *string { return &a.StreetAddress }, func(p *patch) **string { return &p.StreetAddress }),
	text("11", "address_line_2", func(a *apt) *string { return &a.AddressLine2 }, func(p *patch) **string { return &p.AddressLine2 }),
	text("12", "city", func(a *apt) *string { return &a.City }, func(p *patch) **string { return &p.City }),
	text("13", "state", func(a *apt) *string { return &a.State }, func(p *patch) **string { return &p.State }),
	text("14", "zip_code", func(a *apt) *string { return &a.ZipCode }, func(p *patch) **string { return &p.ZipCode }),
	text("21", "outcall_details", func(a *apt) *string { return &a.OutcallDetails }, func(p *patch) **string { return &p.OutcallDetails }),

	text("25", "start_date", func(a *apt) *string { return &a.StartDate }, func(p *patch) **string { return &p.StartDate }),
	text("26", "start_time", func(a *apt) *string { return &a.StartTime }, func(p *patch) **string { return &p.StartTime }),
	text("27", "end_date", func(a *apt) *string { return &a.EndDate }, func(p *patch) **string { return &p.EndDate }),
	text("28", "end_time", func(a *apt) *string { return &a.EndTime }, func(p *patch) **string { return &p.EndTime }),
	number("29", "duration", func(a *apt) **float64 { return &a.Duration }, func(p *patch) **float64 { return &p.Duration }),

	number("32", "gross_revenue", func(a *apt) **float64 { return &a.GrossRevenue }, func(p *patch) **float64 { return &p.GrossRevenue }),
	text("34", "travel", func(a *apt) *string { return &a.Travel }, func(p *patch) **string { return &p.Travel }),
	text("36", "hosting_expense", func(a *apt) *string { return &a.HostingExpense }, func(p *patch) **string { return &p.HostingExpense }),
	text("37", "in_out_goes_to", func(a *apt) *string { return &a.InOutGoesTo }, func(p *patch) **string { return &p.InOutGoesTo }),
	number("38", "total_expenses", func(a *apt) **float64 { return &a.TotalExpenses }, func(p *patch) **float64 { return &p.TotalExpenses }),
	number("39", "deposit_amount", func(a *apt) **float64 { return &a.DepositAmount }, func(p *patch) **float64 { return &p.DepositAmount }),
	text("40", "deposit_calculated", func(a *apt) *string { return &a.DepositCalculated }, func(p *patch) **string { return &p.DepositCalculated }),
	text("41", "deposit_received_by", func(a *apt) *string { return &a.DepositReceivedBy }, func(p *patch) **string { return &p.DepositReceivedBy }),
	text("42", "payment_process", func(a *apt) *string { return &a.PaymentProcess }, func(p *patch) **string { return &p.PaymentProcess }),
	number("43", "due_to_provider", func(a *apt) **float64 { return &a.DueToProvider }, func(p *patch) **float64 { return &p.DueToProvider }),

	text("44", "leave_notes", func(a *apt) *string { return &a.LeaveNotes }, func(p *patch) **string { return &p.LeaveNotes }),
	text("45", "client_notes", func(a *apt) *string { return &a.ClientNotes }, func(p *patch) **string { return &p.ClientNotes }),
	{ID: "49", Key: "disposition_status", Kind: kindStatus},

	text("51", "total_collected_cash", func(a *apt) *string { return &a.TotalCollectedCash }, func(p *patch) **string { return &p.TotalCollectedCash }),
	text("52", "total_collected_digital", func(a *apt) *string { return &a.TotalCollectedDigital }, func(p *patch) **string { return &p.TotalCollectedDigital }),
	number("53", "total_collected", func(a *apt) **float64 { return &a.TotalCollected }, func(p *patch) **float64 { return &p.TotalCollected }),
	text("54", "payment_photos", func(a *apt) *string { return &a.PaymentPhotos }, func(p *patch) **string { return &p.PaymentPhotos }),
	text("55", "payment_processor", func(a *apt) *string { return &a.PaymentProcessor }, func(p *patch) **string { return &p.PaymentProcessor }),
	text("56", "payment_notes", func(a *apt) *string { return &a.PaymentNotes }, func(p *patch) **string { return &p.PaymentNotes }),

	text("57", "see_again", func(a *apt) *string { return &a.SeeAgain }, func(p *patch) **string { return &p.SeeAgain }),
	text("58", "call_notes", func(a *apt) *string { return &a.CallNotes }, func(p *patch) **string { return &p.CallNotes }),

	// On a full form result item 59 is the hidden App-ID field; on
	// reschedule and complete/cancel submissions the same item carries the
	// originating appointment's reference number.
	{
		ID: "59", Key: "reference_number", Kind: kindText,
		str:  func(a *apt) *string { return &a.AppID },
		strP: func(p *patch) **string { return &p.ReferenceNumber },
	},

	text("61", "updated_start_date", func(a *apt) *string { return &a.UpdatedStartDate }, func(p *patch) **string { return &p.UpdatedStartDate }),
	text("62", "updated_start_time", func(a *apt) *string { return &a.UpdatedStartTime }, func(p *patch) **string { return &p.UpdatedStartTime }),
	text("63", "updated_end_date", func(a *apt) *string { return &a.UpdatedEndDate }, func(p *patch) **string { return &p.UpdatedEndDate }),
	text("64", "updated_end_time", func(a *apt) *string { return &a.UpdatedEndTime }, func(p *patch) **string { return &p.UpdatedEndTime }),

	text("67", "who_canceled", func(a *apt) *string { return &a.WhoCanceled }, func(p *patch) **string { return &p.WhoCanceled }),
	text("68", "cancellation_details", func(a *apt) *string { return &a.CancellationDetails }, func(p *patch) **string { return &p.CancellationDetails }),
}
