package storage

import "github.com/sethrock/AppointmentManager/models"

// patchAssignments flattens a patch into column assignments for an UPDATE.
// Only fields the patch carries appear in the map; this is the guarantee
// that lets the same webhook be re-applied without wiping earlier data.
func patchAssignments(p models.AppointmentPatch) map[string]any {
	set := map[string]any{}

	setStr := func(col string, v *string) {
		if v != nil {
			set[col] = *v
		}
	}
	setNum := func(col string, v *float64) {
		if v != nil {
			set[col] = *v
		}
	}

	setStr("set_by", p.SetBy)
	setStr("provider", p.Provider)
	setStr("marketing_channel", p.MarketingChannel)

	setStr("client_name", p.ClientName)
	setStr("client_phone", p.ClientPhone)
	if p.ClientUsesEmail != nil {
		set["client_uses_email"] = *p.ClientUsesEmail
	}
	setStr("client_email", p.ClientEmail)

	setStr("call_type", p.CallType)
	setStr("street_address", p.StreetAddress)
	setStr("address_line2", p.AddressLine2)
	setStr("city", p.City)
	setStr("state", p.State)
	setStr("zip_code", p.ZipCode)
	setStr("outcall_details", p.OutcallDetails)

	setStr("start_date", p.StartDate)
	setStr("start_time", p.StartTime)
	setStr("end_date", p.EndDate)
	setStr("end_time", p.EndTime)
	setNum("duration", p.Duration)

	setNum("gross_revenue", p.GrossRevenue)
	setStr("travel", p.Travel)
	setStr("hosting_expense", p.HostingExpense)
	setStr("in_out_goes_to", p.InOutGoesTo)
	setNum("total_expenses", p.TotalExpenses)
	setNum("deposit_amount", p.DepositAmount)
	setStr("deposit_calculated", p.DepositCalculated)
	setStr("deposit_received_by", p.DepositReceivedBy)
	setStr("payment_process", p.PaymentProcess)
	setNum("due_to_provider", p.DueToProvider)

	setStr("leave_notes", p.LeaveNotes)
	setStr("client_notes", p.ClientNotes)
	setStr("disposition_status", p.DispositionStatus)

	setStr("total_collected_cash", p.TotalCollectedCash)
	setStr("total_collected_digital", p.TotalCollectedDigital)
	setNum("total_collected", p.TotalCollected)
	setStr("payment_processor", p.PaymentProcessor)
	setStr("payment_photos", p.PaymentPhotos)
	setStr("payment_notes", p.PaymentNotes)

	setStr("see_again", p.SeeAgain)
	setStr("call_notes", p.CallNotes)

	setStr("updated_start_date", p.UpdatedStartDate)
	setStr("updated_start_time", p.UpdatedStartTime)
	setStr("updated_end_date", p.UpdatedEndDate)
	setStr("updated_end_time", p.UpdatedEndTime)

	setStr("who_canceled", p.WhoCanceled)
	setStr("cancellation_details", p.CancellationDetails)

	setStr("app_id", p.AppID)
	setStr("reference_number", p.ReferenceNumber)

	return set
}
