package models

// ApplyTo merges the patch onto a record: only fields the patch carries
// are written, everything else is left untouched.
func (p AppointmentPatch) ApplyTo(a *Appointment) {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	num := func(dst **float64, v *float64) {
		if v != nil {
			n := *v
			*dst = &n
		}
	}

	str(&a.SetBy, p.SetBy)
	str(&a.Provider, p.Provider)
	str(&a.MarketingChannel, p.MarketingChannel)

	str(&a.ClientName, p.ClientName)
	str(&a.ClientPhone, p.ClientPhone)
	if p.ClientUsesEmail != nil {
		a.ClientUsesEmail = *p.ClientUsesEmail
	}
	str(&a.ClientEmail, p.ClientEmail)

	str(&a.CallType, p.CallType)
	str(&a.StreetAddress, p.StreetAddress)
	str(&a.AddressLine2, p.AddressLine2)
	str(&a.City, p.City)
	str(&a.State, p.State)
	str(&a.ZipCode, p.ZipCode)
	str(&a.OutcallDetails, p.OutcallDetails)

	str(&a.StartDate, p.StartDate)
	str(&a.StartTime, p.StartTime)
	str(&a.EndDate, p.EndDate)
	str(&a.EndTime, p.EndTime)
	num(&a.Duration, p.Duration)

	num(&a.GrossRevenue, p.GrossRevenue)
	str(&a.Travel, p.Travel)
	str(&a.HostingExpense, p.HostingExpense)
	str(&a.InOutGoesTo, p.InOutGoesTo)
	num(&a.TotalExpenses, p.TotalExpenses)
	num(&a.DepositAmount, p.DepositAmount)
	str(&a.DepositCalculated, p.DepositCalculated)
	str(&a.DepositReceivedBy, p.DepositReceivedBy)
	str(&a.PaymentProcess, p.PaymentProcess)
	num(&a.DueToProvider, p.DueToProvider)

	str(&a.LeaveNotes, p.LeaveNotes)
	str(&a.ClientNotes, p.ClientNotes)
	str(&a.DispositionStatus, p.DispositionStatus)

	str(&a.TotalCollectedCash, p.TotalCollectedCash)
	str(&a.TotalCollectedDigital, p.TotalCollectedDigital)
	num(&a.TotalCollected, p.TotalCollected)
	str(&a.PaymentProcessor, p.PaymentProcessor)
	str(&a.PaymentPhotos, p.PaymentPhotos)
	str(&a.PaymentNotes, p.PaymentNotes)

	str(&a.SeeAgain, p.SeeAgain)
	str(&a.CallNotes, p.CallNotes)

	str(&a.UpdatedStartDate, p.UpdatedStartDate)
	str(&a.UpdatedStartTime, p.UpdatedStartTime)
	str(&a.UpdatedEndDate, p.UpdatedEndDate)
	str(&a.UpdatedEndTime, p.UpdatedEndTime)

	str(&a.WhoCanceled, p.WhoCanceled)
	str(&a.CancellationDetails, p.CancellationDetails)

	str(&a.AppID, p.AppID)
	str(&a.ReferenceNumber, p.ReferenceNumber)
}
