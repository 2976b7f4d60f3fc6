package models

import "time"

// Canonical disposition statuses. Raw Formsite codes never reach the database.
const (
	StatusScheduled   = "Scheduled"
	StatusComplete    = "Complete"
	StatusCanceled    = "Canceled"
	StatusRescheduled = "Rescheduled"
)

// Appointment is the normalized booking record keyed by the Formsite result id.
// Numeric money/duration fields are pointers so an absent value stays
// distinguishable from an explicit 0.
type Appointment struct {
	ID string `json:"id" gorm:"primaryKey"`

	// Booking info
	SetBy            string `json:"setBy"`
	Provider         string `json:"provider"`
	MarketingChannel string `json:"marketingChannel"`

	// Client info
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	ClientUsesEmail bool   `json:"clientUsesEmail"`
	ClientEmail     string `json:"clientEmail"`

	// Location info
	CallType       string `json:"callType"`
	StreetAddress  string `json:"streetAddress"`
	AddressLine2   string `json:"addressLine2"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	OutcallDetails string `json:"outcallDetails"`

	// Scheduling info, stored as the display strings the form submits
	StartDate string   `json:"startDate"`
	StartTime string   `json:"startTime"`
	EndDate   string   `json:"endDate"`
	EndTime   string   `json:"endTime"`
	Duration  *float64 `json:"duration"`

	// Financial info
	GrossRevenue      *float64 `json:"grossRevenue"`
	Travel            string   `json:"travel"`
	HostingExpense    string   `json:"hostingExpense"`
	InOutGoesTo       string   `json:"inOutGoesTo"`
	TotalExpenses     *float64 `json:"totalExpenses"`
	DepositAmount     *float64 `json:"depositAmount"`
	DepositCalculated string   `json:"depositCalculated"`
	DepositReceivedBy string   `json:"depositReceivedBy"`
	PaymentProcess    string   `json:"paymentProcess"`
	DueToProvider     *float64 `json:"dueToProvider"`

	// Notes and status
	LeaveNotes        string `json:"leaveNotes"`
	ClientNotes       string `json:"clientNotes"`
	DispositionStatus string `json:"dispositionStatus"`

	// Payment collection details
	TotalCollectedCash    string   `json:"totalCollectedCash"`
	TotalCollectedDigital string   `json:"totalCollectedDigital"`
	TotalCollected        *float64 `json:"totalCollected"`
	PaymentProcessor      string   `json:"paymentProcessor"`
	PaymentPhotos         string   `json:"paymentPhotos"`
	PaymentNotes          string   `json:"paymentNotes"`

	// Client relationship
	SeeAgain  string `json:"seeAgain"`
	CallNotes string `json:"callNotes"`

	// Reschedule trail (most recent target only)
	UpdatedStartDate string `json:"updatedStartDate"`
	UpdatedStartTime string `json:"updatedStartTime"`
	UpdatedEndDate   string `json:"updatedEndDate"`
	UpdatedEndTime   string `json:"updatedEndTime"`

	// Cancellation info
	WhoCanceled         string `json:"whoCanceled"`
	CancellationDetails string `json:"cancellationDetails"`

	// Formsite provenance
	AppID              string `json:"appId"`
	ReferenceNumber    string `json:"referenceNumber"`
	RepetitionNumber   string `json:"repetitionNumber"`
	ScoringTotal       string `json:"scoringTotal"`
	ScoringMax         string `json:"scoringMax"`
	OrderTotal         string `json:"orderTotal"`
	SaveReturnUsername string `json:"saveReturnUsername"`
	SaveReturnEmail    string `json:"saveReturnEmail"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentPatch is a partial update built from a webhook payload. Only
// non-nil fields are written, so a re-delivered or late event can never
// clobber data it does not carry.
type AppointmentPatch struct {
	SetBy            *string
	Provider         *string
	MarketingChannel *string

	ClientName      *string
	ClientPhone     *string
	ClientUsesEmail *bool
	ClientEmail     *string

	CallType       *string
	StreetAddress  *string
	AddressLine2   *string
	City           *string
	State          *string
	ZipCode        *string
	OutcallDetails *string

	StartDate *string
	StartTime *string
	EndDate   *string
	EndTime   *string
	Duration  *float64

	GrossRevenue      *float64
	Travel            *string
	HostingExpense    *string
	InOutGoesTo       *string
	TotalExpenses     *float64
	DepositAmount     *float64
	DepositCalculated *string
	DepositReceivedBy *string
	PaymentProcess    *string
	DueToProvider     *float64

	LeaveNotes        *string
	ClientNotes       *string
	DispositionStatus *string

	TotalCollectedCash    *string
	TotalCollectedDigital *string
	TotalCollected        *float64
	PaymentProcessor      *string
	PaymentPhotos         *string
	PaymentNotes          *string

	SeeAgain  *string
	CallNotes *string

	UpdatedStartDate *string
	UpdatedStartTime *string
	UpdatedEndDate   *string
	UpdatedEndTime   *string

	WhoCanceled         *string
	CancellationDetails *string

	AppID           *string
	ReferenceNumber *string
}

// AppointmentFilters narrows a listing. Matching is a substring match on the
// digits of the client phone number.
type AppointmentFilters struct {
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
}
