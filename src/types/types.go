package types

type Environment string

const (
	Local      Environment = "local"
	Test       Environment = "test"
	Production Environment = "production"
)

type ReservationStatus string

const (
	RESERVATION_PENDING     ReservationStatus = "pending"
	RESERVATION_EMAIL_SENT  ReservationStatus = "email_sent"
	RESERVATION_RESPONDED   ReservationStatus = "responded"
	RESERVATION_QUESTIONING ReservationStatus = "questioning"
	RESERVATION_COMPLETED   ReservationStatus = "completed"
)

// ReservationStatuses lists every status in lifecycle order.
var ReservationStatuses = []ReservationStatus{
	RESERVATION_PENDING,
	RESERVATION_EMAIL_SENT,
	RESERVATION_RESPONDED,
	RESERVATION_QUESTIONING,
	RESERVATION_COMPLETED,
}

type EmailType string

const (
	EMAIL_INITIAL   EmailType = "initial"
	EMAIL_REMINDER  EmailType = "reminder"
	EMAIL_RECEPTION EmailType = "reception"
)

type Language string

const (
	LANG_JA Language = "ja"
	LANG_EN Language = "en"
)

type DinnerOption string

const (
	DINNER_YES     DinnerOption = "Yes"
	DINNER_NO      DinnerOption = "No"
	DINNER_UNKNOWN DinnerOption = "Unknown"
)

// GuestAnswers is the questionnaire payload submitted from the guest form.
type GuestAnswers struct {
	Language             Language `json:"language,omitempty"`
	HasChildren          bool     `json:"hasChildren,omitempty"`
	ChildrenDetails      string   `json:"childrenDetails,omitempty"`
	ArrivalCountryDate   string   `json:"arrivalCountryDate,omitempty"`
	PrevNightPlace       string   `json:"prevNightPlace,omitempty"`
	HasPhone             bool     `json:"hasPhone,omitempty"`
	PhoneNumber          string   `json:"phoneNumber,omitempty"`
	DinnerRequest        string   `json:"dinnerRequest,omitempty"`
	DinnerConsent        bool     `json:"dinnerConsent,omitempty"`
	DietaryNeeds         bool     `json:"dietaryNeeds,omitempty"`
	DietaryDetails       string   `json:"dietaryDetails,omitempty"`
	ArrivalTime          string   `json:"arrivalTime,omitempty"`
	ArrivalTimeConsent   bool     `json:"arrivalTimeConsent,omitempty"`
	NeedsPickup          bool     `json:"needsPickup,omitempty"`
	PickupConsent        bool     `json:"pickupConsent,omitempty"`
	OtherNotes           string   `json:"otherNotes,omitempty"`
	ReservationConfirmed bool     `json:"reservationConfirmed,omitempty"`
}

type UpdateStatusRequestBody struct {
	BookingID string            `json:"bookingId" binding:"required"`
	Status    ReservationStatus `json:"status" binding:"required,reservationstatus"`
}

type FormSubmitRequestBody struct {
	BookingID string        `json:"bookingId" binding:"required"`
	FormData  *GuestAnswers `json:"formData" binding:"required"`
}

type SendEmailRequestBody struct {
	To       string `json:"to" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	BodyText string `json:"bodyText" binding:"required"`
}

type SendReservationEmailRequestBody struct {
	Type     EmailType `json:"type" binding:"required,oneof=initial reception"`
	Language Language  `json:"language" binding:"omitempty,oneof=ja en"`
}

type BookingURIParams struct {
	ID string `uri:"id" binding:"required"`
}

type ReservationQueryFilters struct {
	Status  string `form:"status" binding:"omitempty,reservationstatus"`
	Query   string `form:"q"`
	Checkin string `form:"checkin"`
}

type APIResponseReservation struct {
	BookingID          string            `json:"bookingId"`
	GuestName          string            `json:"guestName"`
	Email              string            `json:"email"`
	CheckinDate        string            `json:"checkinDate"`
	Nights             int               `json:"nights"`
	OtaName            string            `json:"otaName"`
	DinnerIncluded     DinnerOption      `json:"dinnerIncluded"`
	InitialEmailSent   bool              `json:"initialEmailSent"`
	FormResponded      bool              `json:"formResponded"`
	Questioning        bool              `json:"questioning"`
	ReceptionCompleted bool              `json:"receptionCompleted"`
	EmailSentAt        string            `json:"emailSentAt,omitempty"`
	Status             ReservationStatus `json:"status"`
	DaysUntilCheckin   *int              `json:"daysUntilCheckin,omitempty"`
	ReminderDue        bool              `json:"reminderDue"`
}

type APIResponseSummary struct {
	Counts            map[ReservationStatus]int `json:"counts"`
	Total             int                       `json:"total"`
	CheckinsToday     int                       `json:"checkinsToday"`
	TodayNotCompleted int                       `json:"todayNotCompleted"`
	RemindersDueToday int                       `json:"remindersDueToday"`
}

type ReminderResult struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email,omitempty"`
	DaysUntil int    `json:"daysUntil"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

type SweepReport struct {
	RunID         string           `json:"runId"`
	Checked       int              `json:"checked"`
	RemindersSent int              `json:"remindersSent"`
	Failed        int              `json:"failed"`
	Results       []ReminderResult `json:"results"`
}

type Handler func(payload string)
