package models

import (
	"strconv"
	"strings"

	"guestdesk/src/types"
)

const (
	COL_BOOKING_ID          = "booking_id"
	COL_GUEST_NAME          = "guest_name"
	COL_EMAIL               = "email"
	COL_CHECKIN_DATE        = "checkin_date"
	COL_NIGHTS              = "nights"
	COL_OTA_NAME            = "ota_name"
	COL_DINNER_INCLUDED     = "dinner_included"
	COL_INITIAL_EMAIL_SENT  = "initial_email_sent"
	COL_EMAIL_SENT_AT       = "email_sent_at"
	COL_FORM_RESPONDED      = "form_responded"
	COL_QUESTIONING         = "questioning"
	COL_RECEPTION_COMPLETED = "reception_completed"
	COL_NOTES               = "notes"
	COL_EMAIL_HISTORY       = "email_history"
)

// Row is one sheet row keyed by header name. A column missing from the
// sheet header is missing from the map.
type Row map[string]string

func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

func (r Row) BookingID() string {
	return r.Get(COL_BOOKING_ID)
}

type Flags struct {
	InitialEmailSent   bool `json:"initialEmailSent"`
	FormResponded      bool `json:"formResponded"`
	Questioning        bool `json:"questioning"`
	ReceptionCompleted bool `json:"receptionCompleted"`
}

func FlagsFromRow(r Row) Flags {
	return Flags{
		InitialEmailSent:   ParseBool(r[COL_INITIAL_EMAIL_SENT]),
		FormResponded:      ParseBool(r[COL_FORM_RESPONDED]),
		Questioning:        ParseBool(r[COL_QUESTIONING]),
		ReceptionCompleted: ParseBool(r[COL_RECEPTION_COMPLETED]),
	}
}

type Reservation struct {
	BookingID      string
	GuestName      string
	Email          string
	CheckinDate    string
	Nights         int
	OtaName        string
	DinnerIncluded types.DinnerOption
	EmailSentAt    string
	Notes          string
	EmailHistory   string

	Flags
}

func ReservationFromRow(r Row) Reservation {
	nights, err := strconv.Atoi(r.Get(COL_NIGHTS))
	if err != nil || nights < 0 {
		nights = 0
	}
	return Reservation{
		BookingID:      r.BookingID(),
		GuestName:      r.Get(COL_GUEST_NAME),
		Email:          r.Get(COL_EMAIL),
		CheckinDate:    r.Get(COL_CHECKIN_DATE),
		Nights:         nights,
		OtaName:        r.Get(COL_OTA_NAME),
		DinnerIncluded: ParseDinnerOption(r[COL_DINNER_INCLUDED]),
		EmailSentAt:    r.Get(COL_EMAIL_SENT_AT),
		Notes:          r[COL_NOTES],
		EmailHistory:   r[COL_EMAIL_HISTORY],
		Flags:          FlagsFromRow(r),
	}
}

// ParseBool decodes a sheet checkbox cell. Only TRUE and 1 (any case) are true.
func ParseBool(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, "true") || v == "1"
}

func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func ParseDinnerOption(v string) types.DinnerOption {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes":
		return types.DINNER_YES
	case "no":
		return types.DINNER_NO
	default:
		return types.DINNER_UNKNOWN
	}
}
