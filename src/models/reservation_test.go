package models

import (
	"testing"

	"guestdesk/src/types"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	for _, v := range []string{"TRUE", "true", "True", " TRUE ", "1"} {
		assert.Truef(t, ParseBool(v), "expected %q to be true", v)
	}
	for _, v := range []string{"", "FALSE", "false", "0", "yes", "checked", "2"} {
		assert.Falsef(t, ParseBool(v), "expected %q to be false", v)
	}
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "TRUE", FormatBool(true))
	assert.Equal(t, "FALSE", FormatBool(false))
}

func TestParseDinnerOption(t *testing.T) {
	assert.Equal(t, types.DINNER_YES, ParseDinnerOption("Yes"))
	assert.Equal(t, types.DINNER_YES, ParseDinnerOption("yes"))
	assert.Equal(t, types.DINNER_NO, ParseDinnerOption("NO"))
	assert.Equal(t, types.DINNER_UNKNOWN, ParseDinnerOption(""))
	assert.Equal(t, types.DINNER_UNKNOWN, ParseDinnerOption("maybe"))
}

func TestReservationFromRow(t *testing.T) {
	row := Row{
		COL_BOOKING_ID:         " BK-1 ",
		COL_GUEST_NAME:         "Hanako Yamada",
		COL_EMAIL:              "hanako@example.com",
		COL_CHECKIN_DATE:       "2025-03-10",
		COL_NIGHTS:             "2",
		COL_OTA_NAME:           "Expedia",
		COL_DINNER_INCLUDED:    "No",
		COL_INITIAL_EMAIL_SENT: "true",
		COL_QUESTIONING:        "1",
		"room_type":            "Deluxe",
	}
	r := ReservationFromRow(row)

	assert.Equal(t, "BK-1", r.BookingID)
	assert.Equal(t, "Hanako Yamada", r.GuestName)
	assert.Equal(t, 2, r.Nights)
	assert.Equal(t, types.DINNER_NO, r.DinnerIncluded)
	assert.True(t, r.InitialEmailSent)
	assert.True(t, r.Questioning)
	assert.False(t, r.FormResponded)
	assert.False(t, r.ReceptionCompleted)
	assert.Empty(t, r.EmailSentAt)
}

func TestReservationFromRowBadNights(t *testing.T) {
	r := ReservationFromRow(Row{COL_BOOKING_ID: "BK-2", COL_NIGHTS: "two"})
	assert.Equal(t, 0, r.Nights)
}

func TestRowHas(t *testing.T) {
	row := Row{COL_NOTES: ""}
	assert.True(t, row.Has(COL_NOTES))
	assert.False(t, row.Has(COL_EMAIL_HISTORY))
}
