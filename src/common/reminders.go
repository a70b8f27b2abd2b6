package common

import (
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"guestdesk/src/models"
	"guestdesk/src/types"
)

// ReminderThresholds are the exact day counts before check-in at which a
// reminder goes out.
var ReminderThresholds = []int{30, 21, 14, 7}

var checkinLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
}

// ProcessedSet holds the booking IDs already flagged in the current sweep.
type ProcessedSet map[string]struct{}

type DueReminder struct {
	Reservation models.Reservation
	DaysUntil   int
}

// ParseCheckinDate returns the calendar date of a check-in cell as midnight UTC.
func ParseCheckinDate(v string, loc *time.Location) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range checkinLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return dateOnly(t), true
		}
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		if loc != nil {
			t = t.In(loc)
		}
		return dateOnly(t), true
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntilCheckin counts calendar days from today to the check-in date.
// ok is false when the check-in cell cannot be parsed.
func DaysUntilCheckin(r models.Reservation, today time.Time) (int, bool) {
	checkin, ok := ParseCheckinDate(r.CheckinDate, today.Location())
	if !ok {
		return 0, false
	}
	diff := checkin.Sub(dateOnly(today))
	return int(math.Ceil(diff.Hours() / 24)), true
}

// IsReminderDue reports whether a reminder should go out today. Only
// email_sent bookings on an exact threshold day qualify.
func IsReminderDue(r models.Reservation, today time.Time) bool {
	if DeriveStatus(r.Flags) != types.RESERVATION_EMAIL_SENT {
		return false
	}
	days, ok := DaysUntilCheckin(r, today)
	if !ok {
		return false
	}
	return slices.Contains(ReminderThresholds, days)
}

// DueReminders selects the rows needing a reminder today. Bookings in
// processed and rows without an email address are skipped. The returned set
// is processed plus every booking selected here; processed is not modified.
func DueReminders(rows []models.Row, today time.Time, processed ProcessedSet) ([]DueReminder, ProcessedSet) {
	next := ProcessedSet{}
	if processed != nil {
		next = maps.Clone(processed)
	}
	var due []DueReminder
	for _, row := range rows {
		r := models.ReservationFromRow(row)
		if r.BookingID == "" || r.Email == "" {
			continue
		}
		if _, seen := next[r.BookingID]; seen {
			continue
		}
		if !IsReminderDue(r, today) {
			continue
		}
		days, _ := DaysUntilCheckin(r, today)
		due = append(due, DueReminder{Reservation: r, DaysUntil: days})
		next[r.BookingID] = struct{}{}
	}
	return due, next
}
