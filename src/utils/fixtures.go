package utils

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"guestdesk/src/common"
	"guestdesk/src/models"
	"guestdesk/src/types"
)

const (
	TestBookingPrefix = "TEST-"
	seedNote          = "seeded by /functions/seed"
)

var (
	seedOTAs   = []string{"Booking.com", "Expedia", "Agoda"}
	seedDinner = []types.DinnerOption{types.DINNER_UNKNOWN, types.DINNER_YES, types.DINNER_NO}
)

func seedStatuses() []types.ReservationStatus {
	var statuses []types.ReservationStatus
	add := func(s types.ReservationStatus, n int) {
		for range n {
			statuses = append(statuses, s)
		}
	}
	add(types.RESERVATION_PENDING, 5)
	add(types.RESERVATION_EMAIL_SENT, 3)
	add(types.RESERVATION_QUESTIONING, 1)
	add(types.RESERVATION_COMPLETED, 4)
	return statuses
}

// SeedRows builds the demo bookings TEST-001 to TEST-013. The first and
// eighth check in today, the others i days from now.
func SeedRows(now time.Time) []models.Row {
	statuses := seedStatuses()
	rows := make([]models.Row, 0, len(statuses))
	for i, status := range statuses {
		num := fmt.Sprintf("%03d", i+1)
		offset := i
		if i == 0 || i == 7 {
			offset = 0
		}
		emailSent := status != types.RESERVATION_PENDING
		emailSentAt := ""
		if emailSent {
			emailSentAt = now.UTC().Format(time.RFC3339)
		}
		rows = append(rows, models.Row{
			models.COL_BOOKING_ID:          TestBookingPrefix + num,
			models.COL_GUEST_NAME:          "John Doe " + num,
			models.COL_EMAIL:               "john" + num + "@example.com",
			models.COL_CHECKIN_DATE:        now.AddDate(0, 0, offset).Format("2006-01-02"),
			models.COL_NIGHTS:              strconv.Itoa(i%3 + 1),
			models.COL_OTA_NAME:            seedOTAs[i%3],
			models.COL_DINNER_INCLUDED:     string(seedDinner[i%3]),
			models.COL_INITIAL_EMAIL_SENT:  models.FormatBool(emailSent),
			models.COL_EMAIL_SENT_AT:       emailSentAt,
			models.COL_FORM_RESPONDED:      models.FormatBool(status == types.RESERVATION_RESPONDED || status == types.RESERVATION_QUESTIONING || status == types.RESERVATION_COMPLETED),
			models.COL_QUESTIONING:         models.FormatBool(status == types.RESERVATION_QUESTIONING),
			models.COL_RECEPTION_COMPLETED: models.FormatBool(status == types.RESERVATION_COMPLETED),
			models.COL_NOTES:               seedNote,
		})
	}
	return rows
}

// Seed appends the demo bookings and returns how many were inserted.
func (d *Desk) Seed(ctx context.Context) (int, error) {
	rows := SeedRows(d.today())
	if err := d.store.AppendRows(ctx, rows); err != nil {
		log.Printf("[fixtures] Error seeding reservations: %s\n", err.Error())
		return 0, err
	}
	return len(rows), nil
}

// ResetTestData moves every TEST- booking back to pending and clears its
// email_sent_at and notes. It returns the number of bookings reset.
func (d *Desk) ResetTestData(ctx context.Context) (int, error) {
	rows, err := d.rows(ctx)
	if err != nil {
		return 0, err
	}
	updates := map[string]map[string]string{}
	count := 0
	for _, row := range rows {
		id := row.BookingID()
		if !strings.HasPrefix(id, TestBookingPrefix) {
			continue
		}
		count++
		if plan := common.PlanReset(row); len(plan) > 0 {
			updates[id] = plan
		}
	}
	if err := d.store.WriteBatch(ctx, updates); err != nil {
		log.Printf("[fixtures] Error resetting test data: %s\n", err.Error())
		return 0, err
	}
	log.Printf("[fixtures] Reset %d test bookings\n", count)
	return count, nil
}
