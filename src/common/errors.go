package common

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrStoreRead        = errors.New("failed to read reservations")
	ErrStoreWrite       = errors.New("failed to update reservation")
	ErrTransport        = errors.New("failed to send email")
	ErrEmptySheet       = errors.New("reservations sheet is empty")
	ErrMissingKeyColumn = errors.New("booking_id column not found")
	ErrNoRecipient      = errors.New("reservation has no email address")
	ErrSweepInProgress  = errors.New("reminder sweep already running")
	ErrHistoryFull      = errors.New("email history cell is full")
)

func BookingNotFound(bookingID string) error {
	return fmt.Errorf("booking %s %w", bookingID, ErrNotFound)
}
