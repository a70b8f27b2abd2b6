package common

import (
	"guestdesk/src/models"
	"guestdesk/src/types"
)

// DeriveStatus maps the four flags to a status. The first matching flag in
// priority order wins: completed, questioning, responded, email_sent.
func DeriveStatus(f models.Flags) types.ReservationStatus {
	switch {
	case f.ReceptionCompleted:
		return types.RESERVATION_COMPLETED
	case f.Questioning:
		return types.RESERVATION_QUESTIONING
	case f.FormResponded:
		return types.RESERVATION_RESPONDED
	case f.InitialEmailSent:
		return types.RESERVATION_EMAIL_SENT
	default:
		return types.RESERVATION_PENDING
	}
}

func RowStatus(row models.Row) types.ReservationStatus {
	return DeriveStatus(models.FlagsFromRow(row))
}

func ParseStatus(s string) (types.ReservationStatus, error) {
	status := types.ReservationStatus(s)
	if !IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func IsValidStatus(s types.ReservationStatus) bool {
	for _, v := range types.ReservationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
