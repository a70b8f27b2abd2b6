package common

import (
	"fmt"
	"maps"
	"time"

	"guestdesk/src/models"
	"guestdesk/src/types"
)

// WritePlan maps column names to the cell values to write. It only ever
// holds cells whose value changes.
type WritePlan map[string]string

func (p WritePlan) set(row models.Row, col, value string) {
	if !row.Has(col) {
		return
	}
	if row[col] == value {
		return
	}
	p[col] = value
}

func (p WritePlan) setFlag(row models.Row, col string, value bool) {
	if !row.Has(col) {
		return
	}
	if models.ParseBool(row[col]) == value {
		return
	}
	p[col] = models.FormatBool(value)
}

// Merge adds other's cells to p and returns p.
func (p WritePlan) Merge(other WritePlan) WritePlan {
	maps.Copy(p, other)
	return p
}

// Apply returns a copy of row with the plan's cells written.
func (p WritePlan) Apply(row models.Row) models.Row {
	next := maps.Clone(row)
	if next == nil {
		next = models.Row{}
	}
	for col, v := range p {
		if row.Has(col) {
			next[col] = v
		}
	}
	return next
}

// targetFlags lists the flag cells each target sets. Flags that rank above
// the target in DeriveStatus are cleared so the row derives to the target.
var targetFlags = map[types.ReservationStatus]map[string]bool{
	types.RESERVATION_PENDING: {
		models.COL_INITIAL_EMAIL_SENT:  false,
		models.COL_FORM_RESPONDED:      false,
		models.COL_QUESTIONING:         false,
		models.COL_RECEPTION_COMPLETED: false,
	},
	types.RESERVATION_EMAIL_SENT: {
		models.COL_INITIAL_EMAIL_SENT:  true,
		models.COL_FORM_RESPONDED:      false,
		models.COL_QUESTIONING:         false,
		models.COL_RECEPTION_COMPLETED: false,
	},
	types.RESERVATION_RESPONDED: {
		models.COL_FORM_RESPONDED:      true,
		models.COL_QUESTIONING:         false,
		models.COL_RECEPTION_COMPLETED: false,
	},
	types.RESERVATION_QUESTIONING: {
		models.COL_QUESTIONING:         true,
		models.COL_RECEPTION_COMPLETED: false,
	},
	types.RESERVATION_COMPLETED: {
		models.COL_RECEPTION_COMPLETED: true,
	},
}

// PlanTransition computes the minimal cell writes that move row to target.
// email_sent_at is only written when it is empty. Columns missing from the
// row are skipped.
func PlanTransition(target types.ReservationStatus, row models.Row, now time.Time) (WritePlan, error) {
	flags, ok := targetFlags[target]
	if !ok {
		return nil, ErrInvalidStatus
	}
	plan := WritePlan{}
	for col, v := range flags {
		plan.setFlag(row, col, v)
	}
	if target == types.RESERVATION_EMAIL_SENT && row.Get(models.COL_EMAIL_SENT_AT) == "" {
		plan.set(row, models.COL_EMAIL_SENT_AT, now.UTC().Format(time.RFC3339))
	}
	return plan, nil
}

// PlanReset moves row back to pending and clears email_sent_at and notes.
// Email history is kept.
func PlanReset(row models.Row) WritePlan {
	plan, _ := PlanTransition(types.RESERVATION_PENDING, row, time.Time{})
	plan.set(row, models.COL_EMAIL_SENT_AT, "")
	plan.set(row, models.COL_NOTES, "")
	return plan
}

// PlanEmailFlags records that an email of emailType went out. Only the
// email's own flag is set; flags of other stages are left as they are, so a
// re-sent confirmation never demotes a booking. email_sent_at is only
// written when it is empty.
func PlanEmailFlags(emailType types.EmailType, row models.Row, now time.Time) (WritePlan, error) {
	plan := WritePlan{}
	switch emailType {
	case types.EMAIL_INITIAL:
		plan.setFlag(row, models.COL_INITIAL_EMAIL_SENT, true)
		if row.Get(models.COL_EMAIL_SENT_AT) == "" {
			plan.set(row, models.COL_EMAIL_SENT_AT, now.UTC().Format(time.RFC3339))
		}
	case types.EMAIL_RECEPTION:
		plan.setFlag(row, models.COL_RECEPTION_COMPLETED, true)
	default:
		return nil, fmt.Errorf("unsupported email type: %s", emailType)
	}
	return plan, nil
}
