package common

import (
	"testing"

	"guestdesk/src/models"
	"guestdesk/src/types"

	"github.com/stretchr/testify/assert"
)

func allFlagCombinations() []models.Flags {
	var out []models.Flags
	for i := 0; i < 16; i++ {
		out = append(out, models.Flags{
			InitialEmailSent:   i&1 != 0,
			FormResponded:      i&2 != 0,
			Questioning:        i&4 != 0,
			ReceptionCompleted: i&8 != 0,
		})
	}
	return out
}

func TestDeriveStatusIsTotal(t *testing.T) {
	for _, f := range allFlagCombinations() {
		status := DeriveStatus(f)
		assert.Truef(t, IsValidStatus(status), "unexpected status %q for %+v", status, f)
		assert.Equal(t, status, DeriveStatus(f))
	}
}

func TestDeriveStatusCompletedWins(t *testing.T) {
	for _, f := range allFlagCombinations() {
		if f.ReceptionCompleted {
			assert.Equal(t, types.RESERVATION_COMPLETED, DeriveStatus(f))
		}
	}
}

func TestDeriveStatusPriority(t *testing.T) {
	cases := []struct {
		name  string
		flags models.Flags
		want  types.ReservationStatus
	}{
		{"no flags", models.Flags{}, types.RESERVATION_PENDING},
		{"initial email only", models.Flags{InitialEmailSent: true}, types.RESERVATION_EMAIL_SENT},
		{"responded", models.Flags{InitialEmailSent: true, FormResponded: true}, types.RESERVATION_RESPONDED},
		{"responded then asked a question", models.Flags{InitialEmailSent: true, FormResponded: true, Questioning: true}, types.RESERVATION_QUESTIONING},
		{"questioning without email", models.Flags{Questioning: true}, types.RESERVATION_QUESTIONING},
		{"completed", models.Flags{ReceptionCompleted: true}, types.RESERVATION_COMPLETED},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.flags))
		})
	}
}

func TestRowStatusParsesCells(t *testing.T) {
	row := models.Row{
		models.COL_INITIAL_EMAIL_SENT:  "TRUE",
		models.COL_FORM_RESPONDED:      "false",
		models.COL_QUESTIONING:         "0",
		models.COL_RECEPTION_COMPLETED: "",
	}
	assert.Equal(t, types.RESERVATION_EMAIL_SENT, RowStatus(row))
	assert.Equal(t, types.RESERVATION_PENDING, RowStatus(models.Row{}))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("questioning")
	assert.Nil(t, err)
	assert.Equal(t, types.RESERVATION_QUESTIONING, s)

	_, err = ParseStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
