package common

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"guestdesk/src/models"
)

// MaxCellChars is the most characters Google Sheets stores in one cell.
const MaxCellChars = 50000

// ReadHistory decodes the email_history cell. Malformed content yields an
// empty list.
func ReadHistory(raw string) []models.EmailRecord {
	records := []models.EmailRecord{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return records
	}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("[history] Ignoring malformed email history: %s\n", err.Error())
		return []models.EmailRecord{}
	}
	if records == nil {
		return []models.EmailRecord{}
	}
	return records
}

// AppendEmail returns the serialized history with rec added at the end.
func AppendEmail(existing string, rec models.EmailRecord) (string, error) {
	records := append(ReadHistory(existing), rec)
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PlanEmailRecord writes the appended history. It is empty when the sheet has
// no email_history column, and fails with ErrHistoryFull when the history
// would no longer fit in the cell.
func PlanEmailRecord(row models.Row, rec models.EmailRecord) (WritePlan, error) {
	plan := WritePlan{}
	if !row.Has(models.COL_EMAIL_HISTORY) {
		return plan, nil
	}
	history, err := AppendEmail(row[models.COL_EMAIL_HISTORY], rec)
	if err != nil {
		return nil, err
	}
	n := utf8.RuneCountInString(history)
	if n > MaxCellChars {
		return nil, fmt.Errorf("%w: %d characters for %s", ErrHistoryFull, n, row.BookingID())
	}
	if n > MaxCellChars*9/10 {
		log.Printf("[history] Email history of %s is at %d of %d characters\n", row.BookingID(), n, MaxCellChars)
	}
	plan.set(row, models.COL_EMAIL_HISTORY, history)
	return plan, nil
}
