package utils

import (
	"context"
	"errors"
	"maps"
	"time"

	"guestdesk/src/common"
	"guestdesk/src/models"
	"guestdesk/src/types"
)

var (
	tokyo   = time.FixedZone("JST", 9*60*60)
	fixedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, tokyo)
)

var allColumns = []string{
	models.COL_BOOKING_ID, models.COL_GUEST_NAME, models.COL_EMAIL, models.COL_CHECKIN_DATE,
	models.COL_NIGHTS, models.COL_OTA_NAME, models.COL_DINNER_INCLUDED, models.COL_INITIAL_EMAIL_SENT,
	models.COL_EMAIL_SENT_AT, models.COL_FORM_RESPONDED, models.COL_QUESTIONING,
	models.COL_RECEPTION_COMPLETED, models.COL_NOTES, models.COL_EMAIL_HISTORY,
}

// newRow returns a row with every column present and the given cells set.
func newRow(cells map[string]string) models.Row {
	row := models.Row{}
	for _, c := range allColumns {
		row[c] = ""
	}
	maps.Copy(row, cells)
	return row
}

type memStore struct {
	rows     []models.Row
	writes   []map[string]map[string]string
	appended []models.Row
	readErr  error
	writeErr error
}

func (s *memStore) ListRows(ctx context.Context) ([]models.Row, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make([]models.Row, len(s.rows))
	for i, r := range s.rows {
		out[i] = maps.Clone(r)
	}
	return out, nil
}

func (s *memStore) WriteCells(ctx context.Context, bookingID string, cells map[string]string) error {
	return s.WriteBatch(ctx, map[string]map[string]string{bookingID: cells})
}

func (s *memStore) WriteBatch(ctx context.Context, updates map[string]map[string]string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	batch := map[string]map[string]string{}
	for id, cells := range updates {
		if len(cells) == 0 {
			continue
		}
		row := s.find(id)
		if row == nil {
			return common.BookingNotFound(id)
		}
		for col, v := range cells {
			if row.Has(col) {
				row[col] = v
			}
		}
		batch[id] = maps.Clone(cells)
	}
	if len(batch) > 0 {
		s.writes = append(s.writes, batch)
	}
	return nil
}

func (s *memStore) AppendRows(ctx context.Context, rows []models.Row) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.appended = append(s.appended, rows...)
	s.rows = append(s.rows, rows...)
	return nil
}

func (s *memStore) find(id string) models.Row {
	for _, r := range s.rows {
		if r.BookingID() == id {
			return r
		}
	}
	return nil
}

type fakeMailer struct {
	sent    []models.EmailMessage
	failFor map[string]error
}

func (m *fakeMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	if err, ok := m.failFor[msg.To]; ok {
		return err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeLock struct {
	busy     bool
	acquired []string
	released []string
}

func (l *fakeLock) Acquire(ctx context.Context, token string) (bool, error) {
	if l.busy {
		return false, nil
	}
	l.acquired = append(l.acquired, token)
	return true, nil
}

func (l *fakeLock) Release(ctx context.Context, token string) error {
	l.released = append(l.released, token)
	return nil
}

type fakePublisher struct {
	reports []types.SweepReport
	err     error
}

func (p *fakePublisher) PublishSweepReport(ctx context.Context, report types.SweepReport) error {
	p.reports = append(p.reports, report)
	return p.err
}

var errSMTPDown = errors.New("dial tcp: connection refused")

func newTestDesk(store *memStore, m *fakeMailer) *Desk {
	d := NewDesk(store, m, DeskOptions{
		From:     "noreply@yumedono.com",
		FromName: "Yumedono",
		Location: tokyo,
		FormURL:  func(id string) string { return "https://guests.example.com/form?bookingId=" + id },
	})
	d.Now = func() time.Time { return fixedAt }
	return d
}
