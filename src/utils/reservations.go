package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"guestdesk/src/common"
	"guestdesk/src/models"
	"guestdesk/src/types"
)

// RowStore is the spreadsheet holding one row per booking.
type RowStore interface {
	ListRows(ctx context.Context) ([]models.Row, error)
	WriteCells(ctx context.Context, bookingID string, cells map[string]string) error
	WriteBatch(ctx context.Context, updates map[string]map[string]string) error
	AppendRows(ctx context.Context, rows []models.Row) error
}

type Mailer interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}

type SweepLocker interface {
	Acquire(ctx context.Context, token string) (bool, error)
	Release(ctx context.Context, token string) error
}

type ReportPublisher interface {
	PublishSweepReport(ctx context.Context, report types.SweepReport) error
}

type DeskOptions struct {
	From             string
	FromName         string
	Location         *time.Location
	FormURL          func(bookingID string) string
	ReminderLanguage types.Language
}

// Desk runs the reservation operations against the row store. Every
// operation reads the rows once and writes at most one batch.
type Desk struct {
	store     RowStore
	mailer    Mailer
	lock      SweepLocker
	publisher ReportPublisher
	opts      DeskOptions

	Now func() time.Time
}

func NewDesk(store RowStore, mailer Mailer, opts DeskOptions) *Desk {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.ReminderLanguage == "" {
		opts.ReminderLanguage = types.LANG_JA
	}
	if opts.FormURL == nil {
		opts.FormURL = func(id string) string { return "/form?bookingId=" + id }
	}
	return &Desk{
		store:  store,
		mailer: mailer,
		opts:   opts,
		Now:    time.Now,
	}
}

func (d *Desk) WithSweepLock(l SweepLocker) *Desk {
	d.lock = l
	return d
}

func (d *Desk) WithReportPublisher(p ReportPublisher) *Desk {
	d.publisher = p
	return d
}

// today is the current wall time in the property's location.
func (d *Desk) today() time.Time {
	return d.Now().In(d.opts.Location)
}

type ReservationDetail struct {
	types.APIResponseReservation
	Response     *models.ResponseRecord `json:"response"`
	Changes      []models.FieldChange   `json:"changes"`
	EmailHistory []models.EmailRecord   `json:"emailHistory"`
}

type FormView struct {
	BookingID   string                  `json:"bookingId"`
	GuestName   string                  `json:"guestName"`
	CheckinDate string                  `json:"checkinDate"`
	Nights      int                     `json:"nights"`
	Status      types.ReservationStatus `json:"status"`
	Response    *models.ResponseRecord  `json:"response"`
}

type SubmitResult struct {
	Record  models.ResponseRecord `json:"record"`
	Changes []models.FieldChange  `json:"changes"`
}

func ToAPIResponse(r models.Reservation, today time.Time) types.APIResponseReservation {
	res := types.APIResponseReservation{
		BookingID:          r.BookingID,
		GuestName:          r.GuestName,
		Email:              r.Email,
		CheckinDate:        r.CheckinDate,
		Nights:             r.Nights,
		OtaName:            r.OtaName,
		DinnerIncluded:     r.DinnerIncluded,
		InitialEmailSent:   r.InitialEmailSent,
		FormResponded:      r.FormResponded,
		Questioning:        r.Questioning,
		ReceptionCompleted: r.ReceptionCompleted,
		EmailSentAt:        r.EmailSentAt,
		Status:             common.DeriveStatus(r.Flags),
		ReminderDue:        common.IsReminderDue(r, today),
	}
	if days, ok := common.DaysUntilCheckin(r, today); ok {
		res.DaysUntilCheckin = &days
	}
	return res
}

func (d *Desk) rows(ctx context.Context) ([]models.Row, error) {
	rows, err := d.store.ListRows(ctx)
	if err != nil {
		log.Printf("[desk] Error reading reservations: %s\n", err.Error())
		return nil, err
	}
	return rows, nil
}

func findRow(rows []models.Row, bookingID string) (models.Row, error) {
	bookingID = strings.TrimSpace(bookingID)
	for _, row := range rows {
		if row.BookingID() != "" && row.BookingID() == bookingID {
			return row, nil
		}
	}
	return nil, common.BookingNotFound(bookingID)
}

func matchesFilters(r types.APIResponseReservation, f types.ReservationQueryFilters, loc *time.Location) bool {
	if f.Status != "" && string(r.Status) != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		hay := strings.ToLower(strings.Join([]string{r.BookingID, r.GuestName, r.Email, r.OtaName}, "\n"))
		if !strings.Contains(hay, q) {
			return false
		}
	}
	if f.Checkin != "" {
		want, okWant := common.ParseCheckinDate(f.Checkin, loc)
		got, okGot := common.ParseCheckinDate(r.CheckinDate, loc)
		if okWant && okGot {
			return want.Equal(got)
		}
		return strings.TrimSpace(f.Checkin) == r.CheckinDate
	}
	return true
}

// ListReservations returns every booking with its derived status. Rows
// without a booking id are left out.
func (d *Desk) ListReservations(ctx context.Context, filters types.ReservationQueryFilters) ([]types.APIResponseReservation, error) {
	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	today := d.today()
	list := []types.APIResponseReservation{}
	for _, row := range rows {
		if row.BookingID() == "" {
			continue
		}
		res := ToAPIResponse(models.ReservationFromRow(row), today)
		if !matchesFilters(res, filters, d.opts.Location) {
			continue
		}
		list = append(list, res)
	}
	return list, nil
}

func (d *Desk) Summary(ctx context.Context) (types.APIResponseSummary, error) {
	summary := types.APIResponseSummary{Counts: map[types.ReservationStatus]int{}}
	for _, s := range types.ReservationStatuses {
		summary.Counts[s] = 0
	}
	rows, err := d.rows(ctx)
	if err != nil {
		return summary, err
	}
	today := d.today()
	for _, row := range rows {
		if row.BookingID() == "" {
			continue
		}
		r := models.ReservationFromRow(row)
		status := common.DeriveStatus(r.Flags)
		summary.Counts[status]++
		summary.Total++
		if days, ok := common.DaysUntilCheckin(r, today); ok && days == 0 {
			summary.CheckinsToday++
			if status != types.RESERVATION_COMPLETED {
				summary.TodayNotCompleted++
			}
		}
	}
	due, _ := common.DueReminders(rows, today, nil)
	summary.RemindersDueToday = len(due)
	return summary, nil
}

func (d *Desk) GetReservation(ctx context.Context, bookingID string) (*ReservationDetail, error) {
	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	row, err := findRow(rows, bookingID)
	if err != nil {
		return nil, err
	}
	r := models.ReservationFromRow(row)
	rec := common.ParseResponseRecord(r.Notes)
	return &ReservationDetail{
		APIResponseReservation: ToAPIResponse(r, d.today()),
		Response:               rec,
		Changes:                common.RevisionDiff(rec),
		EmailHistory:           common.ReadHistory(r.EmailHistory),
	}, nil
}

func (d *Desk) GetForm(ctx context.Context, bookingID string) (*FormView, error) {
	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	row, err := findRow(rows, bookingID)
	if err != nil {
		return nil, err
	}
	r := models.ReservationFromRow(row)
	return &FormView{
		BookingID:   r.BookingID,
		GuestName:   r.GuestName,
		CheckinDate: r.CheckinDate,
		Nights:      r.Nights,
		Status:      common.DeriveStatus(r.Flags),
		Response:    common.ParseResponseRecord(r.Notes),
	}, nil
}

// UpdateStatus moves a booking to status and returns it as stored after the
// write.
func (d *Desk) UpdateStatus(ctx context.Context, bookingID string, status string) (*types.APIResponseReservation, error) {
	target, err := common.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	row, err := findRow(rows, bookingID)
	if err != nil {
		return nil, err
	}
	now := d.Now()
	plan, err := common.PlanTransition(target, row, now)
	if err != nil {
		return nil, err
	}
	if err := d.store.WriteCells(ctx, row.BookingID(), plan); err != nil {
		return nil, err
	}
	log.Printf("[desk] Booking %s moved to %s (%d cells)\n", row.BookingID(), target, len(plan))
	res := ToAPIResponse(models.ReservationFromRow(plan.Apply(row)), d.today())
	return &res, nil
}

// SubmitForm stores a guest's answers. A booking that already has a
// response gets a revision carrying the previous answers.
func (d *Desk) SubmitForm(ctx context.Context, bookingID string, answers types.GuestAnswers) (*SubmitResult, error) {
	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	row, err := findRow(rows, bookingID)
	if err != nil {
		return nil, err
	}
	existing := common.ParseResponseRecord(row[models.COL_NOTES])
	rec := common.ClassifySubmission(existing, answers, d.Now())
	plan, err := common.PlanSubmission(row, rec)
	if err != nil {
		return nil, err
	}
	if err := d.store.WriteCells(ctx, row.BookingID(), plan); err != nil {
		return nil, err
	}
	changes := common.RevisionDiff(&rec)
	if changes == nil {
		changes = []models.FieldChange{}
	}
	log.Printf("[desk] Form submitted for %s (revision=%v, changes=%d)\n", row.BookingID(), rec.IsRevision, len(changes))
	return &SubmitResult{Record: rec, Changes: changes}, nil
}
