package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"guestdesk/src/common"
	"guestdesk/src/lib/mailer"
	"guestdesk/src/models"
	"guestdesk/src/types"
)

type SendResult struct {
	Record      models.EmailRecord           `json:"record"`
	Reservation types.APIResponseReservation `json:"reservation"`
}

func (d *Desk) templateVars(r models.Reservation) mailer.TemplateVars {
	return mailer.TemplateVars{
		GuestName:   r.GuestName,
		BookingID:   r.BookingID,
		CheckinDate: r.CheckinDate,
		Nights:      r.Nights,
		FormURL:     d.opts.FormURL(r.BookingID),
	}
}

func (d *Desk) message(to, subject, body string) models.EmailMessage {
	return models.EmailMessage{
		From:     d.opts.From,
		FromName: d.opts.FromName,
		To:       to,
		Subject:  subject,
		Body:     body,
	}
}

func (d *Desk) send(ctx context.Context, msg models.EmailMessage) error {
	if err := d.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s", common.ErrTransport, err.Error())
	}
	return nil
}

// SendReservationEmail renders and sends a guest email, then records it in
// the booking's history and sets the email's flag in one write.
// Nothing is written when sending fails.
func (d *Desk) SendReservationEmail(ctx context.Context, bookingID string, emailType types.EmailType, lang types.Language) (*SendResult, error) {
	if emailType != types.EMAIL_INITIAL && emailType != types.EMAIL_RECEPTION {
		return nil, fmt.Errorf("unsupported email type: %s", emailType)
	}
	if lang == "" {
		lang = types.LANG_JA
	}
	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	row, err := findRow(rows, bookingID)
	if err != nil {
		return nil, err
	}
	r := models.ReservationFromRow(row)
	if r.Email == "" {
		return nil, common.ErrNoRecipient
	}
	subject, body, err := mailer.Render(emailType, lang, d.templateVars(r))
	if err != nil {
		return nil, err
	}
	if err := d.send(ctx, d.message(r.Email, subject, body)); err != nil {
		log.Printf("[desk] Error sending %s email for %s: %s\n", emailType, r.BookingID, err.Error())
		return nil, err
	}

	now := d.Now()
	rec := models.EmailRecord{
		Type:    emailType,
		To:      r.Email,
		Subject: subject,
		Body:    body,
		SentAt:  now.UTC(),
	}
	plan, err := common.PlanEmailFlags(emailType, row, now)
	if err != nil {
		return nil, err
	}
	history, err := common.PlanEmailRecord(row, rec)
	if errors.Is(err, common.ErrHistoryFull) {
		log.Printf("[desk] Not recording %s email for %s: %s\n", emailType, r.BookingID, err.Error())
	} else if err != nil {
		return nil, err
	}
	plan.Merge(history)
	if err := d.store.WriteCells(ctx, r.BookingID, plan); err != nil {
		return nil, err
	}
	log.Printf("[desk] Sent %s email to booking %s\n", emailType, r.BookingID)
	return &SendResult{
		Record:      rec,
		Reservation: ToAPIResponse(models.ReservationFromRow(plan.Apply(row)), d.today()),
	}, nil
}

// SendRaw delivers a free-form message. It is not recorded anywhere.
func (d *Desk) SendRaw(ctx context.Context, body types.SendEmailRequestBody) error {
	to := strings.TrimSpace(body.To)
	if to == "" {
		return common.ErrNoRecipient
	}
	if err := d.send(ctx, d.message(to, body.Subject, body.BodyText)); err != nil {
		log.Printf("[desk] Error sending email to %s: %s\n", to, err.Error())
		return err
	}
	return nil
}
