package utils

import (
	"context"
	"log"

	"guestdesk/src/common"
	"guestdesk/src/lib/mailer"
	"guestdesk/src/models"
	"guestdesk/src/types"

	"github.com/google/uuid"
)

// CheckReminders runs one reminder sweep. Every due booking is attempted; a
// failed send is reported and does not stop the rest. Each successful
// reminder is appended to its booking's history right after the send.
func (d *Desk) CheckReminders(ctx context.Context) (*types.SweepReport, error) {
	runID := uuid.NewString()
	if d.lock != nil {
		ok, err := d.lock.Acquire(ctx, runID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, common.ErrSweepInProgress
		}
		defer func() {
			if err := d.lock.Release(context.WithoutCancel(ctx), runID); err != nil {
				log.Printf("[reminders] Error releasing sweep lock: %s\n", err.Error())
			}
		}()
	}

	rows, err := d.rows(ctx)
	if err != nil {
		return nil, err
	}
	today := d.today()
	due, _ := common.DueReminders(rows, today, nil)
	report := &types.SweepReport{
		RunID:   runID,
		Checked: len(rows),
		Results: []types.ReminderResult{},
	}
	for _, item := range due {
		res := d.sendReminder(ctx, item, rowByID(rows, item.Reservation.BookingID))
		if res.Success {
			report.RemindersSent++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	log.Printf("[reminders] Sweep %s: checked=%d sent=%d failed=%d\n", runID, report.Checked, report.RemindersSent, report.Failed)

	if d.publisher != nil {
		if err := d.publisher.PublishSweepReport(ctx, *report); err != nil {
			log.Printf("[reminders] Error publishing sweep report: %s\n", err.Error())
		}
	}
	return report, nil
}

func rowByID(rows []models.Row, bookingID string) models.Row {
	row, _ := findRow(rows, bookingID)
	return row
}

// sendReminder sends one reminder and records it. Success reports the send;
// a failed history write is carried in Error.
func (d *Desk) sendReminder(ctx context.Context, item common.DueReminder, row models.Row) types.ReminderResult {
	r := item.Reservation
	res := types.ReminderResult{
		BookingID: r.BookingID,
		Email:     r.Email,
		DaysUntil: item.DaysUntil,
	}
	vars := d.templateVars(r)
	vars.DaysUntilCheckin = item.DaysUntil
	subject, body, err := mailer.Render(types.EMAIL_REMINDER, d.opts.ReminderLanguage, vars)
	if err == nil {
		err = d.send(ctx, d.message(r.Email, subject, body))
	}
	if err != nil {
		log.Printf("[reminders] Error sending reminder to %s: %s\n", r.BookingID, err.Error())
		res.Error = err.Error()
		return res
	}
	res.Success = true

	// Reminders share the initial email's slot in the history.
	plan, err := common.PlanEmailRecord(row, models.EmailRecord{
		Type:    types.EMAIL_INITIAL,
		To:      r.Email,
		Subject: subject,
		Body:    body,
		SentAt:  d.Now().UTC(),
	})
	if err == nil && len(plan) > 0 {
		err = d.store.WriteCells(ctx, r.BookingID, plan)
	}
	if err != nil {
		log.Printf("[reminders] Error recording reminder for %s: %s\n", r.BookingID, err.Error())
		res.Error = "reminder sent, history not recorded: " + err.Error()
	}
	return res
}
