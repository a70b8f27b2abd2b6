package mailer

import (
	"context"
	"log"

	"guestdesk/src/config"
	"guestdesk/src/lib"
	"guestdesk/src/lib/aws"
	"guestdesk/src/models"
)

type Mailer interface {
	Name() string
	Send(ctx context.Context, msg models.EmailMessage) error
}

// LogMailer records messages in the log instead of delivering them.
type LogMailer struct{}

func (m *LogMailer) Name() string {
	return "log"
}

func (m *LogMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	log.Printf("[mailer] Email would be sent from=%q to=%q subject=%q (%d bytes)\n", msg.From, msg.To, msg.Subject, len(msg.Body))
	return nil
}

// NewMailer picks the delivery driver named by MAIL_DRIVER.
func NewMailer(cfg *config.Config) Mailer {
	var m Mailer
	switch cfg.MailDriver {
	case config.MailDriverSMTP:
		m = lib.NewSMTPMailer(lib.SMTPOptions{
			Provider: cfg.SMTPProvider,
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	case config.MailDriverSES:
		m = aws.NewSESMailer()
	default:
		m = &LogMailer{}
	}
	log.Printf("[mailer] Using %s driver\n", m.Name())
	return m
}
