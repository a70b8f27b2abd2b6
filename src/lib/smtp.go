package lib

import (
	"context"
	"fmt"
	"log"

	"guestdesk/src/common"
	"guestdesk/src/models"

	"github.com/wneessen/go-mail"
)

const (
	SMTPProviderDefault  = "default"
	SMTPProviderSendGrid = "sendgrid"
	SMTPProviderGmail    = "gmail"
)

type SMTPOptions struct {
	Provider string
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPHost resolves the server for a provider preset. The default provider
// uses the configured host.
func SMTPHost(opts SMTPOptions) string {
	switch opts.Provider {
	case SMTPProviderSendGrid:
		return "smtp.sendgrid.net"
	case SMTPProviderGmail:
		return "smtp.gmail.com"
	}
	return opts.Host
}

func NewSMTPClient(opts SMTPOptions) (*mail.Client, error) {
	port := opts.Port
	if port == 0 {
		port = 587
	}
	c, err := mail.NewClient(
		SMTPHost(opts),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(opts.Username),
		mail.WithPassword(opts.Password),
	)
	if err != nil {
		log.Printf("[smtp] Could not initialize smtp client: %s\n", err.Error())
		return nil, err
	}
	return c, nil
}

func NewSMTPMessage(input models.EmailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(input.FromName, input.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(input.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(input.Subject)
	msg.SetBodyString(mail.TypeTextPlain, input.Body)
	return msg, nil
}

// SMTPMailer delivers messages over SMTP.
type SMTPMailer struct {
	opts SMTPOptions
}

func NewSMTPMailer(opts SMTPOptions) *SMTPMailer {
	return &SMTPMailer{opts: opts}
}

func (m *SMTPMailer) Name() string {
	return "smtp"
}

func (m *SMTPMailer) Send(ctx context.Context, input models.EmailMessage) error {
	msg, err := NewSMTPMessage(input)
	if err != nil {
		return err
	}
	c, err := NewSMTPClient(m.opts)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrTransport, err.Error())
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[smtp] Error sending email to %s: %s\n", input.To, err.Error())
		return err
	}
	return nil
}
