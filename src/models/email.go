package models

import (
	"time"

	"guestdesk/src/types"
)

// EmailRecord is one entry of the email_history cell. Reminders are logged
// with type initial.
type EmailRecord struct {
	Type    types.EmailType `json:"type"`
	To      string          `json:"to"`
	Subject string          `json:"subject"`
	Body    string          `json:"body"`
	SentAt  time.Time       `json:"sentAt"`
}

type EmailMessage struct {
	From     string
	FromName string
	To       string
	Subject  string
	Body     string
}
