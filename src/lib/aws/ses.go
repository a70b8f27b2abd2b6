package aws

import (
	"context"
	"fmt"
	"log"
	"mime"

	"guestdesk/src/lib"
	"guestdesk/src/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

// SESMailer sends plain text email through Amazon SES.
type SESMailer struct{}

func NewSESMailer() *SESMailer {
	return &SESMailer{}
}

func (m *SESMailer) Name() string {
	return "ses"
}

func (m *SESMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	c, err := lib.AWSGetSESClient(ctx)
	if err != nil {
		return err
	}
	out, err := c.SendEmail(ctx, SESSendEmailInput(msg))
	if err != nil {
		log.Printf("[ses] Error sending email to %s: %s\n", msg.To, err.Error())
		return err
	}
	log.Printf("[ses] Sent email with id: %s\n", aws.ToString(out.MessageId))
	return nil
}

func SESSendEmailInput(msg models.EmailMessage) *ses.SendEmailInput {
	source := msg.From
	if msg.FromName != "" {
		source = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode(charset, msg.FromName), msg.From)
	}
	return &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String(charset)},
			},
		},
	}
}
