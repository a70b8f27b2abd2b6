package aws

import (
	"testing"

	"guestdesk/src/models"
	"guestdesk/src/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestSESSendEmailInput(t *testing.T) {
	in := SESSendEmailInput(models.EmailMessage{
		From:     "noreply@yumedono.com",
		FromName: "Yumedono",
		To:       "guest@example.com",
		Subject:  "Welcome",
		Body:     "Hello",
	})
	assert.Equal(t, "Yumedono <noreply@yumedono.com>", aws.ToString(in.Source))
	assert.Equal(t, []string{"guest@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "Welcome", aws.ToString(in.Message.Subject.Data))
	assert.Equal(t, "Hello", aws.ToString(in.Message.Body.Text.Data))
	assert.Equal(t, "UTF-8", aws.ToString(in.Message.Body.Text.Charset))
	assert.Nil(t, in.Message.Body.Html)
}

func TestSESSendEmailInputEncodesName(t *testing.T) {
	in := SESSendEmailInput(models.EmailMessage{
		From:     "noreply@yumedono.com",
		FromName: "夢殿",
		To:       "guest@example.com",
	})
	assert.Contains(t, aws.ToString(in.Source), "=?UTF-8?q?")
	assert.Contains(t, aws.ToString(in.Source), "<noreply@yumedono.com>")

	in = SESSendEmailInput(models.EmailMessage{From: "noreply@yumedono.com", To: "guest@example.com"})
	assert.Equal(t, "noreply@yumedono.com", aws.ToString(in.Source))
}

func TestSweepReportSubject(t *testing.T) {
	assert.Equal(t, "Reminder sweep: 3 sent", SweepReportSubject(types.SweepReport{RemindersSent: 3}))
	assert.Equal(t, "Reminder sweep: 1 sent, 2 failed", SweepReportSubject(types.SweepReport{RemindersSent: 1, Failed: 2}))
}
