package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"guestdesk/src/lib"
	"guestdesk/src/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSPublisher announces finished reminder sweeps on a topic.
type SNSPublisher struct {
	TopicArn string
}

func NewSNSPublisher(topicArn string) *SNSPublisher {
	return &SNSPublisher{TopicArn: topicArn}
}

func (p *SNSPublisher) PublishSweepReport(ctx context.Context, report types.SweepReport) error {
	c, err := lib.AWSGetSNSClient(ctx)
	if err != nil {
		return err
	}
	body, err := json.Marshal(report)
	if err != nil {
		return err
	}
	out, err := c.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.TopicArn),
		Subject:  aws.String(SweepReportSubject(report)),
		Message:  aws.String(string(body)),
	})
	if err != nil {
		log.Printf("[sns] Error publishing sweep report %s: %s\n", report.RunID, err.Error())
		return err
	}
	log.Printf("[sns] Published sweep report %s as %s\n", report.RunID, aws.ToString(out.MessageId))
	return nil
}

func SweepReportSubject(report types.SweepReport) string {
	if report.Failed > 0 {
		return fmt.Sprintf("Reminder sweep: %d sent, %d failed", report.RemindersSent, report.Failed)
	}
	return fmt.Sprintf("Reminder sweep: %d sent", report.RemindersSent)
}
