package aws

import (
	"context"
	"errors"
	"log"
	"strings"

	"guestdesk/src/lib"
	"guestdesk/src/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSConsumer long-polls a queue and hands each message body to a handler.
// Messages are deleted once the handler returns.
type SQSConsumer struct {
	Name    string
	handler types.Handler
}

func NewSQSConsumer(queue string, handler types.Handler) *SQSConsumer {
	return &SQSConsumer{
		Name:    queue,
		handler: handler,
	}
}

// Listen starts polling in the background until ctx is cancelled.
func (s *SQSConsumer) Listen(ctx context.Context) {
	go func() {
		client, err := lib.AWSGetSQSClient(ctx)
		if err != nil {
			log.Printf("[sqs] Error creating client for %s: %s\n", s.Name, err.Error())
			return
		}
		qurl, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
			QueueName: aws.String(s.Name),
		})
		if err != nil {
			log.Printf("[sqs] Failed to retrieve queue URL for %s: %s\n", s.Name, err.Error())
			return
		}
		log.Printf("[sqs] %s: Listening for messages...\n", s.Name)

		messages := make(chan sqstypes.Message, 10)
		go func() {
			defer close(messages)
			for {
				output, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
					QueueUrl:            qurl.QueueUrl,
					WaitTimeSeconds:     20,
					MaxNumberOfMessages: 10,
				})
				if err != nil {
					if errors.Is(err, context.Canceled) || ctx.Err() != nil {
						return
					}
					log.Printf("[sqs] Error receiving messages: %s\n", err.Error())
					return
				}
				for _, m := range output.Messages {
					select {
					case messages <- m:
					case <-ctx.Done():
						return
					}
				}
			}
		}()

		for m := range messages {
			s.handler(strings.Clone(aws.ToString(m.Body)))
			lib.SQSDeleteMessage(context.WithoutCancel(ctx), client, qurl.QueueUrl, m)
		}
		log.Printf("[sqs] %s: Stopped listening\n", s.Name)
	}()
}
