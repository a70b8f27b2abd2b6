package lib

import (
	"context"
	"log"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqsTypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var (
	awsMu      sync.Mutex
	awsConfig  *aws.Config
	awsRoleArn string
)

// SetAWSRole sets the IAM role assumed through STS by every AWS client.
func SetAWSRole(roleArn string) {
	awsMu.Lock()
	defer awsMu.Unlock()
	awsRoleArn = roleArn
	awsConfig = nil
}

func awsGetSdkConfig(ctx context.Context) (*aws.Config, error) {
	awsMu.Lock()
	defer awsMu.Unlock()
	if awsConfig != nil {
		return awsConfig, nil
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("[aws] Error loading default config: %s\n", err.Error())
		return nil, err
	}
	if awsRoleArn != "" {
		stsClient := sts.NewFromConfig(cfg)
		output, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
			RoleArn:         aws.String(awsRoleArn),
			RoleSessionName: aws.String("guestdesk"),
		})
		if err != nil {
			log.Printf("[aws] Error assuming role %s: %s\n", awsRoleArn, err.Error())
			return nil, err
		}
		creds := output.Credentials
		cfg, err = config.LoadDefaultConfig(ctx, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(*creds.AccessKeyId, *creds.SecretAccessKey, *creds.SessionToken),
		))
		if err != nil {
			log.Printf("[aws] Error loading assumed role config: %s\n", err.Error())
			return nil, err
		}
	}
	awsConfig = &cfg
	return awsConfig, nil
}

func AWSGetS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsGetSdkConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(*cfg), nil
}

func AWSGetSQSClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := awsGetSdkConfig(ctx)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(*cfg), nil
}

func AWSGetSNSClient(ctx context.Context) (*sns.Client, error) {
	cfg, err := awsGetSdkConfig(ctx)
	if err != nil {
		return nil, err
	}
	return sns.NewFromConfig(*cfg), nil
}

func AWSGetSESClient(ctx context.Context) (*ses.Client, error) {
	cfg, err := awsGetSdkConfig(ctx)
	if err != nil {
		return nil, err
	}
	return ses.NewFromConfig(*cfg), nil
}

func AWSGetSecretsManagerClient(ctx context.Context) (*secretsmanager.Client, error) {
	cfg, err := awsGetSdkConfig(ctx)
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(*cfg), nil
}

func SQSDeleteMessage(ctx context.Context, c *sqs.Client, qurl *string, msg sqsTypes.Message) {
	_, err := c.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      qurl,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Printf("[sqs] Error deleting message from queue: %s\n", err.Error())
		return
	}
	log.Printf("[sqs] Deleted message from queue: %s\n", aws.ToString(msg.MessageId))
}
