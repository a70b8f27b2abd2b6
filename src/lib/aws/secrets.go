package aws

import (
	"context"
	"errors"
	"log"

	"guestdesk/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var ErrEmptySecret = errors.New("secret has no string value")

func GetSecretString(ctx context.Context, secretID string) (string, error) {
	client, err := lib.AWSGetSecretsManagerClient(ctx)
	if err != nil {
		return "", err
	}
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		log.Printf("[secretsmanager] Error retrieving secret %s: %s\n", secretID, err.Error())
		return "", err
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", ErrEmptySecret
	}
	return *out.SecretString, nil
}
