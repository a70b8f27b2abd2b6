package aws

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"guestdesk/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrObjectNotFound = errors.New("object not found")

func S3GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	client, err := lib.AWSGetS3Client(ctx)
	if err != nil {
		return nil, err
	}
	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrObjectNotFound
		}
		log.Printf("[s3] Error retrieving object %s/%s: %s\n", bucket, key, err.Error())
		return nil, err
	}
	defer result.Body.Close()
	return io.ReadAll(result.Body)
}

// S3DownloadFile saves bucket/key to dest unless dest already exists.
func S3DownloadFile(ctx context.Context, bucket, key, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	}
	body, err := S3GetObject(ctx, bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, body, 0o600); err != nil {
		log.Printf("[s3] Error writing %s: %s\n", dest, err.Error())
		return err
	}
	log.Printf("[s3] Downloaded %s/%s to %s\n", bucket, key, dest)
	return nil
}
