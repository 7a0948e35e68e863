package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

var ErrInvalidS3URI = errors.New("invalid s3 uri")

type (
	AwsS3 interface {
		GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	}

	objectGetter interface {
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	}

	awsS3 struct {
		client objectGetter
	}
)

func NewAwsS3(cfg aws.Config) AwsS3 {
	return &awsS3{client: s3.NewFromConfig(cfg)}
}

func newAwsS3WithClient(client objectGetter) AwsS3 {
	return &awsS3{client: client}
}

func (a *awsS3) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func IsS3URI(uri string) bool {
	return strings.HasPrefix(uri, s3Scheme)
}

// ParseS3URI splits s3://bucket/key/parts into bucket and key.
func ParseS3URI(uri string) (string, string, error) {
	if !IsS3URI(uri) {
		return "", "", ErrInvalidS3URI
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(uri, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", ErrInvalidS3URI
	}
	return bucket, key, nil
}
