package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"engagetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage stores uploaded document bodies in an S3 bucket.
//
// Supported env vars:
//   - DOCUMENTS_BUCKET (default: engagetrack-documents)
//   - AWS_REGION
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566, forces path style)

type S3Storage struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IDocumentStorage = (*S3Storage)(nil)

func NewS3Storage(ctx context.Context) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config for s3: %w", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := os.Getenv("DOCUMENTS_BUCKET")
	if bucket == "" {
		bucket = "engagetrack-documents"
	}
	return &S3Storage{client: client, bucket: bucket}, nil
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to store document %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func (s *S3Storage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyFromPath(path)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", path, err)
	}
	return out.Body, nil
}

func (s *S3Storage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyFromPath(path)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", path, err)
	}
	return nil
}

// keyFromPath accepts the s3:// reference Put handed out, or a bare key.
func (s *S3Storage) keyFromPath(path string) string {
	return strings.TrimPrefix(path, fmt.Sprintf("s3://%s/", s.bucket))
}
