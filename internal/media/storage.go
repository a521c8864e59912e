package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage pushes processed covers to an S3-compatible bucket and hands
// back the public URL.
type Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type StorageConfig struct {
	Region    string
	Endpoint  string // optional, for S3-compatible providers
	AccessKey string
	SecretKey string
	Bucket    string
	BaseURL   string
}

func NewStorage(cfg StorageConfig) *Storage {
	if cfg.Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &Storage{
		client:  s3.New(opts),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (s *Storage) UploadCover(
	ctx context.Context,
	key string,
	body []byte,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
