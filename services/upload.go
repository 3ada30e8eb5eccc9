package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrStorageDisabled is returned when no bucket is configured
var ErrStorageDisabled = errors.New("image storage is not configured")

// ImageStore keeps project images and returns their public URL
type ImageStore interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// StorageSettings configures the S3 bucket project images are written to
type StorageSettings struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"AWS_REGION" envDefault:"us-east-1"`
	PublicURL string `env:"S3_PUBLIC_URL"`
	KeyPrefix string `env:"S3_KEY_PREFIX" envDefault:"projects/"`
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3ImageStore struct {
	client    objectPutter
	bucket    string
	publicURL string
	prefix    string
}

// NewS3ImageStore loads the default AWS credential chain and returns a store for the bucket
func NewS3ImageStore(ctx context.Context, settings StorageSettings) (*S3ImageStore, error) {
	if settings.Bucket == "" {
		return nil, ErrStorageDisabled
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(settings.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newS3ImageStore(s3.NewFromConfig(cfg), settings), nil
}

func newS3ImageStore(client objectPutter, settings StorageSettings) *S3ImageStore {
	publicURL := settings.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", settings.Bucket, settings.Region)
	}
	return &S3ImageStore{
		client:    client,
		bucket:    settings.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		prefix:    settings.KeyPrefix,
	}
}

// Put uploads body under a unique key derived from the file name
func (s *S3ImageStore) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := s.prefix + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}
