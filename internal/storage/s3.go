package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/chalkboard-dev/chalkboard/internal/config"
)

// ErrNotConfigured is returned by every presign call when the S3
// credentials or bucket are missing from the environment. Configuration
// is checked per request, not at startup.
var ErrNotConfigured = errors.New("object storage is not configured")

// Presigner issues time-limited, method-scoped URLs for direct client
// access to object storage. The server itself never moves object bytes.
type Presigner interface {
	// PresignUpload authorizes one PUT of the given content type to key.
	PresignUpload(key, contentType string) (string, error)

	// PresignDownload authorizes one GET of key. No existence check is
	// performed; signing succeeds for keys that were never written.
	PresignDownload(key string) (string, error)
}

// S3Presigner implements Presigner for S3-compatible storage.
// Works with Cloudflare R2, MinIO, AWS S3, DigitalOcean Spaces, etc.
type S3Presigner struct {
	presignClient *s3.PresignClient
	bucket        string
	expiry        time.Duration
}

// S3Config holds configuration for the presigner
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string // Optional: for S3-compatible services
	Expiry    time.Duration
}

// New creates a presigner from app config. An incomplete configuration is
// not an error here: the zero presigner answers every call with
// ErrNotConfigured so the brokers surface it as a request-time failure.
func New(c *cfg.Config) (*S3Presigner, error) {
	if c.S3Bucket == "" || c.S3AccessKey == "" || c.S3SecretKey == "" {
		slog.Warn("object storage not configured, attachment brokers will fail",
			"bucket", c.S3Bucket,
			"endpoint", c.S3Endpoint,
		)
		return &S3Presigner{expiry: c.S3PresignExpiry}, nil
	}

	slog.Info("initializing S3 presigner",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Presigner(S3Config{
		Region:    c.S3Region,
		Bucket:    c.S3Bucket,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
		Expiry:    c.S3PresignExpiry,
	})
}

// NewS3Presigner creates a presigner for a fully specified configuration
func NewS3Presigner(cfg S3Config) (*S3Presigner, error) {
	ctx := context.Background()

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client with optional custom endpoint
	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Presigner{
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		expiry:        cfg.Expiry,
	}, nil
}

// PresignUpload signs a PUT for exactly one key and content type. No
// storage is allocated; the object may never actually be written.
func (s *S3Presigner) PresignUpload(key, contentType string) (string, error) {
	if s.presignClient == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, nil
}

func (s *S3Presigner) PresignDownload(key string) (string, error) {
	if s.presignClient == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}
