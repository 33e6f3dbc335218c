package bundle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Config holds S3-compatible object storage configuration for the loader.
type S3Config struct {
	// Bucket is the bucket name (required).
	Bucket string

	// AccessKey is the access key ID (required).
	AccessKey string

	// SecretKey is the secret access key (required).
	SecretKey string

	// Endpoint is a custom endpoint URL (optional, for MinIO or other
	// S3-compatible services).
	Endpoint string

	// Region is the bucket region (default: us-east-1).
	Region string

	// Prefix is prepended to object keys, e.g. "locales/".
	Prefix string

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool
}

// S3Loader fetches bundles from S3-compatible object storage.
// Object convention: {prefix}{code}.json.
type S3Loader struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Loader creates a Loader backed by the configured bucket.
func NewS3Loader(cfg S3Config) (*S3Loader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Loader{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Load fetches and parses the bundle object for code.
func (l *S3Loader) Load(ctx context.Context, code string) (Bundle, error) {
	key := l.cfg.Prefix + code + ".json"

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: s3 %s for key %q", ErrLoadFailed, apiErr.ErrorCode(), key)
		}
		return nil, fmt.Errorf("%w: fetching key %q: %s", ErrLoadFailed, key, err)
	}
	defer out.Body.Close() //nolint:errcheck

	var raw map[string]any
	if err := json.NewDecoder(out.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: parsing key %q: %s", ErrInvalidBundle, key, err)
	}

	return Bundle(raw), nil
}
