package storage

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"S3_BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"S3_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"S3_SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"S3_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"S3_REGION" envDefault:"us-east-1"`

	// Prefix is prepended to every key as "{prefix}/{key}" (optional).
	Prefix string `env:"S3_PREFIX"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"S3_PATH_STYLE" envDefault:"false"`
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	c.Prefix = strings.Trim(c.Prefix, "/")
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// S3Storage stores documents as objects in an S3-compatible bucket.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// NewS3 creates an S3Storage with the given configuration.
//
//	store, err := storage.NewS3(storage.Config{
//		Bucket:    "locales",
//		AccessKey: os.Getenv("S3_ACCESS_KEY"),
//		SecretKey: os.Getenv("S3_SECRET_KEY"),
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
func NewS3(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
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

	return &S3Storage{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Put uploads data as the object key.
func (s *S3Storage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return ErrInvalidKey
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return wrapS3Error(err, ErrUploadFailed)
	}
	return nil
}

// Get downloads the object key.
func (s *S3Storage) Get(ctx context.Context, key string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	defer func() { _ = output.Body.Close() }()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	return data, nil
}

// Location returns the s3:// URI of key.
func (s *S3Storage) Location(key string) string {
	return "s3://" + s.cfg.Bucket + "/" + s.objectKey(key)
}

func (s *S3Storage) objectKey(key string) string {
	if s.cfg.Prefix == "" {
		return key
	}
	return s.cfg.Prefix + "/" + key
}

var _ Storage = (*S3Storage)(nil)
