package s3

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Backend derives status records from objects in an S3 compatible bucket.
// Object size and last-modified time come from the object itself; the fields
// S3 has no notion of (times, replication, block size, owner, link target)
// are kept in user metadata and rewritten through a server-side copy.
type S3Backend struct {
	client *minio.Client
	config *Config
}

// Config contains configuration options for the S3 backend
type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

func NewS3Backend(config *Config) (*S3Backend, error) {
	if config == nil || config.Endpoint == "" || config.Bucket == "" {
		return nil, fmt.Errorf("fsattr: s3 backend requires endpoint and bucket")
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, err
	}

	return &S3Backend{
		client: client,
		config: config,
	}, nil
}

// Name returns the identifier name defined for this backend
func (*S3Backend) Name() string {
	return "s3"
}

// Open checks that the configured bucket exists.
func (sb *S3Backend) Open(ctx context.Context) error {
	exists, err := sb.client.BucketExists(ctx, sb.config.Bucket)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("fsattr: bucket '%s' does not exist", sb.config.Bucket)
	}

	return nil
}

// Close is part of the lifecycle behaviour; the minio client holds no resources.
func (sb *S3Backend) Close(ctx context.Context) error {
	return nil
}
