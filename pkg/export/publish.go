package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoCredentials is returned by EnvCredentials when no access key is set.
var ErrNoCredentials = errors.New("export: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")

// DirPublisher writes pages below a local directory.
type DirPublisher struct {
	Root string
}

// NewDirPublisher returns a publisher rooted at dir.
func NewDirPublisher(dir string) *DirPublisher {
	return &DirPublisher{Root: dir}
}

// Publish writes body to Root/key, creating parent directories.
func (d *DirPublisher) Publish(ctx context.Context, key string, body []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return fmt.Errorf("%w: key %q escapes %s", ErrInvalidPath, key, d.Root)
	}

	dst := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, body, 0o644)
}

// S3API is the subset of the S3 client used by S3Publisher.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads pages to an S3 bucket.
//
// Example usage:
//
//	client := export.NewS3Client("eu-west-1")
//	pub := export.NewS3Publisher(client, "my-site", "preview/")
//	_, err := exporter.Export(ctx, paths, pub)
type S3Publisher struct {
	client       S3API
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Publisher creates a publisher for bucket. Prefix is prepended to every
// key, e.g. "preview/".
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Publisher{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: "public, max-age=300",
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func (p *S3Publisher) WithCacheControl(v string) *S3Publisher {
	p.cacheControl = v
	return p
}

// Publish uploads body as prefix+key.
func (p *S3Publisher) Publish(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(path.Join(p.prefix, key)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}
	if _, err := p.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// NewS3Client returns an S3 client for region using credentials from the
// standard AWS_* environment variables.
func NewS3Client(region string, optFns ...func(*s3.Options)) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(EnvCredentials()),
	}, optFns...)
}

// EnvCredentials reads AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
// AWS_SESSION_TOKEN on each retrieval.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}
		if !creds.HasKeys() {
			return aws.Credentials{}, ErrNoCredentials
		}
		return creds, nil
	})
}
