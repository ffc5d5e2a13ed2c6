package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Client uploads product images to one public bucket on an
// S3-compatible object store, using path-style addressing so it works
// against CEPH/Hetzner/MinIO as well as AWS.
type S3Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for public files
}

// NewS3 creates an S3 storage client with static credentials and
// path-style access.
func NewS3(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*S3Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("s3 storage: endpoint and credentials are required")
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &S3Client{
		s3:        client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object with public-read ACL and returns its URL.
func (c *S3Client) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := objectKey(filename)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return c.fileURL(key), nil
}

// fileURL returns the public URL for an uploaded object. Uses the
// configured public URL if set, otherwise builds a path-style URL.
func (c *S3Client) fileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// objectKey generates a unique storage key partitioned by year/month.
func objectKey(filename string) string {
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("products/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New(), ext)
}
