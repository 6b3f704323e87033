// Package s3 wraps the object storage upload used by document ingestion.
package s3

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client uploads local files into one S3 bucket.
type Client struct {
	uploader *manager.Uploader
	bucket   string
}

// NewClient creates an S3 client bound to the given bucket.
func NewClient(cfg aws.Config, bucket string) *Client {
	return &Client{
		uploader: manager.NewUploader(awss3.NewFromConfig(cfg)),
		bucket:   bucket,
	}
}

// Upload stores the file at path under objectName in the bucket. An
// empty objectName defaults to the file's base name.
func (c *Client) Upload(ctx context.Context, path, objectName string) error {
	if objectName == "" {
		objectName = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	_, err = c.uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectName),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, c.bucket, err)
	}

	return nil
}
