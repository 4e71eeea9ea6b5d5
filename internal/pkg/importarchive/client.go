package importarchive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Client wraps the S3 client with import-archive specific functionality
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a new archive client
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("import archiving is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// S3-compatible services like Backblaze B2 need path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	client := &Client{
		s3Client: s3Client,
		config:   cfg,
	}

	if err := client.testConnection(); err != nil {
		return nil, fmt.Errorf("failed to connect to S3: %w", err)
	}

	log.Infof("[ImportArchive] Successfully initialized S3 client for bucket: %s", cfg.GetBucketName())
	return client, nil
}

// testConnection tests the S3 connection by checking if the bucket exists
func (c *Client) testConnection() error {
	ctx := context.Background()
	bucketName := c.config.GetBucketName()

	_, err := c.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})

	if err != nil {
		// If bucket doesn't exist, try to create it (for development)
		if GetAppEnv() != "prod" {
			log.Warnf("[ImportArchive] Bucket %s not found, attempting to create it", bucketName)
			return c.createBucket(bucketName)
		}
		return fmt.Errorf("bucket %s not accessible: %w", bucketName, err)
	}

	return nil
}

// createBucket creates a new S3 bucket (dev/staging only)
func (c *Client) createBucket(bucketName string) error {
	ctx := context.Background()

	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	}

	// AWS regions other than us-east-1 need a location constraint.
	// S3-compatible endpoints do not.
	if c.config.EndpointURL == "" && c.config.Region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.config.Region),
		}
	}

	_, err := c.s3Client.CreateBucket(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}

	log.Infof("[ImportArchive] Successfully created bucket: %s", bucketName)
	return nil
}

// ArchiveResult contains the result of a successful archive upload
type ArchiveResult struct {
	BucketName  string
	ObjectKey   string
	Size        int64
	ContentType string
}

// ArchiveFile uploads the raw content of an admin import file so the original
// input can be inspected after the rows have been mapped and submitted.
func (c *Client) ArchiveFile(entity, originalFilename string, data []byte) (*ArchiveResult, error) {
	ctx := context.Background()
	bucketName := c.config.GetBucketName()

	ext := strings.ToLower(filepath.Ext(originalFilename))
	now := time.Now()
	objectKey := c.config.GetObjectKey(entity, uuid.New().String(), ext, now.Year(), int(now.Month()))
	contentType := getContentType(ext)

	log.Infof("[ImportArchive] Archiving %s (%d bytes) -> s3://%s/%s",
		originalFilename, len(data), bucketName, objectKey)

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"import-entity":     entity,
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	result := &ArchiveResult{
		BucketName:  bucketName,
		ObjectKey:   objectKey,
		Size:        int64(len(data)),
		ContentType: contentType,
	}

	log.Infof("[ImportArchive] Successfully archived: s3://%s/%s", bucketName, objectKey)
	return result, nil
}

// DownloadFile downloads an archived import file to local storage
func (c *Client) DownloadFile(objectKey, localFilePath string) error {
	ctx := context.Background()
	bucketName := c.config.GetBucketName()

	result, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	if err := os.MkdirAll(filepath.Dir(localFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(localFilePath)
	if err != nil {
		return fmt.Errorf("failed to create local file: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, result.Body)
	if err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}

	log.Infof("[ImportArchive] Successfully downloaded: s3://%s/%s -> %s", bucketName, objectKey, localFilePath)
	return nil
}

// DeleteFile deletes an archived import file from S3
func (c *Client) DeleteFile(objectKey string) error {
	ctx := context.Background()
	bucketName := c.config.GetBucketName()

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	log.Infof("[ImportArchive] Successfully deleted: s3://%s/%s", bucketName, objectKey)
	return nil
}

// ObjectExists checks if an object exists in S3
func (c *Client) ObjectExists(objectKey string) (bool, error) {
	ctx := context.Background()
	bucketName := c.config.GetBucketName()

	_, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}

	return true, nil
}

// getContentType returns the MIME type based on file extension
func getContentType(ext string) string {
	switch ext {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
