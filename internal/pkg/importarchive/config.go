package importarchive

import (
	"errors"
	"fmt"

	"github.com/hostpick/hostpick/internal/pkg/env"
)

// Config holds the S3 settings for archiving uploaded import files
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	Enabled         bool
}

// LoadConfig loads the archive configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-west-001"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		Enabled:         env.GetEnv("IMPORT_ARCHIVE_ENABLED", "false") == "true",
	}

	// Validate required fields if archiving is enabled
	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when import archiving is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when import archiving is enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when import archiving is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if import archiving is enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// GetObjectKey generates a standardized S3 object key for an import file
func (c *Config) GetObjectKey(entity, importUUID, fileExtension string, year, month int) string {
	// Format: imports/<entity>/YYYY/MM/UUID.ext
	return fmt.Sprintf("imports/%s/%04d/%02d/%s%s", entity, year, month, importUUID, fileExtension)
}

// GetAppEnv returns the current application environment
func GetAppEnv() string {
	return env.GetEnv("APP_ENV", "dev")
}

// GetBucketName returns the bucket name as configured (no automatic prefixing)
func (c *Config) GetBucketName() string {
	return c.BucketName
}
