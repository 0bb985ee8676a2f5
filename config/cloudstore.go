package config

import (
	"fmt"
	"os"
)

// CloudStoreConfig enables the S3 mirror of the local uploads directory.
// Mirroring is off unless BUCKET_NAME is set.
type CloudStoreConfig struct {
	Enabled    bool
	BucketName string
	Region     string
}

func GetCloudStoreConfig() (*CloudStoreConfig, error) {
	bucketName := os.Getenv("BUCKET_NAME")
	if bucketName == "" {
		return &CloudStoreConfig{Enabled: false}, nil
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set when BUCKET_NAME is set")
	}

	return &CloudStoreConfig{
		Enabled:    true,
		BucketName: bucketName,
		Region:     region,
	}, nil
}
