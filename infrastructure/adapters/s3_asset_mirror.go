package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
	"github.com/rajesharyain/magination/domain"
)

type s3AssetMirror struct {
	s3Svc            *s3.S3
	cloudStoreConfig *config.CloudStoreConfig
	logger           outbound.LoggerPort
}

// NewS3AssetMirror copies stored assets into an S3 bucket. The local URL
// remains the one handed to clients.
func NewS3AssetMirror(s3Svc *s3.S3, cloudStoreConfig *config.CloudStoreConfig, logger outbound.LoggerPort) outbound.AssetMirrorPort {
	return &s3AssetMirror{
		s3Svc:            s3Svc,
		cloudStoreConfig: cloudStoreConfig,
		logger:           logger,
	}
}

func (m *s3AssetMirror) Mirror(ctx context.Context, asset domain.UploadedAsset, content []byte) error {
	key := fmt.Sprintf("uploads/%s", asset.StoredName)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(m.cloudStoreConfig.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
	}

	_, err := m.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		m.logger.ErrorWithFields(err, "Failed to mirror asset to S3", map[string]interface{}{
			"bucket": m.cloudStoreConfig.BucketName,
			"key":    key,
		})
		return err
	}

	m.logger.DebugWithFields("Mirrored asset to S3", map[string]interface{}{
		"bucket": m.cloudStoreConfig.BucketName,
		"key":    key,
	})

	return nil
}

type noopAssetMirror struct{}

func NewNoopAssetMirror() outbound.AssetMirrorPort {
	return &noopAssetMirror{}
}

func (n *noopAssetMirror) Mirror(_ context.Context, _ domain.UploadedAsset, _ []byte) error {
	return nil
}
