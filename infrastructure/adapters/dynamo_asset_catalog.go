package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
	"github.com/rajesharyain/magination/domain"
)

type dynamoAssetItem struct {
	StoredName string `dynamodbav:"stored_name"`
	Url        string `dynamodbav:"url"`
	SizeBytes  int64  `dynamodbav:"size_bytes"`
	TTL        int64  `dynamodbav:"ttl"`
}

type dynamoAssetCatalog struct {
	dynamoSvc     *dynamodb.DynamoDB
	catalogConfig *config.CatalogConfig
	logger        outbound.LoggerPort
}

// NewDynamoAssetCatalog records uploaded assets in DynamoDB with a TTL so
// stale entries age out with the files they describe.
func NewDynamoAssetCatalog(dynamoSvc *dynamodb.DynamoDB, catalogConfig *config.CatalogConfig, logger outbound.LoggerPort) outbound.AssetCatalogPort {
	return &dynamoAssetCatalog{
		dynamoSvc:     dynamoSvc,
		catalogConfig: catalogConfig,
		logger:        logger,
	}
}

func (c *dynamoAssetCatalog) Record(ctx context.Context, asset domain.UploadedAsset) error {
	item := dynamoAssetItem{
		StoredName: asset.StoredName,
		Url:        asset.URL,
		SizeBytes:  asset.SizeBytes,
		TTL:        time.Now().Add(time.Duration(c.catalogConfig.TtlMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal asset item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.catalogConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to record asset item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	return nil
}

type noopAssetCatalog struct{}

func NewNoopAssetCatalog() outbound.AssetCatalogPort {
	return &noopAssetCatalog{}
}

func (n *noopAssetCatalog) Record(_ context.Context, _ domain.UploadedAsset) error {
	return nil
}
