package outbound

import (
	"context"

	"github.com/rajesharyain/magination/domain"
)

// AssetCatalogPort records metadata about uploaded assets.
type AssetCatalogPort interface {
	Record(ctx context.Context, asset domain.UploadedAsset) error
}
