package outbound

import (
	"context"

	"github.com/rajesharyain/magination/domain"
)

type StoreAssetParams struct {
	Content      []byte
	OriginalName string
}

// AssetStorePort persists an asset and returns it with a stable retrieval
// URL.
type AssetStorePort interface {
	Store(ctx context.Context, params StoreAssetParams) (*domain.UploadedAsset, error)
}
