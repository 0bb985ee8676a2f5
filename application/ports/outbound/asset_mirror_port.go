package outbound

import (
	"context"

	"github.com/rajesharyain/magination/domain"
)

// AssetMirrorPort pushes a copy of a stored asset to durable cloud storage.
// Mirroring is best-effort; the local URL stays canonical.
type AssetMirrorPort interface {
	Mirror(ctx context.Context, asset domain.UploadedAsset, content []byte) error
}
