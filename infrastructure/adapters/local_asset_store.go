package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
	"github.com/rajesharyain/magination/domain"
)

type localAssetStore struct {
	uploadsConfig *config.UploadsConfig
	logger        outbound.LoggerPort
}

// NewLocalAssetStore persists assets on the local filesystem and serves them
// under the public uploads path.
func NewLocalAssetStore(uploadsConfig *config.UploadsConfig, logger outbound.LoggerPort) outbound.AssetStorePort {
	return &localAssetStore{
		uploadsConfig: uploadsConfig,
		logger:        logger,
	}
}

func (s *localAssetStore) Store(ctx context.Context, params outbound.StoreAssetParams) (*domain.UploadedAsset, error) {
	if len(params.Content) == 0 {
		return nil, domain.ErrNoFile
	}

	// MkdirAll treats an existing directory as success, so concurrent
	// uploads racing on first use are fine.
	if err := os.MkdirAll(s.uploadsConfig.Dir, 0o755); err != nil {
		s.logger.ErrorWithFields(err, "Failed to create the uploads directory", map[string]interface{}{
			"dir": s.uploadsConfig.Dir,
		})
		return nil, err
	}

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(params.OriginalName))
	path := filepath.Join(s.uploadsConfig.Dir, storedName)

	if err := os.WriteFile(path, params.Content, 0o644); err != nil {
		s.logger.ErrorWithFields(err, "Failed to write the uploaded file", map[string]interface{}{
			"path": path,
		})
		return nil, err
	}

	asset := &domain.UploadedAsset{
		StoredName: storedName,
		URL:        s.uploadsConfig.PublicPath + "/" + storedName,
		SizeBytes:  int64(len(params.Content)),
	}

	s.logger.DebugWithFields("Stored uploaded asset", map[string]interface{}{
		"storedName": asset.StoredName,
		"url":        asset.URL,
		"sizeBytes":  asset.SizeBytes,
	})

	return asset, nil
}
