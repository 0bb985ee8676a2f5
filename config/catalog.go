package config

import (
	"fmt"
	"os"
	"strconv"
)

// CatalogConfig enables the DynamoDB catalog of uploaded assets. Off unless
// ASSET_TABLE_NAME is set.
type CatalogConfig struct {
	Enabled    bool
	TableName  string
	TtlMinutes int
}

func GetCatalogConfig() (*CatalogConfig, error) {
	tableName := os.Getenv("ASSET_TABLE_NAME")
	if tableName == "" {
		return &CatalogConfig{Enabled: false}, nil
	}

	ttlMinutes := 24 * 60
	if raw := os.Getenv("ASSET_TTL_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ASSET_TTL_MINUTES: %w", err)
		}
		ttlMinutes = parsed
	}

	return &CatalogConfig{
		Enabled:    true,
		TableName:  tableName,
		TtlMinutes: ttlMinutes,
	}, nil
}
