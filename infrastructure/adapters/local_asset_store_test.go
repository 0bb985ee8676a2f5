package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
	"github.com/rajesharyain/magination/domain"
)

func newTestStore(t *testing.T) outbound.AssetStorePort {
	t.Helper()
	uploadsConfig := &config.UploadsConfig{
		Dir:        filepath.Join(t.TempDir(), "uploads"),
		PublicPath: "/uploads",
	}
	return NewLocalAssetStore(uploadsConfig, NewZerologWrapper())
}

func TestLocalAssetStore_Store(t *testing.T) {
	store := newTestStore(t)

	asset, err := store.Store(context.Background(), outbound.StoreAssetParams{
		Content:      []byte("png-bytes"),
		OriginalName: "cat.png",
	})
	if err != nil {
		t.Fatal("Failed to store asset:", err)
	}

	if !strings.HasPrefix(asset.URL, "/uploads/") {
		t.Fatalf("URL %q does not start with /uploads/", asset.URL)
	}
	if !strings.HasSuffix(asset.StoredName, "-cat.png") {
		t.Fatalf("stored name %q does not keep the original name", asset.StoredName)
	}
	if asset.SizeBytes != int64(len("png-bytes")) {
		t.Fatalf("size = %d, want %d", asset.SizeBytes, len("png-bytes"))
	}
}

func TestLocalAssetStore_NoContent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store(context.Background(), outbound.StoreAssetParams{
		OriginalName: "cat.png",
	})
	if !errors.Is(err, domain.ErrNoFile) {
		t.Fatalf("err = %v, want ErrNoFile", err)
	}
}

func TestLocalAssetStore_NamesIncrease(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Store(context.Background(), outbound.StoreAssetParams{
		Content:      []byte("first"),
		OriginalName: "a.png",
	})
	if err != nil {
		t.Fatal("Failed to store first asset:", err)
	}

	time.Sleep(2 * time.Millisecond)

	second, err := store.Store(context.Background(), outbound.StoreAssetParams{
		Content:      []byte("second"),
		OriginalName: "a.png",
	})
	if err != nil {
		t.Fatal("Failed to store second asset:", err)
	}

	if first.StoredName == second.StoredName {
		t.Fatal("two uploads more than a millisecond apart share a name")
	}

	firstMillis := timestampPrefix(t, first.StoredName)
	secondMillis := timestampPrefix(t, second.StoredName)
	if secondMillis <= firstMillis {
		t.Fatalf("timestamp prefixes not increasing: %d then %d", firstMillis, secondMillis)
	}
}

func TestLocalAssetStore_ReusesExistingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal("Failed to pre-create dir:", err)
	}

	store := NewLocalAssetStore(&config.UploadsConfig{Dir: dir, PublicPath: "/uploads"}, NewZerologWrapper())

	if _, err := store.Store(context.Background(), outbound.StoreAssetParams{
		Content:      []byte("x"),
		OriginalName: "b.png",
	}); err != nil {
		t.Fatal("existing directory must be treated as success:", err)
	}
}

func timestampPrefix(t *testing.T, storedName string) int64 {
	t.Helper()
	prefix, _, ok := strings.Cut(storedName, "-")
	if !ok {
		t.Fatalf("stored name %q has no timestamp prefix", storedName)
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		t.Fatalf("prefix %q is not numeric: %v", prefix, err)
	}
	return millis
}
