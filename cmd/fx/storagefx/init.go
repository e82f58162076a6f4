package storagefx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"billbook/internal/storage"
)

var Module = fx.Provide(
	provideAssetStore)

func provideAssetStore(logger *zap.Logger) (storage.Store, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return storage.NewLocalStore(dir, logger)
}
