package templatefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"billbook/internal/repositories"
	"billbook/internal/services"
	"billbook/internal/storage"
)

var Module = fx.Provide(
	provideTemplateRepo, provideTemplateService)

func provideTemplateRepo(db *gorm.DB) repositories.TemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideTemplateService(templateRepo repositories.TemplateRepository, assets storage.Store, logger *zap.Logger) services.TemplateServiceInterface {
	return services.NewTemplateService(templateRepo, assets, logger)
}
