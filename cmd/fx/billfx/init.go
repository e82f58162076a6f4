package billfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"billbook/internal/repositories"
	"billbook/internal/services"
)

var Module = fx.Provide(
	provideBillRepo, provideBillService)

func provideBillRepo(db *gorm.DB) repositories.BillRepository {
	return repositories.NewBillRepository(db)
}

func provideBillService(billRepo repositories.BillRepository, templateRepo repositories.TemplateRepository, logger *zap.Logger) services.BillServiceInterface {
	return services.NewBillService(billRepo, templateRepo, logger)
}
