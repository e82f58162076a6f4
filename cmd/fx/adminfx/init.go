package adminfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"billbook/internal/repositories"
	"billbook/internal/services"
)

var Module = fx.Provide(
	provideAdminService)

func provideAdminService(userRepo repositories.UserRepository, logger *zap.Logger) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, logger)
}
