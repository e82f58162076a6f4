package accountfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"billbook/internal/repositories"
	"billbook/internal/services"
	mem "billbook/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, sessions mem.SessionRevoker, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, sessions, logger)
}
