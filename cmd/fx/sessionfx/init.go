package sessionfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"billbook/internal/repositories"
	"billbook/internal/services"
	mem "billbook/pkg/memcache"
)

var Module = fx.Provide(
	provideRevokedSessions, provideAuthzService)

func provideRevokedSessions() mem.SessionRevoker {
	return mem.NewRevokedSessions()
}

func provideAuthzService(userRepo repositories.UserRepository, sessions mem.SessionRevoker, logger *zap.Logger) services.AuthzServiceInterface {
	return services.NewAuthzService(userRepo, sessions, logger)
}
