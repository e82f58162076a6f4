package gstfx

import (
	"go.uber.org/fx"

	"billbook/internal/services"
)

var Module = fx.Provide(
	provideGSTService)

func provideGSTService() services.GSTServiceInterface {
	return services.NewGSTService()
}
