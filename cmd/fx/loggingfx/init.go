package loggingfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"billbook/pkg/logging"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() (*zap.Logger, error) {
	return logging.Init(logging.ConfigFromEnv())
}
