package controllersfx

import (
	"go.uber.org/fx"

	"billbook/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTemplateController),
	fx.Provide(controllers.NewBillController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewGSTController),
	fx.Provide(controllers.NewUploadController))
