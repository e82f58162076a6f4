package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"billbook/cmd/fx/accountfx"
	"billbook/cmd/fx/adminfx"
	"billbook/cmd/fx/billfx"
	"billbook/cmd/fx/controllersfx"
	"billbook/cmd/fx/dbfx"
	"billbook/cmd/fx/gstfx"
	"billbook/cmd/fx/loggingfx"
	"billbook/cmd/fx/sessionfx"
	"billbook/cmd/fx/storagefx"
	"billbook/cmd/fx/templatefx"
	"billbook/internal/api/controllers"
	"billbook/internal/services"
	"billbook/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		loggingfx.Module,
		dbfx.Module,
		storagefx.Module,
		sessionfx.Module,
		accountfx.Module,
		templatefx.Module,
		billfx.Module,
		adminfx.Module,
		gstfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authzService services.AuthzServiceInterface,
	accountController *controllers.AccountController,
	templateController *controllers.TemplateController,
	billController *controllers.BillController,
	adminController *controllers.AdminController,
	gstController *controllers.GSTController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.MaxMultipartMemory = 16 << 20 // uploads capped at 16MB
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authzService,
		accountController, templateController, billController,
		adminController, gstController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authzService services.AuthzServiceInterface,
	accountController *controllers.AccountController,
	templateController *controllers.TemplateController,
	billController *controllers.BillController,
	adminController *controllers.AdminController,
	gstController *controllers.GSTController,
	uploadController *controllers.UploadController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", middleware.AuthMiddleware(authzService), accountController.Logout)

	r.POST("/gst/verify", gstController.VerifyGST)

	protected := r.Group("/", middleware.AuthMiddleware(authzService))
	protected.GET("/dashboard", billController.Dashboard)
	protected.GET("/template", templateController.GetTemplate)
	protected.POST("/template", templateController.SetTemplate)
	protected.POST("/bills", billController.CreateBill)
	protected.GET("/bills", billController.History)
	protected.GET("/bills/:id", billController.GetBill)
	protected.GET("/uploads/:filename", uploadController.ServeUpload)

	admin := r.Group("/admin", middleware.AuthMiddleware(authzService), middleware.AdminOnly())
	admin.GET("/users", adminController.ListUsers)
	admin.POST("/users/:id/approve", adminController.ApproveUser)
	admin.POST("/users/:id/active", adminController.SetUserActive)
	admin.DELETE("/users/:id", adminController.DeleteUser)
}
