package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/uubo/memberhub/internal/config"
	"github.com/uubo/memberhub/internal/server/http/handlers"
	"github.com/uubo/memberhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MembershipFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	smaregiHandler := handlers.NewSmaregiHandler(facade, facade, logger)
	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")

	smaregi := api.Group("/smaregi")
	// The webhook is intentionally outside the token gate: the POS batch
	// jobs call it without credentials.
	smaregi.POST("/webhook/point-update", smaregiHandler.PointUpdateWebhook)

	smaregiGated := smaregi.Group("")
	smaregiGated.Use(middleware.SmaregiTokenGate(cfg.SmaregiAccessToken))
	smaregiGated.POST("/customers/list", smaregiHandler.List)
	smaregiGated.POST("/customers/detail", smaregiHandler.Detail)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/profile", profileHandler.Show)
	userAuth.PATCH("/profile", profileHandler.Update)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.AdminRequired(facade, cfg.AdminEmails))
	admin.GET("/settings", adminHandler.Settings)
	admin.POST("/settings", adminHandler.UpdateSettings)
	admin.GET("/pages", adminHandler.Pages)
	admin.GET("/pages/:pageId", adminHandler.Page)
	admin.POST("/pages/:pageId", adminHandler.UpdatePage)
	admin.POST("/upload-image", adminHandler.UploadImage)

	return engine
}
