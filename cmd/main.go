package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"sftpconfig"
	"sftpconfig/internal/api/handler/endpoints"
	"sftpconfig/internal/api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	sftpconfig.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	if sftpconfig.GetConfig().Mode == "dev" {
		if err := sftpconfig.DB.AutoMigrate(
			&models.User{},
			&models.SftpConnection{},
		); err != nil {
			sftpconfig.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		sftpconfig.Logger.Info().Msg("Database migrated successfully")
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(sftpconfig.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	initAPI(router)

	sftpconfig.Logger.Debug().Msgf("Starting connector config API on port %s", sftpconfig.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		sftpconfig.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}

func initAPI(router *graceful.Graceful) {
	endpoints.AuthHandler(router)
	endpoints.SchemaHandler(router)
	endpoints.ConnectionHandler(router)
}
