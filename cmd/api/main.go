package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	dbpkg "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/db"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/middleware"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/routes"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/pkg/logger"
)

func main() {

	cfg := config.Load()

	appLog := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Pretty: !cfg.IsProduction(),
	})
	log.Logger = appLog

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(appLog))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Static("/uploads", cfg.UploadsDir)
	r.Static("/gallery", cfg.GalleryDir)

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
