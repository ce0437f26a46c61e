package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thegera4/ecommerce-api/auth"
	"github.com/thegera4/ecommerce-api/config"
	"github.com/thegera4/ecommerce-api/controllers"
	"github.com/thegera4/ecommerce-api/database"
	"github.com/thegera4/ecommerce-api/emails"
	"github.com/thegera4/ecommerce-api/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := os.MkdirAll(filepath.Join(cfg.StaticDir, "images"), 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create static images directory")
	}

	tokens := auth.NewTokenService(cfg.Secret, 24*time.Hour)
	mailer := emails.NewMailer(cfg, tokens)
	ctl := controllers.New(db, cfg, tokens, mailer)

	router := gin.Default()
	router.Use(cors.Default())
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", cfg.StaticDir)

	routes.SetupRoutes(router, ctl, db, tokens)

	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
