package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Bossnapi119/pakawinasiayam/configs"
	"github.com/Bossnapi119/pakawinasiayam/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedSiteConfig(); err != nil {
		log.Fatalf("seed site config failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	if err := routes.RegisterRoutes(r, cfg); err != nil {
		log.Fatalf("route setup failed: %v", err)
	}

	log.Printf("backend running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
