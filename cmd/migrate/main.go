package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/okan-kantar/portfolio-backend/internal/seed"
	"github.com/okan-kantar/portfolio-backend/pkg/config"
	"github.com/okan-kantar/portfolio-backend/pkg/database"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

func main() {
	seedData := flag.Bool("seed", false, "load CV content after migrating")
	flag.Parse()

	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := runMigrations(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations completed")

	if *seedData {
		if err := seed.Run(db); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seed completed")
	}
}
