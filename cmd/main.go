package main

import (
	"github.com/sirupsen/logrus"

	"github.com/Elziee/BIOOO-comp/config"
	"github.com/Elziee/BIOOO-comp/routes"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}

	r := routes.SetupRouter(cfg, db, logger)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
