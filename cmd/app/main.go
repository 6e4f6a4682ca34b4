package main

import (
	"os"

	"clearance/config"
	"clearance/di"
	"clearance/helper"
	"clearance/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Clearance Planning API
// @version 1.0
// @description Cross-border clearance bookings, their fleets, cargo and jobs.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSONOutput(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
