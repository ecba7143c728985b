// @title TimeFlow API
// @description API for the slot-based time tracker "TimeFlow"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/timeflow/internal/api"
	"github.com/limbo/timeflow/internal/repository"
	"github.com/limbo/timeflow/internal/service"
	"github.com/limbo/timeflow/pkg/cleanup"
	"github.com/limbo/timeflow/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		TrackerService:   service.NewTrackerService(entriesRepo),
		AnalyticsService: service.NewAnalyticsService(entriesRepo),
		BackupService:    service.NewBackupService(entriesRepo),
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
