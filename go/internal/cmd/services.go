package main

import (
	"database/sql"

	"github.com/courtside/teams/go/internal/teams"
	teamsdb "github.com/courtside/teams/go/internal/teams/db"
	"github.com/jonboulle/clockwork"
)

type Services struct {
	Teams *teams.Service
}

func setupServices(database *sql.DB, config *Config) *Services {
	// Database layer → Repository layer → App layer → Service layer
	clock := clockwork.NewRealClock()

	queries := teamsdb.New(database)
	teamsRepo := teams.NewRepository(queries)
	teamsApp := teams.NewApp(teamsRepo, clock)
	health := teams.NewHealthChecker(database, config.Service.Name, clock)
	teamsService := teams.NewService(teamsApp, health, teams.ServiceConfig{
		Name:            config.Service.Name,
		DefaultPageSize: config.Pagination.DefaultSize,
		MaxPageSize:     config.Pagination.MaxSize,
	})

	return &Services{
		Teams: teamsService,
	}
}
