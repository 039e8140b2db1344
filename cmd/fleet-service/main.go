package main

import (
	"fmt"
	"os"

	"fleet-service/internal/auth"
	"fleet-service/internal/config"
	"fleet-service/internal/db"
	httphandler "fleet-service/internal/http"
	"fleet-service/internal/http/middleware"
	"fleet-service/internal/logger"
	"fleet-service/internal/repository"
	"fleet-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	// Seeded in-memory stores: the whole store without a database, the
	// degraded read source with one.
	memVehicles := repository.NewMemoryVehicleStore(repository.SeedVehicles())
	var (
		vehicleStore     repository.VehicleStore     = memVehicles
		maintenanceStore repository.MaintenanceStore = repository.NewMemoryMaintenanceStore(repository.SeedMaintenanceRecords())
		assignmentStore  repository.AssignmentStore  = repository.NewMemoryAssignmentStore(repository.SeedAssignmentHistory())
	)

	if cfg.DB.DSN != "" {
		database, err := db.New(cfg, appLogger)
		if err != nil {
			appLogger.Warn().Err(err).Msg("database unavailable, running on in-memory store")
		} else {
			vehicleStore = repository.NewFallbackVehicleStore(
				repository.NewVehicleRepository(database), memVehicles, appLogger)
			maintenanceStore = repository.NewMaintenanceRepository(database)
			assignmentStore = repository.NewAssignmentRepository(database)
		}
	}

	fleetService := service.NewFleetService(vehicleStore, appLogger)
	dashboardService := service.NewDashboardService(vehicleStore, maintenanceStore, assignmentStore)
	maintenanceService := service.NewMaintenanceService(vehicleStore, maintenanceStore)
	assignmentService := service.NewAssignmentService(assignmentStore)

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(
		fleetService, dashboardService, maintenanceService, assignmentService, issuer, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
