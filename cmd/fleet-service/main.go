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

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	truckRepo := repository.NewTruckRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	tripRepo := repository.NewTripRepository(database)
	cargoRepo := repository.NewCargoRepository(database)
	fuelRepo := repository.NewFuelRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	inventoryRepo := repository.NewInventoryRepository(database)
	tankRepo := repository.NewTankRepository(database)

	truckService := service.NewTruckService(truckRepo)
	driverService := service.NewDriverService(driverRepo, truckRepo)
	tripService := service.NewTripService(tripRepo, truckRepo, driverRepo, cargoRepo)
	fuelService := service.NewFuelService(fuelRepo, truckRepo, tankRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, truckRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	reportService := service.NewReportService(truckRepo, driverRepo, tripRepo, fuelRepo, maintenanceRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(
		truckService,
		driverService,
		tripService,
		fuelService,
		maintenanceService,
		inventoryService,
		reportService,
		appLogger,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
