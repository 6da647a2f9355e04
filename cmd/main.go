package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/db"
	"github.com/lifeline-lk/blood-bank-service/internal/handlers"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/router"
	"github.com/lifeline-lk/blood-bank-service/internal/router/config"
	"github.com/lifeline-lk/blood-bank-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer dbPool.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	defer logger.Sync()

	inventoryRepo := repository.NewPostgresInventoryRepository(dbPool)
	emergencyRepo := repository.NewPostgresEmergencyRepository(dbPool)
	donorRepo := repository.NewPostgresDonorRepository(dbPool)
	hospitalRepo := repository.NewPostgresHospitalRepository(dbPool)
	adminRepo := repository.NewPostgresHospitalAdminRepository(dbPool)
	managerRepo := repository.NewPostgresSystemManagerRepository(dbPool)
	appointmentRepo := repository.NewPostgresAppointmentRepository(dbPool)
	feedbackRepo := repository.NewPostgresFeedbackRepository(dbPool)

	inventoryService := services.NewInventoryService(inventoryRepo, dbPool)
	emergencyService := services.NewEmergencyService(emergencyRepo, dbPool)
	donorService := services.NewDonorService(donorRepo, dbPool)
	hospitalService := services.NewHospitalService(hospitalRepo, dbPool)
	adminService := services.NewHospitalAdminService(adminRepo, dbPool)
	managerService := services.NewSystemManagerService(managerRepo, dbPool)
	appointmentService := services.NewAppointmentService(appointmentRepo, dbPool)
	feedbackService := services.NewFeedbackService(feedbackRepo, dbPool)
	authService := services.NewAuthService(donorRepo, hospitalRepo, adminRepo, managerRepo, cfg.JWTSecret, logger)
	sweeperService := services.NewSweeperService(inventoryRepo, emergencyRepo, logger, cfg.SweepInterval)

	inventoryHandler := handlers.NewInventoryHandler(inventoryService, logger, 5*time.Second, dbPool)
	emergencyHandler := handlers.NewEmergencyHandler(emergencyService, logger, 5*time.Second, dbPool)
	donorHandler := handlers.NewDonorHandler(donorService, logger, 5*time.Second, dbPool)
	hospitalHandler := handlers.NewHospitalHandler(hospitalService, logger, 5*time.Second, dbPool)
	adminHandler := handlers.NewHospitalAdminHandler(adminService, logger, 5*time.Second, dbPool)
	managerHandler := handlers.NewSystemManagerHandler(managerService, logger, 5*time.Second, dbPool)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger, 5*time.Second, dbPool)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger, 5*time.Second, dbPool)
	authHandler := handlers.NewAuthHandler(authService, logger, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeperService.Run(ctx)

	routes := router.InitRoutes(
		inventoryHandler,
		emergencyHandler,
		donorHandler,
		hospitalHandler,
		adminHandler,
		managerHandler,
		appointmentHandler,
		feedbackHandler,
		authHandler,
	)

	logger.Info("server is listening", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
