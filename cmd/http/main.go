package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"prontuario-service/internal/app/config"
	"prontuario-service/internal/app/delivery/http/middlewares"
	"prontuario-service/internal/app/delivery/http/routers"
	"prontuario-service/internal/app/drivers/database"
	"prontuario-service/internal/app/drivers/logger"
	"prontuario-service/internal/app/services/core/patients"
	"prontuario-service/internal/app/services/core/schedules"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		DB:             postgresDB,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.DB)
	patientUsecase := patients.NewPatientUsecase(patientRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Schedule
	scheduleRepository := schedules.NewSchedulePostgresRepository(bootstrap.DB)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleRepository, patientRepository, bootstrap.InternalConfig)
	scheduleController := schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController, scheduleController)
}
