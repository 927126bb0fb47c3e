package config

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		DB             *gorm.DB
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		Logger     Logger
	}

	InternalConfig struct {
		App      App
		Schedule Schedule
	}

	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env             string
		Port            string
		Timezone        string
		MaxRequests     int
		ShutdownTimeout int
	}

	Schedule struct {
		// AllowBookingForDeletedPatients keeps the historical behavior where a
		// soft-deleted patient can still be booked, as long as the record ever
		// existed. When false, booking requires an active patient.
		AllowBookingForDeletedPatients bool
	}
)
