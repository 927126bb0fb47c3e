package routers

import (
	"prontuario-service/internal/app/config"
	"prontuario-service/internal/app/delivery/http/middlewares"
	"prontuario-service/internal/app/services/core/patients"
	"prontuario-service/internal/app/services/core/schedules"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	scheduleController *schedules.ScheduleController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, patientController)
	})

	router.Route("/schedules", func(r chi.Router) {
		attachScheduleRoutes(r, scheduleController)
	})
}
