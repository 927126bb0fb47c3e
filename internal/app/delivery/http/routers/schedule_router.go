package routers

import (
	"prontuario-service/internal/app/services/core/schedules"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *schedules.ScheduleController) {
	router.Post("/", scheduleController.Create)
	router.Get("/", scheduleController.FindAll)
	router.Get("/{schedule_id}", scheduleController.FindOne)
	router.Patch("/{schedule_id}", scheduleController.Update)
	router.Delete("/{schedule_id}", scheduleController.Remove)
}
