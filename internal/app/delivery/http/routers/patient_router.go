package routers

import (
	"prontuario-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.Create)
	router.Get("/", patientController.FindAll)
	router.Get("/{patient_id}", patientController.FindOne)
	router.Patch("/{patient_id}", patientController.Update)
	router.Delete("/{patient_id}", patientController.Remove)
}
