package contracts

import (
	"context"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/dto/requests"
	"prontuario-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindOne(ctx context.Context, patientID string) (*responses.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Affected, error)
	Remove(ctx context.Context, patientID string) (*responses.Affected, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindAll(ctx context.Context) ([]models.Patient, error)
	// FindByID returns (nil, nil) when no active patient matches.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	// FindByIDIncludingDeleted also matches soft-deleted rows.
	FindByIDIncludingDeleted(ctx context.Context, patientID string) (*models.Patient, error)
	// FindActiveByIDs returns the subset of the given patients that are not
	// soft-deleted.
	FindActiveByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error)
	// Update applies the column map and reports rows affected.
	Update(ctx context.Context, patientID string, fields map[string]interface{}) (int64, error)
	// SoftDelete marks the patient deleted and reports rows affected.
	SoftDelete(ctx context.Context, patientID string) (int64, error)
}
