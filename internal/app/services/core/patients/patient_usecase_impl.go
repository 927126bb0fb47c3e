package patients

import (
	"context"
	"prontuario-service/internal/app/contracts"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/dto/requests"
	"prontuario-service/internal/pkg/dto/responses"
	"prontuario-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
}

func NewPatientUsecase(patientRepository contracts.PatientRepository) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	patient := &models.Patient{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		Birthdate: request.Birthdate,
		Sex:       request.Sex,
		Height:    request.Height,
		Weight:    request.Weight,
	}

	err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, *buildPatientResponse(&patients[i]))
	}
	return response, nil
}

func (uc *patientUsecase) FindOne(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Affected, error) {
	fields := request.Fields()
	if len(fields) == 0 {
		patient, err := uc.PatientRepository.FindByID(ctx, patientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrPatientNotFound(nil, patientID)
		}
		return &responses.Affected{Affected: 1}, nil
	}

	affected, err := uc.PatientRepository.Update(ctx, patientID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return &responses.Affected{Affected: affected}, nil
}

func (uc *patientUsecase) Remove(ctx context.Context, patientID string) (*responses.Affected, error) {
	affected, err := uc.PatientRepository.SoftDelete(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return &responses.Affected{Affected: affected}, nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:        patient.ID,
		Name:      patient.Name,
		Phone:     patient.Phone,
		Email:     patient.Email,
		Birthdate: patient.Birthdate,
		Sex:       patient.Sex,
		Height:    patient.Height,
		Weight:    patient.Weight,
	}
}
