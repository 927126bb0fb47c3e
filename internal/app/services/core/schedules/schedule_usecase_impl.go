package schedules

import (
	"context"
	"prontuario-service/internal/app/config"
	"prontuario-service/internal/app/contracts"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/constvars"
	"prontuario-service/internal/pkg/dto/requests"
	"prontuario-service/internal/pkg/dto/responses"
	"prontuario-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	PatientRepository  contracts.PatientRepository
	InternalConfig     *config.InternalConfig
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		PatientRepository:  patientRepository,
		InternalConfig:     internalConfig,
	}
}

func (uc *scheduleUsecase) Create(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	var (
		patient *models.Patient
		err     error
	)
	if uc.InternalConfig.Schedule.AllowBookingForDeletedPatients {
		patient, err = uc.PatientRepository.FindByIDIncludingDeleted(ctx, request.Patient)
	} else {
		patient, err = uc.PatientRepository.FindByID(ctx, request.Patient)
	}
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, request.Patient)
	}

	count, err := uc.ScheduleRepository.CountByDate(ctx, request.Date)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, exceptions.ErrScheduleDateTaken(nil, constvars.ScheduleActionCreated)
	}

	schedule := &models.Schedule{
		ID:        uuid.NewString(),
		PatientID: request.Patient,
		Date:      request.Date,
		Notes:     request.Notes,
	}

	err = uc.ScheduleRepository.Create(ctx, schedule)
	if err != nil {
		return nil, err
	}

	return &responses.Schedule{
		ID:      schedule.ID,
		Patient: &schedule.PatientID,
		Date:    schedule.Date,
		Notes:   schedule.Notes,
	}, nil
}

func (uc *scheduleUsecase) FindAll(ctx context.Context) ([]responses.Schedule, error) {
	schedules, err := uc.ScheduleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(schedules))
	seen := make(map[string]bool, len(schedules))
	for i := range schedules {
		if !seen[schedules[i].PatientID] {
			seen[schedules[i].PatientID] = true
			patientIDs = append(patientIDs, schedules[i].PatientID)
		}
	}

	activePatients, err := uc.PatientRepository.FindActiveByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	active := make(map[string]bool, len(activePatients))
	for i := range activePatients {
		active[activePatients[i].ID] = true
	}

	response := make([]responses.Schedule, 0, len(schedules))
	for i := range schedules {
		schedule := schedules[i]
		var patient *string
		if active[schedule.PatientID] {
			patient = &schedule.PatientID
		}
		response = append(response, responses.Schedule{
			ID:      schedule.ID,
			Patient: patient,
			Date:    schedule.Date,
			Notes:   schedule.Notes,
		})
	}
	return response, nil
}

func (uc *scheduleUsecase) FindOne(ctx context.Context, scheduleID string) (*responses.ScheduleDetail, error) {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil, scheduleID)
	}

	// Soft-deleted patients resolve to null, the schedule itself stays intact.
	patient, err := uc.PatientRepository.FindByID(ctx, schedule.PatientID)
	if err != nil {
		return nil, err
	}

	detail := &responses.ScheduleDetail{
		ID:    schedule.ID,
		Date:  schedule.Date,
		Notes: schedule.Notes,
	}
	if patient != nil {
		detail.Patient = &responses.Patient{
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
	return detail, nil
}

func (uc *scheduleUsecase) Update(ctx context.Context, scheduleID string, request *requests.UpdateSchedule) (*responses.Affected, error) {
	if request.Date != nil {
		current, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrScheduleNotFound(nil, scheduleID)
		}
		if current.Date != *request.Date {
			count, err := uc.ScheduleRepository.CountByDate(ctx, *request.Date)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, exceptions.ErrScheduleDateTaken(nil, constvars.ScheduleActionUpdated)
			}
		}
	}

	fields := request.Fields()
	if len(fields) == 0 {
		schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		if schedule == nil {
			return nil, exceptions.ErrScheduleNotFound(nil, scheduleID)
		}
		return &responses.Affected{Affected: 1}, nil
	}

	affected, err := uc.ScheduleRepository.Update(ctx, scheduleID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, exceptions.ErrScheduleNotFound(nil, scheduleID)
	}
	return &responses.Affected{Affected: affected}, nil
}

func (uc *scheduleUsecase) Remove(ctx context.Context, scheduleID string) (*responses.Affected, error) {
	affected, err := uc.ScheduleRepository.Delete(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, exceptions.ErrScheduleNotFound(nil, scheduleID)
	}
	return &responses.Affected{Affected: affected}, nil
}
