package patients

import (
	"context"
	"errors"
	"prontuario-service/internal/app/contracts"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type PatientPostgresRepository struct {
	DB *gorm.DB
}

func NewPatientPostgresRepository(db *gorm.DB) contracts.PatientRepository {
	return &PatientPostgresRepository{
		DB: db,
	}
}

func (repo *PatientPostgresRepository) Create(ctx context.Context, patient *models.Patient) error {
	result := repo.DB.WithContext(ctx).Create(patient)
	if result.Error != nil {
		return exceptions.ErrPostgresDBInsertData(result.Error)
	}
	return nil
}

func (repo *PatientPostgresRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	result := repo.DB.WithContext(ctx).Find(&patients)
	if result.Error != nil {
		return nil, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return patients, nil
}

func (repo *PatientPostgresRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	result := repo.DB.WithContext(ctx).Where("id = ?", patientID).First(&patient)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return &patient, nil
}

func (repo *PatientPostgresRepository) FindByIDIncludingDeleted(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	result := repo.DB.WithContext(ctx).Unscoped().Where("id = ?", patientID).First(&patient)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return &patient, nil
}

func (repo *PatientPostgresRepository) FindActiveByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}
	var patients []models.Patient
	result := repo.DB.WithContext(ctx).Where("id IN ?", patientIDs).Find(&patients)
	if result.Error != nil {
		return nil, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return patients, nil
}

func (repo *PatientPostgresRepository) Update(ctx context.Context, patientID string, fields map[string]interface{}) (int64, error) {
	result := repo.DB.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", patientID).Updates(fields)
	if result.Error != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(result.Error)
	}
	return result.RowsAffected, nil
}

func (repo *PatientPostgresRepository) SoftDelete(ctx context.Context, patientID string) (int64, error) {
	result := repo.DB.WithContext(ctx).Where("id = ?", patientID).Delete(&models.Patient{})
	if result.Error != nil {
		return 0, exceptions.ErrPostgresDBDeleteData(result.Error)
	}
	return result.RowsAffected, nil
}
