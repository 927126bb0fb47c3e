package schedules

import (
	"context"
	"errors"
	"prontuario-service/internal/app/contracts"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/constvars"
	"prontuario-service/internal/pkg/exceptions"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SchedulePostgresRepository struct {
	DB *gorm.DB
}

func NewSchedulePostgresRepository(db *gorm.DB) contracts.ScheduleRepository {
	return &SchedulePostgresRepository{
		DB: db,
	}
}

func (repo *SchedulePostgresRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	result := repo.DB.WithContext(ctx).Create(schedule)
	if result.Error != nil {
		if isDateUniqueViolation(result.Error) {
			return exceptions.ErrScheduleDateTaken(result.Error, constvars.ScheduleActionCreated)
		}
		return exceptions.ErrPostgresDBInsertData(result.Error)
	}
	return nil
}

func (repo *SchedulePostgresRepository) FindAll(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	result := repo.DB.WithContext(ctx).Order("date DESC").Find(&schedules)
	if result.Error != nil {
		return nil, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return schedules, nil
}

func (repo *SchedulePostgresRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	var schedule models.Schedule
	result := repo.DB.WithContext(ctx).Where("id = ?", scheduleID).First(&schedule)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return &schedule, nil
}

func (repo *SchedulePostgresRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var count int64
	result := repo.DB.WithContext(ctx).Model(&models.Schedule{}).Where("date = ?", date).Count(&count)
	if result.Error != nil {
		return 0, exceptions.ErrPostgresDBFindData(result.Error)
	}
	return count, nil
}

func (repo *SchedulePostgresRepository) Update(ctx context.Context, scheduleID string, fields map[string]interface{}) (int64, error) {
	result := repo.DB.WithContext(ctx).Model(&models.Schedule{}).Where("id = ?", scheduleID).Updates(fields)
	if result.Error != nil {
		if isDateUniqueViolation(result.Error) {
			return 0, exceptions.ErrScheduleDateTaken(result.Error, constvars.ScheduleActionUpdated)
		}
		return 0, exceptions.ErrPostgresDBUpdateData(result.Error)
	}
	return result.RowsAffected, nil
}

func (repo *SchedulePostgresRepository) Delete(ctx context.Context, scheduleID string) (int64, error) {
	result := repo.DB.WithContext(ctx).Where("id = ?", scheduleID).Delete(&models.Schedule{})
	if result.Error != nil {
		return 0, exceptions.ErrPostgresDBDeleteData(result.Error)
	}
	return result.RowsAffected, nil
}

// isDateUniqueViolation matches the unique index on the date column, the
// backstop for two requests booking the same day at once.
func isDateUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == constvars.ScheduleDateUniqueConstraint
}
