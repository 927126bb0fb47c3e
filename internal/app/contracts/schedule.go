package contracts

import (
	"context"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/dto/requests"
	"prontuario-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	Create(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error)
	FindAll(ctx context.Context) ([]responses.Schedule, error)
	FindOne(ctx context.Context, scheduleID string) (*responses.ScheduleDetail, error)
	Update(ctx context.Context, scheduleID string, request *requests.UpdateSchedule) (*responses.Affected, error)
	Remove(ctx context.Context, scheduleID string) (*responses.Affected, error)
}

type ScheduleRepository interface {
	// Create inserts the schedule. A date collision that slips past the
	// availability check surfaces as a conflict error from the unique index.
	Create(ctx context.Context, schedule *models.Schedule) error
	// FindAll returns every schedule ordered by date descending.
	FindAll(ctx context.Context) ([]models.Schedule, error)
	// FindByID returns (nil, nil) when no schedule matches.
	FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	// CountByDate reports how many schedules exist for the exact date string.
	CountByDate(ctx context.Context, date string) (int64, error)
	Update(ctx context.Context, scheduleID string, fields map[string]interface{}) (int64, error)
	// Delete removes the row permanently and reports rows affected.
	Delete(ctx context.Context, scheduleID string) (int64, error)
}
