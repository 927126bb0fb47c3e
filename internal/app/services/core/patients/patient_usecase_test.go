package patients

import (
	"context"
	"fmt"
	"prontuario-service/internal/app/models"
	"prontuario-service/internal/pkg/dto/requests"
	"prontuario-service/internal/pkg/exceptions"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type patientRepositoryStub struct {
	createFn                   func(ctx context.Context, patient *models.Patient) error
	findAllFn                  func(ctx context.Context) ([]models.Patient, error)
	findByIDFn                 func(ctx context.Context, patientID string) (*models.Patient, error)
	findByIDIncludingDeletedFn func(ctx context.Context, patientID string) (*models.Patient, error)
	findActiveByIDsFn          func(ctx context.Context, patientIDs []string) ([]models.Patient, error)
	updateFn                   func(ctx context.Context, patientID string, fields map[string]interface{}) (int64, error)
	softDeleteFn               func(ctx context.Context, patientID string) (int64, error)
}

func (s *patientRepositoryStub) Create(ctx context.Context, patient *models.Patient) error {
	return s.createFn(ctx, patient)
}

func (s *patientRepositoryStub) FindAll(ctx context.Context) ([]models.Patient, error) {
	return s.findAllFn(ctx)
}

func (s *patientRepositoryStub) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return s.findByIDFn(ctx, patientID)
}

func (s *patientRepositoryStub) FindByIDIncludingDeleted(ctx context.Context, patientID string) (*models.Patient, error) {
	return s.findByIDIncludingDeletedFn(ctx, patientID)
}

func (s *patientRepositoryStub) FindActiveByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	return s.findActiveByIDsFn(ctx, patientIDs)
}

func (s *patientRepositoryStub) Update(ctx context.Context, patientID string, fields map[string]interface{}) (int64, error) {
	return s.updateFn(ctx, patientID, fields)
}

func (s *patientRepositoryStub) SoftDelete(ctx context.Context, patientID string) (int64, error) {
	return s.softDeleteFn(ctx, patientID)
}

func TestPatientUsecase_Create(t *testing.T) {
	var created *models.Patient
	repo := &patientRepositoryStub{
		createFn: func(ctx context.Context, patient *models.Patient) error {
			created = patient
			return nil
		},
	}
	usecase := NewPatientUsecase(repo)

	email := "euclides@example.com"
	response, err := usecase.Create(context.Background(), &requests.CreatePatient{
		Name:  "Euclides",
		Email: &email,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "generated identifier should be a UUID")
	assert.Equal(t, created.ID, response.ID)
	assert.Equal(t, "Euclides", response.Name)
	assert.Equal(t, &email, response.Email)
}

func TestPatientUsecase_FindOne(t *testing.T) {
	patientID := uuid.NewString()

	t.Run("Found", func(t *testing.T) {
		repo := &patientRepositoryStub{
			findByIDFn: func(ctx context.Context, id string) (*models.Patient, error) {
				return &models.Patient{ID: id, Name: "Euclides"}, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		response, err := usecase.FindOne(context.Background(), patientID)

		assert.NoError(t, err)
		assert.Equal(t, patientID, response.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &patientRepositoryStub{
			findByIDFn: func(ctx context.Context, id string) (*models.Patient, error) {
				return nil, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		_, err := usecase.FindOne(context.Background(), patientID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, fmt.Sprintf("Patient with ID: '%s' not found", patientID), customErr.ClientMessage)
	})
}

func TestPatientUsecase_Update(t *testing.T) {
	patientID := uuid.NewString()
	name := "Euclides da Cunha"

	t.Run("Affected Row", func(t *testing.T) {
		var appliedFields map[string]interface{}
		repo := &patientRepositoryStub{
			updateFn: func(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
				appliedFields = fields
				return 1, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		response, err := usecase.Update(context.Background(), patientID, &requests.UpdatePatient{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), response.Affected)
		assert.Equal(t, map[string]interface{}{"name": name}, appliedFields)
	})

	t.Run("No Rows Affected", func(t *testing.T) {
		repo := &patientRepositoryStub{
			updateFn: func(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
				return 0, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		_, err := usecase.Update(context.Background(), patientID, &requests.UpdatePatient{Name: &name})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Empty Body Checks Existence Only", func(t *testing.T) {
		repo := &patientRepositoryStub{
			findByIDFn: func(ctx context.Context, id string) (*models.Patient, error) {
				return &models.Patient{ID: id, Name: "Euclides"}, nil
			},
			updateFn: func(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
				t.Fatal("update should not hit the database for an empty body")
				return 0, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		response, err := usecase.Update(context.Background(), patientID, &requests.UpdatePatient{})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), response.Affected)
	})
}

func TestPatientUsecase_Remove(t *testing.T) {
	patientID := uuid.NewString()

	t.Run("Affected Row", func(t *testing.T) {
		repo := &patientRepositoryStub{
			softDeleteFn: func(ctx context.Context, id string) (int64, error) {
				return 1, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		response, err := usecase.Remove(context.Background(), patientID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), response.Affected)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &patientRepositoryStub{
			softDeleteFn: func(ctx context.Context, id string) (int64, error) {
				return 0, nil
			},
		}
		usecase := NewPatientUsecase(repo)

		_, err := usecase.Remove(context.Background(), patientID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
