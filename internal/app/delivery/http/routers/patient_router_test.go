package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"prontuario-service/internal/app/contracts"
	"prontuario-service/internal/app/services/core/patients"
	"prontuario-service/internal/pkg/dto/requests"
	"prontuario-service/internal/pkg/dto/responses"
	"prontuario-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) FindOne(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Affected, error) {
	args := m.Called(ctx, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Affected), args.Error(1)
}

func (m *MockPatientUsecase) Remove(ctx context.Context, patientID string) (*responses.Affected, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Affected), args.Error(1)
}

func newPatientTestRouter(usecase contracts.PatientUsecase) *chi.Mux {
	controller := patients.NewPatientController(zap.NewNop(), usecase)
	router := chi.NewRouter()
	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, controller)
	})
	return router
}

func TestPatientRouter_Create(t *testing.T) {
	t.Run("Valid Body", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		mockUsecase.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreatePatient")).Return(&responses.Patient{
			ID:   "0b96325b-67a8-4857-bfb9-d23bdbdefef3",
			Name: "Euclides",
		}, nil)

		router := newPatientTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"name": "Euclides"})
		req := httptest.NewRequest("POST", "/patients", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created")

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, "Euclides", body["name"])
		assert.NotEmpty(t, body["id"])
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newPatientTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"name": "Euclides", "email": "not-an-email"})
		req := httptest.NewRequest("POST", "/patients", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid email")

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, "email must be an email", body["message"])
		mockUsecase.AssertNotCalled(t, "Create")
	})

	t.Run("Missing Name", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newPatientTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"email": "euclides@example.com"})
		req := httptest.NewRequest("POST", "/patients", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, "name should not be empty", body["message"])
		mockUsecase.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid Sex Value", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newPatientTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"name": "Euclides", "sex": "X"})
		req := httptest.NewRequest("POST", "/patients", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, "sex must be one of the following values: M, F, O", body["message"])
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newPatientTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/patients", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "Create")
	})
}

func TestPatientRouter_FindOne(t *testing.T) {
	patientID := "0b96325b-67a8-4857-bfb9-d23bdbdefef3"

	t.Run("Not Found", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		mockUsecase.On("FindOne", mock.Anything, patientID).Return(nil, exceptions.ErrPatientNotFound(nil, patientID))

		router := newPatientTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/patients/"+patientID, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "should return 404 Not Found")

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Patient with ID: '%s' not found", patientID), body["message"])
	})

	t.Run("Invalid UUID Param", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newPatientTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/patients/not-a-uuid", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "FindOne")
	})

	t.Run("Found", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		mockUsecase.On("FindOne", mock.Anything, patientID).Return(&responses.Patient{
			ID:   patientID,
			Name: "Euclides",
		}, nil)

		router := newPatientTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/patients/"+patientID, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, patientID, body["id"])
		mockUsecase.AssertExpectations(t)
	})
}

func TestPatientRouter_FindAll(t *testing.T) {
	mockUsecase := new(MockPatientUsecase)
	mockUsecase.On("FindAll", mock.Anything).Return([]responses.Patient{
		{ID: "0b96325b-67a8-4857-bfb9-d23bdbdefef3", Name: "Euclides"},
		{ID: "01dca46f-cad3-43f3-9d1c-c40d639d0800", Name: "Tereza"},
	}, nil)

	router := newPatientTestRouter(mockUsecase)

	req := httptest.NewRequest("GET", "/patients", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body []map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Len(t, body, 2)
	mockUsecase.AssertExpectations(t)
}

func TestPatientRouter_Update(t *testing.T) {
	patientID := "0b96325b-67a8-4857-bfb9-d23bdbdefef3"

	t.Run("Affected Row", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		mockUsecase.On("Update", mock.Anything, patientID, mock.AnythingOfType("*requests.UpdatePatient")).Return(&responses.Affected{Affected: 1}, nil)

		router := newPatientTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"name": "Euclides da Cunha"})
		req := httptest.NewRequest("PATCH", "/patients/"+patientID, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, float64(1), body["affected"])
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		mockUsecase.On("Update", mock.Anything, patientID, mock.AnythingOfType("*requests.UpdatePatient")).Return(nil, exceptions.ErrPatientNotFound(nil, patientID))

		router := newPatientTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]interface{}{"name": "Euclides da Cunha"})
		req := httptest.NewRequest("PATCH", "/patients/"+patientID, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPatientRouter_Remove(t *testing.T) {
	patientID := "0b96325b-67a8-4857-bfb9-d23bdbdefef3"

	mockUsecase := new(MockPatientUsecase)
	mockUsecase.On("Remove", mock.Anything, patientID).Return(&responses.Affected{Affected: 1}, nil)

	router := newPatientTestRouter(mockUsecase)

	req := httptest.NewRequest("DELETE", "/patients/"+patientID, nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), body["affected"])
	mockUsecase.AssertExpectations(t)
}
