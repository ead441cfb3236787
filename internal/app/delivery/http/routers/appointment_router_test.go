package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/delivery/http/controllers"
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/slots"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FetchStore(ctx context.Context) (slots.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(slots.Store), args.Error(1)
}

func (m *MockAppointmentUsecase) SetSlot(ctx context.Context, request *requests.SlotMutation) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) ReplaceStore(ctx context.Context, request *requests.BulkOverwrite) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func TestAppointmentRouter(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:          100,
			MutationRequests:     50,
			MutationBlockSeconds: 1,
		},
	}

	mockUsecase := new(MockAppointmentUsecase)
	appointmentController := controllers.NewAppointmentController(logger, mockUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, appointmentController)

	t.Run("GET returns the raw store mapping", func(t *testing.T) {
		store := slots.Store{"2026-09-01": {"09:00": "Ana"}}
		mockUsecase.On("FetchStore", mock.Anything).Return(store, nil).Once()

		req := httptest.NewRequest("GET", "/appointments", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Ana", body["2026-09-01"]["09:00"])

		mockUsecase.AssertExpectations(t)
	})

	t.Run("every response carries no-store headers", func(t *testing.T) {
		mockUsecase.On("FetchStore", mock.Anything).Return(slots.Store{}, nil).Once()

		req := httptest.NewRequest("GET", "/appointments", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, "no-store, no-cache, must-revalidate", rr.Header().Get("Cache-Control"))
		assert.Equal(t, "no-cache", rr.Header().Get("Pragma"))
		assert.Equal(t, "0", rr.Header().Get("Expires"))
	})

	t.Run("PATCH acknowledges an accepted mutation", func(t *testing.T) {
		mockUsecase.On("SetSlot", mock.Anything, mock.AnythingOfType("*requests.SlotMutation")).Return(nil).Once()

		body, _ := json.Marshal(requests.SlotMutation{
			Op: "set", Day: "2026-09-01", Time: "09:00", Name: "Ana",
		})
		req := httptest.NewRequest("PATCH", "/appointments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

		mockUsecase.AssertExpectations(t)
	})

	t.Run("PATCH with invalid JSON is a 400", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/appointments", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "SetSlot")
	})

	t.Run("PATCH surfaces usecase rejections with their status", func(t *testing.T) {
		mockUsecase.On("SetSlot", mock.Anything, mock.AnythingOfType("*requests.SlotMutation")).
			Return(exceptions.ErrTimeOutsideSchedule(nil)).Once()

		body, _ := json.Marshal(requests.SlotMutation{
			Op: "set", Day: "2026-09-01", Time: "23:00", Name: "Ana",
		})
		req := httptest.NewRequest("PATCH", "/appointments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("POST acknowledges an accepted overwrite", func(t *testing.T) {
		mockUsecase.On("ReplaceStore", mock.Anything, mock.AnythingOfType("*requests.BulkOverwrite")).Return(nil).Once()

		body, _ := json.Marshal(requests.BulkOverwrite{
			ConfirmFlag: true,
			Store:       map[string]map[string]string{"2026-09-01": {"09:00": "Ana"}},
		})
		req := httptest.NewRequest("POST", "/appointments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

		mockUsecase.AssertExpectations(t)
	})

	t.Run("POST without confirmation is rejected", func(t *testing.T) {
		mockUsecase.On("ReplaceStore", mock.Anything, mock.AnythingOfType("*requests.BulkOverwrite")).
			Return(exceptions.ErrOverwriteNotConfirmed(nil)).Once()

		body, _ := json.Marshal(requests.BulkOverwrite{
			Store: map[string]map[string]string{},
		})
		req := httptest.NewRequest("POST", "/appointments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errBody struct {
			StatusCode int    `json:"status_code"`
			Message    string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
		assert.Equal(t, http.StatusBadRequest, errBody.StatusCode)
		assert.NotEmpty(t, errBody.Message)
	})
}
