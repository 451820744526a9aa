package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"passbook/internal/delivery/http/validator"
	"passbook/internal/domain/entity"
	"passbook/internal/domain/repository"
	mockRepo "passbook/internal/mocks/repository"
	"passbook/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistrationContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("deviceLibraryIdentifier", "passTypeIdentifier", "serialNumber")
	c.SetParamValues("device-1", "pass.com.example.loyalty", "SN-001")

	return c, rec
}

func TestRegistrationHandler_RegisterDevice_Integration(t *testing.T) {
	passRepo := mockRepo.NewMockPassRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(passRepo)
	factory.EXPECT().NewDeviceRepository().Return(deviceRepo)
	factory.EXPECT().NewRegistrationRepository().Return(registrationRepo)

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	pass := &entity.Pass{ID: uuid.New(), PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-001"}
	device := &entity.Device{ID: uuid.New(), DeviceLibraryIdentifier: "device-1", PushToken: "token-1"}

	passRepo.EXPECT().
		FindPassByTypeAndSerial(mock.Anything, "pass.com.example.loyalty", "SN-001").
		Return(pass, nil)
	deviceRepo.EXPECT().
		FindDeviceByLibraryIDAndToken(mock.Anything, "device-1", "token-1").
		Return(device, nil)
	registrationRepo.EXPECT().
		FindRegistration(mock.Anything, "device-1", "pass.com.example.loyalty", "SN-001").
		Return(nil, repository.ErrRegistrationNotFound)
	registrationRepo.EXPECT().
		CreateRegistration(mock.Anything, mock.MatchedBy(func(r *entity.Registration) bool {
			return r.DeviceID == device.ID && r.PassID == pass.ID
		})).
		Return(nil)

	handler := &RegistrationHandler{
		registrationUC: impl.NewRegistrationService(txManager, newTestLogger()),
		logger:         newTestLogger(),
	}

	e := newTestEcho()
	c, rec := newRegistrationContext(e, http.MethodPost, `{"pushToken":"token-1"}`)

	require.NoError(t, handler.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegistrationHandler_RegisterDevice_MissingToken_Integration(t *testing.T) {
	handler := &RegistrationHandler{logger: newTestLogger()}

	e := newTestEcho()
	c, rec := newRegistrationContext(e, http.MethodPost, `{}`)

	require.NoError(t, handler.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationHandler_GetSerialNumbers_Integration(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	registrationRepo.EXPECT().
		FindPassesForDevice(mock.Anything, "device-1", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return([]*entity.Pass{
			{SerialNumber: "SN-001", Modified: timePtr(time.Unix(1700000100, 0))},
		}, nil)

	handler := &RegistrationHandler{
		syncUC: impl.NewSyncService(registrationRepo, newTestLogger()),
		logger: newTestLogger(),
	}

	e := newTestEcho()
	c, rec := newRegistrationContext(e, http.MethodGet, "")

	require.NoError(t, handler.GetSerialNumbers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"serialNumbers":["SN-001"],"lastUpdated":"1700000100"}`, rec.Body.String())
}

func TestRegistrationHandler_GetSerialNumbers_NoContent_Integration(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	registrationRepo.EXPECT().
		FindPassesForDevice(mock.Anything, "device-1", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return(nil, nil)

	handler := &RegistrationHandler{
		syncUC: impl.NewSyncService(registrationRepo, newTestLogger()),
		logger: newTestLogger(),
	}

	e := newTestEcho()
	c, rec := newRegistrationContext(e, http.MethodGet, "")

	require.NoError(t, handler.GetSerialNumbers(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
