package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	mockRepo "passbook/internal/mocks/repository"
	"passbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPassthroughTxManager wires a transaction manager mock that runs the
// callback against the given factory, so repository expectations fire as if
// inside a real transaction.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

func TestRegistrationService_RegisterDevice_NewDeviceAndRegistration(t *testing.T) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(mockPassRepo)
	factory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
	factory.EXPECT().NewRegistrationRepository().Return(mockRegRepo)

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()
	pass := &entity.Pass{ID: uuid.New(), PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1"}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	mockDeviceRepo.EXPECT().
		FindDeviceByLibraryIDAndToken(ctx, "device-abc", "token-1").
		Return(nil, repository.ErrDeviceNotFound)

	mockDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	mockRegRepo.EXPECT().
		FindRegistration(ctx, "device-abc", "pass.com.example.loyalty", "SN-1").
		Return(nil, repository.ErrRegistrationNotFound)

	mockRegRepo.EXPECT().
		CreateRegistration(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(nil)

	result, err := service.RegisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1", "token-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationCreated, result)
}

func TestRegistrationService_RegisterDevice_AlreadyRegistered(t *testing.T) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(mockPassRepo)
	factory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
	factory.EXPECT().NewRegistrationRepository().Return(mockRegRepo)

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()
	pass := &entity.Pass{ID: uuid.New(), PassTypeIdentifier: "pass.com.example.loyalty", SerialNumber: "SN-1"}
	device := &entity.Device{ID: uuid.New(), DeviceLibraryIdentifier: "device-abc", PushToken: "token-1"}
	existing := &entity.Registration{ID: uuid.New(), DeviceID: device.ID, PassID: pass.ID}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	mockDeviceRepo.EXPECT().
		FindDeviceByLibraryIDAndToken(ctx, "device-abc", "token-1").
		Return(device, nil)

	mockRegRepo.EXPECT().
		FindRegistration(ctx, "device-abc", "pass.com.example.loyalty", "SN-1").
		Return(existing, nil)

	result, err := service.RegisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1", "token-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationAlreadyExists, result)
}

func TestRegistrationService_RegisterDevice_DuplicateOnCreate(t *testing.T) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(mockPassRepo)
	factory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
	factory.EXPECT().NewRegistrationRepository().Return(mockRegRepo)

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()
	pass := &entity.Pass{ID: uuid.New()}
	device := &entity.Device{ID: uuid.New()}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	mockDeviceRepo.EXPECT().
		FindDeviceByLibraryIDAndToken(ctx, "device-abc", "token-1").
		Return(device, nil)

	mockRegRepo.EXPECT().
		FindRegistration(ctx, "device-abc", "pass.com.example.loyalty", "SN-1").
		Return(nil, repository.ErrRegistrationNotFound)

	// A concurrent attempt won the race between lookup and insert.
	mockRegRepo.EXPECT().
		CreateRegistration(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(repository.ErrDuplicateRegistration)

	result, err := service.RegisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1", "token-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationAlreadyExists, result)
}

func TestRegistrationService_RegisterDevice_PassNotFound(t *testing.T) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(mockPassRepo)
	factory.EXPECT().NewDeviceRepository().Return(mockRepo.NewMockDeviceRepository(t))
	factory.EXPECT().NewRegistrationRepository().Return(mockRepo.NewMockRegistrationRepository(t))

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "missing").
		Return(nil, repository.ErrPassNotFound)

	_, err := service.RegisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "missing", "token-1")
	assert.ErrorIs(t, err, domainerrors.ErrPassNotFound)
}

func TestRegistrationService_RegisterDevice_DeviceCreationRace(t *testing.T) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(mockPassRepo)
	factory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
	factory.EXPECT().NewRegistrationRepository().Return(mockRegRepo)

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()
	pass := &entity.Pass{ID: uuid.New()}
	winner := &entity.Device{ID: uuid.New(), DeviceLibraryIdentifier: "device-abc", PushToken: "token-1"}

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(pass, nil)

	mockDeviceRepo.EXPECT().
		FindDeviceByLibraryIDAndToken(ctx, "device-abc", "token-1").
		Return(nil, repository.ErrDeviceNotFound).
		Once()

	mockDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	// Re-read resolves the race against the row the winner created.
	mockDeviceRepo.EXPECT().
		FindDeviceByLibraryIDAndToken(ctx, "device-abc", "token-1").
		Return(winner, nil).
		Once()

	mockRegRepo.EXPECT().
		FindRegistration(ctx, "device-abc", "pass.com.example.loyalty", "SN-1").
		Return(nil, repository.ErrRegistrationNotFound)

	mockRegRepo.EXPECT().
		CreateRegistration(ctx, mock.MatchedBy(func(registration *entity.Registration) bool {
			return registration.DeviceID == winner.ID && registration.PassID == pass.ID
		})).
		Return(nil)

	result, err := service.RegisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1", "token-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegistrationCreated, result)
}

func TestRegistrationService_RegisterDevice_FindError(t *testing.T) {
	mockPassRepo := mockRepo.NewMockPassRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPassRepository().Return(mockPassRepo)
	factory.EXPECT().NewDeviceRepository().Return(mockRepo.NewMockDeviceRepository(t))
	factory.EXPECT().NewRegistrationRepository().Return(mockRepo.NewMockRegistrationRepository(t))

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()

	mockPassRepo.EXPECT().
		FindPassByTypeAndSerial(ctx, "pass.com.example.loyalty", "SN-1").
		Return(nil, errors.New("db error"))

	_, err := service.RegisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1", "token-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrPassNotFound)
}

func TestRegistrationService_UnregisterDevice_Success(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRegistrationRepository().Return(mockRegRepo)

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()
	registration := &entity.Registration{ID: uuid.New(), DeviceID: uuid.New(), PassID: uuid.New()}

	mockRegRepo.EXPECT().
		FindRegistration(ctx, "device-abc", "pass.com.example.loyalty", "SN-1").
		Return(registration, nil)

	mockRegRepo.EXPECT().
		DeleteRegistration(ctx, registration.ID).
		Return(nil)

	err := service.UnregisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1")
	require.NoError(t, err)
}

func TestRegistrationService_UnregisterDevice_NotFound(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRegistrationRepository().Return(mockRegRepo)

	service := NewRegistrationService(newPassthroughTxManager(t, factory), newTestLogger())

	ctx := context.Background()

	mockRegRepo.EXPECT().
		FindRegistration(ctx, "device-abc", "pass.com.example.loyalty", "SN-1").
		Return(nil, repository.ErrRegistrationNotFound)

	err := service.UnregisterDevice(ctx, "device-abc", "pass.com.example.loyalty", "SN-1")
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}
