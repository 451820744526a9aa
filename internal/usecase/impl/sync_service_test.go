package impl

import (
	"context"
	"testing"
	"time"

	"passbook/internal/domain/entity"
	mockRepo "passbook/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncService_RegistrationsForDevice_FullSync(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSyncService(mockRegRepo, newTestLogger())

	ctx := context.Background()
	older := time.Unix(1700000000, 0).UTC()
	newer := time.Unix(1700000100, 500000000).UTC()
	passes := []*entity.Pass{
		{SerialNumber: "SN-1", Modified: &older},
		{SerialNumber: "SN-2", Modified: &newer},
	}

	mockRegRepo.EXPECT().
		FindPassesForDevice(ctx, "device-abc", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return(passes, nil)

	payload, err := service.RegistrationsForDevice(ctx, "device-abc", "pass.com.example.loyalty", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-1", "SN-2"}, payload.SerialNumbers)
	assert.Equal(t, "1700000100.5", payload.LastUpdated)
}

func TestSyncService_RegistrationsForDevice_DeltaSync(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSyncService(mockRegRepo, newTestLogger())

	ctx := context.Background()
	modified := time.Unix(1700000200, 0).UTC()
	passes := []*entity.Pass{{SerialNumber: "SN-2", Modified: &modified}}

	mockRegRepo.EXPECT().
		FindPassesForDevice(ctx, "device-abc", "pass.com.example.loyalty", mock.MatchedBy(func(watermark *time.Time) bool {
			return watermark != nil && watermark.Equal(time.Unix(1700000100, 500000000))
		})).
		Return(passes, nil)

	payload, err := service.RegistrationsForDevice(ctx, "device-abc", "pass.com.example.loyalty", "1700000100.5")
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-2"}, payload.SerialNumbers)
	assert.Equal(t, "1700000200", payload.LastUpdated)
}

func TestSyncService_RegistrationsForDevice_NoMatches(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSyncService(mockRegRepo, newTestLogger())

	ctx := context.Background()

	mockRegRepo.EXPECT().
		FindPassesForDevice(ctx, "device-abc", "pass.com.example.loyalty", mock.Anything).
		Return([]*entity.Pass{}, nil)

	payload, err := service.RegistrationsForDevice(ctx, "device-abc", "pass.com.example.loyalty", "1700000100.5")
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrNoMatchingPasses)
}

func TestSyncService_RegistrationsForDevice_MalformedWatermark(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSyncService(mockRegRepo, newTestLogger())

	ctx := context.Background()
	modified := time.Unix(1700000000, 0).UTC()
	passes := []*entity.Pass{{SerialNumber: "SN-1", Modified: &modified}}

	// A watermark the server cannot parse falls back to a full sync.
	mockRegRepo.EXPECT().
		FindPassesForDevice(ctx, "device-abc", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return(passes, nil)

	payload, err := service.RegistrationsForDevice(ctx, "device-abc", "pass.com.example.loyalty", "not-a-timestamp")
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-1"}, payload.SerialNumbers)
}

func TestSyncService_RegistrationsForDevice_NeverStampedPasses(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSyncService(mockRegRepo, newTestLogger())

	ctx := context.Background()
	passes := []*entity.Pass{
		{SerialNumber: "SN-1"},
		{SerialNumber: "SN-2"},
	}

	mockRegRepo.EXPECT().
		FindPassesForDevice(ctx, "device-abc", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return(passes, nil)

	payload, err := service.RegistrationsForDevice(ctx, "device-abc", "pass.com.example.loyalty", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-1", "SN-2"}, payload.SerialNumbers)
	assert.Equal(t, "0", payload.LastUpdated)
}

func TestSyncService_RegistrationsForDevice_RepositoryError(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSyncService(mockRegRepo, newTestLogger())

	ctx := context.Background()

	mockRegRepo.EXPECT().
		FindPassesForDevice(ctx, "device-abc", "pass.com.example.loyalty", mock.Anything).
		Return(nil, errors.New("db error"))

	payload, err := service.RegistrationsForDevice(ctx, "device-abc", "pass.com.example.loyalty", "")
	assert.Nil(t, payload)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatchingPasses)
}
