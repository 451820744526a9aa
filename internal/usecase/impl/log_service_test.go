package impl

import (
	"context"
	"testing"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	mockRepo "passbook/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogService_SubmitLogs_Success(t *testing.T) {
	mockLogRepo := mockRepo.NewMockErrorLogRepository(t)
	service := NewLogService(mockLogRepo, newTestLogger())

	ctx := context.Background()

	mockLogRepo.EXPECT().
		CreateErrorLogs(ctx, mock.MatchedBy(func(logs []*entity.ErrorLog) bool {
			return len(logs) == 2 && logs[0].Message == "pass render failed" && logs[1].Message == ""
		})).
		Return(nil)

	// Empty strings inside a non-empty batch are stored verbatim.
	err := service.SubmitLogs(ctx, []string{"pass render failed", ""})
	require.NoError(t, err)
}

func TestLogService_SubmitLogs_EmptyBatch(t *testing.T) {
	mockLogRepo := mockRepo.NewMockErrorLogRepository(t)
	service := NewLogService(mockLogRepo, newTestLogger())

	ctx := context.Background()

	err := service.SubmitLogs(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyLogSubmission)

	err = service.SubmitLogs(ctx, []string{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyLogSubmission)
}

func TestLogService_SubmitLogs_RepositoryError(t *testing.T) {
	mockLogRepo := mockRepo.NewMockErrorLogRepository(t)
	service := NewLogService(mockLogRepo, newTestLogger())

	ctx := context.Background()

	mockLogRepo.EXPECT().
		CreateErrorLogs(ctx, mock.Anything).
		Return(errors.New("db error"))

	err := service.SubmitLogs(ctx, []string{"message"})
	assert.Error(t, err)
}

func TestLogService_ListLogs(t *testing.T) {
	mockLogRepo := mockRepo.NewMockErrorLogRepository(t)
	service := NewLogService(mockLogRepo, newTestLogger())

	ctx := context.Background()
	stored := []*entity.ErrorLog{
		{Message: "oldest"},
		{Message: "newest"},
	}

	mockLogRepo.EXPECT().
		ListErrorLogs(ctx).
		Return(stored, nil)

	messages, err := service.ListLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"oldest", "newest"}, messages)
}

func TestLogService_PurgeLogs(t *testing.T) {
	mockLogRepo := mockRepo.NewMockErrorLogRepository(t)
	service := NewLogService(mockLogRepo, newTestLogger())

	ctx := context.Background()

	mockLogRepo.EXPECT().
		PurgeErrorLogs(ctx).
		Return(int64(7), nil)

	removed, err := service.PurgeLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)
}
