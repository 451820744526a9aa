// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// errorLogRepository implements the repository.ErrorLogRepository interface.
type errorLogRepository struct {
	db *gorm.DB
}

// NewErrorLogRepository is the constructor for errorLogRepository.
func NewErrorLogRepository(db *gorm.DB) repository.ErrorLogRepository {
	return &errorLogRepository{
		db: db,
	}
}

// CreateErrorLogs persists a batch of error reports.
func (repo *errorLogRepository) CreateErrorLogs(ctx context.Context, logs []*entity.ErrorLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.ErrorLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, &model.ErrorLogModel{
			ID:      log.ID,
			Message: log.Message,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&logModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create error logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].CreatedAt = logM.CreatedAt
	}

	return nil
}

// ListErrorLogs retrieves all stored error reports, oldest first.
func (repo *errorLogRepository) ListErrorLogs(ctx context.Context) ([]*entity.ErrorLog, error) {
	var logModels []*model.ErrorLogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list error logs")
	}

	logs := make([]*entity.ErrorLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.ErrorLog{
			ID:        logM.ID,
			Message:   logM.Message,
			CreatedAt: logM.CreatedAt,
		})
	}

	return logs, nil
}

// PurgeErrorLogs deletes all stored error reports and returns how many were removed.
func (repo *errorLogRepository) PurgeErrorLogs(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ErrorLogModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge error logs")
	}

	return result.RowsAffected, nil
}
