// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passRepository implements the repository.PassRepository interface.
type passRepository struct {
	db *gorm.DB
}

// NewPassRepository is the constructor for passRepository.
func NewPassRepository(db *gorm.DB) repository.PassRepository {
	return &passRepository{
		db: db,
	}
}

// CreatePass persists a new pass record.
func (repo *passRepository) CreatePass(ctx context.Context, pass *entity.Pass) error {
	passM := fromPassDomain(pass)

	if err := repo.db.WithContext(ctx).Create(passM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePass
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required pass information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pass")
	}

	// Update the entity with generated values
	pass.ID = passM.ID
	pass.CreatedAt = passM.CreatedAt
	pass.UpdatedAt = passM.UpdatedAt

	return nil
}

// FindPassByTypeAndSerial retrieves a pass by its durable external key.
func (repo *passRepository) FindPassByTypeAndSerial(ctx context.Context, passTypeIdentifier, serialNumber string) (*entity.Pass, error) {
	var passM model.PassModel

	if err := repo.db.WithContext(ctx).
		Where("pass_type_identifier = ? AND serial_number = ?", passTypeIdentifier, serialNumber).
		First(&passM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass by type and serial")
	}

	return toPassDomain(&passM), nil
}

// StampPassModified sets the pass's last-content-change timestamp.
func (repo *passRepository) StampPassModified(ctx context.Context, passTypeIdentifier, serialNumber string, modified time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PassModel{}).
		Where("pass_type_identifier = ? AND serial_number = ?", passTypeIdentifier, serialNumber).
		Update("modified", modified)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to stamp pass modified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPassNotFound
	}

	return nil
}

// DeletePass removes a pass; its registrations go with it via ON DELETE CASCADE.
func (repo *passRepository) DeletePass(ctx context.Context, passTypeIdentifier, serialNumber string) error {
	result := repo.db.WithContext(ctx).
		Where("pass_type_identifier = ? AND serial_number = ?", passTypeIdentifier, serialNumber).
		Delete(&model.PassModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pass")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPassNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPassDomain converts a GORM PassModel to a domain Pass entity.
func toPassDomain(data *model.PassModel) *entity.Pass {
	if data == nil {
		return nil
	}

	return &entity.Pass{
		ID:                 data.ID,
		PassTypeIdentifier: data.PassTypeIdentifier,
		SerialNumber:       data.SerialNumber,
		Modified:           data.Modified,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromPassDomain converts a domain Pass entity to a GORM PassModel.
func fromPassDomain(data *entity.Pass) *model.PassModel {
	if data == nil {
		return nil
	}

	return &model.PassModel{
		ID:                 data.ID,
		PassTypeIdentifier: data.PassTypeIdentifier,
		SerialNumber:       data.SerialNumber,
		Modified:           data.Modified,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
